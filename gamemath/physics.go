package gamemath

// Approach moves value toward target by at most maxDelta, never overshooting.
func Approach(value, target, maxDelta float64) float64 {
	if value < target {
		value += maxDelta
		if value > target {
			return target
		}
		return value
	}
	if value > target {
		value -= maxDelta
		if value < target {
			return target
		}
		return value
	}
	return value
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	return Approach(speed, 0, friction)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
