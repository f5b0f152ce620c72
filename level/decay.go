package level

import "time"

// ArmDecay schedules the cell to crumble at now+delay. Only Unstable cells can
// be armed, and a cell that already carries a timer keeps its original
// deadline: standing on cracked ice twice does not buy more time.
func (g *Grid) ArmDecay(row, col int, now, delay time.Duration) {
	if g.TileAt(row, col) != Unstable {
		return
	}
	c := Cell{Row: row, Col: col}
	if _, armed := g.decays[c]; armed {
		return
	}
	g.decays[c] = now + delay
}

// SweepDecay crumbles every armed cell whose deadline has passed and returns
// how many crumbled. Expired entries are always removed; the tile itself is
// emptied only if it is still Unstable, so a cell mutated externally after
// arming just drops its stale timer.
func (g *Grid) SweepDecay(now time.Duration) int {
	broke := 0
	for c, deadline := range g.decays {
		if deadline > now {
			continue
		}
		delete(g.decays, c)
		if g.TileAt(c.Row, c.Col) == Unstable {
			g.SetTile(c.Row, c.Col, Empty)
			broke++
		}
	}
	return broke
}

// DecayDeadline reports the armed deadline for a cell, if any.
func (g *Grid) DecayDeadline(row, col int) (time.Duration, bool) {
	d, ok := g.decays[Cell{Row: row, Col: col}]
	return d, ok
}

// ActiveDecays returns the number of armed timers.
func (g *Grid) ActiveDecays() int {
	return len(g.decays)
}
