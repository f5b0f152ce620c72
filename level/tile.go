package level

// Kind identifies what occupies a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Solid
	Kill
	Slip
	Unstable

	kindCount
)

// Behavior is how a tile acts during collision resolution. Slippery and
// Crumbling both block; they differ in what landing on them does.
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorBlocking
	BehaviorLethal
	BehaviorSlippery
	BehaviorCrumbling
)

var kindBehaviors = [kindCount]Behavior{
	Empty:    BehaviorNone,
	Solid:    BehaviorBlocking,
	Kill:     BehaviorLethal,
	Slip:     BehaviorSlippery,
	Unstable: BehaviorCrumbling,
}

// Behavior maps a tile kind to its collision behavior. Unknown kinds act as
// BehaviorNone so a corrupt cell can never block or kill.
func (k Kind) Behavior() Behavior {
	if k >= kindCount {
		return BehaviorNone
	}
	return kindBehaviors[k]
}

// Blocks reports whether the behavior stops movement.
func (b Behavior) Blocks() bool {
	return b == BehaviorBlocking || b == BehaviorSlippery || b == BehaviorCrumbling
}

var kindNames = [kindCount]string{
	Empty:    "empty",
	Solid:    "solid",
	Kill:     "kill",
	Slip:     "slip",
	Unstable: "unstable",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// KindByName resolves the names used by TMX tile properties. Unrecognized
// names map to Empty.
func KindByName(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return Kind(k)
		}
	}
	return Empty
}
