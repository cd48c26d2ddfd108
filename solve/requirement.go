package solve

// Requirement classifies how the target set must relate to one point for
// the formula to hold there.
type Requirement int

const (
	// MustBeIn: the formula holds only if the target contains the point.
	MustBeIn Requirement = iota
	// MustBeOut: the formula holds only if the target excludes the point.
	MustBeOut
	// CanBeEither: the formula holds either way.
	CanBeEither
	// Impossible: the formula fails either way; no target satisfies it.
	Impossible
)

func (r Requirement) String() string {
	switch r {
	case MustBeIn:
		return "must be in"
	case MustBeOut:
		return "must be out"
	case CanBeEither:
		return "can be either"
	case Impossible:
		return "impossible"
	}
	return "unknown"
}
