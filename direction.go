package squircle

// Direction is a horizontal layout direction.
type Direction int

const (
	// LTR lays content out left to right.
	LTR Direction = iota
	// RTL lays content out right to left.
	RTL
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Direction(unknown)"
	}
}
