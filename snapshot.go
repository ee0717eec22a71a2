package drawer

// Side identifies which panel is being revealed. SideLeft means the content
// layer moves right (positive offset) to uncover the left panel.
type Side uint8

const (
	SideNone  Side = iota // no side determined yet this gesture
	SideLeft              // left panel revealed, offset > 0
	SideRight             // right panel revealed, offset < 0
)

// String returns "none", "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ParseSide converts "left" or "right" to a Side. Anything else is SideNone.
func ParseSide(s string) Side {
	switch s {
	case "left":
		return SideLeft
	case "right":
		return SideRight
	default:
		return SideNone
	}
}

// Direction is the horizontal travel direction of the pointer.
type Direction uint8

const (
	DirectionNone  Direction = iota // no horizontal travel recorded
	DirectionLeft                   // pointer moving toward smaller x
	DirectionRight                  // pointer moving toward larger x
)

// String returns "none", "left" or "right".
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Translation carries the offsets behind a Snapshot.
type Translation struct {
	Absolute             float64 // offset applied to the content layer
	Relative             float64 // pointer x minus drag start x
	SinceDirectionChange float64 // pointer x minus x at the last reversal
	Percentage           float64 // Absolute as a percentage of the opening bound
}

// Snapshot is the drag classification rebuilt on every accepted move event.
// The zero value is the state before the first classification of a gesture.
type Snapshot struct {
	Opening        Side
	Towards        Direction
	HyperExtending bool
	Halfway        bool
	Flick          bool
	Translation    Translation
}

// State is the coarse resting state reported by Drawer.State.
type State uint8

const (
	StateClosed State = iota // offset is anywhere other than a bound
	StateLeft                // offset equals MaxPosition
	StateRight               // offset equals MinPosition
)

// String returns "closed", "left" or "right".
func (s State) String() string {
	switch s {
	case StateLeft:
		return "left"
	case StateRight:
		return "right"
	default:
		return "closed"
	}
}

// DrawerState pairs the resting state with the latest classification.
type DrawerState struct {
	State State
	Info  Snapshot
}
