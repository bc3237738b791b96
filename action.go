package litterlogic

import "fmt"

// Direction is one of the eight single-cell moves.
type Direction int

// The order matches the environment's move codes.
const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Directions lists every move an exploring agent may pick.
var Directions = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

var directionNames = [...]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Delta returns the grid offset of a move. Y grows northwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case NorthWest:
		return -1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	}
	return 0, 0
}

// ActionKind enumerates the action types the policy produces.
type ActionKind string

const (
	KindRecharge    ActionKind = "Recharge"
	KindDispose     ActionKind = "Dispose"
	KindLoad        ActionKind = "Load"
	KindMove        ActionKind = "Move"
	KindMoveTowards ActionKind = "MoveTowards"
)

// Action is the single decision returned for a tick. The environment is
// responsible for carrying it out, or rejecting it.
type Action interface {
	Kind() ActionKind
	String() string
	isAction()
}

// Recharge tops up the battery from the recharge point underfoot.
type Recharge struct{}

// Dispose empties the carried material into the station underfoot.
type Dispose struct {
	Material Material
}

// Load collects from the task of the bin underfoot.
type Load struct {
	Task *Task
}

// Move steps one cell in a direction.
type Move struct {
	Direction Direction
}

// MoveTowards asks the environment to step towards a target.
type MoveTowards struct {
	Target Position
}

func (Recharge) Kind() ActionKind    { return KindRecharge }
func (Dispose) Kind() ActionKind     { return KindDispose }
func (Load) Kind() ActionKind        { return KindLoad }
func (Move) Kind() ActionKind        { return KindMove }
func (MoveTowards) Kind() ActionKind { return KindMoveTowards }

func (Recharge) String() string { return "Recharge" }

func (a Dispose) String() string { return fmt.Sprintf("Dispose(%s)", a.Material) }

func (a Load) String() string {
	if a.Task == nil {
		return "Load(<nil>)"
	}
	return fmt.Sprintf("Load(%s %s)", a.Task.Material, a.Task.ID)
}

func (a Move) String() string { return fmt.Sprintf("Move(%s)", a.Direction) }

func (a MoveTowards) String() string { return fmt.Sprintf("MoveTowards%s", a.Target) }

func (Recharge) isAction()    {}
func (Dispose) isAction()     {}
func (Load) isAction()        {}
func (Move) isAction()        {}
func (MoveTowards) isAction() {}
