package litterlogic

import (
	"fmt"
	"math"

	orb "github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Position is a cell coordinate on the grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience constructor for Position.
func Pt(x, y int) Position { return Position{X: x, Y: y} }

// Point converts the position into an orb point
func (p Position) Point() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// Distance returns the euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	return planar.Distance(p.Point(), other.Point())
}

// Add returns a copy of p moved by the given offset.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// NullPosition is a Position that may be unknown, in the manner of
// sql.NullString.
type NullPosition struct {
	Position
	Valid bool
}

// Known wraps p as a valid NullPosition.
func Known(p Position) NullPosition {
	return NullPosition{Position: p, Valid: true}
}

// DistanceFrom returns the distance from p to the remembered position, or
// +Inf when nothing is remembered.
func (n NullPosition) DistanceFrom(p Position) float64 {
	if !n.Valid {
		return math.Inf(1)
	}
	return p.Distance(n.Position)
}

func (n NullPosition) String() string {
	if !n.Valid {
		return "unknown"
	}
	return n.Position.String()
}

// IsCloser reports whether candidate should replace old as the remembered
// location for an agent standing at agent. Equal distances keep old.
func IsCloser(old NullPosition, candidate, agent Position) bool {
	if !old.Valid {
		return true
	}
	return agent.Distance(candidate) < agent.Distance(old.Position)
}
