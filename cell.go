package litterlogic

import (
	orb "github.com/paulmach/orb"
)

// Material is the kind of litter an agent can carry
type Material int

const (
	Waste Material = iota
	Recycling
)

func (m Material) String() string {
	switch m {
	case Waste:
		return "waste"
	case Recycling:
		return "recycling"
	}
	return "unknown"
}

// Task is a collection request attached to a bin. The environment consumes
// it; the policy only looks at it.
type Task struct {
	ID        string
	Material  Material
	Remaining int
	MaxAmount int
}

// Worthwhile reports whether more than a fifth of the task is left.
func (t *Task) Worthwhile() bool {
	return t != nil && t.Remaining > t.MaxAmount/5
}

// Cell is one square of the agent's view. The set of implementations is
// closed; inspect a cell with a type switch.
type Cell interface {
	At() Position
	isCell()
}

type RechargePoint struct{ Pos Position }

type WasteStation struct{ Pos Position }

type RecyclingStation struct{ Pos Position }

// WasteBin holds waste. Task is nil when the bin has nothing to collect.
type WasteBin struct {
	Pos  Position
	Task *Task
}

// RecyclingBin holds recycling. Task is nil when the bin has nothing to
// collect.
type RecyclingBin struct {
	Pos  Position
	Task *Task
}

type Obstacle struct{ Pos Position }

type Empty struct{ Pos Position }

func (c RechargePoint) At() Position    { return c.Pos }
func (c WasteStation) At() Position     { return c.Pos }
func (c RecyclingStation) At() Position { return c.Pos }
func (c WasteBin) At() Position         { return c.Pos }
func (c RecyclingBin) At() Position     { return c.Pos }
func (c Obstacle) At() Position         { return c.Pos }
func (c Empty) At() Position            { return c.Pos }

func (RechargePoint) isCell()    {}
func (WasteStation) isCell()     {}
func (RecyclingStation) isCell() {}
func (WasteBin) isCell()         {}
func (RecyclingBin) isCell()     {}
func (Obstacle) isCell()         {}
func (Empty) isCell()            {}

// View is the square window of cells around the agent, indexed [row][col].
// The agent stands on the centre cell.
type View [][]Cell

// Current returns the cell under the agent. A missing centre reads as Empty.
func (v View) Current() Cell {
	mid := len(v) / 2
	if mid >= len(v) || mid >= len(v[mid]) || v[mid][mid] == nil {
		return Empty{}
	}
	return v[mid][mid]
}

// Bound returns the extent of the positions covered by the view.
func (v View) Bound() orb.Bound {
	var (
		b     orb.Bound
		first = true
	)
	for _, row := range v {
		for _, c := range row {
			if c == nil {
				continue
			}
			if first {
				b = c.At().Point().Bound()
				first = false
				continue
			}
			b = b.Extend(c.At().Point())
		}
	}
	return b
}
