package litterlogic

// Exploration is the random walk the agent falls back on when it has no
// target. A walk runs in one direction for Remaining ticks.
type Exploration struct {
	Active    bool
	Direction Direction
	Remaining int
}

// Reset picks a new direction and length for the next walk and leaves it
// inactive until the policy starts it. It draws twice from src: direction
// first, then length.
func (e Exploration) Reset(src Source, minTicks, maxTicks int) Exploration {
	e.Active = false
	e.Direction = randomDirection(src)
	e.Remaining = minTicks + src.Intn(maxTicks-minTicks+1)
	return e
}

// Step advances the walk by one tick.
func (e Exploration) Step() (Exploration, Action) {
	if e.Remaining > 0 {
		e.Remaining--
	}
	return e, Move{Direction: e.Direction}
}

// Walking reports whether a started walk still has ticks left.
func (e Exploration) Walking() bool {
	return e.Active && e.Remaining > 0
}
