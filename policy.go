package litterlogic

import (
	"fmt"
	"io"
	"log"
)

// Policy decides what a single litter agent does each tick. It keeps the
// agent's Memory and Exploration between calls and is not safe for
// concurrent use.
type Policy struct {
	cfg    Config
	body   Body
	src    Source
	logger *log.Logger

	mem  Memory
	walk Exploration
}

// Option customises a Policy at construction.
type Option func(*Policy)

// WithLogger sends the policy's diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Policy) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMemory starts the policy from a previously captured Memory.
func WithMemory(m Memory) Option {
	return func(p *Policy) { p.mem = m }
}

// WithExploration starts the policy from a previously captured walk.
func WithExploration(e Exploration) Option {
	return func(p *Policy) { p.walk = e }
}

// NewPolicy creates the policy for the agent described by body. Random draws
// come from src, which may be shared with the environment.
func NewPolicy(cfg Config, body Body, src Source, opts ...Option) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: nil body", ErrInvalidConfig)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	p := &Policy{
		cfg:    cfg,
		body:   body,
		src:    src,
		logger: log.New(io.Discard, "", 0),
	}
	if cfg.Home != nil {
		p.mem.Recharge = Known(*cfg.Home)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Memory returns what the agent currently remembers.
func (p *Policy) Memory() Memory { return p.mem }

// Exploration returns the current random walk state.
func (p *Policy) Exploration() Exploration { return p.walk }

// Config returns the constants the policy was built with.
func (p *Policy) Config() Config { return p.cfg }

// Decide returns the agent's action for this tick. Rules are tried in
// priority order and the first that applies wins; the last one always
// applies, so an action is always returned.
func (p *Policy) Decide(view View, timestep int64) Action {
	if p.walk.Walking() {
		return p.step()
	}
	if p.walk.Remaining == 0 {
		p.walk = p.walk.Reset(p.src, p.cfg.WalkMin, p.cfg.WalkMax)
		p.logger.Printf("tick %d: next walk %s for %d ticks", timestep, p.walk.Direction, p.walk.Remaining)
	}

	at := p.body.Position()
	res := p.body.Resources()
	here := view.Current()

	switch c := here.(type) {
	case RechargePoint:
		if res.Charge < p.cfg.MaxCharge {
			return Recharge{}
		}
	case WasteStation:
		if res.Waste > 0 {
			return Dispose{Material: Waste}
		}
	case RecyclingStation:
		if res.Recycling > 0 {
			return Dispose{Material: Recycling}
		}
	case WasteBin:
		if res.Recycling == 0 {
			return p.load(c.Task, res.Waste, timestep)
		}
	case RecyclingBin:
		if res.Waste == 0 {
			return p.load(c.Task, res.Recycling, timestep)
		}
	}

	_, onCharger := here.(RechargePoint)
	switch {
	case p.needsRecharge(at, res, onCharger):
		p.mem = Scan(p.mem, view, at, res)
		return p.moveTowards(p.mem.Recharge, "recharge point", timestep)
	case p.needsStation(at, res.Waste, p.mem.WasteStation):
		p.mem = Scan(p.mem, view, at, res)
		return p.moveTowards(p.mem.WasteStation, "waste station", timestep)
	case p.needsStation(at, res.Recycling, p.mem.RecyclingStation):
		p.mem = Scan(p.mem, view, at, res)
		return p.moveTowards(p.mem.RecyclingStation, "recycling station", timestep)
	}

	p.mem = Scan(p.mem, view, at, res)
	if !p.mem.BinTarget.Valid {
		return p.explore()
	}
	p.walk.Active = false
	return MoveTowards{Target: p.mem.BinTarget.Position}
}

// needsRecharge is true when charge is critical, or when a known recharge
// point is close and the battery is no more than two thirds full. onCharger
// only guards the second clause.
func (p *Policy) needsRecharge(at Position, res Resources, onCharger bool) bool {
	critical := res.Charge <= p.cfg.MaxCharge/3
	near := p.mem.Recharge.DistanceFrom(at) < float64(p.cfg.ViewRange/6)
	topUp := float64(res.Charge) <= float64(p.cfg.MaxCharge)/1.5
	return critical || ((near && topUp) && !onCharger)
}

// needsStation is true when the load is nearly full, or when anything is
// carried and the matching station is close.
func (p *Policy) needsStation(at Position, carried int, station NullPosition) bool {
	full := float64(carried) >= float64(p.cfg.MaxLitter)*0.9
	near := carried > 0 && station.DistanceFrom(at) < float64(p.cfg.ViewRange/5)
	return full || near
}

func (p *Policy) moveTowards(target NullPosition, what string, timestep int64) Action {
	if !target.Valid {
		p.logger.Printf("tick %d: no %s known, exploring", timestep, what)
		return p.explore()
	}
	return MoveTowards{Target: target.Position}
}

func (p *Policy) explore() Action {
	p.walk.Active = true
	return p.step()
}

func (p *Policy) step() Action {
	var a Action
	p.walk, a = p.walk.Step()
	return a
}
