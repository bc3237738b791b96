package litterlogic

import "github.com/google/uuid"

// Resources are the levels an agent carries. The environment owns them; the
// policy only reads them.
type Resources struct {
	Charge    int
	Waste     int
	Recycling int
}

// Body is the agent-state collaborator the policy reads from each tick.
type Body interface {
	Position() Position
	Resources() Resources
}

// Status is a plain Body, useful when the environment keeps the agent state
// itself and hands the policy a fresh snapshot.
type Status struct {
	UUID  string
	Nick  string
	At    Position
	Level Resources
}

// NewStatus creates a Status with a fresh UUID.
func NewStatus(nick string, at Position, level Resources) *Status {
	return &Status{
		UUID:  uuid.NewString(),
		Nick:  nick,
		At:    at,
		Level: level,
	}
}

// Position implements Body.
func (s *Status) Position() Position { return s.At }

// Resources implements Body.
func (s *Status) Resources() Resources { return s.Level }
