package litterlogic

import (
	orb "github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Step is one recorded tick of a run.
type Step struct {
	Tick   int64
	At     Position
	Level  Resources
	Action Action
}

// Recorder keeps the history of a run so it can be exported and opened in
// a GIS tool alongside what the agent remembered.
type Recorder struct {
	AgentID string
	Steps   []Step
}

// NewRecorder creates an empty recorder for the agent.
func NewRecorder(agentID string) *Recorder {
	return &Recorder{AgentID: agentID}
}

// Record appends the state the body was in when a was decided.
func (r *Recorder) Record(tick int64, body Body, a Action) {
	r.Steps = append(r.Steps, Step{
		Tick:   tick,
		At:     body.Position(),
		Level:  body.Resources(),
		Action: a,
	})
}

// Counts returns how often each kind of action was chosen.
func (r *Recorder) Counts() map[ActionKind]int {
	counts := make(map[ActionKind]int)
	for _, s := range r.Steps {
		if s.Action != nil {
			counts[s.Action.Kind()]++
		}
	}
	return counts
}

// Path returns the visited positions in order, skipping ticks where the
// agent did not move.
func (r *Recorder) Path() orb.LineString {
	var path orb.LineString
	for i, s := range r.Steps {
		if i > 0 && s.At == r.Steps[i-1].At {
			continue
		}
		path = append(path, s.At.Point())
	}
	return path
}

// FeatureCollection exports the path and the remembered landmarks.
func (r *Recorder) FeatureCollection(mem Memory) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := geojson.NewFeature(r.Path())
	path.Properties["agent"] = r.AgentID
	path.Properties["kind"] = "path"
	path.Properties["ticks"] = len(r.Steps)
	fc.Append(path)

	landmarks := []struct {
		name string
		pos  NullPosition
	}{
		{"recharge", mem.Recharge},
		{"wasteStation", mem.WasteStation},
		{"recyclingStation", mem.RecyclingStation},
		{"binTarget", mem.BinTarget},
	}
	for _, l := range landmarks {
		if !l.pos.Valid {
			continue
		}
		f := geojson.NewFeature(l.pos.Point())
		f.Properties["agent"] = r.AgentID
		f.Properties["kind"] = l.name
		fc.Append(f)
	}
	return fc
}
