package rollout

import (
	"sync"

	"github.com/fightrl/comboinject/injector"
)

// Step is one sampling call of a rollout: the category drawn for each
// agent and the action that was emitted.
type Step struct {
	Index      int
	Categories map[string]injector.Category
	Actions    map[string]injector.EncodedAction
}

// Trace is the step record of one episode.
type Trace struct {
	mtx   *sync.Mutex
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]*Step, 0),
		mtx:   &sync.Mutex{},
	}
}

func (t *Trace) AddStep(s *Step) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.steps[i]
}

func (t *Trace) Len() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.steps)
}

// Records flattens the trace into JSON-serializable rows, one per
// step and agent.
func (t *Trace) Records(runID string, episode int) []interface{} {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	out := make([]interface{}, 0, len(t.steps))
	for _, s := range t.steps {
		for agent, action := range s.Actions {
			out = append(out, map[string]interface{}{
				"run":            runID,
				"episode":        episode,
				"step":           s.Index,
				"agent":          agent,
				"category":       s.Categories[agent].String(),
				"discrete":       action.Discrete,
				"multi_discrete": action.MultiDiscrete,
			})
		}
	}
	return out
}
