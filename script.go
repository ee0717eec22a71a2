package drawer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Side   string  `yaml:"side,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "tap": true,
	"drag": true, "wait": true, "open": true, "close": true,
}

// Runner replays a gesture script through a Pointer, one step per tick once
// earlier injected events have drained. Attach with Pointer.SetRunner.
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON gesture script:
//
//	steps:
//	  - {action: drag, fromX: 20, fromY: 200, toX: 220, toY: 205, frames: 12}
//	  - {action: wait, frames: 30}
//	  - {action: open, side: right}
func LoadScript(data []byte) (*Runner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "open" && ParseSide(st.Side) == SideNone {
			return nil, fmt.Errorf("parse gesture script: step %d: open needs side left or right, got %q", i, st.Side)
		}
	}
	return &Runner{steps: s.Steps}, nil
}

// SetRunner attaches a script runner. Its steps run from Pointer.Update
// before input is processed.
func (p *Pointer) SetRunner(r *Runner) {
	p.runner = r
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *Runner) step(p *Pointer) {
	if r.done {
		return
	}
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "tap":
		p.InjectTap(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "open":
		p.drawer.Open(ParseSide(st.Side))
	case "close":
		p.drawer.Close()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
