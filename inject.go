package drawer

// syntheticPointerEvent is a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at (x, y). Injected events are consumed one per
// Update, ahead of real input.
func (p *Pointer) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a held-down move to (x, y). Use it between InjectPress
// and InjectRelease.
func (p *Pointer) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (p *Pointer) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press and a release at the same point. Consumes two
// updates.
func (p *Pointer) InjectTap(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues one whole gesture: a press at (fromX, fromY), evenly
// spaced held moves, and a release at (toX, toY), frames events in all.
// frames below 2 is raised to 2, a press and a release with no move, which
// the drawer treats as a tap.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	p.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

// processInjected feeds the oldest queued sample through the gesture state
// machine in place of this tick's polled input. It reports false, leaving
// real input to run, when nothing is queued.
func (p *Pointer) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	next := p.injectQueue[0]
	p.injectQueue = p.injectQueue[1:]
	if len(p.injectQueue) == 0 {
		p.injectQueue = nil
	}
	p.process(next.x, next.y, next.pressed)
	return true
}
