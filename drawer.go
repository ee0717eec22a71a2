package drawer

import (
	"math"

	"go.uber.org/zap"
)

type dragState uint8

const (
	stateIdle dragState = iota
	stateDragging
)

// session is the bookkeeping for one press-to-release gesture. StartDrag
// replaces it wholesale.
type session struct {
	startX, startY float64
	base           float64 // renderer offset when the gesture began

	intentChecked bool
	hasIntent     bool

	lastX     float64   // x of the last accepted move
	holdX     float64   // x where the current direction began
	direction Direction // current horizontal travel direction
}

// track records x as the newest pointer position and notes direction
// reversals. The reversal point becomes the new hold position.
func (s *session) track(x float64) {
	switch {
	case x < s.lastX:
		if s.direction != DirectionLeft {
			s.direction = DirectionLeft
			s.holdX = s.lastX
		}
	case x > s.lastX:
		if s.direction != DirectionRight {
			s.direction = DirectionRight
			s.holdX = s.lastX
		}
	default:
		return
	}
	s.lastX = x
}

// Drawer interprets horizontal drags over a content layer and decides where
// the layer comes to rest. All methods must be called from one goroutine,
// normally the game's Update.
type Drawer struct {
	cfg      Config
	renderer Renderer

	state dragState
	sess  session
	snap  Snapshot
	side  Side // last side passed to OnSideChanged

	ignore   []HitShape
	handlers eventRegistry
	sink     EventSink
	log      *zap.Logger

	// OnSideChanged is called whenever the revealed side changes, so the
	// caller can update panel visibility or styling. Nil by default.
	OnSideChanged func(Side)
}

// New creates a drawer over the given renderer. cfg is trusted as is; see
// Config.Validate.
func New(cfg Config, r Renderer) *Drawer {
	return &Drawer{
		cfg:      cfg,
		renderer: r,
		log:      zap.NewNop(),
	}
}

// Config returns the drawer's settings.
func (d *Drawer) Config() Config {
	return d.cfg
}

// Dragging reports whether a gesture is in progress.
func (d *Drawer) Dragging() bool {
	return d.state == stateDragging
}

// Snapshot returns the latest drag classification.
func (d *Drawer) Snapshot() Snapshot {
	return d.snap
}

// AddIgnoreRegion marks an area of the content layer as non-draggable.
// Shapes are in content-local coordinates, so they travel with the layer.
func (d *Drawer) AddIgnoreRegion(shape HitShape) {
	d.ignore = append(d.ignore, shape)
}

// ClearIgnoreRegions removes every ignore region.
func (d *Drawer) ClearIgnoreRegions() {
	d.ignore = d.ignore[:0]
}

func (d *Drawer) ignored(x, y float64) bool {
	if len(d.ignore) == 0 {
		return false
	}
	lx := x - drawnOffset(d.renderer)
	for _, shape := range d.ignore {
		if shape.Contains(lx, y) {
			return true
		}
	}
	return false
}

// StartDrag begins a gesture at (x, y). Any unfinished gesture is discarded
// and any in-flight settle is stopped where it is. A press inside an ignore
// region emits EventIgnore and changes nothing else.
func (d *Drawer) StartDrag(x, y float64) {
	if d.ignored(x, y) {
		d.log.Debug("drag ignored", zap.Float64("x", x), zap.Float64("y", y))
		d.emit(EventIgnore)
		return
	}
	d.emit(EventStart)
	if s, ok := d.renderer.(stopper); ok {
		s.Stop()
	}
	d.state = stateDragging
	d.sess = session{
		startX: x,
		startY: y,
		base:   d.renderer.Offset(),
		lastX:  x,
		holdX:  x,
	}
	d.snap = Snapshot{}
}

// blocked reports whether travel dx from the press point heads toward a
// disabled panel. Only the direction counts, wherever the layer sits.
func (d *Drawer) blocked(dx float64) bool {
	switch d.cfg.Disable {
	case DisableLeft:
		return dx > 0
	case DisableRight:
		return dx < 0
	}
	return false
}

// UpdateDrag feeds a pointer move. It is a no-op outside a gesture, after
// the gesture failed its intent check, or when the pointer has travelled
// toward a disabled panel.
func (d *Drawer) UpdateDrag(x, y float64) {
	if d.state != stateDragging {
		return
	}
	s := &d.sess
	dx := x - s.startX
	if s.intentChecked && !s.hasIntent {
		return
	}
	if d.blocked(dx) {
		return
	}

	if !s.intentChecked {
		s.hasIntent = HasIntent(s.startX, s.startY, x, y, d.cfg.SlideIntent)
		s.intentChecked = true
		d.log.Debug("intent checked",
			zap.Bool("horizontal", s.hasIntent),
			zap.Float64("angle", AngleOfDrag(s.startX, s.startY, x, y)))
	}
	if !s.hasIntent && math.Abs(dx) <= d.cfg.MinDragDistance {
		return
	}

	s.track(x)
	offset := d.resist(s.base + dx)
	d.snap = d.classify(offset, dx)
	d.renderer.SetOffset(offset)
	d.setSide(d.snap.Opening)
	d.emit(EventDrag)
}

// resist damps the part of attempted that lies beyond either bound. The
// result depends only on attempted, so one pointer position always renders
// the same offset.
func (d *Drawer) resist(attempted float64) float64 {
	switch {
	case attempted > d.cfg.MaxPosition:
		return d.cfg.MaxPosition + (attempted-d.cfg.MaxPosition)*d.cfg.Resistance
	case attempted < d.cfg.MinPosition:
		return d.cfg.MinPosition + (attempted-d.cfg.MinPosition)*d.cfg.Resistance
	}
	return attempted
}

func (d *Drawer) classify(offset, relative float64) Snapshot {
	s := &d.sess
	since := s.lastX - s.holdX
	snap := Snapshot{
		Towards: s.direction,
		Flick:   math.Abs(since) > d.cfg.FlickThreshold,
		Translation: Translation{
			Absolute:             offset,
			Relative:             relative,
			SinceDirectionChange: since,
		},
	}
	if offset > 0 {
		snap.Opening = SideLeft
		snap.HyperExtending = offset > d.cfg.MaxPosition
		snap.Halfway = offset > d.cfg.MaxPosition/2
		snap.Translation.Percentage = offset / d.cfg.MaxPosition * 100
	} else {
		snap.Opening = SideRight
		snap.HyperExtending = offset < d.cfg.MinPosition
		snap.Halfway = offset < d.cfg.MinPosition/2
		snap.Translation.Percentage = offset / d.cfg.MinPosition * 100
	}
	return snap
}

// EndDrag finishes the gesture and settles the layer. It returns the target
// handed to the renderer, and false when no snap applied (no gesture in
// progress, or the drag never classified a side).
func (d *Drawer) EndDrag(x, y float64) (float64, bool) {
	if d.state != stateDragging {
		return 0, false
	}
	d.emit(EventEnd)
	d.state = stateIdle

	target, ok := d.decide(d.renderer.Offset())
	d.log.Debug("drag ended",
		zap.Float64("x", x),
		zap.Stringer("opening", d.snap.Opening),
		zap.Stringer("towards", d.snap.Towards),
		zap.Bool("halfway", d.snap.Halfway),
		zap.Bool("hyperExtending", d.snap.HyperExtending),
		zap.Bool("flick", d.snap.Flick),
		zap.Bool("settle", ok),
		zap.Float64("target", target))
	if ok {
		d.settle(target)
	}
	return target, ok
}

// decide maps the final classification to a resting offset.
func (d *Drawer) decide(current float64) (float64, bool) {
	if d.sess.direction == DirectionNone && current != 0 && d.cfg.TapToClose {
		return 0, true
	}

	var bound float64
	var closing Direction
	switch d.snap.Opening {
	case SideLeft:
		bound, closing = d.cfg.MaxPosition, DirectionLeft
	case SideRight:
		bound, closing = d.cfg.MinPosition, DirectionRight
	default:
		return current, false
	}

	snap := d.snap
	switch {
	case snap.Flick && snap.Towards == closing:
		return 0, true
	case snap.Flick, snap.HyperExtending:
		return bound, true
	case snap.Halfway && snap.Towards != closing:
		return bound, true
	}
	return 0, true
}

// Open settles the layer fully open on side. SideNone is ignored.
func (d *Drawer) Open(side Side) {
	var target float64
	switch side {
	case SideLeft:
		target = d.cfg.MaxPosition
		d.snap.Towards = DirectionRight
	case SideRight:
		target = d.cfg.MinPosition
		d.snap.Towards = DirectionLeft
	default:
		return
	}
	d.snap.Opening = side
	d.setSide(side)
	d.settle(target)
}

// Close settles the layer at 0.
func (d *Drawer) Close() {
	d.settle(0)
}

// State reports which bound the layer rests at, with the latest snapshot.
func (d *Drawer) State() DrawerState {
	st := StateClosed
	switch d.renderer.Offset() {
	case d.cfg.MaxPosition:
		st = StateLeft
	case d.cfg.MinPosition:
		st = StateRight
	}
	return DrawerState{State: st, Info: d.snap}
}

func (d *Drawer) settle(target float64) {
	d.renderer.AnimateTo(target, d.cfg.TransitionSpeed, d.cfg.EaseFunc(),
		func() { d.emit(EventAnimating) },
		func() { d.settled(target) })
}

func (d *Drawer) settled(target float64) {
	switch target {
	case d.cfg.MaxPosition:
		d.setSide(SideLeft)
	case d.cfg.MinPosition:
		d.setSide(SideRight)
	default:
		d.setSide(SideNone)
	}
	d.emit(EventAnimated)
}

func (d *Drawer) setSide(side Side) {
	if side == d.side {
		return
	}
	d.side = side
	if d.OnSideChanged != nil {
		d.OnSideChanged(side)
	}
}
