package drawer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Ignore region shapes ---

// HitShape is an ignore region on the content layer. Coordinates are
// content-local: the drawer subtracts the drawn offset from the press x
// before asking, so a region stays glued to the control it covers while the
// layer is open, closed, or mid-settle.
type HitShape interface {
	Contains(x, y float64) bool
}

// Vec2 is a point in content-local space.
type Vec2 struct {
	X, Y float64
}

// HitRect covers a rectangular control such as a button. A negative Width
// or Height extends the rectangle left or up from (X, Y).
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether a press at content-local (x, y) lands on the
// rectangle. Edges count as a hit.
func (r HitRect) Contains(x, y float64) bool {
	left, right := math.Min(r.X, r.X+r.Width), math.Max(r.X, r.X+r.Width)
	top, bottom := math.Min(r.Y, r.Y+r.Height), math.Max(r.Y, r.Y+r.Height)
	return left <= x && x <= right && top <= y && y <= bottom
}

// HitCircle covers a round control such as a toggle knob.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether a press at content-local (x, y) lands on or
// inside the circle.
func (c HitCircle) Contains(x, y float64) bool {
	return math.Hypot(x-c.CenterX, y-c.CenterY) <= c.Radius
}

// HitPolygon covers a convex control outline, wound either way.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether a press at content-local (x, y) lies inside the
// outline or on one of its edges. Fewer than three points never match.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	// Inside a convex outline, the press sits on the same side of every edge.
	var winding float64
	prev := p.Points[len(p.Points)-1]
	for _, cur := range p.Points {
		side := (cur.X-prev.X)*(y-prev.Y) - (cur.Y-prev.Y)*(x-prev.X)
		switch {
		case side == 0:
		case winding == 0:
			winding = side
		case (side > 0) != (winding > 0):
			return false
		}
		prev = cur
	}
	return true
}

// --- Pointer ---

// Pointer turns Ebitengine mouse and touch state into drawer gestures.
// The left mouse button and the first touch both drive the drawer; while a
// touch is held, the mouse is not read. Call Update once per tick.
type Pointer struct {
	drawer *Drawer

	down         bool
	lastX, lastY float64

	touching bool
	touchID  ebiten.TouchID
	touchBuf []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	runner      *Runner
}

// NewPointer creates a pointer source feeding d.
func NewPointer(d *Drawer) *Pointer {
	return &Pointer{drawer: d}
}

// Drawer returns the drawer this pointer feeds.
func (p *Pointer) Drawer() *Drawer {
	return p.drawer
}

// Down reports whether the pointer is currently pressed.
func (p *Pointer) Down() bool {
	return p.down
}

// Update runs the script runner if one is attached, then consumes one
// injected event if any are queued; otherwise it polls real input.
func (p *Pointer) Update() {
	if p.runner != nil {
		p.runner.step(p)
	}
	if p.processInjected() {
		return
	}
	x, y, pressed := p.poll()
	p.process(x, y, pressed)
}

// poll reads the active touch if there is one, else the mouse.
func (p *Pointer) poll() (float64, float64, bool) {
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	if p.touching {
		for _, id := range p.touchBuf {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		// Touch lifted; release at its last known position.
		p.touching = false
		return p.lastX, p.lastY, false
	}
	if !p.down && len(p.touchBuf) > 0 {
		p.touching = true
		p.touchID = p.touchBuf[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// process runs the press/move/release state machine for one sample.
func (p *Pointer) process(x, y float64, pressed bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.drawer.StartDrag(x, y)
	case pressed && p.down:
		if x != p.lastX || y != p.lastY {
			p.drawer.UpdateDrag(x, y)
		}
	case !pressed && p.down:
		p.down = false
		p.drawer.EndDrag(x, y)
	}
	p.lastX = x
	p.lastY = y
}
