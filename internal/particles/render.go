package particles

import "github.com/san-kum/pagefx/internal/sched"

// Surface is a 2D drawing target owned by a single field.
type Surface interface {
	Clear(w, h float64)
	FillGradient(w, h float64, from, to Color)
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Draw paints one frame: background gradient, particles, then links.
func (f *Field) Draw(s Surface) {
	s.Clear(f.width, f.height)
	s.FillGradient(f.width, f.height, f.params.GradientFrom, f.params.GradientTo)
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Size, p.Color)
	}
	f.Links(func(a, b *Particle, alpha float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.params.LinkWidth, f.params.LinkColor.WithAlpha(alpha))
	})
}

// Animator drives a field on a frame scheduler. At most one frame request is
// outstanding at any time.
type Animator struct {
	field   *Field
	surface Surface
	frames  sched.Frames

	pending sched.FrameID
	running bool
	stopped bool
	count   int
}

func NewAnimator(field *Field, surface Surface, frames sched.Frames) *Animator {
	return &Animator{field: field, surface: surface, frames: frames}
}

func (a *Animator) Field() *Field   { return a.field }
func (a *Animator) Running() bool   { return a.running }
func (a *Animator) FrameCount() int { return a.count }

// Start renders the first frame and begins the loop. Calling Start on a
// running or stopped animator does nothing.
func (a *Animator) Start() {
	if a.running || a.stopped {
		return
	}
	a.running = true
	a.frame()
}

// Resize cancels the outstanding frame, re-seeds the field for the new
// viewport and restarts the loop with an immediate frame.
func (a *Animator) Resize(w, h float64) {
	if a.stopped {
		return
	}
	a.cancel()
	a.field.Resize(w, h)
	a.running = true
	a.frame()
}

// Stop cancels the loop for good.
func (a *Animator) Stop() {
	a.cancel()
	a.running = false
	a.stopped = true
}

func (a *Animator) cancel() {
	if a.pending != 0 {
		a.frames.CancelFrame(a.pending)
		a.pending = 0
	}
}

func (a *Animator) frame() {
	a.pending = 0
	if !a.running {
		return
	}
	a.field.Step()
	a.field.Draw(a.surface)
	a.count++
	a.pending = a.frames.RequestFrame(a.frame)
}
