package page

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/parallax"
	"github.com/san-kum/pagefx/internal/particles"
	"github.com/san-kum/pagefx/internal/sched"
)

type fakeOverlay struct {
	text    string
	writes  int
	hidden  bool
	removed bool
}

func (o *fakeOverlay) SetText(text string) { o.text = text; o.writes++ }
func (o *fakeOverlay) Hide()               { o.hidden = true }
func (o *fakeOverlay) Remove()             { o.removed = true }

type fakeCanvas struct {
	w, h  float64
	draws int
}

func (c *fakeCanvas) SetSize(w, h float64)                                     { c.w, c.h = w, h }
func (c *fakeCanvas) Clear(w, h float64)                                       { c.draws++ }
func (c *fakeCanvas) FillGradient(w, h float64, from, to particles.Color)      { c.draws++ }
func (c *fakeCanvas) FillCircle(x, y, r float64, col particles.Color)          { c.draws++ }
func (c *fakeCanvas) StrokeLine(x0, y0, x1, y1, w float64, c2 particles.Color) { c.draws++ }

type fakeMover struct{ tx, ty float64 }

func (m *fakeMover) Translate(tx, ty float64) { m.tx, m.ty = tx, ty }

type fakeForm map[string]string

func (f fakeForm) Value(field string) string { return f[field] }
func (f fakeForm) Focus(field string)        {}

type fakeFeedback struct {
	visible, ok bool
}

func (f *fakeFeedback) Show(text string, ok bool) { f.visible, f.ok = true, ok }
func (f *fakeFeedback) Hide()                     { f.visible = false }

type fakeText struct{ text string }

func (t *fakeText) SetText(text string) { t.text = text }

type fakeMenu struct{ display string }

func (m *fakeMenu) Display() string     { return m.display }
func (m *fakeMenu) SetDisplay(d string) { m.display = d }

type fakeDocument struct {
	overlay  *fakeOverlay
	canvas   *fakeCanvas
	layers   []parallax.Layer
	form     fakeForm
	feedback *fakeFeedback
	year     *fakeText
	menu     *fakeMenu
}

func newFullDocument() *fakeDocument {
	return &fakeDocument{
		overlay:  &fakeOverlay{},
		canvas:   &fakeCanvas{},
		layers:   []parallax.Layer{{Depth: 20, Mover: &fakeMover{}}},
		form:     fakeForm{contact.FieldName: "A", contact.FieldEmail: "b@c.com", contact.FieldMessage: "hi"},
		feedback: &fakeFeedback{},
		year:     &fakeText{},
		menu:     &fakeMenu{},
	}
}

func (d *fakeDocument) Overlay() (intro.Overlay, bool) {
	return d.overlay, d.overlay != nil
}

func (d *fakeDocument) ParallaxLayers() []parallax.Layer { return d.layers }

func (d *fakeDocument) ParallaxReference() (parallax.Rect, bool) {
	return parallax.Rect{Top: 0, Height: 600}, true
}

func (d *fakeDocument) Canvas() (CanvasSurface, bool) {
	return d.canvas, d.canvas != nil
}

func (d *fakeDocument) ContactForm() (contact.Form, bool) {
	return d.form, d.form != nil
}

func (d *fakeDocument) Feedback() (contact.Feedback, bool) {
	return d.feedback, d.feedback != nil
}

func (d *fakeDocument) SubmitButton() (contact.Button, bool) { return nil, false }

func (d *fakeDocument) YearDisplay() (TextSink, bool) {
	return d.year, d.year != nil
}

func (d *fakeDocument) NavMenu() (Menu, bool) {
	return d.menu, d.menu != nil
}

func newRuntime(v *sched.Virtual) Runtime {
	return Runtime{Clock: v, Frames: v, Rand: rand.New(rand.NewSource(1))}
}

func TestMountAll(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 1200, Height: 900, Year: 2026}, nil, newRuntime(v))

	require.NotNil(t, p.Intro)
	require.NotNil(t, p.Parallax)
	require.NotNil(t, p.Animator)
	require.NotNil(t, p.Contact)

	assert.Equal(t, "2026", doc.year.text)
	assert.Equal(t, 1200.0, doc.canvas.w)
	assert.Positive(t, doc.canvas.draws, "first frame drawn on mount")
	assert.Equal(t, intro.Waiting, p.Intro.Phase())
	assert.Equal(t, 1, v.PendingFrames())
}

func TestMountReducedMotion(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{ReducedMotion: true, Width: 1200, Height: 900}, nil, newRuntime(v))

	assert.Nil(t, p.Animator)
	assert.Nil(t, p.Field)
	assert.Zero(t, doc.canvas.draws)
	assert.Zero(t, v.PendingFrames())

	assert.True(t, doc.overlay.hidden)
	v.Advance(200 * time.Millisecond)
	assert.True(t, doc.overlay.removed)
	assert.Zero(t, doc.overlay.writes)

	for i := 0; i < 5; i++ {
		v.Frame()
	}
	assert.Zero(t, doc.canvas.draws)
}

func TestMountEmptyDocument(t *testing.T) {
	v := sched.NewVirtual()
	p := Mount(&fakeDocument{}, Env{Width: 800, Height: 600}, nil, newRuntime(v))

	assert.Nil(t, p.Intro)
	assert.Nil(t, p.Parallax)
	assert.Nil(t, p.Animator)
	assert.Nil(t, p.Contact)

	events := []Event{
		PointerMove{X: 1, Y: 2},
		TouchMove{Touches: []parallax.Point{{X: 3, Y: 4}}},
		TouchEnd{},
		Resize{Width: 100, Height: 100},
		KeyPress{Key: "Escape"},
		OverlayClick{},
		NavToggle{},
		Unload{},
	}
	for _, ev := range events {
		assert.True(t, p.Handle(ev), ev.Name())
	}
	assert.True(t, p.Handle(Submit{}), "submit proceeds without a guard")
}

func TestPointerEvents(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 1000, Height: 800}, nil, newRuntime(v))

	p.Handle(PointerMove{X: 700, Y: 450})
	x, y, ok := p.Field.Pointer()
	assert.True(t, ok)
	assert.Equal(t, 700.0, x)
	assert.Equal(t, 450.0, y)
	mover := doc.layers[0].Mover.(*fakeMover)
	assert.InDelta(t, 20, mover.tx, 1e-9)
	assert.InDelta(t, 10, mover.ty, 1e-9)

	p.Handle(TouchMove{Touches: []parallax.Point{{X: 500, Y: 300}}})
	x, y, _ = p.Field.Pointer()
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 300.0, y)
	assert.InDelta(t, 0, mover.tx, 1e-9)

	p.Handle(TouchEnd{})
	_, _, ok = p.Field.Pointer()
	assert.False(t, ok)
}

func TestResizeRestartsSingleLoop(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 800, Height: 600}, nil, newRuntime(v))
	v.Frame()

	p.Handle(Resize{Width: 3000, Height: 1800})

	assert.Equal(t, 1, v.PendingFrames())
	assert.Equal(t, 60, p.Field.Len())
	assert.Equal(t, 3000.0, doc.canvas.w)
}

func TestUnloadStopsLoop(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 800, Height: 600}, nil, newRuntime(v))

	p.Handle(Unload{})
	draws := doc.canvas.draws
	v.Frame()

	assert.Zero(t, v.PendingFrames())
	assert.Equal(t, draws, doc.canvas.draws)
}

func TestIntroEvents(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 800, Height: 600}, nil, newRuntime(v))
	v.Advance(240 * time.Millisecond)
	require.Equal(t, "ORD", doc.overlay.text)

	p.Handle(KeyPress{Key: "a"})
	assert.Equal(t, intro.Typing, p.Intro.Phase())

	p.Handle(KeyPress{Key: "Escape"})
	assert.Equal(t, intro.Cancelled, p.Intro.Phase())
	assert.Empty(t, doc.overlay.text)

	writes := doc.overlay.writes
	p.Handle(OverlayClick{})
	assert.Equal(t, writes, doc.overlay.writes)
}

func TestSubmitEvent(t *testing.T) {
	v := sched.NewVirtual()
	doc := newFullDocument()
	p := Mount(doc, Env{Width: 800, Height: 600}, nil, newRuntime(v))

	assert.True(t, p.Handle(Submit{}))
	assert.True(t, doc.feedback.ok)

	doc.form[contact.FieldEmail] = "   "
	assert.False(t, p.Handle(Submit{}))
	assert.False(t, doc.feedback.ok)
}

func TestNavToggle(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{"", "flex"},
		{"none", "flex"},
		{"flex", "none"},
		{"block", "none"},
	}
	for _, tt := range tests {
		m := &fakeMenu{display: tt.from}
		ToggleMenu(m)
		assert.Equal(t, tt.to, m.display, "from %q", tt.from)
	}
}

func TestParticleParamsBadPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Particles.Palette = []config.ColorEntry{{Hex: "not-a-color", Alpha: 1}}

	params, err := ParticleParams(cfg)
	assert.Error(t, err)
	assert.Len(t, params.Palette, 4)

	cfg = config.DefaultConfig()
	params, err = ParticleParams(cfg)
	require.NoError(t, err)
	assert.Equal(t, particles.DefaultPalette()[0].CSS(), params.Palette[0].CSS())
}
