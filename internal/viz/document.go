package viz

import (
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/page"
	"github.com/san-kum/pagefx/internal/parallax"
)

// termOverlay is the intro overlay drawn over the whole terminal.
type termOverlay struct {
	text    string
	hidden  bool
	removed bool
}

func (o *termOverlay) SetText(text string) { o.text = text }
func (o *termOverlay) Hide()               { o.hidden = true }
func (o *termOverlay) Remove()             { o.removed = true }

// Visible reports whether the overlay still covers the page.
func (o *termOverlay) Visible() bool { return !o.hidden && !o.removed }

// titleLayer is the parallax title. Offsets are in page pixels.
type titleLayer struct {
	tx, ty float64
}

func (l *titleLayer) Translate(tx, ty float64) { l.tx, l.ty = tx, ty }

// Columns converts the horizontal offset into whole terminal cells.
func (l *titleLayer) Columns() int { return int(l.tx) / CellWidthPx }

type termText struct{ text string }

func (t *termText) SetText(text string) { t.text = text }

type termMenu struct{ display string }

func (m *termMenu) Display() string           { return m.display }
func (m *termMenu) SetDisplay(display string) { m.display = display }

// Open reports whether the menu is shown.
func (m *termMenu) Open() bool { return m.display == "flex" || m.display == "block" }

// termDocument exposes the terminal preview as a page. The terminal has no
// contact form; the validate command exercises that behavior instead.
type termDocument struct {
	overlay *termOverlay
	surface *Surface
	title   *titleLayer
	year    *termText
	menu    *termMenu

	width, height float64
}

func newTermDocument(cols, rows int) *termDocument {
	w, h := ViewportPx(cols, rows)
	return &termDocument{
		overlay: &termOverlay{},
		surface: NewSurface(cols, rows),
		title:   &titleLayer{},
		year:    &termText{},
		menu:    &termMenu{display: "none"},
		width:   w,
		height:  h,
	}
}

func (d *termDocument) Overlay() (intro.Overlay, bool) { return d.overlay, true }

func (d *termDocument) ParallaxLayers() []parallax.Layer {
	return []parallax.Layer{{Depth: 30, Mover: d.title}}
}

func (d *termDocument) ParallaxReference() (parallax.Rect, bool) {
	return parallax.Rect{Width: d.width, Height: d.height}, true
}

func (d *termDocument) Canvas() (page.CanvasSurface, bool) { return d.surface, true }

func (d *termDocument) ContactForm() (contact.Form, bool)    { return nil, false }
func (d *termDocument) Feedback() (contact.Feedback, bool)   { return nil, false }
func (d *termDocument) SubmitButton() (contact.Button, bool) { return nil, false }
func (d *termDocument) YearDisplay() (page.TextSink, bool)   { return d.year, true }
func (d *termDocument) NavMenu() (page.Menu, bool)           { return d.menu, true }
