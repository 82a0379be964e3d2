package page

import (
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/parallax"
	"github.com/san-kum/pagefx/internal/particles"
)

// Document is the set of elements the page script attaches to. Every
// accessor reports false (or returns nil) when the element is absent.
type Document interface {
	Overlay() (intro.Overlay, bool)
	ParallaxLayers() []parallax.Layer
	ParallaxReference() (parallax.Rect, bool)
	Canvas() (CanvasSurface, bool)
	ContactForm() (contact.Form, bool)
	Feedback() (contact.Feedback, bool)
	SubmitButton() (contact.Button, bool)
	YearDisplay() (TextSink, bool)
	NavMenu() (Menu, bool)
}

// CanvasSurface is a drawing surface whose backing store follows the
// viewport size.
type CanvasSurface interface {
	particles.Surface
	SetSize(w, h float64)
}

type TextSink interface {
	SetText(text string)
}

// Menu is the collapsible navigation container.
type Menu interface {
	Display() string
	SetDisplay(display string)
}

// Env is the environment read once at mount time.
type Env struct {
	ReducedMotion bool
	Width         float64
	Height        float64
	Year          int
}
