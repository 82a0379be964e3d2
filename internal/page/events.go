package page

import "github.com/san-kum/pagefx/internal/parallax"

// Event is one of the named triggers the page reacts to.
type Event interface {
	Name() string
}

type PointerMove struct{ X, Y float64 }

type TouchMove struct{ Touches []parallax.Point }

type TouchEnd struct{}

type Resize struct{ Width, Height float64 }

type KeyPress struct{ Key string }

type OverlayClick struct{}

type NavToggle struct{}

// Submit is a contact form submission. Handle returns false to suppress the
// native submit.
type Submit struct{}

type Unload struct{}

func (PointerMove) Name() string  { return "pointer-move" }
func (TouchMove) Name() string    { return "touch-move" }
func (TouchEnd) Name() string     { return "pointer-end" }
func (Resize) Name() string       { return "resize" }
func (KeyPress) Name() string     { return "key-press" }
func (OverlayClick) Name() string { return "click" }
func (NavToggle) Name() string    { return "nav-toggle" }
func (Submit) Name() string       { return "submit" }
func (Unload) Name() string       { return "unload" }
