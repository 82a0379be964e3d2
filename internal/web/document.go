//go:build js && wasm

// Package web binds the page behaviors to the browser DOM.
package web

import (
	"fmt"
	"syscall/js"

	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/page"
	"github.com/san-kum/pagefx/internal/parallax"
)

// Element ids and selectors the page markup provides.
const (
	IDOverlay       = "intro-overlay"
	IDTypeText      = "type-text"
	IDNavToggle     = "navToggle"
	IDNav           = "nav"
	IDCanvas        = "bg-canvas"
	IDContactForm   = "contactForm"
	IDFeedback      = "formFeedback"
	IDSubmit        = "submitBtn"
	IDYear          = "year"
	ParallaxAttr    = "data-parallax"
	ParallaxSel     = "[data-parallax]"
	HeroSel         = ".hero"
	ReducedMotionMQ = "(prefers-reduced-motion: reduce)"
)

// Document reads the page elements from the live DOM.
type Document struct {
	doc    js.Value
	window js.Value
}

func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document"), window: js.Global()}
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func (d *Document) byID(id string) (js.Value, bool) {
	el := d.doc.Call("getElementById", id)
	return el, present(el)
}

// Env reads the viewport size, reduced-motion preference and current year.
func (d *Document) Env() page.Env {
	reduced := false
	if mm := d.window.Get("matchMedia"); present(mm) {
		reduced = d.window.Call("matchMedia", ReducedMotionMQ).Get("matches").Bool()
	}
	return page.Env{
		ReducedMotion: reduced,
		Width:         d.window.Get("innerWidth").Float(),
		Height:        d.window.Get("innerHeight").Float(),
		Year:          js.Global().Get("Date").New().Call("getFullYear").Int(),
	}
}

type overlay struct {
	el, text js.Value
}

func (o overlay) SetText(text string) { o.text.Set("textContent", text) }
func (o overlay) Hide()               { o.el.Get("classList").Call("add", "hidden") }

func (o overlay) Remove() {
	if parent := o.el.Get("parentNode"); present(parent) {
		parent.Call("removeChild", o.el)
	}
}

func (d *Document) Overlay() (intro.Overlay, bool) {
	el, ok := d.byID(IDOverlay)
	if !ok {
		return nil, false
	}
	text, ok := d.byID(IDTypeText)
	if !ok {
		return nil, false
	}
	return overlay{el: el, text: text}, true
}

type mover struct{ el js.Value }

func (m mover) Translate(tx, ty float64) {
	m.el.Get("style").Set("transform", fmt.Sprintf("translate3d(%gpx, %gpx, 0)", tx, ty))
}

func (d *Document) ParallaxLayers() []parallax.Layer {
	nodes := d.doc.Call("querySelectorAll", ParallaxSel)
	n := nodes.Length()
	layers := make([]parallax.Layer, 0, n)
	for i := 0; i < n; i++ {
		el := nodes.Index(i)
		attr := el.Call("getAttribute", ParallaxAttr)
		depth := 0.0
		if present(attr) {
			depth = parallax.ParseDepth(attr.String())
		}
		layers = append(layers, parallax.Layer{Depth: depth, Mover: mover{el: el}})
	}
	return layers
}

func (d *Document) ParallaxReference() (parallax.Rect, bool) {
	hero := d.doc.Call("querySelector", HeroSel)
	if !present(hero) {
		return parallax.Rect{}, false
	}
	r := hero.Call("getBoundingClientRect")
	return parallax.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}, true
}

func (d *Document) Canvas() (page.CanvasSurface, bool) {
	el, ok := d.byID(IDCanvas)
	if !ok {
		return nil, false
	}
	return NewCanvas(el), true
}

type form struct{ el js.Value }

func (f form) field(name string) js.Value {
	return f.el.Call("querySelector", "#"+name)
}

func (f form) Value(name string) string {
	if el := f.field(name); present(el) {
		return el.Get("value").String()
	}
	return ""
}

func (f form) Focus(name string) {
	if el := f.field(name); present(el) {
		el.Call("focus")
	}
}

func (d *Document) ContactForm() (contact.Form, bool) {
	el, ok := d.byID(IDContactForm)
	if !ok {
		return nil, false
	}
	return form{el: el}, true
}

type feedback struct{ el js.Value }

func (f feedback) Show(text string, ok bool) {
	bg := contact.FailureBackground
	if ok {
		bg = contact.SuccessBackground
	}
	f.el.Set("hidden", false)
	f.el.Set("textContent", text)
	style := f.el.Get("style")
	style.Set("background", bg)
	style.Set("color", contact.FeedbackColor)
}

func (f feedback) Hide() { f.el.Set("hidden", true) }

func (d *Document) Feedback() (contact.Feedback, bool) {
	el, ok := d.byID(IDFeedback)
	if !ok {
		return nil, false
	}
	return feedback{el: el}, true
}

type button struct{ el js.Value }

func (b button) SetDisabled(disabled bool) { b.el.Set("disabled", disabled) }

func (d *Document) SubmitButton() (contact.Button, bool) {
	el, ok := d.byID(IDSubmit)
	if !ok {
		return nil, false
	}
	return button{el: el}, true
}

type text struct{ el js.Value }

func (t text) SetText(s string) { t.el.Set("textContent", s) }

func (d *Document) YearDisplay() (page.TextSink, bool) {
	el, ok := d.byID(IDYear)
	if !ok {
		return nil, false
	}
	return text{el: el}, true
}

type menu struct{ el js.Value }

func (m menu) Display() string        { return m.el.Get("style").Get("display").String() }
func (m menu) SetDisplay(disp string) { m.el.Get("style").Set("display", disp) }

func (d *Document) NavMenu() (page.Menu, bool) {
	el, ok := d.byID(IDNav)
	if !ok {
		return nil, false
	}
	return menu{el: el}, true
}
