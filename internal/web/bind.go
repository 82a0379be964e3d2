//go:build js && wasm

package web

import (
	"log/slog"
	"math/rand"
	"syscall/js"
	"time"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/page"
	"github.com/san-kum/pagefx/internal/parallax"
)

// Mount mounts the page on the live DOM and attaches the event listeners.
func Mount(cfg *config.Config, logger *slog.Logger) *page.Page {
	doc := NewDocument()
	s := NewScheduler()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := page.Mount(doc, doc.Env(), cfg, page.Runtime{
		Clock:  s,
		Frames: s,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	Bind(doc, p)
	return p
}

// OnReady runs fn once the document has been parsed: at once when it already
// has, otherwise from a one-shot DOMContentLoaded listener.
func OnReady(doc js.Value, fn func()) {
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	on(doc, "DOMContentLoaded", func(js.Value) { fn() }, map[string]any{"once": true})
}

func on(target js.Value, event string, fn func(e js.Value), opts ...any) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	target.Call("addEventListener", append([]any{event, cb}, opts...)...)
}

func touches(e js.Value) []parallax.Point {
	list := e.Get("touches")
	if !present(list) {
		return nil
	}
	pts := make([]parallax.Point, list.Length())
	for i := range pts {
		t := list.Index(i)
		pts[i] = parallax.Point{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}
	}
	return pts
}

type handler interface {
	Handle(ev page.Event) bool
}

// submitListener cancels the form's default submission when the handler
// blocks it.
func submitListener(h handler) func(e js.Value) {
	return func(e js.Value) {
		if !h.Handle(page.Submit{}) {
			e.Call("preventDefault")
		}
	}
}

// Bind translates DOM events into page events.
func Bind(d *Document, p *page.Page) {
	w := d.window
	passive := map[string]any{"passive": true}

	on(w, "mousemove", func(e js.Value) {
		p.Handle(page.PointerMove{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()})
	})
	on(w, "touchmove", func(e js.Value) {
		p.Handle(page.TouchMove{Touches: touches(e)})
	}, passive)
	on(w, "touchend", func(js.Value) { p.Handle(page.TouchEnd{}) })
	on(w, "resize", func(js.Value) {
		p.Handle(page.Resize{Width: w.Get("innerWidth").Float(), Height: w.Get("innerHeight").Float()})
	})
	on(w, "keydown", func(e js.Value) {
		p.Handle(page.KeyPress{Key: e.Get("key").String()})
	})
	on(w, "beforeunload", func(js.Value) { p.Handle(page.Unload{}) })

	if el, ok := d.byID(IDOverlay); ok {
		on(el, "click", func(js.Value) { p.Handle(page.OverlayClick{}) })
	}
	if el, ok := d.byID(IDNavToggle); ok {
		on(el, "click", func(js.Value) { p.Handle(page.NavToggle{}) })
	}
	if el, ok := d.byID(IDContactForm); ok {
		on(el, "submit", submitListener(p))
	}
}
