//go:build js && wasm

package web

import (
	"syscall/js"
	"testing"

	"github.com/san-kum/pagefx/internal/page"
)

// eventTarget is a plain JS object that records addEventListener calls.
type eventTarget struct {
	obj       js.Value
	listeners map[string]js.Value
	options   map[string]js.Value
	add       js.Func
}

func newEventTarget() *eventTarget {
	t := &eventTarget{
		obj:       js.Global().Get("Object").New(),
		listeners: make(map[string]js.Value),
		options:   make(map[string]js.Value),
	}
	t.add = js.FuncOf(func(this js.Value, args []js.Value) any {
		t.listeners[args[0].String()] = args[1]
		if len(args) > 2 {
			t.options[args[0].String()] = args[2]
		}
		return nil
	})
	t.obj.Set("addEventListener", t.add)
	return t
}

func (t *eventTarget) dispatch(event string) {
	if l, ok := t.listeners[event]; ok {
		l.Invoke(js.Global().Get("Object").New())
	}
}

func TestOnReadyParsedDocument(t *testing.T) {
	for _, state := range []string{"interactive", "complete"} {
		target := newEventTarget()
		defer target.add.Release()
		target.obj.Set("readyState", state)

		calls := 0
		OnReady(target.obj, func() { calls++ })

		if calls != 1 {
			t.Errorf("readyState %q: expected 1 call, got %d", state, calls)
		}
		if len(target.listeners) != 0 {
			t.Errorf("readyState %q: unexpected listeners %v", state, target.listeners)
		}
	}
}

func TestOnReadyWaitsForContentLoaded(t *testing.T) {
	target := newEventTarget()
	defer target.add.Release()
	target.obj.Set("readyState", "loading")

	calls := 0
	OnReady(target.obj, func() { calls++ })

	if calls != 0 {
		t.Fatalf("ran before DOMContentLoaded: %d calls", calls)
	}
	opts, ok := target.options["DOMContentLoaded"]
	if !ok || !opts.Get("once").Bool() {
		t.Error("DOMContentLoaded listener should be registered once")
	}

	target.dispatch("DOMContentLoaded")
	if calls != 1 {
		t.Errorf("expected 1 call after DOMContentLoaded, got %d", calls)
	}
}

type stubHandler struct {
	allow  bool
	events []page.Event
}

func (h *stubHandler) Handle(ev page.Event) bool {
	h.events = append(h.events, ev)
	return h.allow
}

func TestSubmitListenerPreventsBlockedSubmit(t *testing.T) {
	tests := []struct {
		allow     bool
		prevented int
	}{
		{false, 1},
		{true, 0},
	}

	for _, tt := range tests {
		prevented := 0
		preventDefault := js.FuncOf(func(this js.Value, args []js.Value) any {
			prevented++
			return nil
		})
		event := js.Global().Get("Object").New()
		event.Set("preventDefault", preventDefault)

		h := &stubHandler{allow: tt.allow}
		submitListener(h)(event)
		preventDefault.Release()

		if len(h.events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(h.events))
		}
		if _, ok := h.events[0].(page.Submit); !ok {
			t.Errorf("expected page.Submit, got %T", h.events[0])
		}
		if prevented != tt.prevented {
			t.Errorf("allow=%v: preventDefault called %d times, want %d", tt.allow, prevented, tt.prevented)
		}
	}
}
