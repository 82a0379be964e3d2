//go:build js && wasm

package web

import (
	"syscall/js"
	"time"

	"github.com/san-kum/pagefx/internal/sched"
)

// Scheduler implements sched.Clock with setTimeout and sched.Frames with
// requestAnimationFrame. Callbacks run on the browser event loop, one at a
// time.
type Scheduler struct {
	window js.Value
	next   sched.FrameID
	frames map[sched.FrameID]*frameRequest
}

type frameRequest struct {
	handle js.Value
	fn     js.Func
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		window: js.Global(),
		frames: make(map[sched.FrameID]*frameRequest),
	}
}

type timeout struct {
	window js.Value
	handle js.Value
	fn     js.Func
	done   bool
}

func (t *timeout) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.window.Call("clearTimeout", t.handle)
	t.fn.Release()
	return true
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) sched.Timer {
	if d < 0 {
		d = 0
	}
	t := &timeout{window: s.window}
	t.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.fn.Release()
		f()
		return nil
	})
	t.handle = s.window.Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

func (s *Scheduler) RequestFrame(f func()) sched.FrameID {
	s.next++
	id := s.next
	req := &frameRequest{}
	req.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if _, ok := s.frames[id]; !ok {
			return nil
		}
		delete(s.frames, id)
		req.fn.Release()
		f()
		return nil
	})
	req.handle = s.window.Call("requestAnimationFrame", req.fn)
	s.frames[id] = req
	return id
}

func (s *Scheduler) CancelFrame(id sched.FrameID) {
	req, ok := s.frames[id]
	if !ok {
		return
	}
	delete(s.frames, id)
	s.window.Call("cancelAnimationFrame", req.handle)
	req.fn.Release()
}
