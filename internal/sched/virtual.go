package sched

import (
	"container/heap"
	"sort"
	"time"
)

// Virtual is a deterministic Clock and Frames implementation. Time only moves
// when Advance is called and frames only run when Frame is called, so every
// callback runs on the caller's goroutine, one at a time.
type Virtual struct {
	now    time.Duration
	seq    uint64
	timers timerHeap

	nextFrame FrameID
	frames    map[FrameID]func()
}

func NewVirtual() *Virtual {
	return &Virtual{frames: make(map[FrameID]func())}
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration { return v.now }

func (v *Virtual) PendingTimers() int { return len(v.timers) }

func (v *Virtual) PendingFrames() int { return len(v.frames) }

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{v: v, due: v.now + d, seq: v.seq, fn: f, index: -1}
	heap.Push(&v.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due on
// the way in due-time order. Timers scheduled by a callback fire within the
// same call if they come due before the end of the window. A negative d
// counts as zero.
func (v *Virtual) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := v.now + d
	for len(v.timers) > 0 && v.timers[0].due <= end {
		t := heap.Pop(&v.timers).(*virtualTimer)
		v.now = t.due
		t.fired = true
		t.fn()
	}
	v.now = end
}

// AdvanceUntilIdle fires timers until none remain or limit is reached. It
// returns the number of timers fired.
func (v *Virtual) AdvanceUntilIdle(limit int) int {
	n := 0
	for len(v.timers) > 0 && n < limit {
		t := heap.Pop(&v.timers).(*virtualTimer)
		v.now = t.due
		t.fired = true
		t.fn()
		n++
	}
	return n
}

func (v *Virtual) RequestFrame(f func()) FrameID {
	v.nextFrame++
	v.frames[v.nextFrame] = f
	return v.nextFrame
}

func (v *Virtual) CancelFrame(id FrameID) {
	delete(v.frames, id)
}

// Frame runs the callbacks that were pending when it was called, in request
// order. Callbacks requested while the frame runs wait for the next call.
func (v *Virtual) Frame() int {
	if len(v.frames) == 0 {
		return 0
	}
	ids := make([]FrameID, 0, len(v.frames))
	for id := range v.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		f, ok := v.frames[id]
		if !ok {
			// cancelled by an earlier callback in this frame
			continue
		}
		delete(v.frames, id)
		f()
		ran++
	}
	return ran
}

type virtualTimer struct {
	v       *Virtual
	due     time.Duration
	seq     uint64
	fn      func()
	index   int
	fired   bool
	stopped bool
}

func (t *virtualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.v.timers, t.index)
	}
	return true
}

type timerHeap []*virtualTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*virtualTimer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
