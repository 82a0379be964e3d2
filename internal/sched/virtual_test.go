package sched

import (
	"testing"
	"time"
)

func TestVirtualAdvanceOrder(t *testing.T) {
	v := NewVirtual()
	var got []string

	v.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	v.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
	if v.Now() != 20*time.Millisecond {
		t.Errorf("expected now 20ms, got %v", v.Now())
	}

	v.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("expected c to fire, got %v", got)
	}
}

func TestVirtualChainedTimersInWindow(t *testing.T) {
	v := NewVirtual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			v.AfterFunc(10*time.Millisecond, tick)
		}
	}
	v.AfterFunc(10*time.Millisecond, tick)

	v.Advance(35 * time.Millisecond)
	if count != 3 {
		t.Errorf("expected 3 ticks within 35ms, got %d", count)
	}

	v.Advance(time.Second)
	if count != 5 {
		t.Errorf("expected 5 ticks, got %d", count)
	}
	if v.PendingTimers() != 0 {
		t.Errorf("expected no pending timers, got %d", v.PendingTimers())
	}
}

func TestVirtualTimerStop(t *testing.T) {
	v := NewVirtual()
	fired := false
	tm := v.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !tm.Stop() {
		t.Error("first Stop should report true")
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}

	v.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	tm = v.AfterFunc(0, func() {})
	v.Advance(0)
	if tm.Stop() {
		t.Error("Stop after firing should report false")
	}
}

func TestVirtualFrames(t *testing.T) {
	v := NewVirtual()
	runs := 0
	var loop func()
	loop = func() {
		runs++
		v.RequestFrame(loop)
	}
	v.RequestFrame(loop)

	for i := 0; i < 3; i++ {
		if n := v.Frame(); n != 1 {
			t.Fatalf("frame %d: expected 1 callback, got %d", i, n)
		}
	}
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
	if v.PendingFrames() != 1 {
		t.Errorf("expected 1 pending frame, got %d", v.PendingFrames())
	}
}

func TestVirtualCancelFrame(t *testing.T) {
	v := NewVirtual()
	ran := false
	id := v.RequestFrame(func() { ran = true })
	v.CancelFrame(id)
	v.CancelFrame(id)

	if n := v.Frame(); n != 0 {
		t.Errorf("expected no callbacks, got %d", n)
	}
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestVirtualAdvanceUntilIdle(t *testing.T) {
	v := NewVirtual()
	v.AfterFunc(time.Hour, func() {})
	v.AfterFunc(time.Minute, func() {})

	if n := v.AdvanceUntilIdle(10); n != 2 {
		t.Errorf("expected 2 timers, got %d", n)
	}
	if v.Now() != time.Hour {
		t.Errorf("expected now 1h, got %v", v.Now())
	}
}

func TestVirtualAdvanceNegative(t *testing.T) {
	v := NewVirtual()
	fired := false
	v.AfterFunc(0, func() { fired = true })

	v.Advance(time.Second)
	v.Advance(-500 * time.Millisecond)

	if v.Now() != time.Second {
		t.Errorf("clock moved backwards: expected 1s, got %v", v.Now())
	}
	if !fired {
		t.Error("due timer did not fire")
	}
}
