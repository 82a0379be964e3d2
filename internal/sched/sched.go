package sched

import "time"

// Timer is a pending fixed-delay callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Clock schedules fixed-delay callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// FrameID identifies a requested animation frame. The zero value never
// refers to a live request.
type FrameID int

// Frames schedules per-frame redraw callbacks.
type Frames interface {
	RequestFrame(f func()) FrameID
	CancelFrame(id FrameID)
}
