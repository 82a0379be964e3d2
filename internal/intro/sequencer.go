// Package intro plays the one-shot typewriter overlay shown on page load.
package intro

import (
	"time"

	"github.com/san-kum/pagefx/internal/sched"
)

// Overlay is the intro layer: a text node inside a removable container.
type Overlay interface {
	SetText(text string)
	Hide()
	Remove()
}

type Phase int

const (
	Idle Phase = iota
	Waiting
	Typing
	Pausing
	Deleting
	Done
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Active reports whether the phase can still be cancelled.
func (p Phase) Active() bool {
	return p == Waiting || p == Typing || p == Pausing || p == Deleting
}

type Options struct {
	Phrase             string
	StartDelay         time.Duration
	TypeDelay          time.Duration
	PauseAfterType     time.Duration
	DeleteDelay        time.Duration
	RemoveDelay        time.Duration
	ReducedRemoveDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		Phrase:             "ORDENAFIX",
		StartDelay:         120 * time.Millisecond,
		TypeDelay:          60 * time.Millisecond,
		PauseAfterType:     650 * time.Millisecond,
		DeleteDelay:        40 * time.Millisecond,
		RemoveDelay:        300 * time.Millisecond,
		ReducedRemoveDelay: 200 * time.Millisecond,
	}
}

// Sequencer types the phrase once, deletes it and removes the overlay.
// All state lives on the struct; scheduled continuations only ever call
// back into it.
type Sequencer struct {
	opts    Options
	overlay Overlay
	clock   sched.Clock

	phrase  []rune
	phase   Phase
	pos     int
	text    string
	pending sched.Timer
	removed bool

	// OnPhase, when set, observes every transition.
	OnPhase func(from, to Phase)
}

func New(overlay Overlay, clock sched.Clock, opts Options) *Sequencer {
	return &Sequencer{
		opts:    opts,
		overlay: overlay,
		clock:   clock,
		phrase:  []rune(opts.Phrase),
	}
}

func (s *Sequencer) Phase() Phase  { return s.phase }
func (s *Sequencer) Text() string  { return s.text }
func (s *Sequencer) Removed() bool { return s.removed }

// Start begins the sequence. With reduced motion the overlay is hidden at
// once and removed shortly after; no text is ever written.
func (s *Sequencer) Start(reducedMotion bool) {
	if s.phase != Idle {
		return
	}
	if reducedMotion || len(s.phrase) == 0 {
		s.overlay.Hide()
		s.scheduleRemoval(s.opts.ReducedRemoveDelay)
		s.transition(Done)
		return
	}
	s.transition(Waiting)
	s.after(s.opts.StartDelay, s.tick)
}

// Cancel skips the rest of the sequence. It is a no-op unless the sequence
// is still running.
func (s *Sequencer) Cancel() {
	if !s.phase.Active() {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.transition(Cancelled)
	s.overlay.Hide()
	s.scheduleRemoval(s.opts.RemoveDelay)
	s.setText("")
}

// HandleKey cancels on Escape.
func (s *Sequencer) HandleKey(key string) {
	if key == "Escape" {
		s.Cancel()
	}
}

// HandleClick cancels on any click on the overlay.
func (s *Sequencer) HandleClick() { s.Cancel() }

func (s *Sequencer) tick() {
	s.pending = nil
	switch s.phase {
	case Waiting, Typing:
		s.transition(Typing)
		s.pos++
		s.setText(string(s.phrase[:s.pos]))
		if s.pos >= len(s.phrase) {
			s.transition(Pausing)
			s.after(s.opts.PauseAfterType, s.tick)
			return
		}
		s.after(s.opts.TypeDelay, s.tick)

	case Pausing, Deleting:
		s.transition(Deleting)
		s.pos--
		s.setText(string(s.phrase[:s.pos]))
		if s.pos <= 0 {
			s.overlay.Hide()
			s.scheduleRemoval(s.opts.RemoveDelay)
			s.transition(Done)
			return
		}
		s.after(s.opts.DeleteDelay, s.tick)
	}
}

func (s *Sequencer) after(d time.Duration, f func()) {
	s.pending = s.clock.AfterFunc(d, f)
}

func (s *Sequencer) scheduleRemoval(d time.Duration) {
	s.clock.AfterFunc(d, func() {
		if s.removed {
			return
		}
		s.removed = true
		s.overlay.Remove()
	})
}

func (s *Sequencer) setText(text string) {
	s.text = text
	s.overlay.SetText(text)
}

func (s *Sequencer) transition(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	if s.OnPhase != nil {
		s.OnPhase(from, to)
	}
}
