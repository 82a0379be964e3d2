// Package particles implements the animated background: a batch of drifting
// points that bounce off the viewport edges, scatter away from the pointer and
// are joined by faint lines when close to each other.
//
// The package is renderer agnostic. A [Field] holds the simulation, a
// [Surface] receives draw calls, and an [Animator] runs the per-frame loop on
// a [sched.Frames] implementation:
//
//	field := particles.NewField(particles.DefaultParams(), w, h, rng)
//	anim := particles.NewAnimator(field, surface, frames)
//	anim.Start()
//
// All particles are updated before any link is computed, so the lines of a
// frame always reflect post-update positions.
package particles
