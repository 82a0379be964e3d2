// Package viz previews the page in a terminal.
//
// The preview mounts the same behaviors as the browser build on a terminal
// document, using the Bubble Tea framework:
//
//   - [Preview]: the interactive model driving page time from ticks
//   - [Surface]: a particle surface backed by a braille [Canvas]
//
// One terminal cell stands for an 8×16 pixel area of the page, so a braille
// dot covers 4×4 pixels.
//
// # Key Bindings
//
//	Esc         - Skip the intro
//	Enter/Space - Skip the intro (same as clicking the overlay)
//	M           - Toggle the menu
//	Q           - Quit
//
// Mouse motion repels particles and shifts the parallax title.
package viz
