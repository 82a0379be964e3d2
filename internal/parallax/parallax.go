// Package parallax shifts tagged elements against the pointer position.
package parallax

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultHorizontalDivisor = 200
	DefaultVerticalDivisor   = 300
)

// Mover receives a 2D translation in pixels.
type Mover interface {
	Translate(tx, ty float64)
}

// Layer is one movable element and its depth factor.
type Layer struct {
	Depth float64
	Mover Mover
}

type Rect struct {
	Left, Top, Width, Height float64
}

type Point struct {
	X, Y float64
}

// Measure returns the reference element's bounding box, or false when the
// element is absent.
type Measure func() (Rect, bool)

type Controller struct {
	layers    []Layer
	measure   Measure
	ref       Rect
	viewportW float64
	viewportH float64

	HorizontalDivisor float64
	VerticalDivisor   float64
}

// New returns nil when there is nothing to move.
func New(layers []Layer, measure Measure, viewportW, viewportH float64) *Controller {
	if len(layers) == 0 {
		return nil
	}
	c := &Controller{
		layers:            layers,
		measure:           measure,
		HorizontalDivisor: DefaultHorizontalDivisor,
		VerticalDivisor:   DefaultVerticalDivisor,
	}
	c.Resize(viewportW, viewportH)
	return c
}

func (c *Controller) Layers() []Layer { return c.layers }
func (c *Controller) Reference() Rect { return c.ref }

// Resize records the new viewport and refreshes the cached reference box.
// The previous box is kept when the reference element is gone.
func (c *Controller) Resize(viewportW, viewportH float64) {
	c.viewportW, c.viewportH = viewportW, viewportH
	if c.measure == nil {
		return
	}
	if r, ok := c.measure(); ok {
		c.ref = r
	}
}

// Move applies the offsets for a pointer at (x, y) to every layer.
func (c *Controller) Move(x, y float64) {
	for _, l := range c.layers {
		tx, ty := c.Offset(x, y, l.Depth)
		l.Mover.Translate(tx, ty)
	}
}

// Offset computes the translation of a layer with the given depth.
func (c *Controller) Offset(x, y, depth float64) (tx, ty float64) {
	tx = (x - c.viewportW/2) * (depth / c.HorizontalDivisor)
	ty = (y - (c.ref.Top + c.ref.Height/2)) * (depth / c.VerticalDivisor)
	return tx, ty
}

// PointerPosition resolves an event position per axis: the mouse coordinate,
// else the first touch, else the viewport center. A zero coordinate counts
// as missing.
func PointerPosition(clientX, clientY float64, touches []Point, viewportW, viewportH float64) Point {
	p := Point{X: clientX, Y: clientY}
	if p.X == 0 {
		p.X = viewportW / 2
		if len(touches) > 0 && touches[0].X != 0 {
			p.X = touches[0].X
		}
	}
	if p.Y == 0 {
		p.Y = viewportH / 2
		if len(touches) > 0 && touches[0].Y != 0 {
			p.Y = touches[0].Y
		}
	}
	return p
}

// ParseDepth reads a depth attribute the way parseFloat does: the longest
// leading decimal number or signed Infinity wins and anything unparsable
// is 0.
func ParseDepth(attr string) float64 {
	s := strings.TrimSpace(attr)
	if rest, sign := trimSign(s); strings.HasPrefix(rest, "Infinity") {
		return math.Inf(sign)
	}
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '+' || c == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			i = len(s)
		}
	}
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func trimSign(s string) (string, int) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], -1
	case strings.HasPrefix(s, "+"):
		return s[1:], 1
	}
	return s, 1
}
