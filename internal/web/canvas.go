//go:build js && wasm

package web

import (
	"math"
	"syscall/js"

	"github.com/san-kum/pagefx/internal/particles"
)

// Canvas draws on an HTML canvas through its 2D context.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

func NewCanvas(el js.Value) *Canvas {
	return &Canvas{el: el, ctx: el.Call("getContext", "2d")}
}

// SetSize sets the backing store to the viewport size.
func (c *Canvas) SetSize(w, h float64) {
	c.el.Set("width", w)
	c.el.Set("height", h)
}

func (c *Canvas) Clear(w, h float64) {
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *Canvas) FillGradient(w, h float64, from, to particles.Color) {
	g := c.ctx.Call("createLinearGradient", 0, 0, w, h)
	g.Call("addColorStop", 0, from.CSS())
	g.Call("addColorStop", 1, to.CSS())
	c.ctx.Set("fillStyle", g)
	c.ctx.Call("fillRect", 0, 0, w, h)
}

func (c *Canvas) FillCircle(x, y, r float64, col particles.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Set("fillStyle", col.CSS())
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col particles.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Set("strokeStyle", col.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}
