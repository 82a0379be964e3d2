package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/pagefx/internal/particles"
)

// Terminal cell size in page pixels. A braille dot is then 4×4 pixels.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Surface draws particle frames onto a braille canvas. Page coordinates are
// pixels; the canvas is sized in terminal cells.
type Surface struct {
	Canvas *Canvas

	// MinLineAlpha hides links too faint to read as a full braille dot.
	MinLineAlpha float64

	background colorful.Color
	draws      int
}

func NewSurface(cols, rows int) *Surface {
	return &Surface{
		Canvas:       NewCanvas(cols, rows),
		MinLineAlpha: 0.03,
		background:   colorful.Color{R: 11.0 / 255, G: 11.0 / 255, B: 13.0 / 255},
	}
}

// ViewportPx is the page size in pixels covered by a cols×rows grid.
func ViewportPx(cols, rows int) (w, h float64) {
	return float64(cols * CellWidthPx), float64(rows * CellHeightPx)
}

// CellAt maps a page pixel position to the terminal cell under it.
func CellAt(x, y float64) (col, row int) {
	return int(x) / CellWidthPx, int(y) / CellHeightPx
}

// PixelAt maps a terminal cell to the page pixel at its center.
func PixelAt(col, row int) (x, y float64) {
	return float64(col*CellWidthPx + CellWidthPx/2), float64(row*CellHeightPx + CellHeightPx/2)
}

func (s *Surface) Draws() int { return s.draws }

// SetSize resizes the canvas to cover a w×h pixel viewport.
func (s *Surface) SetSize(w, h float64) {
	s.Canvas.Resize(int(math.Ceil(w/CellWidthPx)), int(math.Ceil(h/CellHeightPx)))
}

func (s *Surface) Clear(w, h float64) {
	s.draws++
	s.Canvas.Clear()
}

// FillGradient only tracks the darkest gradient stop; the terminal keeps its
// own background.
func (s *Surface) FillGradient(w, h float64, from, to particles.Color) {
	s.draws++
	s.background = to.BlendRgb(from.Color, 1-to.A)
}

func (s *Surface) FillCircle(x, y, r float64, c particles.Color) {
	s.draws++
	dx, dy := dot(x, y)
	s.Canvas.DrawDisc(dx, dy, int(r/4), s.blend(c), c.A)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c particles.Color) {
	s.draws++
	if c.A < s.MinLineAlpha {
		return
	}
	ax, ay := dot(x0, y0)
	bx, by := dot(x1, y1)
	s.Canvas.DrawLine(ax, ay, bx, by, s.blend(c), c.A)
}

// blend composites a translucent color over the background. Faint inks are
// boosted so they stay visible on a terminal.
func (s *Surface) blend(c particles.Color) colorful.Color {
	a := math.Min(1, math.Max(c.A*4, 0.35))
	return s.background.BlendRgb(c.Color, a).Clamped()
}

func dot(x, y float64) (int, int) {
	return int(x / (CellWidthPx / 2)), int(y / (CellHeightPx / 4))
}
