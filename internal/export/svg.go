package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/pagefx/internal/particles"
)

// SVG is a particle surface that records one frame as an SVG document.
// Clear starts a new frame; String returns the last one.
type SVG struct {
	width, height float64
	defs          strings.Builder
	body          strings.Builder
	gradients     int
	circles       int
	lines         int
}

func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Circles() int { return s.circles }
func (s *SVG) Lines() int   { return s.lines }

func (s *SVG) SetSize(w, h float64) {
	s.width, s.height = w, h
}

func (s *SVG) Clear(w, h float64) {
	s.defs.Reset()
	s.body.Reset()
	s.gradients, s.circles, s.lines = 0, 0, 0
	s.body.WriteString(fmt.Sprintf(`<rect width="%s" height="%s" fill="#0b0b0d"/>
`, num(w), num(h)))
}

// FillGradient adds a top-left to bottom-right linear gradient over the frame.
func (s *SVG) FillGradient(w, h float64, from, to particles.Color) {
	s.gradients++
	id := "bg" + strconv.Itoa(s.gradients)
	s.defs.WriteString(fmt.Sprintf(`<linearGradient id="%s" x1="0" y1="0" x2="1" y2="1">
<stop offset="0" stop-color="%s" stop-opacity="%s"/>
<stop offset="1" stop-color="%s" stop-opacity="%s"/>
</linearGradient>
`, id, from.Hex(), num(from.A), to.Hex(), num(to.A)))
	s.body.WriteString(fmt.Sprintf(`<rect width="%s" height="%s" fill="url(#%s)"/>
`, num(w), num(h), id))
}

func (s *SVG) FillCircle(x, y, r float64, c particles.Color) {
	s.circles++
	s.body.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>
`, num(x), num(y), num(r), c.Hex(), num(c.A)))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c particles.Color) {
	s.lines++
	s.body.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s"/>
`, num(x0), num(y0), num(x1), num(y1), c.Hex(), num(c.A), num(width)))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
`, num(s.width), num(s.height), num(s.width), num(s.height)))
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render draws the current frame of f into a new SVG sized to the field.
func Render(f *particles.Field) *SVG {
	w, h := f.Size()
	s := NewSVG(w, h)
	f.Draw(s)
	return s
}
