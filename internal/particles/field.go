package particles

import (
	"math"
	"math/rand"
)

// Params tunes the field. DefaultParams matches the page's look.
type Params struct {
	AreaPerParticle float64
	MinParticles    int
	InitialSpeed    float64
	MinSize         float64
	MaxSize         float64
	Palette         []Color

	MinRadius     float64
	MaxRadius     float64
	RadiusDivisor float64
	RepelStrength float64
	Damping       float64
	MaxSpeed      float64

	LinkDistance float64
	LinkAlpha    float64
	LinkColor    Color
	LinkWidth    float64

	GradientFrom Color
	GradientTo   Color
}

func DefaultParams() Params {
	return Params{
		AreaPerParticle: 90000,
		MinParticles:    30,
		InitialSpeed:    0.35,
		MinSize:         1.6,
		MaxSize:         3.8,
		Palette:         DefaultPalette(),
		MinRadius:       80,
		MaxRadius:       220,
		RadiusDivisor:   6,
		RepelStrength:   0.16,
		Damping:         0.995,
		MaxSpeed:        1.8,
		LinkDistance:    120,
		LinkAlpha:       0.08,
		LinkColor:       RGBA(200, 200, 200, 1),
		LinkWidth:       1,
		GradientFrom:    RGBA(11, 11, 13, 0),
		GradientTo:      RGBA(2, 6, 23, 0.12),
	}
}

// Count returns the batch size for a viewport.
func (p Params) Count(w, h float64) int {
	n := int(math.Floor(w * h / p.AreaPerParticle))
	if n < p.MinParticles {
		return p.MinParticles
	}
	return n
}

// InteractionRadius returns the pointer radius for a viewport.
func (p Params) InteractionRadius(w, h float64) float64 {
	return math.Max(p.MinRadius, math.Min(p.MaxRadius, math.Min(w, h)/p.RadiusDivisor))
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  Color
}

// Field owns a batch of particles inside a w×h viewport.
type Field struct {
	params    Params
	width     float64
	height    float64
	radius    float64
	particles []Particle
	rng       *rand.Rand

	pointerX, pointerY float64
	hasPointer         bool
}

func NewField(params Params, w, h float64, rng *rand.Rand) *Field {
	if len(params.Palette) == 0 {
		params.Palette = DefaultPalette()
	}
	f := &Field{params: params, rng: rng}
	f.Resize(w, h)
	return f
}

// Resize discards the current batch and seeds a new one sized for w×h.
// Pointer state survives a resize.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = math.Max(w, 0), math.Max(h, 0)
	f.radius = f.params.InteractionRadius(f.width, f.height)

	n := f.params.Count(f.width, f.height)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
}

func (f *Field) spawn() Particle {
	p := f.params
	return Particle{
		X:     f.rand(0, f.width),
		Y:     f.rand(0, f.height),
		VX:    f.rand(-p.InitialSpeed, p.InitialSpeed),
		VY:    f.rand(-p.InitialSpeed, p.InitialSpeed),
		Size:  f.rand(p.MinSize, p.MaxSize),
		Color: p.Palette[f.rng.Intn(len(p.Palette))],
	}
}

func (f *Field) rand(min, max float64) float64 {
	return f.rng.Float64()*(max-min) + min
}

func (f *Field) Size() (w, h float64)  { return f.width, f.height }
func (f *Field) Radius() float64       { return f.radius }
func (f *Field) Len() int              { return len(f.particles) }
func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Params() Params        { return f.params }

func (f *Field) SetPointer(x, y float64) { f.pointerX, f.pointerY, f.hasPointer = x, y, true }

// ClearPointer marks the pointer absent, as after a touch ends.
func (f *Field) ClearPointer() { f.hasPointer = false }

func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.particles {
		f.update(&f.particles[i])
	}
}

func (f *Field) update(p *Particle) {
	p.X += p.VX
	p.Y += p.VY
	p.X, p.VX = reflect(p.X, p.VX, f.width)
	p.Y, p.VY = reflect(p.Y, p.VY, f.height)

	if f.hasPointer {
		dx := p.X - f.pointerX
		dy := p.Y - f.pointerY
		dist := math.Hypot(dx, dy)
		if dist < f.radius {
			angle := math.Atan2(dy, dx)
			force := (f.radius - dist) / f.radius
			p.VX += math.Cos(angle) * force * f.params.RepelStrength
			p.VY += math.Sin(angle) * force * f.params.RepelStrength
		} else {
			p.VX *= f.params.Damping
			p.VY *= f.params.Damping
		}
	}

	p.VX = clamp(p.VX, f.params.MaxSpeed)
	p.VY = clamp(p.VY, f.params.MaxSpeed)
}

// reflect folds a coordinate that left [0, limit] back inside and points the
// velocity component away from the edge it crossed.
func reflect(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		pos = -pos
		vel = math.Abs(vel)
	case pos > limit:
		pos = 2*limit - pos
		vel = -math.Abs(vel)
	default:
		return pos, vel
	}
	return math.Max(0, math.Min(limit, pos)), vel
}

func clamp(v, limit float64) float64 {
	return math.Max(math.Min(v, limit), -limit)
}

// Link is a connective line between two particles, by index.
type Link struct {
	A, B  int
	Alpha float64
}

// Links calls fn for every unordered pair closer than the link distance.
// The pass is O(N²); N stays small because it is bounded by viewport area.
func (f *Field) Links(fn func(a, b *Particle, alpha float64)) {
	f.eachLink(func(a, b int, alpha float64) {
		fn(&f.particles[a], &f.particles[b], alpha)
	})
}

// LinkList collects the current links by particle index.
func (f *Field) LinkList() []Link {
	var links []Link
	f.eachLink(func(a, b int, alpha float64) {
		links = append(links, Link{A: a, B: b, Alpha: alpha})
	})
	return links
}

func (f *Field) eachLink(fn func(a, b int, alpha float64)) {
	maxDist := f.params.LinkDistance
	for a := 0; a < len(f.particles); a++ {
		pa := f.particles[a]
		for b := a + 1; b < len(f.particles); b++ {
			pb := f.particles[b]
			dist := math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
			if dist < maxDist {
				fn(a, b, (1-dist/maxDist)*f.params.LinkAlpha)
			}
		}
	}
}

// MeanSpeed is the average particle speed.
func (f *Field) MeanSpeed() float64 {
	if len(f.particles) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range f.particles {
		sum += math.Hypot(p.VX, p.VY)
	}
	return sum / float64(len(f.particles))
}
