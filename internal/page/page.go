// Package page mounts the page behaviors on a Document and routes named
// events to them. Each behavior is independent: a missing element or the
// reduced-motion preference disables only the behavior that needs it.
package page

import (
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/i18n"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/parallax"
	"github.com/san-kum/pagefx/internal/particles"
	"github.com/san-kum/pagefx/internal/sched"
)

// Runtime carries the scheduling primitives and ambient services.
type Runtime struct {
	Clock  sched.Clock
	Frames sched.Frames
	Rand   *rand.Rand
	Logger *slog.Logger
}

type Page struct {
	env    Env
	logger *slog.Logger

	Intro    *intro.Sequencer
	Parallax *parallax.Controller
	Field    *particles.Field
	Animator *particles.Animator
	Contact  *contact.Guard

	canvas CanvasSurface
	menu   Menu
}

// Mount initializes every behavior whose elements are present.
func Mount(doc Document, env Env, cfg *config.Config, rt Runtime) *Page {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := rt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rt.Rand == nil {
		rt.Rand = rand.New(rand.NewSource(cfg.Seed))
	}

	p := &Page{env: env, logger: logger}

	if year, ok := doc.YearDisplay(); ok && env.Year > 0 {
		year.SetText(strconv.Itoa(env.Year))
	}
	if menu, ok := doc.NavMenu(); ok {
		p.menu = menu
	}

	p.mountIntro(doc, cfg, rt)
	p.mountParallax(doc, cfg)
	p.mountParticles(doc, cfg, rt)
	p.mountContact(doc, cfg, rt)
	return p
}

func (p *Page) mountIntro(doc Document, cfg *config.Config, rt Runtime) {
	overlay, ok := doc.Overlay()
	if !ok {
		p.logger.Debug("intro skipped", "reason", "overlay missing")
		return
	}
	p.Intro = intro.New(overlay, rt.Clock, IntroOptions(cfg))
	p.Intro.Start(p.env.ReducedMotion)
	p.logger.Debug("intro mounted", "reduced_motion", p.env.ReducedMotion)
}

func (p *Page) mountParallax(doc Document, cfg *config.Config) {
	p.Parallax = parallax.New(doc.ParallaxLayers(), doc.ParallaxReference, p.env.Width, p.env.Height)
	if p.Parallax == nil {
		p.logger.Debug("parallax skipped", "reason", "no tagged elements")
		return
	}
	p.Parallax.HorizontalDivisor = cfg.Parallax.HorizontalDivisor
	p.Parallax.VerticalDivisor = cfg.Parallax.VerticalDivisor
	p.logger.Debug("parallax mounted", "layers", len(p.Parallax.Layers()))
}

func (p *Page) mountParticles(doc Document, cfg *config.Config, rt Runtime) {
	if p.env.ReducedMotion {
		p.logger.Debug("particles skipped", "reason", "reduced motion")
		return
	}
	canvas, ok := doc.Canvas()
	if !ok {
		p.logger.Debug("particles skipped", "reason", "canvas missing")
		return
	}
	params, err := ParticleParams(cfg)
	if err != nil {
		p.logger.Warn("invalid palette, using defaults", "err", err)
	}

	p.canvas = canvas
	canvas.SetSize(p.env.Width, p.env.Height)
	p.Field = particles.NewField(params, p.env.Width, p.env.Height, rt.Rand)
	p.Animator = particles.NewAnimator(p.Field, canvas, rt.Frames)
	p.Animator.Start()
	p.logger.Debug("particles mounted", "count", p.Field.Len(), "radius", p.Field.Radius())
}

func (p *Page) mountContact(doc Document, cfg *config.Config, rt Runtime) {
	form, ok := doc.ContactForm()
	if !ok {
		p.logger.Debug("contact guard skipped", "reason", "form missing")
		return
	}
	var feedback contact.Feedback
	if fb, ok := doc.Feedback(); ok {
		feedback = fb
	}
	var button contact.Button
	if b, ok := doc.SubmitButton(); ok {
		button = b
	}
	p.Contact = contact.New(form, feedback, button, rt.Clock, i18n.Printer(cfg.Locale), ContactOptions(cfg))
	p.logger.Debug("contact guard mounted", "locale", i18n.Resolve(cfg.Locale).String())
}

// Handle dispatches one event. The result only matters for Submit, where
// false means the native submission must be suppressed.
func (p *Page) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case PointerMove:
		if p.Parallax != nil {
			pt := parallax.PointerPosition(ev.X, ev.Y, nil, p.env.Width, p.env.Height)
			p.Parallax.Move(pt.X, pt.Y)
		}
		if p.Field != nil {
			p.Field.SetPointer(ev.X, ev.Y)
		}

	case TouchMove:
		if p.Parallax != nil {
			pt := parallax.PointerPosition(0, 0, ev.Touches, p.env.Width, p.env.Height)
			p.Parallax.Move(pt.X, pt.Y)
		}
		if p.Field != nil && len(ev.Touches) > 0 {
			p.Field.SetPointer(ev.Touches[0].X, ev.Touches[0].Y)
		}

	case TouchEnd:
		if p.Field != nil {
			p.Field.ClearPointer()
		}

	case Resize:
		p.env.Width, p.env.Height = ev.Width, ev.Height
		if p.Parallax != nil {
			p.Parallax.Resize(ev.Width, ev.Height)
		}
		if p.Animator != nil {
			p.canvas.SetSize(ev.Width, ev.Height)
			p.Animator.Resize(ev.Width, ev.Height)
		}

	case KeyPress:
		if p.Intro != nil {
			p.Intro.HandleKey(ev.Key)
		}

	case OverlayClick:
		if p.Intro != nil {
			p.Intro.HandleClick()
		}

	case NavToggle:
		if p.menu != nil {
			ToggleMenu(p.menu)
		}

	case Submit:
		if p.Contact != nil {
			return p.Contact.Submit()
		}

	case Unload:
		if p.Animator != nil {
			p.Animator.Stop()
		}
	}
	return true
}

// ToggleMenu opens a closed menu and closes an open one.
func ToggleMenu(m Menu) {
	switch m.Display() {
	case "flex", "block":
		m.SetDisplay("none")
	default:
		m.SetDisplay("flex")
	}
}
