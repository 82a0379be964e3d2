package page

import (
	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/particles"
)

func IntroOptions(cfg *config.Config) intro.Options {
	c := cfg.Intro
	return intro.Options{
		Phrase:             c.Phrase,
		StartDelay:         config.Ms(c.StartDelayMs),
		TypeDelay:          config.Ms(c.TypeDelayMs),
		PauseAfterType:     config.Ms(c.PauseMs),
		DeleteDelay:        config.Ms(c.DeleteDelayMs),
		RemoveDelay:        config.Ms(c.RemoveDelayMs),
		ReducedRemoveDelay: config.Ms(c.ReducedRemoveMs),
	}
}

func ContactOptions(cfg *config.Config) contact.Options {
	return contact.Options{
		SuccessVisible: config.Ms(cfg.Contact.SuccessVisibleMs),
		Debounce:       config.Ms(cfg.Contact.DebounceMs),
	}
}

// ParticleParams converts the particle section. On a bad palette entry the
// default palette is used and the parse error is returned with otherwise
// usable params.
func ParticleParams(cfg *config.Config) (particles.Params, error) {
	c := cfg.Particles
	params := particles.DefaultParams()
	params.AreaPerParticle = c.AreaPerParticle
	params.MinParticles = c.MinParticles
	params.InitialSpeed = c.InitialSpeed
	params.MinSize = c.MinSize
	params.MaxSize = c.MaxSize
	params.MinRadius = c.MinRadius
	params.MaxRadius = c.MaxRadius
	params.RepelStrength = c.RepelStrength
	params.Damping = c.Damping
	params.MaxSpeed = c.MaxSpeed
	params.LinkDistance = c.LinkDistance
	params.LinkAlpha = c.LinkAlpha

	if len(c.Palette) == 0 {
		return params, nil
	}
	palette := make([]particles.Color, 0, len(c.Palette))
	for _, entry := range c.Palette {
		col, err := particles.ParseColor(entry.Hex, entry.Alpha)
		if err != nil {
			return params, err
		}
		palette = append(palette, col)
	}
	params.Palette = palette
	return params, nil
}
