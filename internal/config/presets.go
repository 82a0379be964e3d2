package config

import (
	"fmt"
	"sort"
)

// Presets are named overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"calm": func(c *Config) {
		c.Particles.InitialSpeed = 0.15
		c.Particles.RepelStrength = 0.08
		c.Particles.MaxSpeed = 0.9
		c.Particles.LinkAlpha = 0.05
	},
	"dense": func(c *Config) {
		c.Particles.AreaPerParticle = 30000
		c.Particles.MinParticles = 60
		c.Particles.LinkDistance = 90
	},
	"snappy": func(c *Config) {
		c.Intro.StartDelayMs = 50
		c.Intro.TypeDelayMs = 30
		c.Intro.PauseMs = 300
		c.Intro.DeleteDelayMs = 20
		c.Contact.SuccessVisibleMs = 3000
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Preset is GetPreset with an error naming the available presets.
func Preset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
