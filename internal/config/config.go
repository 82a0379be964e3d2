package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPhrase           = "ORDENAFIX"
	DefaultStartDelayMs     = 120
	DefaultTypeDelayMs      = 60
	DefaultPauseMs          = 650
	DefaultDeleteDelayMs    = 40
	DefaultRemoveDelayMs    = 300
	DefaultReducedRemoveMs  = 200
	DefaultAreaPerParticle  = 90000.0
	DefaultMinParticles     = 30
	DefaultMaxSpeed         = 1.8
	DefaultRepelStrength    = 0.16
	DefaultDamping          = 0.995
	DefaultLinkDistance     = 120.0
	DefaultLinkAlpha        = 0.08
	DefaultHorizontalDiv    = 200.0
	DefaultVerticalDiv      = 300.0
	DefaultSuccessVisibleMs = 5000
	DefaultDebounceMs       = 2000
	DefaultLocale           = "es"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Locale    string          `yaml:"locale"`
	Seed      int64           `yaml:"seed"`
	Intro     IntroConfig     `yaml:"intro"`
	Parallax  ParallaxConfig  `yaml:"parallax"`
	Particles ParticlesConfig `yaml:"particles"`
	Contact   ContactConfig   `yaml:"contact"`
}

type IntroConfig struct {
	Phrase          string `yaml:"phrase"`
	StartDelayMs    int    `yaml:"start_delay_ms"`
	TypeDelayMs     int    `yaml:"type_delay_ms"`
	PauseMs         int    `yaml:"pause_ms"`
	DeleteDelayMs   int    `yaml:"delete_delay_ms"`
	RemoveDelayMs   int    `yaml:"remove_delay_ms"`
	ReducedRemoveMs int    `yaml:"reduced_remove_ms"`
}

type ParallaxConfig struct {
	HorizontalDivisor float64 `yaml:"horizontal_divisor"`
	VerticalDivisor   float64 `yaml:"vertical_divisor"`
}

type ParticlesConfig struct {
	AreaPerParticle float64      `yaml:"area_per_particle"`
	MinParticles    int          `yaml:"min_particles"`
	InitialSpeed    float64      `yaml:"initial_speed"`
	MinSize         float64      `yaml:"min_size"`
	MaxSize         float64      `yaml:"max_size"`
	MinRadius       float64      `yaml:"min_radius"`
	MaxRadius       float64      `yaml:"max_radius"`
	RepelStrength   float64      `yaml:"repel_strength"`
	Damping         float64      `yaml:"damping"`
	MaxSpeed        float64      `yaml:"max_speed"`
	LinkDistance    float64      `yaml:"link_distance"`
	LinkAlpha       float64      `yaml:"link_alpha"`
	Palette         []ColorEntry `yaml:"palette"`
}

// ColorEntry is a palette color as hex plus alpha.
type ColorEntry struct {
	Hex   string  `yaml:"hex"`
	Alpha float64 `yaml:"alpha"`
}

type ContactConfig struct {
	SuccessVisibleMs int `yaml:"success_visible_ms"`
	DebounceMs       int `yaml:"debounce_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Locale: DefaultLocale,
		Intro: IntroConfig{
			Phrase:          DefaultPhrase,
			StartDelayMs:    DefaultStartDelayMs,
			TypeDelayMs:     DefaultTypeDelayMs,
			PauseMs:         DefaultPauseMs,
			DeleteDelayMs:   DefaultDeleteDelayMs,
			RemoveDelayMs:   DefaultRemoveDelayMs,
			ReducedRemoveMs: DefaultReducedRemoveMs,
		},
		Parallax: ParallaxConfig{
			HorizontalDivisor: DefaultHorizontalDiv,
			VerticalDivisor:   DefaultVerticalDiv,
		},
		Particles: ParticlesConfig{
			AreaPerParticle: DefaultAreaPerParticle,
			MinParticles:    DefaultMinParticles,
			InitialSpeed:    0.35,
			MinSize:         1.6,
			MaxSize:         3.8,
			MinRadius:       80,
			MaxRadius:       220,
			RepelStrength:   DefaultRepelStrength,
			Damping:         DefaultDamping,
			MaxSpeed:        DefaultMaxSpeed,
			LinkDistance:    DefaultLinkDistance,
			LinkAlpha:       DefaultLinkAlpha,
			Palette: []ColorEntry{
				{Hex: "#f59e0b", Alpha: 0.95},
				{Hex: "#f59e0b", Alpha: 0.45},
				{Hex: "#c9c6bf", Alpha: 0.85},
				{Hex: "#ffffff", Alpha: 0.10},
			},
		},
		Contact: ContactConfig{
			SuccessVisibleMs: DefaultSuccessVisibleMs,
			DebounceMs:       DefaultDebounceMs,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values that would stall or break a behavior.
func (c *Config) Validate() error {
	p := c.Particles
	switch {
	case p.AreaPerParticle <= 0:
		return fmt.Errorf("%w: particles.area_per_particle must be positive", ErrInvalid)
	case p.MinParticles < 0:
		return fmt.Errorf("%w: particles.min_particles must not be negative", ErrInvalid)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: particles.max_speed must be positive", ErrInvalid)
	case p.MinRadius > p.MaxRadius:
		return fmt.Errorf("%w: particles.min_radius exceeds max_radius", ErrInvalid)
	case p.MinSize > p.MaxSize:
		return fmt.Errorf("%w: particles.min_size exceeds max_size", ErrInvalid)
	case p.LinkDistance <= 0:
		return fmt.Errorf("%w: particles.link_distance must be positive", ErrInvalid)
	case c.Parallax.HorizontalDivisor == 0 || c.Parallax.VerticalDivisor == 0:
		return fmt.Errorf("%w: parallax divisors must be non-zero", ErrInvalid)
	case c.Intro.TypeDelayMs < 0 || c.Intro.DeleteDelayMs < 0 || c.Intro.PauseMs < 0:
		return fmt.Errorf("%w: intro delays must not be negative", ErrInvalid)
	}
	return nil
}

func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
