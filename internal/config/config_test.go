package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Intro.Phrase != "ORDENAFIX" {
		t.Errorf("expected phrase ORDENAFIX, got %s", cfg.Intro.Phrase)
	}
	if cfg.Particles.MinParticles != 30 {
		t.Errorf("expected 30 min particles, got %d", cfg.Particles.MinParticles)
	}
	if len(cfg.Particles.Palette) != 4 {
		t.Errorf("expected 4 palette colors, got %d", len(cfg.Particles.Palette))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.AreaPerParticle != 30000 {
		t.Errorf("expected area 30000, got %f", cfg.Particles.AreaPerParticle)
	}
	if cfg.Intro.Phrase != DefaultPhrase {
		t.Error("preset should keep untouched defaults")
	}
	if DefaultConfig().Particles.AreaPerParticle != DefaultAreaPerParticle {
		t.Error("preset leaked into defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	_, err := Preset("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != 4 {
		t.Fatalf("expected 4 presets, got %v", presets)
	}
	if presets[0] != "calm" {
		t.Errorf("expected sorted names, got %v", presets)
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagefx.yaml")
	cfg := GetPreset("snappy")
	cfg.Seed = 42
	cfg.Locale = "en"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Locale != "en" {
		t.Errorf("expected seed 42 locale en, got %d %s", loaded.Seed, loaded.Locale)
	}
	if loaded.Intro.TypeDelayMs != 30 {
		t.Errorf("expected type delay 30, got %d", loaded.Intro.TypeDelayMs)
	}
	if len(loaded.Particles.Palette) != 4 || loaded.Particles.Palette[2].Hex != "#c9c6bf" {
		t.Errorf("palette not preserved: %+v", loaded.Particles.Palette)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("intro:\n  phrase: HOLA\nparticles:\n  max_speed: 2.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Intro.Phrase != "HOLA" || cfg.Particles.MaxSpeed != 2.5 {
		t.Errorf("overrides not applied: %+v", cfg.Intro)
	}
	if cfg.Intro.TypeDelayMs != DefaultTypeDelayMs || cfg.Particles.LinkDistance != DefaultLinkDistance {
		t.Error("defaults lost on partial load")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  max_speed: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
