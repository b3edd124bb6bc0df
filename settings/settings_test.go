package settings

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stride-xr/stride/locomotion"
)

func approxEqual(t *testing.T, got, want float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Fatalf("%s = %.6f, want %.6f", field, got, want)
	}
}

func TestDefaultSettingsOptions(t *testing.T) {
	opts := DefaultSettings().Options()
	approxEqual(t, opts.MoveSpeed, 0.05, "move speed")
	approxEqual(t, opts.Smoothing, 0.2, "smoothing")
	approxEqual(t, opts.EyeOffset, 1.6, "eye offset")
	approxEqual(t, opts.ProximityRange, 4, "proximity range")
	if opts.RequireGround {
		t.Fatal("require-ground should default off")
	}
}

func TestDefaultSettingsVariants(t *testing.T) {
	variants, err := DefaultSettings().Variants()
	if err != nil {
		t.Fatalf("Variants: %v", err)
	}
	if len(variants) != 1 || variants[0] != locomotion.VariantGroundSnapProbeAhead {
		t.Fatalf("variants = %v", variants)
	}
}

func TestUnknownVariantErrors(t *testing.T) {
	s := DefaultSettings()
	s.Session.Variants = []string{"fly"}
	if _, err := s.Variants(); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("SaveDefault: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("second SaveDefault should refuse to overwrite")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	approxEqual(t, loaded.Movement.Speed, 0.05, "loaded speed")
	approxEqual(t, loaded.Proximity.Range, 4, "loaded proximity range")
	if loaded.Session.RefreshRate != 60 {
		t.Fatalf("loaded refresh rate = %d", loaded.Session.RefreshRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[Movement\nSpeed ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestOverridesApply(t *testing.T) {
	s := DefaultSettings()
	s.Movement.Speed = 0.1
	s.Movement.RequireGround = true
	s.Proximity.Range = 2.5

	opts := s.Options()
	approxEqual(t, opts.MoveSpeed, 0.1, "overridden speed")
	approxEqual(t, opts.ProximityRange, 2.5, "overridden proximity range")
	if !opts.RequireGround {
		t.Fatal("require-ground override lost")
	}
}
