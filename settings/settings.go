package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/stride-xr/stride/game"
	"github.com/stride-xr/stride/locomotion"
)

// Settings contains everything that can be configured for a locomotion
// session without touching code: which behavior variants run and their
// tuning.
type Settings struct {
	Session struct {
		// RefreshRate is the frame cadence in Hz used when the session
		// drives itself.
		RefreshRate int
		// Variants lists the behavior variant names to run, e.g.
		// "ground_snap_probe_ahead".
		Variants []string
	}
	Movement struct {
		Speed         float32
		Smoothing     float32
		EyeOffset     float32
		Deadzone      float32
		RequireGround bool
	}
	Proximity struct {
		Range          float32
		ScaleAmplitude float32
		ScalePeriod    int
	}
}

// DefaultSettings returns the tuning used by the tutorial scenes.
func DefaultSettings() Settings {
	var s Settings
	s.Session.RefreshRate = game.DefaultRefreshRate
	s.Session.Variants = []string{locomotion.VariantGroundSnapProbeAhead.String()}

	s.Movement.Speed = game.DefaultMoveSpeed
	s.Movement.Smoothing = game.DefaultSmoothing
	s.Movement.EyeOffset = game.DefaultEyeOffset
	s.Movement.Deadzone = game.DefaultDeadzone

	s.Proximity.Range = game.ProximityRange
	s.Proximity.ScaleAmplitude = game.DefaultScaleAmplitude
	s.Proximity.ScalePeriod = game.DefaultScalePeriodTicks
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	var settings Settings
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}

// Options converts the movement and proximity tuning into controller options.
func (s Settings) Options() locomotion.Options {
	opts := locomotion.DefaultOptions()
	if s.Movement.Speed > 0 {
		opts.MoveSpeed = s.Movement.Speed
	}
	if s.Movement.Smoothing > 0 {
		opts.Smoothing = s.Movement.Smoothing
	}
	if s.Movement.EyeOffset > 0 {
		opts.EyeOffset = s.Movement.EyeOffset
	}
	opts.RequireGround = s.Movement.RequireGround

	if s.Proximity.Range > 0 {
		opts.ProximityRange = s.Proximity.Range
	}
	if s.Proximity.ScaleAmplitude > 0 {
		opts.ScaleAmplitude = s.Proximity.ScaleAmplitude
	}
	if s.Proximity.ScalePeriod > 0 {
		opts.ScalePeriodTicks = s.Proximity.ScalePeriod
	}
	return opts
}

// Variants resolves the configured variant names.
func (s Settings) Variants() ([]locomotion.Variant, error) {
	variants := make([]locomotion.Variant, 0, len(s.Session.Variants))
	for _, name := range s.Session.Variants {
		v, ok := locomotion.VariantFromString(name)
		if !ok {
			return nil, fmt.Errorf("unknown locomotion variant %q", name)
		}
		variants = append(variants, v)
	}
	return variants, nil
}
