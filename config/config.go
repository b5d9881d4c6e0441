package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/input"
)

// Config is the full game configuration. Every field has a default, so a
// missing config file yields a playable setup.
type Config struct {
	Display struct {
		FrameRate int `mapstructure:"frameRate"`
	} `mapstructure:"display"`

	Car struct {
		Name               string  `mapstructure:"name"`
		Mass               float64 `mapstructure:"mass"`
		MaxEngineForce     float64 `mapstructure:"maxEngineForce"`
		MaxBrakeForce      float64 `mapstructure:"maxBrakeForce"`
		MaxSteeringAngle   float64 `mapstructure:"maxSteeringAngle"`
		SteeringSpeed      float64 `mapstructure:"steeringSpeed"`
		EdgeTriggeredShift bool    `mapstructure:"edgeTriggeredShift"`
	} `mapstructure:"car"`

	Audio struct {
		Enabled bool    `mapstructure:"enabled"`
		Volume  float64 `mapstructure:"volume"`
	} `mapstructure:"audio"`

	Telemetry struct {
		Enabled     bool   `mapstructure:"enabled"`
		Path        string `mapstructure:"path"`
		SampleEvery uint64 `mapstructure:"sampleEvery"`
	} `mapstructure:"telemetry"`

	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`

	// action name -> key rune, e.g. accelerate = "w"
	Keymap map[string]string `mapstructure:"keymap"`
}

// Load reads driftline.toml from configDir over the defaults. A missing
// file is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("display.frameRate", 60)

	v.SetDefault("car.name", "Default Car")
	v.SetDefault("car.mass", 1500.0)
	v.SetDefault("car.maxEngineForce", 10000.0)
	v.SetDefault("car.maxBrakeForce", 15000.0)
	v.SetDefault("car.maxSteeringAngle", 0.5)
	v.SetDefault("car.steeringSpeed", 2.0)
	v.SetDefault("car.edgeTriggeredShift", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 1.0)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.path", "driftline.db")
	v.SetDefault("telemetry.sampleEvery", 6)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "driftline.log")

	v.SetConfigName("driftline")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// ApplyCar overlays the configured tuning onto a car component
func (c *Config) ApplyCar(car *component.CarComponent) {
	car.Name = c.Car.Name
	car.Mass = c.Car.Mass
	car.MaxEngineForce = c.Car.MaxEngineForce
	car.MaxBrakeForce = c.Car.MaxBrakeForce
	car.MaxSteeringAngle = c.Car.MaxSteeringAngle
	car.SteeringSpeed = c.Car.SteeringSpeed
	car.EdgeTriggeredShift = c.Car.EdgeTriggeredShift
}

// ApplyKeymap rebinds runes named in the keymap section. Unknown action
// names and multi-rune values are reported; valid entries still apply.
func (c *Config) ApplyKeymap(b *input.Bindings) error {
	var errs []error
	for name, key := range c.Keymap {
		action, ok := input.ActionByName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", name))
			continue
		}
		runes := []rune(key)
		if len(runes) != 1 {
			errs = append(errs, fmt.Errorf("action %q: key must be a single character, got %q", name, key))
			continue
		}
		b.Bind(runes[0], action)
	}
	return errors.Join(errs...)
}
