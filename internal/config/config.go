// Package config loads the cubelet settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/input"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// ErrInvalidConfig is returned when a settings value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the structure of config.yaml.
type Config struct {
	Animation  Animation `yaml:"animation"`
	View       View      `yaml:"view"`
	SliceTurns bool      `yaml:"slice_turns"`
	History    bool      `yaml:"history"`
	Bindings   []Binding `yaml:"bindings"`
}

// Animation controls animated turns.
type Animation struct {
	StepDegrees   float64       `yaml:"step_degrees"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// View controls the whole-cube view.
type View struct {
	AutoSpin bool    `yaml:"auto_spin"`
	SpinStep float64 `yaml:"spin_step"`
	TiltStep float64 `yaml:"tilt_step"`
}

// Binding maps one extra key to a turn.
type Binding struct {
	Key       string `yaml:"key"`
	Axis      string `yaml:"axis"`
	Layer     int    `yaml:"layer"`
	Direction string `yaml:"direction"`
}

// Default returns 5 degree steps every 16ms, auto-spin on at 1 degree per
// frame and 5 degree tilts.
func Default() *Config {
	return &Config{
		Animation: Animation{
			StepDegrees:   cubelet.DefaultAnimationStep,
			FrameInterval: 16 * time.Millisecond,
		},
		View: View{
			AutoSpin: true,
			SpinStep: cubelet.DefaultSpinStep,
			TiltStep: 5,
		},
		History: true,
	}
}

// DefaultPath returns ~/.cubelet/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubelet", "config.yaml"), nil
}

// Load reads settings from path. An empty path means the default path, and a
// missing default file yields Default(). A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value.
func (c *Config) Validate() error {
	if c.Animation.StepDegrees <= 0 || c.Animation.StepDegrees > cubelet.QuarterTurn {
		return fmt.Errorf("%w: animation.step_degrees must be in (0, 90], got %v", ErrInvalidConfig, c.Animation.StepDegrees)
	}
	if c.Animation.FrameInterval <= 0 {
		return fmt.Errorf("%w: animation.frame_interval must be positive, got %v", ErrInvalidConfig, c.Animation.FrameInterval)
	}
	if c.View.TiltStep < 0 {
		return fmt.Errorf("%w: view.tilt_step must not be negative", ErrInvalidConfig)
	}
	for i, b := range c.Bindings {
		if _, err := b.Command(); err != nil {
			return fmt.Errorf("%w: bindings[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Command converts the binding into an input command.
func (b Binding) Command() (input.Command, error) {
	if b.Key == "" {
		return input.Command{}, errors.New("key is empty")
	}
	axis, err := types.ParseAxis(b.Axis)
	if err != nil {
		return input.Command{}, fmt.Errorf("axis %q: %w", b.Axis, err)
	}
	if b.Layer < -1 || b.Layer > 1 {
		return input.Command{}, fmt.Errorf("layer %d is not -1, 0 or 1", b.Layer)
	}
	dir, err := types.ParseDirection(b.Direction)
	if err != nil {
		return input.Command{}, fmt.Errorf("direction %q: %w", b.Direction, err)
	}
	return input.TurnCommand(axis, b.Layer, dir), nil
}

// Options returns the controller options for these settings.
func (c *Config) Options() []cubelet.Option {
	return []cubelet.Option{
		cubelet.WithAnimationStep(c.Animation.StepDegrees),
		cubelet.WithSpinStep(c.View.SpinStep),
		cubelet.WithAutoSpin(c.View.AutoSpin),
		cubelet.WithSliceTurns(c.SliceTurns),
		cubelet.WithMoveHistory(c.History),
	}
}

// Keymap returns the default keymap with the configured bindings applied.
// Middle-slice bindings are left out unless SliceTurns is set.
func (c *Config) Keymap() *input.Keymap {
	k := input.Default(c.View.TiltStep, c.SliceTurns)
	for _, b := range c.Bindings {
		if b.Layer == 0 && !c.SliceTurns {
			continue
		}
		if cmd, err := b.Command(); err == nil {
			k.Bind(b.Key, cmd)
		}
	}
	return k
}
