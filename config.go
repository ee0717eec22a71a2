package drawer

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid drawer config")

// DisableSide suppresses drag travel toward one panel. A blocked move is
// judged by direction from the press point, not by where the layer sits.
type DisableSide uint8

const (
	DisableNone  DisableSide = iota // both panels can be dragged open
	DisableLeft                     // the left panel cannot be revealed by dragging
	DisableRight                    // the right panel cannot be revealed by dragging
)

// String returns "none", "left" or "right".
func (d DisableSide) String() string {
	switch d {
	case DisableLeft:
		return "left"
	case DisableRight:
		return "right"
	default:
		return "none"
	}
}

// UnmarshalYAML decodes "none", "left" or "right".
func (d *DisableSide) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "none":
		*d = DisableNone
	case "left":
		*d = DisableLeft
	case "right":
		*d = DisableRight
	default:
		return fmt.Errorf("disable: unknown side %q", s)
	}
	return nil
}

// Config holds the immutable per-drawer settings. The drawer does not check
// them; a Config built by hand must satisfy Validate. LoadConfig enforces it.
type Config struct {
	MaxPosition     float64     `yaml:"maxPosition"`     // furthest left-open offset, > 0
	MinPosition     float64     `yaml:"minPosition"`     // furthest right-open offset, < 0
	Resistance      float64     `yaml:"resistance"`      // overscroll damping in (0, 1]
	FlickThreshold  float64     `yaml:"flickThreshold"`  // px since last reversal to count as a flick
	SlideIntent     float64     `yaml:"slideIntent"`     // half-angle of the horizontal cone, degrees
	MinDragDistance float64     `yaml:"minDragDistance"` // px of grace before a failed intent check applies
	TapToClose      bool        `yaml:"tapToClose"`
	Disable         DisableSide `yaml:"disable"`

	TransitionSpeed float32 `yaml:"transitionSpeed"` // settle duration, seconds
	Easing          string  `yaml:"easing"`          // key of Easings
}

// DefaultConfig returns the stock settings: a 266px panel on each side.
func DefaultConfig() Config {
	return Config{
		MaxPosition:     266,
		MinPosition:     -266,
		Resistance:      0.5,
		FlickThreshold:  50,
		SlideIntent:     40,
		MinDragDistance: 5,
		TapToClose:      true,
		Disable:         DisableNone,
		TransitionSpeed: 0.3,
		Easing:          "ease",
	}
}

// Easings maps the easing names accepted in Config.Easing to gween functions.
var Easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"ease":        ease.InOutQuad,
	"ease-in":     ease.InQuad,
	"ease-out":    ease.OutQuad,
	"ease-in-out": ease.InOutCubic,
	"out-cubic":   ease.OutCubic,
	"out-sine":    ease.OutSine,
	"out-expo":    ease.OutExpo,
	"out-back":    ease.OutBack,
	"out-bounce":  ease.OutBounce,
}

// EaseFunc resolves Easing, falling back to the "ease" curve.
func (c Config) EaseFunc() ease.TweenFunc {
	if fn, ok := Easings[c.Easing]; ok {
		return fn
	}
	return ease.InOutQuad
}

// Validate reports the first construction contract the config breaks.
func (c Config) Validate() error {
	switch {
	case c.MaxPosition <= 0:
		return fmt.Errorf("%w: maxPosition must be > 0, got %v", ErrInvalidConfig, c.MaxPosition)
	case c.MinPosition >= 0:
		return fmt.Errorf("%w: minPosition must be < 0, got %v", ErrInvalidConfig, c.MinPosition)
	case c.Resistance <= 0 || c.Resistance > 1:
		return fmt.Errorf("%w: resistance must be in (0, 1], got %v", ErrInvalidConfig, c.Resistance)
	case c.FlickThreshold < 0:
		return fmt.Errorf("%w: flickThreshold must be >= 0, got %v", ErrInvalidConfig, c.FlickThreshold)
	case c.SlideIntent < 0 || c.SlideIntent > 180:
		return fmt.Errorf("%w: slideIntent must be in [0, 180], got %v", ErrInvalidConfig, c.SlideIntent)
	case c.MinDragDistance < 0:
		return fmt.Errorf("%w: minDragDistance must be >= 0, got %v", ErrInvalidConfig, c.MinDragDistance)
	case c.TransitionSpeed < 0:
		return fmt.Errorf("%w: transitionSpeed must be >= 0, got %v", ErrInvalidConfig, c.TransitionSpeed)
	}
	if _, ok := Easings[c.Easing]; !ok && c.Easing != "" {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, c.Easing)
	}
	return nil
}

// LoadConfig parses YAML (or JSON) over DefaultConfig, so omitted keys keep
// their defaults, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse drawer config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
