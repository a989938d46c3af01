package ternary369

import (
	"fmt"
	"strconv"

	"ternary369/pkg/ternary"
)

// Bounds accepted for the driver parameters.
const (
	MinWidth = 3
	MaxWidth = 201
	MinSteps = 1
	MaxSteps = 200

	DefaultWidth = 81
	DefaultSteps = 100
)

var (
	// ErrInvalidWidth reports a width outside [MinWidth, MaxWidth].
	ErrInvalidWidth = fmt.Errorf("%w: width must be between %d and %d", ternary.ErrInvalidArgument, MinWidth, MaxWidth)
	// ErrInvalidSteps reports a step limit outside [MinSteps, MaxSteps].
	ErrInvalidSteps = fmt.Errorf("%w: steps must be between %d and %d", ternary.ErrInvalidArgument, MinSteps, MaxSteps)
)

// Config controls the automaton dimensions and seeding.
type Config struct {
	Width int
	// Steps bounds the history length, initial row included.
	Steps int

	Randomize bool
	// Seed drives the random initial row. Zero picks a fresh seed per reset.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Steps: DefaultSteps}
}

// Validate reports out-of-range parameters. Values are never clamped.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Width > MaxWidth {
		return fmt.Errorf("%w (got %d)", ErrInvalidWidth, c.Width)
	}
	if c.Steps < MinSteps || c.Steps > MaxSteps {
		return fmt.Errorf("%w (got %d)", ErrInvalidSteps, c.Steps)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Randomize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseMap is the strict form of FromMap: a present key whose value does not
// parse is an error instead of falling back to the default.
func ParseMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	var err error
	if v, ok := cfg["w"]; ok {
		if c.Width, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%w: w=%q is not an integer", ternary.ErrInvalidArgument, v)
		}
	}
	if v, ok := cfg["steps"]; ok {
		if c.Steps, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%w: steps=%q is not an integer", ternary.ErrInvalidArgument, v)
		}
	}
	if v, ok := cfg["random"]; ok {
		if c.Randomize, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%w: random=%q is not a boolean", ternary.ErrInvalidArgument, v)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: seed=%q is not an integer", ternary.ErrInvalidArgument, v)
		}
	}
	return c, nil
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"steps":  strconv.Itoa(c.Steps),
		"random": strconv.FormatBool(c.Randomize),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}
