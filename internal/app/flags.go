package app

import (
	"flag"
	"strconv"

	"ternary369/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Steps    int
	Random   bool
	Seed     int64
	Scale    int
	TPS      int
	LogLevel string
}

// NewConfig returns a Config populated from environment defaults.
func NewConfig(e config.Env) *Config {
	return &Config{
		Sim:      e.Sim,
		Width:    e.Width,
		Steps:    e.Steps,
		Random:   e.Random,
		Seed:     e.Seed,
		Scale:    e.Scale,
		TPS:      e.TPS,
		LogLevel: e.LogLevel,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "cells per row (3-201)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to keep, initial row included (1-200)")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random row instead of a single centered cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random rows (0 picks one)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (0 = unpaced where supported)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// SimConfig returns the flag-style map consumed by sim factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"steps":  strconv.Itoa(c.Steps),
		"random": strconv.FormatBool(c.Random),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}
