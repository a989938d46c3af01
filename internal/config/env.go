// Package config loads driver defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the settings that may come from the environment. Command-line
// flags override them.
type Env struct {
	Sim      string `env:"TERNARY_SIM" envDefault:"ternary369"`
	Width    int    `env:"TERNARY_WIDTH" envDefault:"81"`
	Steps    int    `env:"TERNARY_STEPS" envDefault:"100"`
	Random   bool   `env:"TERNARY_RANDOM" envDefault:"false"`
	Seed     int64  `env:"TERNARY_SEED" envDefault:"0"`
	TPS      int    `env:"TERNARY_TPS" envDefault:"30"`
	Scale    int    `env:"TERNARY_SCALE" envDefault:"6"`
	LogLevel string `env:"TERNARY_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional dotenv file and then the process environment.
// Variables already set in the environment win over the file. A missing
// file is not an error.
func Load(dotenvPath string) (Env, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
