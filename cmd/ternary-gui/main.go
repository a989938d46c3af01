//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"ternary369/internal/app"
	"ternary369/internal/config"
	"ternary369/internal/logging"
	"ternary369/internal/sims/ternary369"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	env, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	cfg := app.NewConfig(env)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	sim, err := ternary369.New(ternary369.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("Ternary 369 Cellular Automaton")
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
