// Command ternary prints or interactively animates the ternary369 automaton.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"ternary369/internal/app"
	"ternary369/internal/config"
	"ternary369/internal/core"
	"ternary369/internal/logging"
	"ternary369/internal/render"
	"ternary369/internal/sims/ternary369"
	"ternary369/internal/tui"
)

type historySim interface {
	core.Sim
	Generation() int
	Palette() []color.RGBA
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "ternary:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	envFile := os.Getenv("TERNARY_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	env, err := config.Load(envFile)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("ternary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig(env)
	cfg.Bind(fs)
	mode := fs.String("mode", "print", "print every generation, or tui for the interactive view")
	plain := fs.Bool("plain", false, "print glyphs even when stdout is a terminal")
	glyphs := fs.String("glyphs", "", "comma separated glyphs for blank, 0, 1, 2 in plain output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.Setup(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return err
	}
	hs, ok := sim.(historySim)
	if !ok {
		return fmt.Errorf("sim %q cannot be rendered as rows", cfg.Sim)
	}
	logger.Debug("seeded", "sim", sim.Name(), "width", sim.Size().W, "steps", sim.Size().H)

	tty := isTerminal(stdout)
	var renderer *render.TextRenderer
	if tty && !*plain {
		renderer = render.NewANSI(lipgloss.NewRenderer(stdout), hs.Palette())
	} else if renderer, err = render.NewPlain(render.ParseGlyphs(*glyphs)); err != nil {
		return err
	}

	switch *mode {
	case "print":
		var pacer *core.FixedStep
		if tty && cfg.TPS > 0 {
			pacer = core.NewFixedStep(cfg.TPS)
			warnIfTooWide(stdout, sim.Size().W*2)
		}
		return printRun(stdout, hs, renderer, pacer)
	case "tui":
		a, ok := sim.(*ternary369.Automaton)
		if !ok {
			return fmt.Errorf("sim %q has no interactive view", cfg.Sim)
		}
		interval := core.NewFixedStep(cfg.TPS).Interval()
		return tui.Run(tui.New(a, renderer, interval), tea.WithAltScreen(), tea.WithOutput(stdout))
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

// printRun writes generation zero and then one line per step until the
// step limit.
func printRun(w io.Writer, sim historySim, r *render.TextRenderer, pacer *core.FixedStep) error {
	width := sim.Size().W
	if _, err := fmt.Fprintln(w, r.Rows(sim.Cells(), width, 0, sim.Generation())); err != nil {
		return err
	}
	for {
		if pacer != nil {
			pacer.Wait()
		}
		err := sim.Step()
		if errors.Is(err, ternary369.ErrComplete) {
			slog.Debug("run complete", "generation", sim.Generation())
			return nil
		}
		if err != nil {
			return err
		}
		g := sim.Generation()
		if _, err := fmt.Fprintln(w, r.Rows(sim.Cells(), width, g-1, g)); err != nil {
			return err
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func warnIfTooWide(w io.Writer, columns int) {
	f, ok := w.(*os.File)
	if !ok {
		return
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return
	}
	if columns > cols {
		slog.Warn("rows are wider than the terminal", "need", columns, "have", cols)
	}
}
