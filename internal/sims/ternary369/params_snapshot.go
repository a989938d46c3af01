package ternary369

import (
	"strconv"

	"ternary369/internal/core"
)

// Parameters reports the current run settings for HUD display.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", a.cfg.Width),
				intParam("steps", "Steps", a.cfg.Steps),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", a.Generation()),
				{Key: "random", Label: "Random start", Type: core.ParamTypeBool, Value: strconv.FormatBool(a.cfg.Randomize)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(a.seed, 10)},
			},
		},
	}}
}

// ParameterControls lists the adjustable parameters. Widths move in steps
// of two so the seed cell stays centered.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 2, Min: MinWidth, Max: MaxWidth, HasMin: true, HasMax: true},
		{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Step: 10, Min: MinSteps, Max: MaxSteps, HasMin: true, HasMax: true},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
