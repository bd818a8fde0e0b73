package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/taskfile"
)

// runParams are the resolved ranking inputs for one CLI invocation.
type runParams struct {
	strategy string
	weights  map[string]float64
}

// resolveRunParams layers ranking parameters: CLI flags override the
// task file, which overrides config defaults. Weight maps merge
// key-by-key across layers so a flag can adjust a single weight from
// a file that sets the others.
func resolveRunParams(cfg config.Config, batch *taskfile.Batch, flagStrategy string, flagWeights []string) (runParams, error) {
	p := runParams{strategy: cfg.Strategy}
	if batch.Strategy != "" {
		p.strategy = batch.Strategy
	}
	if flagStrategy != "" {
		p.strategy = flagStrategy
	}

	p.weights = make(map[string]float64)
	for k, v := range cfg.Weights {
		p.weights[k] = v
	}
	for k, v := range batch.Weights {
		p.weights[k] = v
	}

	overrides, err := parseWeightFlags(flagWeights)
	if err != nil {
		return runParams{}, err
	}
	for k, v := range overrides {
		p.weights[k] = v
	}
	return p, nil
}

// parseWeightFlags parses repeated --weight key=value flags.
func parseWeightFlags(flags []string) (map[string]float64, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	weights := make(map[string]float64, len(flags))
	for _, raw := range flags {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q: expected key=value", raw)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", raw, err)
		}
		weights[strings.TrimSpace(key)] = f
	}
	return weights, nil
}
