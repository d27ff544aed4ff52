package optimizer

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Mode selects how eagerly the pipeline rewrites.
type Mode string

const (
	// ModeNone disables every pass.
	ModeNone Mode = "none"
	// ModeBasic enables dead code elimination, constant folding and
	// template hoisting, but no signal-level rewrites.
	ModeBasic Mode = "basic"
	// ModeAggressive enables all passes including signal rewrites.
	ModeAggressive Mode = "aggressive"
)

// Options is the flat pass configuration, passed by value into every pass.
// A pass runs only when the mode includes it and its switch is on.
type Options struct {
	Mode              Mode `toml:"mode"`
	OptimizeSignals   bool `toml:"optimize_signals"`
	BatchEffects      bool `toml:"batch_effects"`
	HoistComponents   bool `toml:"hoist_components"`
	TreeShake         bool `toml:"tree_shake"`
	EliminateDeadCode bool `toml:"eliminate_dead_code"`
	CollectMetrics    bool `toml:"collect_metrics"`
}

// DefaultOptions returns Options with every switch enabled, so the mode
// alone decides which passes run.
func DefaultOptions(mode Mode) Options {
	return Options{
		Mode:              mode,
		OptimizeSignals:   true,
		BatchEffects:      true,
		HoistComponents:   true,
		TreeShake:         true,
		EliminateDeadCode: true,
		CollectMetrics:    true,
	}
}

type fileConfig struct {
	Optimizer Options `toml:"optimizer"`
}

// LoadOptions reads the [optimizer] section of a lumen.toml project file.
// Missing keys keep their aggressive-mode defaults.
func LoadOptions(path string) (Options, error) {
	cfg := fileConfig{Optimizer: DefaultOptions(ModeAggressive)}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Optimizer.Mode {
	case ModeNone, ModeBasic, ModeAggressive:
	case "":
		cfg.Optimizer.Mode = ModeAggressive
	default:
		return Options{}, fmt.Errorf("%s: unknown optimizer mode %q", path, cfg.Optimizer.Mode)
	}
	return cfg.Optimizer, nil
}

func (o Options) basicOrAggressive() bool {
	return o.Mode == ModeBasic || o.Mode == ModeAggressive
}

func (o Options) foldingEnabled() bool {
	return o.basicOrAggressive() && o.EliminateDeadCode
}

func (o Options) deadCodeEnabled() bool {
	return o.basicOrAggressive() && o.EliminateDeadCode
}

func (o Options) hoistingEnabled() bool {
	return o.basicOrAggressive() && o.HoistComponents
}

func (o Options) signalRewritesEnabled() bool {
	return o.Mode == ModeAggressive && o.OptimizeSignals
}

func (o Options) treeShakeEnabled() bool {
	return o.Mode == ModeAggressive && o.TreeShake
}

func (o Options) batchingEnabled() bool {
	return o.Mode == ModeAggressive && o.BatchEffects
}
