// Package config loads satispy's run options from flags, environment
// variables and an optional YAML file via viper, binding them onto
// cobra flags the way cmd/root.go registers them.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitinkedia7/satispy/internal/sat"
)

// Keys used both as flag names and viper lookup keys.
const (
	KeySeed           = "seed"
	KeyWatcherPolicy  = "watcher-policy"
	KeyVarDecay       = "var-decay"
	KeyRestartMult    = "restart-multiplier"
	KeyRestartLower   = "restart-lower-bound"
	KeyRestartUpper   = "restart-upper-bound"
	KeyAssignmentOut  = "assignment-out"
	KeyCompareModel   = "compare-model"
	KeyMetricsAddr    = "metrics-addr"
	KeyLogLevel       = "log-level"
	KeyDebugInvariant = "debug-invariants"
)

// Run is the fully resolved set of options for one solve, gathered
// from flags/env/config file by Load.
type Run struct {
	Seed            int64
	WatcherPolicy   string
	AssignmentOut   string
	CompareModel    string
	MetricsAddr     string
	LogLevel        string
	DebugInvariants bool

	Solver sat.Options
}

// BindFlags registers every flag satispy solve accepts onto cmd and
// binds each one into v, so Load can read the merged flag/env/file
// view afterwards.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	flags.Int64(KeySeed, 1, "seed for the watcher-placement PRNG")
	flags.String(KeyWatcherPolicy, "fixed", "initial watcher placement: fixed or random")
	flags.Float64(KeyVarDecay, sat.DefaultOptions.VarDecay, "VSIDS activity decay factor")
	flags.Float64(KeyRestartMult, sat.DefaultOptions.RestartMultiplier, "restart schedule multiplier")
	flags.Float64(KeyRestartLower, sat.DefaultOptions.RestartLowerBound, "restart schedule lower bound")
	flags.Float64(KeyRestartUpper, sat.DefaultOptions.RestartUpperBoundBase, "restart schedule initial upper bound")
	flags.String(KeyAssignmentOut, "", "write the satisfying assignment to this file (default: assignment.txt)")
	flags.String(KeyCompareModel, "", "compare the found assignment against a reference model file")
	flags.String(KeyMetricsAddr, "", "serve Prometheus metrics on this address while solving (empty disables)")
	flags.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	flags.Bool(KeyDebugInvariant, false, "accepted but has no effect: invariant checks run at every safe point exactly when built with -tags satispy_debug")

	v.BindPFlags(flags)
	v.SetEnvPrefix("satispy")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads a satispy.yaml config file (if configFile is non-empty;
// a missing or unreadable file is an error) and returns the merged Run
// options.
func Load(v *viper.Viper, configFile string) (Run, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Run{}, fmt.Errorf("config: reading %q: %w", configFile, err)
		}
	}

	run := Run{
		Seed:            v.GetInt64(KeySeed),
		WatcherPolicy:   v.GetString(KeyWatcherPolicy),
		AssignmentOut:   v.GetString(KeyAssignmentOut),
		CompareModel:    v.GetString(KeyCompareModel),
		MetricsAddr:     v.GetString(KeyMetricsAddr),
		LogLevel:        v.GetString(KeyLogLevel),
		DebugInvariants: v.GetBool(KeyDebugInvariant),
		Solver: sat.Options{
			VarDecay:              v.GetFloat64(KeyVarDecay),
			RestartMultiplier:     v.GetFloat64(KeyRestartMult),
			RestartLowerBound:     v.GetFloat64(KeyRestartLower),
			RestartUpperBoundBase: v.GetFloat64(KeyRestartUpper),
		},
	}

	switch run.WatcherPolicy {
	case "fixed", "random":
	default:
		return Run{}, fmt.Errorf("config: %s must be \"fixed\" or \"random\", got %q", KeyWatcherPolicy, run.WatcherPolicy)
	}

	return run, nil
}
