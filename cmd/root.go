// Package cmd wires satispy's cobra CLI: a single "solve" command that
// parses a DIMACS CNF instance, runs the CDCL search, and reports the
// verdict plus statistics.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitinkedia7/satispy/internal/config"
	"github.com/nitinkedia7/satispy/internal/dimacs"
	"github.com/nitinkedia7/satispy/internal/logging"
	"github.com/nitinkedia7/satispy/internal/metrics"
	"github.com/nitinkedia7/satispy/internal/parse"
	"github.com/nitinkedia7/satispy/internal/sat"
	"github.com/nitinkedia7/satispy/internal/verify"
)

const (
	exitBadInstance = 1
	exitBadVerify   = 2
)

// errVerifyFailed marks an error as a verification failure rather
// than a malformed-instance or I/O error, per spec §6's exit status
// rule: both are nonzero, but verification failures get their own
// code.
var errVerifyFailed = errors.New("verification failed")

var (
	flagConfigFile string
	flagGzip       bool
	flagCPUProfile bool
	flagMemProfile bool
)

// Execute builds and runs the root command.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errVerifyFailed) {
			os.Exit(exitBadVerify)
		}
		os.Exit(exitBadInstance)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "satispy",
		Short: "A CDCL SAT solver.",
	}

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Solve a DIMACS CNF instance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c, v, args[0])
		},
	}
	root.AddCommand(cmd)

	cmd.Flags().StringVar(&flagConfigFile, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&flagGzip, "gzip", false, "treat the instance file as gzip-compressed")
	cmd.Flags().BoolVar(&flagCPUProfile, "cpuprofile", false, "write a pprof CPU profile to cpu.prof")
	cmd.Flags().BoolVar(&flagMemProfile, "memprofile", false, "write a pprof heap profile to mem.prof")

	config.BindFlags(cmd, v)

	return root
}

func runSolve(c *cobra.Command, v *viper.Viper, instanceFile string) error {
	run, err := config.Load(v, flagConfigFile)
	if err != nil {
		return err
	}

	logger := logging.New(run.LogLevel)

	if flagCPUProfile {
		f, err := os.Create("cpu.prof")
		if err != nil {
			return fmt.Errorf("cmd: creating cpu.prof: %w", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	policy := parse.FixedWatchers
	if run.WatcherPolicy == "random" {
		policy = parse.RandomWatchers
	}
	loader := parse.NewLoader(policy, run.Seed)

	solver, unsatAtLoad, err := loader.LoadFile(instanceFile, flagGzip, run.Solver)
	if err != nil {
		return fmt.Errorf("cmd: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"variables": solver.NumVariables(),
		"seed":      run.Seed,
		"policy":    run.WatcherPolicy,
	}).Info("instance loaded")

	metrics.Register()
	stop := make(chan struct{})
	metrics.ServeUntil(run.MetricsAddr, stop)
	defer close(stop)

	result := sat.Unsatisfiable
	if !unsatAtLoad {
		result = solveWithSignalHandling(solver)
	}

	metrics.Report(solver.Stats)
	logger.WithFields(logrus.Fields{
		"restarts":     solver.Stats.Restarts,
		"learned":      solver.Stats.Learned,
		"decisions":    solver.Stats.Decisions,
		"implications": solver.Stats.Implications,
		"solve_time":   solver.Stats.SolveTime,
	}).Info("search finished")

	fmt.Fprintln(c.OutOrStdout(), result)

	if result != sat.Satisfiable {
		if flagMemProfile {
			writeMemProfile()
		}
		return nil
	}

	if err := reportSatisfiable(c, solver, run, logger); err != nil {
		return err
	}

	if flagMemProfile {
		writeMemProfile()
	}
	return nil
}

// solveWithSignalHandling runs Solve but returns Unresolved promptly
// on SIGINT instead of leaving the process to a raw kill, since CDCL
// search has no natural early-exit point otherwise.
func solveWithSignalHandling(solver *sat.Solver) sat.Result {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	done := make(chan sat.Result, 1)
	go func() { done <- solver.Solve() }()

	select {
	case result := <-done:
		return result
	case <-sigCh:
		return sat.Unresolved
	}
}

func reportSatisfiable(c *cobra.Command, solver *sat.Solver, run config.Run, logger *logrus.Logger) error {
	report := verify.Assignment(solver)
	logger.Info(report.String())
	if !report.OK() {
		return fmt.Errorf("cmd: %s: %w", report, errVerifyFailed)
	}

	out := run.AssignmentOut
	if out == "" {
		out = "assignment.txt"
	}
	if err := verify.WriteAssignmentFile(out, solver); err != nil {
		return fmt.Errorf("cmd: %w", err)
	}

	if run.CompareModel != "" {
		reference, err := dimacs.ParseAssignments(run.CompareModel)
		if err != nil {
			return fmt.Errorf("cmd: %w", err)
		}
		if !verify.CompareModel(solver, reference) {
			return fmt.Errorf("cmd: assignment does not match any model in %q", run.CompareModel)
		}
		logger.Info("assignment matches reference model")
	}

	return nil
}

func writeMemProfile() {
	f, err := os.Create("mem.prof")
	if err != nil {
		return
	}
	defer f.Close()
	pprof.WriteHeapProfile(f)
}
