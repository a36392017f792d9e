// Package metrics exposes spec §6's search statistics (restarts,
// learned clauses, decisions, implications, peak activity, solve
// time) as prometheus collectors, optionally served over HTTP for the
// duration of a solve.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nitinkedia7/satispy/internal/sat"
)

// To add a new metric: declare it below, register it in Register, and
// set it from Report.
var (
	restarts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_restarts_total",
			Help: "Number of restarts performed during the current solve.",
		},
	)

	learnedClauses = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_learned_clauses_total",
			Help: "Number of clauses learned during the current solve.",
		},
	)

	decisions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_decisions_total",
			Help: "Number of branching decisions made during the current solve.",
		},
	)

	implications = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_implications_total",
			Help: "Number of unit propagations performed during the current solve.",
		},
	)

	peakActivity = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_peak_activity",
			Help: "Highest VSIDS activity score observed.",
		},
	)

	solveSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satispy_solve_duration_seconds",
			Help: "Wall-clock time spent in Solve.",
		},
	)
)

// Register adds every collector to the default prometheus registry.
// Call once per process.
func Register() {
	prometheus.MustRegister(restarts)
	prometheus.MustRegister(learnedClauses)
	prometheus.MustRegister(decisions)
	prometheus.MustRegister(implications)
	prometheus.MustRegister(peakActivity)
	prometheus.MustRegister(solveSeconds)
}

// Report copies a finished solve's stats into the registered gauges.
func Report(stats sat.Stats) {
	restarts.Set(float64(stats.Restarts))
	learnedClauses.Set(float64(stats.Learned))
	decisions.Set(float64(stats.Decisions))
	implications.Set(float64(stats.Implications))
	peakActivity.Set(stats.PeakActivity)
	solveSeconds.Set(stats.SolveTime.Seconds())
}

// ServeUntil starts a /metrics HTTP server on addr and stops it as
// soon as stop fires. A blank addr disables the server entirely.
func ServeUntil(addr string, stop <-chan struct{}) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go srv.ListenAndServe()

	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()
}
