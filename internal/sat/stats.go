package sat

import "time"

// Stats reports the search statistics named in spec §6: restarts,
// learned clauses, decisions, implications, peak activity and solve
// time. Implications counts the literals forced by BCP; propagate
// increments it once per implied literal. It does not include level-0
// unit-clause assertions or the UIP literal asserted by backtrack.
type Stats struct {
	Restarts     int64
	Learned      int64
	Decisions    int64
	Implications int64
	PeakActivity float64
	SolveTime    time.Duration

	// TrailDepthEMA is an exponential moving average of the trail
	// depth observed at the start of each restart, adapted from the
	// teacher's EMA helper (originally used to smooth a different
	// signal). It gives a single rolling number for "how deep search
	// was getting before giving up", handy for tuning the restart
	// schedule.
	TrailDepthEMA ema
}

// ema is an exponential moving average with decay rate decay,
// adapted from the teacher's sat/avg.go.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *ema) val() float64 {
	return e.value
}
