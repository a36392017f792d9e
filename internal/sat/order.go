package sat

import "github.com/rhartert/yagh"

// heuristic picks the next branching variable by activity and its
// polarity by saved phase (VSIDS with phase saving). The priority
// queue holds every variable not currently known to be assigned;
// "pick max then discard if assigned" is how Solver.decide tolerates stale
// entries left behind by variables that got propagated rather than
// explicitly removed.
type heuristic struct {
	order *yagh.IntMap[float64]

	scores []float64 // activity per variable, in [0, 1e100)
	inc    float64    // global bump amount, in (0, 1e100]
	decay  float64    // in (0, 1]
}

const activityRescaleThreshold = 1e100

func newHeuristic(nVars int, decay float64) *heuristic {
	h := &heuristic{
		order:  yagh.New[float64](0),
		scores: make([]float64, nVars+1),
		inc:    1,
		decay:  decay,
	}
	h.order.GrowBy(nVars)
	for v := 1; v <= nVars; v++ {
		h.order.Put(v, 0)
	}
	return h
}

func (h *heuristic) grow() {
	h.scores = append(h.scores, 0)
	h.order.GrowBy(1)
	h.order.Put(len(h.scores)-1, 0)
}

// bump increases v's activity by the current increment, rescaling
// every score (and the increment) if v's score would otherwise
// overflow. Called once per literal of every newly inserted clause
// (original or learned), per spec §4.1.
func (h *heuristic) bump(v Variable) {
	h.scores[v] += h.inc
	if h.order.Contains(int(v)) {
		h.order.Put(int(v), -h.scores[v])
	}
	if h.scores[v] > activityRescaleThreshold {
		h.rescale()
	}
}

// decayInc inflates the global increment, which is equivalent to
// decaying every existing score relative to future bumps. Called once
// per learned clause.
func (h *heuristic) decayInc() {
	h.inc /= h.decay
	if h.inc > activityRescaleThreshold {
		h.rescale()
	}
}

func (h *heuristic) rescale() {
	h.inc *= 1e-100
	for v := range h.scores {
		h.scores[v] *= 1e-100
		if h.order.Contains(v) {
			h.order.Put(v, -h.scores[v])
		}
	}
}

// reinsert adds v back to the candidate set. Called whenever v is
// unassigned by backtrack or restart; v's saved phase lives on
// trail.phase, which unassign never clears, so nothing else to do
// here for phase saving.
func (h *heuristic) reinsert(v Variable) {
	h.order.Put(int(v), -h.scores[v])
}

// peakActivity reports the maximum score observed, for statistics.
func (h *heuristic) peakActivity() float64 {
	peak := 0.0
	for _, sc := range h.scores {
		if sc > peak {
			peak = sc
		}
	}
	return peak
}
