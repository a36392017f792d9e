package sat

import "testing"

func TestRestartDueIsFalseAtLevelZero(t *testing.T) {
	rc := newRestartController(1, 1, 1.1)
	if rc.due(0, 1000) {
		t.Errorf("due(0, ...) = true, want false: level 0 never restarts")
	}
}

func TestRestartDueFiresOnceThresholdExceeded(t *testing.T) {
	rc := newRestartController(2, 100, 1.1)
	rc.noteLevel(1, 0)

	if rc.due(1, 1) {
		t.Errorf("due(1, 1) = true, want false: only one clause learned since level 1, threshold is 2")
	}
	if !rc.due(1, 3) {
		t.Errorf("due(1, 3) = false, want true: three clauses learned since level 1 exceeds threshold 2")
	}
}

func TestRestartAdvanceClimbsGeometrically(t *testing.T) {
	rc := newRestartController(100, 1000, 1.1)
	before := rc.threshold
	rc.advance()
	if rc.threshold <= before {
		t.Errorf("threshold after advance = %v, want > %v", rc.threshold, before)
	}
	if rc.restarts != 1 {
		t.Errorf("restarts = %d, want 1", rc.restarts)
	}
}

func TestRestartAdvanceResetsThresholdPastUpperBound(t *testing.T) {
	rc := newRestartController(10, 11, 1.1)
	rc.advance() // 10 -> 11, still <= upper (11)
	if rc.threshold != 11 {
		t.Fatalf("threshold after first advance = %v, want 11", rc.threshold)
	}
	rc.advance() // 11*1.1 = 12.1 -> ceil 13, exceeds upper (11): resets to lower, upper climbs
	if rc.threshold != rc.lower {
		t.Errorf("threshold after exceeding upper = %v, want reset to lower bound %v", rc.threshold, rc.lower)
	}
	if rc.upper <= 11 {
		t.Errorf("upper after reset = %v, want > 11", rc.upper)
	}
}

func TestRestartNoteLevelRecordsLearntCountAtLevelStart(t *testing.T) {
	rc := newRestartController(1, 1000, 1.1)
	rc.noteLevel(1, 5)
	rc.noteLevel(2, 9)
	if !rc.due(2, 11) {
		t.Errorf("due(2, 11) = false, want true: 11-9=2 clauses learned exceeds threshold 1")
	}
	if rc.due(1, 6) {
		t.Errorf("due(1, 6) = true, want false: only 1 clause learned since level 1 (6-5), not exceeding threshold 1")
	}
}
