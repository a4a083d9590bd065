package entity

import "testing"

func TestVisitStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    VisitStatus
		to      VisitStatus
		allowed bool
	}{
		{"scheduled to in_progress", VisitScheduled, VisitInProgress, true},
		{"scheduled to completed", VisitScheduled, VisitCompleted, true},
		{"scheduled to cancelled", VisitScheduled, VisitCancelled, true},
		{"in_progress to completed", VisitInProgress, VisitCompleted, true},
		{"in_progress to scheduled", VisitInProgress, VisitScheduled, false},
		{"completed is terminal", VisitCompleted, VisitInProgress, false},
		{"cancelled is terminal", VisitCancelled, VisitScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestVisitStatusIsValid(t *testing.T) {
	for _, s := range []VisitStatus{VisitScheduled, VisitInProgress, VisitCompleted, VisitCancelled} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if VisitStatus("paused").IsValid() {
		t.Error("expected unknown visit status to be invalid")
	}
}
