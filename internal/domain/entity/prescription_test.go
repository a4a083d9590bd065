package entity

import "testing"

func TestPrescriptionStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    PrescriptionStatus
		to      PrescriptionStatus
		allowed bool
	}{
		{"active to completed", PrescriptionActive, PrescriptionCompleted, true},
		{"active to cancelled", PrescriptionActive, PrescriptionCancelled, true},
		{"active to expired", PrescriptionActive, PrescriptionExpired, true},
		{"completed is terminal", PrescriptionCompleted, PrescriptionActive, false},
		{"cancelled is terminal", PrescriptionCancelled, PrescriptionActive, false},
		{"expired is terminal", PrescriptionExpired, PrescriptionActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestPrescriptionStatusIsTerminal(t *testing.T) {
	if PrescriptionActive.IsTerminal() {
		t.Error("expected active to not be terminal")
	}
	for _, s := range []PrescriptionStatus{PrescriptionCompleted, PrescriptionCancelled, PrescriptionExpired} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
}
