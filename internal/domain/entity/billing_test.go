package entity

import "testing"

func TestBillingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BillingStatus
		to      BillingStatus
		allowed bool
	}{
		{"pending to paid", BillingPending, BillingPaid, true},
		{"pending to cancelled", BillingPending, BillingCancelled, true},
		{"pending to overdue", BillingPending, BillingOverdue, true},
		{"overdue to paid", BillingOverdue, BillingPaid, true},
		{"overdue to cancelled", BillingOverdue, BillingCancelled, true},
		{"paid to pending", BillingPaid, BillingPending, false},
		{"paid to cancelled", BillingPaid, BillingCancelled, false},
		{"cancelled to paid", BillingCancelled, BillingPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}
