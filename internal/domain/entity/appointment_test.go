package entity

import (
	"testing"
	"time"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", AppointmentScheduled, AppointmentConfirmed, true},
		{"scheduled to in_progress", AppointmentScheduled, AppointmentInProgress, true},
		{"scheduled to cancelled", AppointmentScheduled, AppointmentCancelled, true},
		{"scheduled to no_show", AppointmentScheduled, AppointmentNoShow, true},
		{"scheduled to completed", AppointmentScheduled, AppointmentCompleted, false},
		{"confirmed to completed", AppointmentConfirmed, AppointmentCompleted, true},
		{"confirmed to scheduled", AppointmentConfirmed, AppointmentScheduled, false},
		{"in_progress to completed", AppointmentInProgress, AppointmentCompleted, true},
		{"in_progress to confirmed", AppointmentInProgress, AppointmentConfirmed, false},
		{"completed is terminal", AppointmentCompleted, AppointmentCancelled, false},
		{"cancelled is terminal", AppointmentCancelled, AppointmentScheduled, false},
		{"no_show is terminal", AppointmentNoShow, AppointmentScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	terminal := []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	active := []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress}
	for _, s := range active {
		if s.IsTerminal() {
			t.Errorf("expected %s to not be terminal", s)
		}
	}
}

func TestAppointmentStatusBlocksSlot(t *testing.T) {
	blocking := []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress}
	for _, s := range blocking {
		if !s.BlocksSlot() {
			t.Errorf("expected %s to block its slot", s)
		}
	}

	released := []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow}
	for _, s := range released {
		if s.BlocksSlot() {
			t.Errorf("expected %s to release its slot", s)
		}
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	appt := &Appointment{ScheduledDate: base, DurationMinutes: 30}

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"identical slot", base, 30, true},
		{"contained within", base.Add(10 * time.Minute), 10, true},
		{"partial overlap at start", base.Add(-15 * time.Minute), 30, true},
		{"partial overlap at end", base.Add(15 * time.Minute), 30, true},
		{"back to back after", base.Add(30 * time.Minute), 30, false},
		{"back to back before", base.Add(-30 * time.Minute), 30, false},
		{"clearly apart", base.Add(2 * time.Hour), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appt.Overlaps(tt.start, tt.duration); got != tt.want {
				t.Errorf("Overlaps(%v, %d) = %v, want %v", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestFindSlotConflict(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	candidates := []Appointment{
		{ID: 1, Status: AppointmentCancelled, ScheduledDate: base, DurationMinutes: 30},
		{ID: 2, Status: AppointmentConfirmed, ScheduledDate: base.Add(time.Hour), DurationMinutes: 30},
		{ID: 3, Status: AppointmentScheduled, ScheduledDate: base.Add(2 * time.Hour), DurationMinutes: 30},
	}

	t.Run("cancelled appointment does not block", func(t *testing.T) {
		if got := FindSlotConflict(candidates, base, 30, 0); got != nil {
			t.Errorf("expected no conflict, got appointment %d", got.ID)
		}
	})

	t.Run("confirmed appointment blocks", func(t *testing.T) {
		got := FindSlotConflict(candidates, base.Add(time.Hour), 30, 0)
		if got == nil || got.ID != 2 {
			t.Fatalf("expected conflict with appointment 2, got %v", got)
		}
	})

	t.Run("excluded appointment is skipped", func(t *testing.T) {
		if got := FindSlotConflict(candidates, base.Add(time.Hour), 30, 2); got != nil {
			t.Errorf("expected no conflict when excluding own ID, got appointment %d", got.ID)
		}
	})

	t.Run("free slot between appointments", func(t *testing.T) {
		if got := FindSlotConflict(candidates, base.Add(90*time.Minute), 30, 0); got != nil {
			t.Errorf("expected no conflict, got appointment %d", got.ID)
		}
	})
}

func TestAppointmentEndsAt(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	appt := &Appointment{ScheduledDate: base, DurationMinutes: 45}
	want := base.Add(45 * time.Minute)
	if got := appt.EndsAt(); !got.Equal(want) {
		t.Errorf("EndsAt() = %v, want %v", got, want)
	}
}

func TestAppointmentTypeIsValid(t *testing.T) {
	valid := []AppointmentType{
		AppointmentConsultation, AppointmentExamination, AppointmentProcedure,
		AppointmentSurgery, AppointmentFollowUp, AppointmentEmergency,
	}
	for _, at := range valid {
		if !at.IsValid() {
			t.Errorf("expected %s to be valid", at)
		}
	}

	if AppointmentType("house_call").IsValid() {
		t.Error("expected unknown appointment type to be invalid")
	}
}
