package converter

import (
	"testing"
	"time"

	"medicore/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestPatientToResponse(t *testing.T) {
	dob := time.Date(1985, 7, 14, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:          3,
		FirstName:   "Ivan",
		MiddleName:  "Petrovich",
		LastName:    "Sidorov",
		DateOfBirth: dob,
		Gender:      entity.GenderMale,
		BloodType:   entity.BloodOPositive,
		IsActive:    true,
	}

	resp := PatientToResponse(patient)
	if resp == nil {
		t.Fatal("expected non-nil response")
	}
	if resp.FullName != "Sidorov Petrovich Ivan" {
		t.Errorf("FullName = %q", resp.FullName)
	}
	if resp.DateOfBirth != "1985-07-14" {
		t.Errorf("DateOfBirth = %q, want 1985-07-14", resp.DateOfBirth)
	}
	if resp.BloodType != "O+" {
		t.Errorf("BloodType = %q, want O+", resp.BloodType)
	}
}

func TestPatientToResponseNil(t *testing.T) {
	if PatientToResponse(nil) != nil {
		t.Error("expected nil response for nil patient")
	}
}

func TestAppointmentToResponseWithRelations(t *testing.T) {
	appt := &entity.Appointment{
		ID:              10,
		PatientID:       3,
		DoctorID:        5,
		AppointmentType: entity.AppointmentConsultation,
		Status:          entity.AppointmentConfirmed,
		Patient:         entity.Patient{ID: 3, FirstName: "Anna", LastName: "Karenina"},
		Doctor:          entity.User{ID: 5, FullName: "Dr. Gregory House"},
	}

	resp := AppointmentToResponse(appt)
	if resp.PatientName != "Karenina Anna" {
		t.Errorf("PatientName = %q", resp.PatientName)
	}
	if resp.DoctorName != "Dr. Gregory House" {
		t.Errorf("DoctorName = %q", resp.DoctorName)
	}
	if resp.Status != "confirmed" {
		t.Errorf("Status = %q", resp.Status)
	}
}

func TestAppointmentToResponseWithoutRelations(t *testing.T) {
	resp := AppointmentToResponse(&entity.Appointment{ID: 1, PatientID: 3, DoctorID: 5})
	if resp.PatientName != "" || resp.DoctorName != "" {
		t.Error("expected empty names when relationships are not loaded")
	}
}

func TestVisitToResponseChildren(t *testing.T) {
	bmi := 24.2
	visit := &entity.Visit{
		ID:     7,
		Status: entity.VisitInProgress,
		Diagnoses: []entity.Diagnosis{
			{ID: 1, VisitID: 7, ICDCode: "J06.9", DiagnosisName: "Acute upper respiratory infection", IsPrimary: true},
		},
		Treatments: []entity.Treatment{
			{ID: 1, VisitID: 7, TreatmentName: "Rest and fluids"},
		},
		VitalSigns: &entity.VitalSigns{ID: 1, VisitID: 7, BMI: &bmi},
	}

	resp := VisitToResponse(visit)
	if len(resp.Diagnoses) != 1 {
		t.Fatalf("expected 1 diagnosis, got %d", len(resp.Diagnoses))
	}
	if resp.Diagnoses[0].ICDCode != "J06.9" {
		t.Errorf("ICDCode = %q", resp.Diagnoses[0].ICDCode)
	}
	if len(resp.Treatments) != 1 {
		t.Fatalf("expected 1 treatment, got %d", len(resp.Treatments))
	}
	if resp.VitalSigns == nil {
		t.Fatal("expected vital signs to be set")
	}
	if resp.VitalSigns.BMI == nil || *resp.VitalSigns.BMI != 24.2 {
		t.Error("expected BMI to be carried over")
	}
}

func TestVisitToResponseEmptyChildren(t *testing.T) {
	resp := VisitToResponse(&entity.Visit{ID: 1})
	if resp.Diagnoses != nil || resp.Treatments != nil || resp.VitalSigns != nil {
		t.Error("expected child collections to be omitted when empty")
	}
}

func TestPrescriptionToResponseMedications(t *testing.T) {
	presc := &entity.Prescription{
		ID:     2,
		Status: entity.PrescriptionActive,
		Medications: []entity.Medication{
			{ID: 1, PrescriptionID: 2, MedicationName: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", DurationDays: 7, Quantity: 21},
		},
	}

	resp := PrescriptionToResponse(presc)
	if len(resp.Medications) != 1 {
		t.Fatalf("expected 1 medication, got %d", len(resp.Medications))
	}
	if resp.Medications[0].MedicationName != "Amoxicillin" {
		t.Errorf("MedicationName = %q", resp.Medications[0].MedicationName)
	}
}

func TestBillingToResponse(t *testing.T) {
	paid := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	billing := &entity.Billing{
		ID:          4,
		PatientID:   3,
		Amount:      decimal.NewFromFloat(149.50),
		Status:      entity.BillingPaid,
		PaymentDate: &paid,
	}

	resp := BillingToResponse(billing)
	if !resp.Amount.Equal(decimal.NewFromFloat(149.50)) {
		t.Errorf("Amount = %s", resp.Amount)
	}
	if resp.Status != "paid" {
		t.Errorf("Status = %q", resp.Status)
	}
	if resp.PaymentDate == nil || !resp.PaymentDate.Equal(paid) {
		t.Error("expected payment date to be carried over")
	}
}

func TestUserToResponseHidesPassword(t *testing.T) {
	user := &entity.User{
		ID:             1,
		Username:       "admin",
		Email:          "admin@clinic.example",
		HashedPassword: "$2a$10$secret",
		Role:           entity.RoleAdmin,
	}

	resp := UserToResponse(user)
	if resp.Username != "admin" {
		t.Errorf("Username = %q", resp.Username)
	}
	if resp.Role != "admin" {
		t.Errorf("Role = %q", resp.Role)
	}
}
