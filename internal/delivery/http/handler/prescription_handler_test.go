package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
	"medicore/internal/usecase"
	"medicore/pkg/validator"
)

type stubPrescriptionUsecase struct {
	listMedications func(ctx context.Context, prescriptionID int) ([]dto.MedicationResponse, error)
}

func (s *stubPrescriptionUsecase) Create(_ context.Context, _ *dto.CreatePrescriptionRequest, _ int) (*dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) GetByID(_ context.Context, _ int) (*dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) List(_ context.Context, _ entity.PrescriptionFilter) (*dto.PrescriptionListResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) ListActive(_ context.Context, _, _ int) ([]dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) Update(_ context.Context, _ int, _ *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) Delete(_ context.Context, _ int) error { return nil }
func (s *stubPrescriptionUsecase) Complete(_ context.Context, _ int) (*dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) Cancel(_ context.Context, _ int) (*dto.PrescriptionResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) ListMedications(ctx context.Context, prescriptionID int) ([]dto.MedicationResponse, error) {
	return s.listMedications(ctx, prescriptionID)
}
func (s *stubPrescriptionUsecase) AddMedication(_ context.Context, _ int, _ *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) UpdateMedication(_ context.Context, _ int, _ *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	return nil, nil
}
func (s *stubPrescriptionUsecase) DeleteMedication(_ context.Context, _ int) error { return nil }

func TestPrescriptionListMedications(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		listMedications: func(_ context.Context, prescriptionID int) ([]dto.MedicationResponse, error) {
			if prescriptionID != 42 {
				t.Errorf("prescription ID = %d, want 42", prescriptionID)
			}
			return []dto.MedicationResponse{
				{ID: 1, PrescriptionID: 42, MedicationName: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", DurationDays: 7, Quantity: 21},
			}, nil
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ListMedications(rec, requestWithVars(map[string]string{"id": "42"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Success bool                     `json:"success"`
		Data    []dto.MedicationResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success envelope")
	}
	if len(body.Data) != 1 || body.Data[0].MedicationName != "Amoxicillin" {
		t.Errorf("unexpected medications payload: %+v", body.Data)
	}
}

func TestPrescriptionListMedicationsNotFound(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		listMedications: func(_ context.Context, _ int) ([]dto.MedicationResponse, error) {
			return nil, usecase.ErrPrescriptionNotFound
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ListMedications(rec, requestWithVars(map[string]string{"id": "42"}))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPrescriptionListMedicationsInvalidID(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		listMedications: func(_ context.Context, _ int) ([]dto.MedicationResponse, error) {
			t.Fatal("usecase must not be called for an invalid ID")
			return nil, nil
		},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ListMedications(rec, requestWithVars(map[string]string{"id": "abc"}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
