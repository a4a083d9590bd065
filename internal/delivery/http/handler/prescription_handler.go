package handler

import (
	"encoding/json"
	"net/http"

	"medicore/internal/delivery/dto"
	"medicore/internal/delivery/http/middleware"
	"medicore/internal/domain/entity"
	"medicore/internal/usecase"
	"medicore/pkg/response"
	"medicore/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrNoMedications:
			response.BusinessRuleViolation(w, "Prescription requires at least one medication")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	prescription, err := h.prescriptionUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to get prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	filter := entity.PrescriptionFilter{
		Skip:      skip,
		Limit:     limit,
		PatientID: queryInt(r, "patient_id"),
		DoctorID:  queryInt(r, "doctor_id"),
		Status:    entity.PrescriptionStatus(r.URL.Query().Get("status")),
	}

	prescriptions, err := h.prescriptionUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Count: prescriptions.Total,
	})
}

func (h *PrescriptionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit < 1 || limit > 100 {
		limit = 20
	}

	prescriptions, err := h.prescriptionUsecase.ListActive(r.Context(), queryInt(r, "patient_id"), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list active prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Active prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrPrescriptionFinalized:
			response.BusinessRuleViolation(w, "Prescription is in a terminal status")
		default:
			response.InternalServerError(w, "Failed to update prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to delete prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

func (h *PrescriptionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.PrescriptionResponse, error) {
		return h.prescriptionUsecase.Complete(r.Context(), id)
	}, "Prescription completed successfully")
}

func (h *PrescriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.PrescriptionResponse, error) {
		return h.prescriptionUsecase.Cancel(r.Context(), id)
	}, "Prescription cancelled successfully")
}

func (h *PrescriptionHandler) transition(w http.ResponseWriter, r *http.Request, fn func(id int) (*dto.PrescriptionResponse, error), message string) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	prescription, err := fn(id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrInvalidTransition:
			response.BusinessRuleViolation(w, "Invalid status transition")
		default:
			response.InternalServerError(w, "Failed to update prescription status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, prescription)
}

func (h *PrescriptionHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	medications, err := h.prescriptionUsecase.ListMedications(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to list medications")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *PrescriptionHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.prescriptionUsecase.AddMedication(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrPrescriptionFinalized:
			response.BusinessRuleViolation(w, "Prescription is in a terminal status")
		default:
			response.InternalServerError(w, "Failed to add medication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medication added successfully", medication)
}

func (h *PrescriptionHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	var req dto.UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.prescriptionUsecase.UpdateMedication(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication not found")
		default:
			response.InternalServerError(w, "Failed to update medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication updated successfully", medication)
}

func (h *PrescriptionHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	if err := h.prescriptionUsecase.DeleteMedication(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication not found")
		case usecase.ErrLastMedication:
			response.BusinessRuleViolation(w, "Prescription must keep at least one medication")
		default:
			response.InternalServerError(w, "Failed to delete medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication deleted successfully", nil)
}
