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

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.visitUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to get visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	filter := entity.VisitFilter{
		Skip:      skip,
		Limit:     limit,
		PatientID: queryInt(r, "patient_id"),
		DoctorID:  queryInt(r, "doctor_id"),
		Status:    entity.VisitStatus(r.URL.Query().Get("status")),
	}

	visits, err := h.visitUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Visits retrieved successfully", visits, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Count: visits.Total,
	})
}

func (h *VisitHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit < 1 || limit > 100 {
		limit = 20
	}

	visits, err := h.visitUsecase.ListUpcoming(r.Context(), queryInt(r, "doctor_id"), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming visits")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming visits retrieved successfully", visits)
}

func (h *VisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitFinalized:
			response.BusinessRuleViolation(w, "Visit is in a terminal status")
		default:
			response.InternalServerError(w, "Failed to update visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	if err := h.visitUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to delete visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}

func (h *VisitHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.visitUsecase.Complete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitAlreadyComplete:
			response.BusinessRuleViolation(w, "Visit is already completed")
		case usecase.ErrInvalidTransition:
			response.BusinessRuleViolation(w, "Invalid status transition")
		default:
			response.InternalServerError(w, "Failed to complete visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit completed successfully", visit)
}

func (h *VisitHandler) AddDiagnosis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.visitUsecase.AddDiagnosis(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to add diagnosis")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis added successfully", diagnosis)
}

func (h *VisitHandler) AddTreatment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.TreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.visitUsecase.AddTreatment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to add treatment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment added successfully", treatment)
}

func (h *VisitHandler) SetVitalSigns(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.VitalSignsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vitals, err := h.visitUsecase.SetVitalSigns(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to set vital signs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital signs recorded successfully", vitals)
}
