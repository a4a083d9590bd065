package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"medicore/internal/delivery/dto"
	"medicore/internal/delivery/http/middleware"
	"medicore/internal/domain/entity"
	"medicore/internal/usecase"
	"medicore/pkg/response"
	"medicore/pkg/validator"
)

type SurgeryHandler struct {
	surgeryUsecase usecase.SurgeryUsecase
	validator      *validator.CustomValidator
}

func NewSurgeryHandler(surgeryUsecase usecase.SurgeryUsecase, validator *validator.CustomValidator) *SurgeryHandler {
	return &SurgeryHandler{
		surgeryUsecase: surgeryUsecase,
		validator:      validator,
	}
}

func (h *SurgeryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSurgeryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	surgery, err := h.surgeryUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrSurgeonNotFound:
			response.NotFound(w, "Surgeon not found")
		case usecase.ErrInvalidDateFormat:
			response.BusinessRuleViolation(w, "Invalid operation date, use YYYY-MM-DD")
		case usecase.ErrEndBeforeStart:
			response.BusinessRuleViolation(w, "End time must be after start time")
		default:
			response.InternalServerError(w, "Failed to create surgery")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Surgery created successfully", surgery)
}

func (h *SurgeryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid surgery ID", nil)
		return
	}

	surgery, err := h.surgeryUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSurgeryNotFound:
			response.NotFound(w, "Surgery not found")
		default:
			response.InternalServerError(w, "Failed to get surgery")
		}
		return
	}

	response.Success(w, http.StatusOK, "Surgery retrieved successfully", surgery)
}

func (h *SurgeryHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	filter := entity.SurgeryFilter{
		Skip:      skip,
		Limit:     limit,
		PatientID: queryInt(r, "patient_id"),
		SurgeonID: queryInt(r, "surgeon_id"),
	}

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid start_date, use YYYY-MM-DD", nil)
			return
		}
		filter.StartDate = &t
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid end_date, use YYYY-MM-DD", nil)
			return
		}
		filter.EndDate = &t
	}

	surgeries, err := h.surgeryUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list surgeries")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Surgeries retrieved successfully", surgeries, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Count: surgeries.Total,
	})
}

func (h *SurgeryHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit < 1 || limit > 100 {
		limit = 20
	}

	surgeries, err := h.surgeryUsecase.ListUpcoming(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming surgeries")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming surgeries retrieved successfully", surgeries)
}

func (h *SurgeryHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days")
	if days == 0 {
		days = 30
	}

	limit := queryInt(r, "limit")
	if limit < 1 || limit > 100 {
		limit = 20
	}

	surgeries, err := h.surgeryUsecase.ListRecent(r.Context(), days, limit)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRecentDay:
			response.BusinessRuleViolation(w, "Days must be positive")
		default:
			response.InternalServerError(w, "Failed to list recent surgeries")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recent surgeries retrieved successfully", surgeries)
}

func (h *SurgeryHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	skip, limit := pagination(r)

	surgeries, err := h.surgeryUsecase.ListByPatient(r.Context(), id, skip, limit)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list surgeries by patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Surgeries retrieved successfully", surgeries)
}

func (h *SurgeryHandler) ListBySurgeon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid surgeon ID", nil)
		return
	}

	skip, limit := pagination(r)

	surgeries, err := h.surgeryUsecase.ListBySurgeon(r.Context(), id, skip, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list surgeries by surgeon")
		return
	}

	response.Success(w, http.StatusOK, "Surgeries retrieved successfully", surgeries)
}

func (h *SurgeryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid surgery ID", nil)
		return
	}

	var req dto.UpdateSurgeryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	surgery, err := h.surgeryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSurgeryNotFound:
			response.NotFound(w, "Surgery not found")
		case usecase.ErrInvalidDateFormat:
			response.BusinessRuleViolation(w, "Invalid operation date, use YYYY-MM-DD")
		case usecase.ErrEndBeforeStart:
			response.BusinessRuleViolation(w, "End time must be after start time")
		default:
			response.InternalServerError(w, "Failed to update surgery")
		}
		return
	}

	response.Success(w, http.StatusOK, "Surgery updated successfully", surgery)
}

func (h *SurgeryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid surgery ID", nil)
		return
	}

	if err := h.surgeryUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSurgeryNotFound:
			response.NotFound(w, "Surgery not found")
		default:
			response.InternalServerError(w, "Failed to delete surgery")
		}
		return
	}

	response.Success(w, http.StatusOK, "Surgery deleted successfully", nil)
}
