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

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrInvalidAmount:
			response.BusinessRuleViolation(w, "Amount must be positive")
		default:
			response.InternalServerError(w, "Failed to create billing record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Billing record created successfully", billing)
}

func (h *BillingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid billing ID", nil)
		return
	}

	billing, err := h.billingUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to get billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record retrieved successfully", billing)
}

func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	filter := entity.BillingFilter{
		Skip:      skip,
		Limit:     limit,
		PatientID: queryInt(r, "patient_id"),
		Status:    entity.BillingStatus(r.URL.Query().Get("status")),
	}

	billings, err := h.billingUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list billing records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Billing records retrieved successfully", billings, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Count: billings.Total,
	})
}

func (h *BillingHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	skip, limit := pagination(r)

	billings, err := h.billingUsecase.ListByPatient(r.Context(), id, skip, limit)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list billing records by patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing records retrieved successfully", billings)
}

func (h *BillingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid billing ID", nil)
		return
	}

	var req dto.UpdateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		case usecase.ErrBillingFinalized:
			response.BusinessRuleViolation(w, "Billing record is in a terminal status")
		case usecase.ErrInvalidAmount:
			response.BusinessRuleViolation(w, "Amount must be positive")
		default:
			response.InternalServerError(w, "Failed to update billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record updated successfully", billing)
}

func (h *BillingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid billing ID", nil)
		return
	}

	if err := h.billingUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to delete billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record deleted successfully", nil)
}

func (h *BillingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.BillingResponse, error) {
		return h.billingUsecase.Pay(r.Context(), id)
	}, "Billing record paid successfully")
}

func (h *BillingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.BillingResponse, error) {
		return h.billingUsecase.Cancel(r.Context(), id)
	}, "Billing record cancelled successfully")
}

func (h *BillingHandler) MarkOverdue(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.BillingResponse, error) {
		return h.billingUsecase.MarkOverdue(r.Context(), id)
	}, "Billing record marked overdue")
}

func (h *BillingHandler) transition(w http.ResponseWriter, r *http.Request, fn func(id int) (*dto.BillingResponse, error), message string) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid billing ID", nil)
		return
	}

	billing, err := fn(id)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		case usecase.ErrInvalidTransition:
			response.BusinessRuleViolation(w, "Invalid status transition")
		default:
			response.InternalServerError(w, "Failed to update billing status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, billing)
}
