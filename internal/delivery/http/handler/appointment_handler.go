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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPastScheduledDate:
			response.BusinessRuleViolation(w, "Scheduled date must be in the future")
		case usecase.ErrSlotConflict:
			response.BusinessRuleViolation(w, "Doctor already has an appointment in this time slot")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	filter := entity.AppointmentFilter{
		Skip:      skip,
		Limit:     limit,
		PatientID: queryInt(r, "patient_id"),
		DoctorID:  queryInt(r, "doctor_id"),
		Status:    entity.AppointmentStatus(r.URL.Query().Get("status")),
	}

	if v := r.URL.Query().Get("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date_from, use RFC3339", nil)
			return
		}
		filter.DateFrom = &t
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date_to, use RFC3339", nil)
			return
		}
		filter.DateTo = &t
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, &response.Meta{
		Skip:  skip,
		Limit: limit,
		Count: appointments.Total,
	})
}

func (h *AppointmentHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit < 1 || limit > 100 {
		limit = 20
	}

	appointments, err := h.appointmentUsecase.ListUpcoming(r.Context(), queryInt(r, "doctor_id"), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming appointments")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentFinalized:
			response.BusinessRuleViolation(w, "Appointment is in a terminal status")
		case usecase.ErrPastScheduledDate:
			response.BusinessRuleViolation(w, "Scheduled date must be in the future")
		case usecase.ErrSlotConflict:
			response.BusinessRuleViolation(w, "Doctor already has an appointment in this time slot")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Confirm(r.Context(), id)
	}, "Appointment confirmed successfully")
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Cancel(r.Context(), id)
	}, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	h.transition(w, r, func(id int) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Complete(r.Context(), id, userID)
	}, "Appointment completed successfully")
}

func (h *AppointmentHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.MarkNoShow(r.Context(), id)
	}, "Appointment marked as no-show")
}

func (h *AppointmentHandler) transition(w http.ResponseWriter, r *http.Request, fn func(id int) (*dto.AppointmentResponse, error), message string) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := fn(id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidTransition:
			response.BusinessRuleViolation(w, "Invalid status transition")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, appointment)
}
