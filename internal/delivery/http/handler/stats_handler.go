package handler

import (
	"encoding/json"
	"net/http"

	"medicore/internal/delivery/dto"
	"medicore/internal/usecase"
	"medicore/pkg/response"
	"medicore/pkg/validator"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
	validator    *validator.CustomValidator
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase, validator *validator.CustomValidator) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
		validator:    validator,
	}
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get summary")
		return
	}

	response.Success(w, http.StatusOK, "Summary retrieved successfully", summary)
}

func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")

	stats, err := h.statsUsecase.Monthly(r.Context(), year, month)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPeriod:
			response.BusinessRuleViolation(w, "Invalid year or month")
		default:
			response.InternalServerError(w, "Failed to get monthly stats")
		}
		return
	}

	response.Success(w, http.StatusOK, "Monthly stats retrieved successfully", stats)
}

func (h *StatsHandler) Charts(w http.ResponseWriter, r *http.Request) {
	series, err := h.statsUsecase.ChartSeries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get chart series")
		return
	}

	response.Success(w, http.StatusOK, "Chart series retrieved successfully", series)
}

func (h *StatsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsUsecase.Refresh(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to refresh stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats refreshed successfully", result)
}

func (h *StatsHandler) ListDashboardStats(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	stats, err := h.statsUsecase.ListDashboardStats(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

func (h *StatsHandler) CreateDashboardStat(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDashboardStatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stat, err := h.statsUsecase.CreateDashboardStat(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create dashboard stat")
		return
	}

	response.Success(w, http.StatusCreated, "Dashboard stat created successfully", stat)
}

func (h *StatsHandler) UpdateDashboardStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid dashboard stat ID", nil)
		return
	}

	var req dto.UpdateDashboardStatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stat, err := h.statsUsecase.UpdateDashboardStat(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDashboardStatNotFound:
			response.NotFound(w, "Dashboard stat not found")
		default:
			response.InternalServerError(w, "Failed to update dashboard stat")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stat updated successfully", stat)
}

func (h *StatsHandler) DeleteDashboardStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid dashboard stat ID", nil)
		return
	}

	if err := h.statsUsecase.DeleteDashboardStat(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDashboardStatNotFound:
			response.NotFound(w, "Dashboard stat not found")
		default:
			response.InternalServerError(w, "Failed to delete dashboard stat")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stat deleted successfully", nil)
}
