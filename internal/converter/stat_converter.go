package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// DashboardStatToResponse converts a DashboardStat entity to DTO
func DashboardStatToResponse(stat *entity.DashboardStat) *dto.DashboardStatResponse {
	if stat == nil {
		return nil
	}

	return &dto.DashboardStatResponse{
		ID:        stat.ID,
		Title:     stat.Title,
		StatKey:   stat.StatKey,
		Icon:      stat.Icon,
		Position:  stat.Position,
		IsActive:  stat.IsActive,
		CreatedAt: stat.CreatedAt,
		UpdatedAt: stat.UpdatedAt,
	}
}

// DashboardStatsToResponses converts a slice of DashboardStat entities to DTOs
func DashboardStatsToResponses(stats []entity.DashboardStat) []dto.DashboardStatResponse {
	responses := make([]dto.DashboardStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = *DashboardStatToResponse(&stat)
	}
	return responses
}
