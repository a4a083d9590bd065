package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// BillingToResponse converts a Billing entity to BillingResponse DTO
func BillingToResponse(billing *entity.Billing) *dto.BillingResponse {
	if billing == nil {
		return nil
	}

	response := &dto.BillingResponse{
		ID:             billing.ID,
		PatientID:      billing.PatientID,
		AppointmentID:  billing.AppointmentID,
		PrescriptionID: billing.PrescriptionID,
		Amount:         billing.Amount,
		Status:         string(billing.Status),
		Description:    billing.Description,
		PaymentDate:    billing.PaymentDate,
		CreatedBy:      billing.CreatedBy,
		CreatedAt:      billing.CreatedAt,
		UpdatedAt:      billing.UpdatedAt,
	}

	if billing.Patient.ID != 0 {
		response.PatientName = billing.Patient.FullName()
	}

	return response
}

// BillingsToResponses converts a slice of Billing entities to DTOs
func BillingsToResponses(billings []entity.Billing) []dto.BillingResponse {
	responses := make([]dto.BillingResponse, len(billings))
	for i, billing := range billings {
		responses[i] = *BillingToResponse(&billing)
	}
	return responses
}
