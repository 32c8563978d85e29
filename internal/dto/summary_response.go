// File: internal/dto/summary_response.go
package dto

// swagger:model dto.SummaryResponse
type SummaryResponse struct {
	DraftID string `json:"draft_id" example:"7f9c24e5-2f85-4f9e-9a9d-8a4f8e5d6c3b"`
	Summary string `json:"summary"`
}
