// File: internal/dto/summarize_request.go
package dto

// swagger:model dto.SummarizeRequest
type SummarizeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Title      string `json:"title,omitempty" example:"Weeknight Ramen"`
}
