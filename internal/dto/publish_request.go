// File: internal/dto/publish_request.go
package dto

// PublishRequest publishes either a cached draft (by id) or inline content.
// swagger:model dto.PublishRequest
type PublishRequest struct {
	DraftID string `json:"draft_id,omitempty" example:"7f9c24e5-2f85-4f9e-9a9d-8a4f8e5d6c3b"`
	Title   string `json:"title,omitempty" example:"Weeknight Ramen"`
	Content string `json:"content,omitempty"`
}
