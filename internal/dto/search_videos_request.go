// File: internal/dto/search_videos_request.go
package dto

// swagger:model dto.SearchVideosRequest
type SearchVideosRequest struct {
	Q              string `json:"q" validate:"required" example:"sourdough bread"`
	MaxResults     int    `json:"max_results,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
	Order          string `json:"order,omitempty" example:"viewCount"`
	VideoDuration  string `json:"video_duration,omitempty" example:"medium"`
	PublishedAfter string `json:"published_after,omitempty" example:"2025-05-01T00:00:00Z"`
}
