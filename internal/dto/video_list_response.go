// File: internal/dto/video_list_response.go
package dto

// swagger:model dto.VideoListResponse
type VideoListResponse struct {
	VideoIDs []string `json:"video_ids"`
}
