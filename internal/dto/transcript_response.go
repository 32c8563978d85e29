// File: internal/dto/transcript_response.go
package dto

// swagger:model dto.TranscriptResponse
type TranscriptResponse struct {
	VideoID    string `json:"video_id" example:"dQw4w9WgXcQ"`
	Transcript string `json:"transcript"`
}
