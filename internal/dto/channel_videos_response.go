// File: internal/dto/channel_videos_response.go
package dto

import "time"

// swagger:model dto.ChannelVideo
type ChannelVideo struct {
	VideoID   string    `json:"video_id" example:"dQw4w9WgXcQ"`
	Title     string    `json:"title" example:"How to make stock"`
	Published time.Time `json:"published"`
}

// swagger:model dto.ChannelVideosResponse
type ChannelVideosResponse struct {
	ChannelID string         `json:"channel_id"`
	Videos    []ChannelVideo `json:"videos"`
}
