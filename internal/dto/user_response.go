// File: internal/dto/user_response.go
package dto

import "time"

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"bob@example.com"`
	FullName  string    `json:"full_name,omitempty" example:"Bob Loblaw"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
