// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"bob@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
	FullName string `json:"full_name,omitempty" example:"Bob Loblaw"`
}
