// File: internal/dto/publish_response.go
package dto

// swagger:model dto.PublishResponse
type PublishResponse struct {
	PostID string `json:"post_id" example:"e6f36a"`
	URL    string `json:"url" example:"https://medium.com/@chef/weeknight-ramen-e6f36a"`
}
