package dto

type ErrorResponse struct {
	Error string `json:"error" example:"post not found"`
}
