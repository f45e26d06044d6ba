package api

// ErrorResponse is the uniform error body for every failed request.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"File not found"`
}

// MessageResponse acknowledges deletes.
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"File removed"`
}
