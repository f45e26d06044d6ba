package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
}
