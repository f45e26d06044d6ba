package api

// AuthResponse is returned by both register and login: the identity
// plus a signed bearer token.
// swagger:model api.AuthResponse
type AuthResponse struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Alice"`
	Email   string `json:"email" example:"alice@example.com"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
	Token   string `json:"token"`
}
