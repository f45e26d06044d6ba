// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"excelviz/internal/api"
	"excelviz/internal/database"

	"github.com/labstack/echo/v4"
)

// LoginHandler verifies credentials and returns the identity with a
// fresh bearer token.
// @Summary     Log in
// @Description Verifies email and password, returns the identity plus a bearer token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}

		token, err := issueAccessToken(*authUser, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			ID:      authUser.ID,
			Name:    authUser.Name,
			Email:   authUser.Email,
			IsAdmin: authUser.IsAdmin,
			Token:   token,
		})
	}
}
