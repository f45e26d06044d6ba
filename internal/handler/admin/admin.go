// File: internal/handler/admin/admin.go
package admin

import (
	"net/http"

	"excelviz/internal/api"
	"excelviz/internal/database"
	"excelviz/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsersWithCounts = store.ListUsersWithCounts
	getStats            = store.GetStats
)

// UsersHandler lists every user with owned file and chart counts,
// computed in the database, newest first.
// @Summary     List users with usage counts
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserWithCounts
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func UsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsersWithCounts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, users)
	}
}

// StatsHandler reports entity totals and the summed stored bytes.
// @Summary     Global usage statistics
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.StatsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := getStats(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	}
}
