// File: internal/handler/charts/charts.go
package charts

import (
	"errors"
	"net/http"
	"strconv"

	"excelviz/internal/api"
	"excelviz/internal/database"
	"excelviz/internal/middleware"
	"excelviz/internal/model"
	"excelviz/internal/service"
	"excelviz/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createChart      = store.CreateChart
	getChartByID     = store.GetChartByID
	listChartsByUser = store.ListChartsByUser
	deleteChart      = store.DeleteChart
	getFileByID      = store.GetFileByID
)

// CreateHandler saves a chart configuration. Authorization runs
// against the referenced file's owner because the chart does not
// exist yet.
// @Summary     Create a chart
// @Tags        charts
// @Accept      json
// @Produce     json
// @Param       request body api.CreateChartRequest true "chart configuration"
// @Success     201 {object} model.Chart
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		var req api.CreateChartRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		file, err := getFileByID(c.Request().Context(), db, req.FileID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "File not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if !service.OwnerOrAdmin(claims, file.UserID) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized to create chart for this file"})
		}

		chart, err := createChart(c.Request().Context(), db, &model.Chart{
			UserID:    claims.UserID,
			FileID:    req.FileID,
			Title:     req.Title,
			ChartType: req.ChartType,
			XAxis:     req.XAxis,
			YAxis:     req.YAxis,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, chart)
	}
}

// ListHandler returns the caller's charts, newest first, with each
// referenced file's display name attached.
// @Summary     List own charts
// @Tags        charts
// @Produce     json
// @Success     200 {array} model.ChartWithFile
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		charts, err := listChartsByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, charts)
	}
}

// GetHandler returns one chart, gated on the chart's owner.
// @Summary     Get a chart
// @Tags        charts
// @Produce     json
// @Param       id path int true "chart ID"
// @Success     200 {object} model.ChartWithFile
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid chart ID"})
		}

		chart, err := getChartByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Chart not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if !service.OwnerOrAdmin(claims, chart.UserID) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized to access this chart"})
		}

		return c.JSON(http.StatusOK, chart)
	}
}

// DeleteHandler removes a chart. The referenced file is untouched.
// @Summary     Delete a chart
// @Tags        charts
// @Produce     json
// @Param       id path int true "chart ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /charts/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid chart ID"})
		}

		chart, err := getChartByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Chart not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if !service.OwnerOrAdmin(claims, chart.UserID) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized to delete this chart"})
		}

		if err := deleteChart(c.Request().Context(), db, chart.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Chart removed"})
	}
}
