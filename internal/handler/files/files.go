// File: internal/handler/files/files.go
package files

import (
	"errors"
	"net/http"
	"strconv"

	"excelviz/internal/api"
	"excelviz/internal/database"
	"excelviz/internal/middleware"
	"excelviz/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ListHandler returns the caller's files, newest first.
// @Summary     List own files
// @Tags        files
// @Produce     json
// @Success     200 {array} model.File
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /files [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		files, err := listFilesByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, files)
	}
}

// GetHandler re-parses the stored bytes on every read and returns the
// metadata, rows and columns together. The parse is skipped when the
// row cache still holds this file.
// @Summary     Get a file with its parsed rows
// @Tags        files
// @Produce     json
// @Param       id path int true "file ID"
// @Success     200 {object} api.FileDataResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /files/{id} [get]
func GetHandler(db database.DB, rowCache *service.RowCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid file ID"})
		}

		file, err := getFileByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "File not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if !service.OwnerOrAdmin(claims, file.UserID) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized to access this file"})
		}

		rows, ok := rowCache.Get(c.Request().Context(), file.ID)
		if !ok {
			_, rows, err = parseWorkbook(file.FilePath)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error processing Excel file: " + err.Error()})
			}
			rowCache.Set(c.Request().Context(), file.ID, rows)
		}

		return c.JSON(http.StatusOK, api.FileDataResponse{
			File:       file,
			ParsedData: rows,
			Columns:    file.Columns,
		})
	}
}

// DeleteHandler removes the record, the stored bytes and the cached
// rows. Charts referencing the file are left alone.
// @Summary     Delete a file
// @Tags        files
// @Produce     json
// @Param       id path int true "file ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /files/{id} [delete]
func DeleteHandler(db database.DB, rowCache *service.RowCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid file ID"})
		}

		file, err := getFileByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "File not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if !service.OwnerOrAdmin(claims, file.UserID) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized to delete this file"})
		}

		if err := removeStored(file.FilePath); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if err := deleteFile(c.Request().Context(), db, file.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rowCache.Invalidate(c.Request().Context(), file.ID)

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "File removed"})
	}
}
