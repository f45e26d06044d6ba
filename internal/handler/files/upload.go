// File: internal/handler/files/upload.go
package files

import (
	"errors"
	"net/http"

	"excelviz/internal/api"
	"excelviz/internal/database"
	"excelviz/internal/middleware"
	"excelviz/internal/model"
	"excelviz/internal/service"
	"excelviz/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createFile      = store.CreateFile
	getFileByID     = store.GetFileByID
	listFilesByUser = store.ListFilesByUser
	deleteFile      = store.DeleteFile
	parseWorkbook   = service.ParseWorkbook
	saveUpload      = service.SaveUpload
	removeStored    = service.RemoveStored
)

// UploadHandler runs the upload pipeline: validate the incoming part,
// store the bytes, parse them, derive the column list from the header
// row, and persist the file record. Any failure after the disk write
// removes the stored bytes before returning.
// @Summary     Upload a spreadsheet
// @Description Accepts a multipart .xlsx/.xls upload (field "file"), max 10 MiB
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Excel file"
// @Success     201 {object} model.File
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     413 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /files/upload [post]
func UploadHandler(db database.DB, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Please upload a file"})
		}

		if fh.Size > service.MaxUploadSize {
			return c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Message: "File too large (max 10 MB)"})
		}

		// Boundary check before anything touches the disk.
		if !service.AllowedExtension(fh.Filename) || !service.AllowedMIMEType(fh.Header.Get("Content-Type")) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: service.ErrUnsupportedFileType.Error()})
		}

		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to read upload"})
		}
		defer src.Close()

		storedName := service.StoredFilename("file", fh.Filename)
		path, size, err := saveUpload(src, uploadDir, storedName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store upload"})
		}

		// The extension is re-checked server-side after storage; the
		// bytes are already durable at this point, so a failure here
		// must unlink them.
		if !service.AllowedExtension(storedName) {
			removeStored(path)
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: service.ErrUnsupportedFileType.Error()})
		}

		columns, _, err := parseWorkbook(path)
		if err != nil {
			removeStored(path)
			if errors.Is(err, service.ErrEmptyWorkbook) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Excel file is empty"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error processing Excel file: " + err.Error()})
		}

		file, err := createFile(c.Request().Context(), db, &model.File{
			UserID:       claims.UserID,
			OriginalName: fh.Filename,
			FileName:     storedName,
			FilePath:     path,
			FileType:     fh.Header.Get("Content-Type"),
			Size:         size,
			Columns:      columns,
		})
		if err != nil {
			removeStored(path)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, file)
	}
}
