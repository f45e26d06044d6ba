package api

import (
	"excelviz/internal/model"
	"excelviz/internal/service"
)

// FileDataResponse joins the file metadata with its re-parsed rows.
// swagger:model api.FileDataResponse
type FileDataResponse struct {
	File       *model.File   `json:"file"`
	ParsedData []service.Row `json:"parsedData"`
	Columns    []string      `json:"columns"`
}
