// File: internal/model/file.go
package model

import "time"

// File is the metadata record for one uploaded spreadsheet. Columns is
// derived once at upload from the header row and is not re-checked
// against the bytes on disk afterwards.
type File struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user"`
	OriginalName string    `db:"original_name" json:"originalName"`
	FileName     string    `db:"file_name" json:"fileName"`
	FilePath     string    `db:"file_path" json:"filePath"`
	FileType     string    `db:"file_type" json:"fileType"`
	Size         int64     `db:"size" json:"size"`
	Columns      []string  `db:"columns" json:"columns"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
