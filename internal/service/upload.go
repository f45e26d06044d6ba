// File: internal/service/upload.go
package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize caps incoming spreadsheets at 10 MiB.
const MaxUploadSize = 10 << 20

// ErrUnsupportedFileType rejects anything that is not an Excel upload.
var ErrUnsupportedFileType = errors.New("Please upload an Excel file (.xlsx or .xls)")

var timeNow = time.Now

// AllowedExtension reports whether the filename ends in .xlsx or .xls.
func AllowedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// AllowedMIMEType checks the declared content type at the boundary.
// octet-stream is let through: browsers fall back to it and the
// extension checks still apply on both sides of the disk write.
func AllowedMIMEType(mime string) bool {
	switch mime {
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel",
		"application/octet-stream":
		return true
	}
	return false
}

// StoredFilename generates the on-disk name for an upload: form field
// name, timestamp, original extension.
func StoredFilename(field, original string) string {
	return fmt.Sprintf("%s-%d%s", field, timeNow().UnixMilli(), strings.ToLower(filepath.Ext(original)))
}

// SaveUpload writes src under dir with the given name, creating dir if
// needed, and returns the stored path and byte count.
func SaveUpload(src io.Reader, dir, name string) (string, int64, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return path, n, nil
}

// RemoveStored unlinks stored bytes. A path that is already gone is
// treated as success so two racing deletes both complete cleanly.
func RemoveStored(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
