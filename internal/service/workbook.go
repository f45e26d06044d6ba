// File: internal/service/workbook.go
package service

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one parsed spreadsheet record, keyed by column name.
type Row map[string]string

// ErrEmptyWorkbook is returned when the first sheet has no data rows
// below the header.
var ErrEmptyWorkbook = errors.New("Excel file is empty")

// ParseWorkbook reads the spreadsheet at path and projects its first
// sheet into column names and row records. The header row supplies the
// columns; every following row becomes a Row keyed by those columns,
// so the key set of the first record is exactly the column list.
func ParseWorkbook(path string) ([]string, []Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return projectSheet(f)
}

// ParseWorkbookReader is ParseWorkbook over an in-memory stream.
func ParseWorkbookReader(r io.Reader) ([]string, []Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return projectSheet(f)
}

func projectSheet(f *excelize.File) ([]string, []Row, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(raw) < 2 {
		return nil, nil, ErrEmptyWorkbook
	}

	// Header cells name the columns; unnamed cells are dropped along
	// with their values.
	header := raw[0]
	columns := make([]string, 0, len(header))
	index := make([]int, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		columns = append(columns, h)
		index = append(index, i)
	}
	if len(columns) == 0 {
		return nil, nil, ErrEmptyWorkbook
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		rec := make(Row, len(columns))
		for j, col := range columns {
			var val string
			if index[j] < len(cells) {
				val = cells[index[j]]
			}
			rec[col] = val
		}
		rows = append(rows, rec)
	}

	return columns, rows, nil
}
