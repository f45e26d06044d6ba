// File: internal/model/chart.go
package model

import "time"

// ChartTypes enumerates the accepted chart configurations.
var ChartTypes = []string{"2d-bar", "2d-line", "2d-pie", "2d-scatter", "3d-column"}

type Chart struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user"`
	FileID    int       `db:"file_id" json:"file"`
	Title     string    `db:"title" json:"title"`
	ChartType string    `db:"chart_type" json:"chartType"`
	XAxis     string    `db:"x_axis" json:"xAxis"`
	YAxis     string    `db:"y_axis" json:"yAxis"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ChartWithFile carries the display name of the referenced file for
// list and detail reads. FileName is empty when the file has been
// deleted; charts deliberately survive their source file.
type ChartWithFile struct {
	Chart
	FileName string `db:"file_name" json:"fileName"`
}
