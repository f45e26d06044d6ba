// File: internal/store/chart.go
package store

import (
	"context"
	"fmt"

	"excelviz/internal/database"
	"excelviz/internal/model"
)

func CreateChart(ctx context.Context, db database.DB, ch *model.Chart) (*model.Chart, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO charts (user_id, file_id, title, chart_type, x_axis, y_axis)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		ch.UserID,
		ch.FileID,
		ch.Title,
		ch.ChartType,
		ch.XAxis,
		ch.YAxis,
	)
	if err := row.Scan(&ch.ID, &ch.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateChart: %w", err)
	}
	return ch, nil
}

// GetChartByID returns the chart plus the referenced file's display
// name. The join is LEFT so charts survive file deletion with an
// empty file name.
func GetChartByID(ctx context.Context, db database.DB, chartID int) (*model.ChartWithFile, error) {
	row := db.QueryRow(ctx,
		`SELECT c.id, c.user_id, c.file_id, c.title, c.chart_type, c.x_axis, c.y_axis, c.created_at,
		        COALESCE(f.original_name, '')
		 FROM charts c
		 LEFT JOIN files f ON f.id = c.file_id
		 WHERE c.id = $1`,
		chartID,
	)
	ch := &model.ChartWithFile{}
	if err := row.Scan(
		&ch.ID,
		&ch.UserID,
		&ch.FileID,
		&ch.Title,
		&ch.ChartType,
		&ch.XAxis,
		&ch.YAxis,
		&ch.CreatedAt,
		&ch.FileName,
	); err != nil {
		return nil, fmt.Errorf("GetChartByID: %w", err)
	}
	return ch, nil
}

func ListChartsByUser(ctx context.Context, db database.DB, userID int) ([]model.ChartWithFile, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.user_id, c.file_id, c.title, c.chart_type, c.x_axis, c.y_axis, c.created_at,
		        COALESCE(f.original_name, '')
		 FROM charts c
		 LEFT JOIN files f ON f.id = c.file_id
		 WHERE c.user_id = $1
		 ORDER BY c.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListChartsByUser: %w", err)
	}
	defer rows.Close()

	charts := []model.ChartWithFile{}
	for rows.Next() {
		var ch model.ChartWithFile
		if err := rows.Scan(
			&ch.ID,
			&ch.UserID,
			&ch.FileID,
			&ch.Title,
			&ch.ChartType,
			&ch.XAxis,
			&ch.YAxis,
			&ch.CreatedAt,
			&ch.FileName,
		); err != nil {
			return nil, fmt.Errorf("ListChartsByUser: %w", err)
		}
		charts = append(charts, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListChartsByUser: %w", err)
	}
	return charts, nil
}

func DeleteChart(ctx context.Context, db database.DB, chartID int) error {
	if _, err := db.Exec(ctx, `DELETE FROM charts WHERE id = $1`, chartID); err != nil {
		return fmt.Errorf("DeleteChart: %w", err)
	}
	return nil
}
