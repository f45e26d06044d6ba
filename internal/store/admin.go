// File: internal/store/admin.go
package store

import (
	"context"
	"fmt"

	"excelviz/internal/api"
	"excelviz/internal/database"
)

// ListUsersWithCounts computes per-user file and chart counts in the
// database, newest users first.
func ListUsersWithCounts(ctx context.Context, db database.DB) ([]api.UserWithCounts, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.name, u.email, u.is_admin, u.created_at,
		        (SELECT COUNT(*) FROM files f WHERE f.user_id = u.id) AS file_count,
		        (SELECT COUNT(*) FROM charts c WHERE c.user_id = u.id) AS chart_count
		 FROM users u
		 ORDER BY u.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsersWithCounts: %w", err)
	}
	defer rows.Close()

	users := []api.UserWithCounts{}
	for rows.Next() {
		var u api.UserWithCounts
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.IsAdmin,
			&u.CreatedAt,
			&u.FileCount,
			&u.ChartCount,
		); err != nil {
			return nil, fmt.Errorf("ListUsersWithCounts: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsersWithCounts: %w", err)
	}
	return users, nil
}

// GetStats sums the whole files table for storage usage; no running
// counter is kept anywhere.
func GetStats(ctx context.Context, db database.DB) (*api.StatsResponse, error) {
	row := db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM users),
		        (SELECT COUNT(*) FROM files),
		        (SELECT COUNT(*) FROM charts),
		        (SELECT COALESCE(SUM(size), 0) FROM files)`,
	)
	s := &api.StatsResponse{}
	if err := row.Scan(&s.TotalUsers, &s.TotalFiles, &s.TotalCharts, &s.StorageUsed); err != nil {
		return nil, fmt.Errorf("GetStats: %w", err)
	}
	return s, nil
}
