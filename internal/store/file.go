// File: internal/store/file.go
package store

import (
	"context"
	"fmt"

	"excelviz/internal/database"
	"excelviz/internal/model"
)

func CreateFile(ctx context.Context, db database.DB, f *model.File) (*model.File, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO files (user_id, original_name, file_name, file_path, file_type, size, columns)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		f.UserID,
		f.OriginalName,
		f.FileName,
		f.FilePath,
		f.FileType,
		f.Size,
		f.Columns,
	)
	if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateFile: %w", err)
	}
	return f, nil
}

func GetFileByID(ctx context.Context, db database.DB, fileID int) (*model.File, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, original_name, file_name, file_path, file_type, size, columns, created_at
		 FROM files WHERE id = $1`,
		fileID,
	)
	f := &model.File{}
	if err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.OriginalName,
		&f.FileName,
		&f.FilePath,
		&f.FileType,
		&f.Size,
		&f.Columns,
		&f.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetFileByID: %w", err)
	}
	return f, nil
}

func ListFilesByUser(ctx context.Context, db database.DB, userID int) ([]model.File, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, original_name, file_name, file_path, file_type, size, columns, created_at
		 FROM files WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFilesByUser: %w", err)
	}
	defer rows.Close()

	files := []model.File{}
	for rows.Next() {
		var f model.File
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.OriginalName,
			&f.FileName,
			&f.FilePath,
			&f.FileType,
			&f.Size,
			&f.Columns,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListFilesByUser: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFilesByUser: %w", err)
	}
	return files, nil
}

func DeleteFile(ctx context.Context, db database.DB, fileID int) error {
	if _, err := db.Exec(ctx, `DELETE FROM files WHERE id = $1`, fileID); err != nil {
		return fmt.Errorf("DeleteFile: %w", err)
	}
	return nil
}
