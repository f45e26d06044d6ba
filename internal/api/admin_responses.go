package api

import "time"

// UserWithCounts is one row of the admin user listing.
// swagger:model api.UserWithCounts
type UserWithCounts struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	FileCount  int       `json:"fileCount"`
	ChartCount int       `json:"chartCount"`
}

// StatsResponse is the global admin dashboard summary. StorageUsed is
// the summed size in bytes over every file record.
// swagger:model api.StatsResponse
type StatsResponse struct {
	TotalUsers  int   `json:"totalUsers"`
	TotalFiles  int   `json:"totalFiles"`
	TotalCharts int   `json:"totalCharts"`
	StorageUsed int64 `json:"storageUsed"`
}
