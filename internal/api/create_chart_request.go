package api

// swagger:model api.CreateChartRequest
type CreateChartRequest struct {
	FileID    int    `json:"fileId" form:"fileId" validate:"required" example:"1"`
	Title     string `json:"title" form:"title" validate:"required" example:"Monthly Sales"`
	ChartType string `json:"chartType" form:"chartType" validate:"required,oneof=2d-bar 2d-line 2d-pie 2d-scatter 3d-column" example:"2d-bar"`
	XAxis     string `json:"xAxis" form:"xAxis" validate:"required" example:"Month"`
	YAxis     string `json:"yAxis" form:"yAxis" validate:"required" example:"Sales"`
}
