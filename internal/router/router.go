// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"excelviz/internal/cache"
	"excelviz/internal/database"
	"excelviz/internal/handler"
	"excelviz/internal/handler/admin"
	"excelviz/internal/handler/auth"
	"excelviz/internal/handler/charts"
	"excelviz/internal/handler/files"
	"excelviz/internal/middleware"
	"excelviz/internal/service"
)

// Setup registers every route. uploadDir doubles as the target of the
// upload pipeline and the root of the static /uploads mount; the
// static mount is deliberately unauthenticated.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, uploadDir string) {
	rowCache := service.NewRowCache(cch)

	e.Static("/uploads", uploadDir)

	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth)

	api.POST("/users/register", auth.RegisterHandler(db))
	api.POST("/users/login", auth.LoginHandler(db))

	apiFiles := api.Group("/files", middleware.RequireAuth)
	apiFiles.POST("/upload", files.UploadHandler(db, uploadDir))
	apiFiles.GET("", files.ListHandler(db))
	apiFiles.GET("/:id", files.GetHandler(db, rowCache))
	apiFiles.DELETE("/:id", files.DeleteHandler(db, rowCache))

	apiCharts := api.Group("/charts", middleware.RequireAuth)
	apiCharts.POST("", charts.CreateHandler(db))
	apiCharts.GET("", charts.ListHandler(db))
	apiCharts.GET("/:id", charts.GetHandler(db))
	apiCharts.DELETE("/:id", charts.DeleteHandler(db))

	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.GET("/users", admin.UsersHandler(db))
	apiAdmin.GET("/stats", admin.StatsHandler(db))
}
