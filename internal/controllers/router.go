package controllers

import (
	"net/http"

	"github.com/fsdevblog/bulkmeta/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const metricsPath = "/metrics"

type RouterParams struct {
	Actions     BulkActionRegistry
	Notices     NoticeKeeper
	PingService ConnectionChecker
	// Metrics отдает метрики Prometheus. Если nil, маршрут не регистрируется.
	Metrics   http.Handler
	JWTSecret []byte
	Logger    *logrus.Logger
}

// SetupRouter собирает gin.Engine со всеми маршрутами приложения.
//
// Маршруты:
//   - GET /ping, GET /metrics без аутентификации
//   - GET /api/bulk-actions, POST /api/bulk-actions/:action для JSON клиентов
//   - POST /admin/bulk-action, GET /admin/notices для формы админки
func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware(metricsPath))

	pingController := NewPingController(params.PingService)
	bulkController := NewBulkActionsController(params.Actions, params.Notices)
	noticesController := NewNoticesController(params.Notices)

	r.GET("/ping", pingController.Ping)
	if params.Metrics != nil {
		r.GET(metricsPath, gin.WrapH(params.Metrics))
	}

	authorized := r.Group("/",
		middlewares.ActorMiddleware(params.JWTSecret),
		middlewares.GunzipMiddleware(middlewares.DefaultMaxBodyBytes),
	)

	api := authorized.Group("/api")
	api.GET("/bulk-actions", bulkController.List)
	api.POST("/bulk-actions/:action", bulkController.Run)

	admin := authorized.Group("/admin")
	admin.POST("/bulk-action", bulkController.Handle)
	admin.GET("/notices", noticesController.Show)

	return r
}
