package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/gyd-platform/department-api/api/swagger"
	"github.com/gyd-platform/department-api/internal/handler"
	"github.com/gyd-platform/department-api/internal/middleware"
	"github.com/gyd-platform/department-api/internal/repository"
	"github.com/gyd-platform/department-api/internal/service"
	"github.com/gyd-platform/department-api/pkg/config"
	"github.com/gyd-platform/department-api/pkg/database"
	"github.com/gyd-platform/department-api/pkg/logger"
	corsmiddleware "github.com/gyd-platform/department-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gyd-platform/department-api/pkg/middleware/requestid"
)

// @title Gender & Youth Department API
// @version 1.0.0
// @description CRUD backend for department events, courses and timetable slots
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// An unreachable or unconfigured store is not fatal: the process keeps
	// serving so /test can report the degradation, and data endpoints fail
	// with a storage error per request.
	db, err := database.NewMongo(context.Background(), cfg.Database)
	if err != nil {
		logr.Warn("store unreachable at startup", zap.Error(err))
		db = nil
	} else if db == nil {
		logr.Warn("store not configured, set DATABASE_URL and DATABASE_NAME")
	}

	metrics := service.NewMetricsService()
	repo := repository.NewDocumentRepository(db, metrics)
	validate := validator.New()

	events := service.NewEventService(repo, validate, logr)
	courses := service.NewCourseService(repo, validate, logr)
	timetable := service.NewTimetableService(repo, validate, logr)
	diagnostics := service.NewDiagnosticService(repo, cfg.Database, logr)
	exports := service.NewExportService(courses, timetable, validate)

	eventHandler := handler.NewEventHandler(events)
	courseHandler := handler.NewCourseHandler(courses)
	timetableHandler := handler.NewTimetableHandler(timetable)
	healthHandler := handler.NewHealthHandler(diagnostics)
	exportHandler := handler.NewExportHandler(exports)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/", healthHandler.Root)
	r.GET("/test", healthHandler.Test)
	r.GET("/schema", healthHandler.Schema)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.PUT("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)

		api.GET("/courses", courseHandler.List)
		api.GET("/courses/export", exportHandler.Courses)
		api.POST("/courses", courseHandler.Create)
		api.PUT("/courses/:id", courseHandler.Update)
		api.DELETE("/courses/:id", courseHandler.Delete)

		api.GET("/timetable", timetableHandler.List)
		api.GET("/timetable/export", exportHandler.Timetable)
		api.POST("/timetable", timetableHandler.Create)
		api.PUT("/timetable/:id", timetableHandler.Update)
		api.DELETE("/timetable/:id", timetableHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store_configured", cfg.Database.Configured())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
