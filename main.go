package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"aptlist/config"
	"aptlist/database"
	"aptlist/docs"
	"aptlist/handlers"
	"aptlist/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// Context with timeout for the initial connection only; the pool
	// itself lives for the whole process.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.WebOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/api-docs", docs.Serve())

	api := r.Group("/api")
	api.GET("/apartments", handlers.ListApartments(db))
	api.GET("/apartments/:id", handlers.GetApartment(db))
	api.POST("/apartments", handlers.CreateApartment(db))
	api.GET("/projects", handlers.ListProjects(db))

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}
