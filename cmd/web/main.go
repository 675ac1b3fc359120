package main

import (
	"log/slog"
	"os"
	"time"

	"aptlist/config"
	"aptlist/web"

	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	r := web.NewRouter(cfg)

	slog.Info("web server starting", "port", cfg.WebPort, "api", cfg.InternalAPIBase)
	if err := r.Run(":" + cfg.WebPort); err != nil {
		slog.Error("web server stopped", "error", err)
		os.Exit(1)
	}
}
