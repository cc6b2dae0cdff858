// @title           University Advisor API
// @version         1.0
// @description     Подбор университетов, стипендий и расчёт стоимости обучения.
// @host            localhost:8000
// @BasePath        /

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/config"
	"uniadvisor_backend/internal/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		logger.Fatal("Server stopped with error", "error", err)
	}
	logger.Sync()
}
