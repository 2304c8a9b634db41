package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/config"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/container"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to initialize container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	if err := serve(c); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
