package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/config"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/container"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/logger"
)

// staleDraftAge is how long a draft can sit untouched before the daily
// report flags it.
const staleDraftAge = 30 * 24 * time.Hour

func main() {
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

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeContactNotify, handleContactNotify(c))
	mux.HandleFunc(shared.TypeStaleDrafts, handleStaleDrafts(c))

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(shared.TypeStaleDrafts, nil)); err != nil {
		logger.Error("failed to register stale drafts schedule", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler exited", err)
		}
	}()

	logger.Info("worker starting", map[string]interface{}{"queues": "default"})
	if err := srv.Run(mux); err != nil {
		logger.Error("worker exited with error", err)
		os.Exit(1)
	}
}

// handleContactNotify records that the admin notification for a new
// contact message went out. Actual delivery (email/slack) hangs off
// this hook.
func handleContactNotify(c *container.Container) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload shared.ContactNotifyPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid contact notify payload: %w", err)
		}

		if err := c.ContactRepo.MarkNotified(ctx, payload.MessageID, time.Now()); err != nil {
			return fmt.Errorf("failed to mark message notified: %w", err)
		}

		logger.Info("contact notification processed", map[string]interface{}{
			"message_id": payload.MessageID.String(),
			"service":    payload.Service,
		})
		return nil
	}
}

// handleStaleDrafts logs a daily count of drafts that have not been
// touched in a month, for the editorial dashboard.
func handleStaleDrafts(c *container.Container) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		count, err := c.ArticleRepo.CountStaleDrafts(ctx, time.Now().Add(-staleDraftAge))
		if err != nil {
			return fmt.Errorf("failed to count stale drafts: %w", err)
		}

		logger.Info("stale draft report", map[string]interface{}{"count": count})
		return nil
	}
}
