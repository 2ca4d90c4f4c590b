package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"studyspace/config"
	"studyspace/services/spaces"
)

const TypeSpacesRefresh = "spaces:refresh"

// minRefreshInterval floors the schedule so a zero or negative TTL in the
// environment cannot produce an invalid cron spec.
const minRefreshInterval = time.Minute

// SpaceCacheWorker keeps the spaces listing cache warm: an asynq scheduler
// enqueues a refresh task per interval and a single-worker server consumes
// it, both on the app's Redis instance.
type SpaceCacheWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	logger    *zap.Logger
}

// scheduleSpec renders the refresh interval as an asynq cron spec.
func scheduleSpec(interval time.Duration) string {
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}
	return fmt.Sprintf("@every %s", interval)
}

// StartSpaceCacheRefresher runs the refresher in the background and returns
// the worker for graceful shutdown. A failed start is non-fatal: the listing
// handler falls back to fetching on demand.
func StartSpaceCacheRefresher(svc spaces.SpaceService, interval time.Duration, logger *zap.Logger) *SpaceCacheWorker {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		// Refreshes are idempotent and cheap; one worker is enough and a
		// second would only race it.
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSpacesRefresh, func(ctx context.Context, _ *asynq.Task) error {
		if err := svc.Refresh(ctx); err != nil {
			logger.Warn("spaces cache refresh failed", zap.Error(err))
			return err
		}
		return nil
	})

	w := &SpaceCacheWorker{logger: logger}

	if err := srv.Start(mux); err != nil {
		logger.Error("failed to start spaces cache worker", zap.Error(err))
		return w
	}
	w.server = srv

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(scheduleSpec(interval), asynq.NewTask(TypeSpacesRefresh, nil)); err != nil {
		logger.Error("failed to register spaces refresh schedule", zap.Error(err))
	}
	if err := scheduler.Start(); err != nil {
		logger.Error("failed to start spaces refresh scheduler", zap.Error(err))
	} else {
		w.scheduler = scheduler
	}

	// Prime once at startup so the first page load does not wait on the
	// remote API.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := svc.Refresh(ctx); err != nil {
			logger.Warn("initial spaces cache prime failed", zap.Error(err))
		}
	}()

	return w
}

// Shutdown stops the scheduler first so no new refreshes enqueue, then
// drains the worker.
func (w *SpaceCacheWorker) Shutdown() {
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	if w.server != nil {
		w.server.Shutdown()
	}
}
