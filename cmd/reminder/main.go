package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-assistant/config"
	"task-assistant/config/postgre"
	"task-assistant/config/redis"
	"task-assistant/internal/reminder/job"
	reminderRepo "task-assistant/internal/reminder/repository/postgre"
	reminderUC "task-assistant/internal/reminder/usecase"
	"task-assistant/pkg/log"
	"task-assistant/pkg/mailer"
)

// main runs the reminder scheduler. Any number of replicas may run; a Redis
// lock lets only one of them work each tick.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting reminder service...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, logger, postgresDB)

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect(ctx, logger, redisClient)

	mail, err := mailer.New(mailer.Config{
		BaseURL: cfg.Mailer.BaseURL,
		APIKey:  cfg.Mailer.APIKey,
		From:    cfg.Mailer.From,
		Timeout: cfg.Mailer.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	// Reminder domain
	repo := reminderRepo.New(postgresDB, logger)
	uc := reminderUC.New(repo, mail, logger, cfg.Reminder.BatchSize)

	j, err := job.New(uc, job.NewRedisLocker(redisClient), logger, job.Config{
		Interval: cfg.Reminder.Interval,
		LockTTL:  cfg.Reminder.LockTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to schedule reminder job: ", err)
		return
	}

	j.Start(ctx)
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Reminder.LockTTL)
	defer cancel()
	j.Stop(stopCtx)

	logger.Info(ctx, "Reminder service stopped gracefully")
}
