package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"task-assistant/internal/reminder"
	"task-assistant/pkg/log"
)

const lockKey = "task-assistant:reminder:lock"

type Config struct {
	Interval time.Duration
	LockTTL  time.Duration
}

// Job runs reminder.UseCase.SendDue on a fixed interval. Across replicas
// only the holder of the lock runs a given tick.
type Job struct {
	uc     reminder.UseCase
	locker Locker
	l      log.Logger
	cfg    Config
	cron   *cron.Cron
}

func New(uc reminder.UseCase, locker Locker, l log.Logger, cfg Config) (*Job, error) {
	if cfg.Interval < time.Second {
		return nil, fmt.Errorf("reminder job: interval must be at least 1s, got %s", cfg.Interval)
	}
	if cfg.LockTTL <= 0 || cfg.LockTTL > cfg.Interval {
		cfg.LockTTL = cfg.Interval
	}

	j := &Job{
		uc:     uc,
		locker: locker,
		l:      l,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	if _, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LockTTL)
		defer cancel()
		j.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("reminder job: schedule: %w", err)
	}

	return j, nil
}

func (j *Job) Start(ctx context.Context) {
	j.cron.Start()
	j.l.Infof(ctx, "Reminder job started, interval %s", j.cfg.Interval)
}

// Stop waits for a running tick to finish or ctx to expire.
func (j *Job) Stop(ctx context.Context) {
	stopCtx := j.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	j.l.Info(ctx, "Reminder job stopped")
}

// RunOnce performs a single tick.
func (j *Job) RunOnce(ctx context.Context) {
	release, ok, err := j.locker.Acquire(ctx, lockKey, j.cfg.LockTTL)
	if err != nil {
		j.l.Errorf(ctx, "internal.reminder.job.RunOnce.Acquire: %v", err)
		return
	}
	if !ok {
		j.l.Debug(ctx, "internal.reminder.job.RunOnce: lock held elsewhere, skipping")
		return
	}
	defer release(context.WithoutCancel(ctx))

	out, err := j.uc.SendDue(ctx)
	if err != nil {
		j.l.Errorf(ctx, "internal.reminder.job.RunOnce.SendDue: %v", err)
		return
	}
	if out.Candidates > 0 {
		j.l.Infof(ctx, "Reminders: %d due, %d sent, %d failed", out.Candidates, out.Sent, out.Failed)
	}
}
