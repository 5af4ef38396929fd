package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Job периодическая задача
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc адаптер функции к Job
type JobFunc func(ctx context.Context) error

// Run вызывает f(ctx)
func (f JobFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает фоновые задачи по расписанию
// Повторный запуск задачи пропускается, пока предыдущий не завершился
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger Logger
}

// NewScheduler создает планировщик
func NewScheduler(loc *time.Location, logger Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Every регистрирует задачу с фиксированным интервалом
func (s *Scheduler) Every(name string, interval time.Duration, timeout time.Duration, job Job) error {
	if interval <= 0 {
		return fmt.Errorf("worker: job %s: interval must be positive", name)
	}

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		s.runOnce(name, timeout, job)
	})
	if err != nil {
		return fmt.Errorf("worker: job %s: %w", name, err)
	}

	s.logger.Info("Worker: job %s scheduled every %s", name, interval)
	return nil
}

func (s *Scheduler) runOnce(name string, timeout time.Duration, job Job) {
	ctx := s.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := job.Run(ctx); err != nil {
		s.logger.Error("Worker: job %s failed: %v", name, err)
	}
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт выполняющиеся задачи, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
