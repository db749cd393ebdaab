package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// JobFunc фоновая задача
type JobFunc func(ctx context.Context) error

// Scheduler запускает фоновые задачи (очистка, напоминания) по cron расписанию
// Один и тот же job не запускается параллельно сам с собой
type Scheduler struct {
	cron    *cron.Cron
	logger  Logger
	timeout time.Duration

	mu         sync.Mutex
	onStart    []namedJob
	baseCtx    context.Context
	cancelBase context.CancelFunc
	wg         sync.WaitGroup
}

type namedJob struct {
	name string
	fn   JobFunc
}

// New создает планировщик. loc - часовой пояс салона для cron выражений,
// timeout - ограничение на один запуск задачи
func New(loc *time.Location, timeout time.Duration, logger Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}

	cronLogger := cron.PrintfLogger(printfAdapter{logger: logger})
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger:     logger,
		timeout:    timeout,
		baseCtx:    ctx,
		cancelBase: cancel,
	}
}

// Register добавляет задачу. Пустой spec означает, что задача отключена
// runOnStart - выполнить задачу один раз сразу при Start
func (s *Scheduler) Register(name, spec string, runOnStart bool, fn JobFunc) error {
	if spec == "" {
		s.logger.Info("Scheduler: job %s is disabled", name)
		return nil
	}

	if _, err := s.cron.AddFunc(spec, func() { s.run(name, fn) }); err != nil {
		return fmt.Errorf("scheduler: invalid spec %q for job %s: %w", spec, name, err)
	}

	if runOnStart {
		s.mu.Lock()
		s.onStart = append(s.onStart, namedJob{name: name, fn: fn})
		s.mu.Unlock()
	}

	s.logger.Info("Scheduler: job %s registered with spec %q", name, spec)
	return nil
}

// Start запускает планировщик и стартовые задачи
func (s *Scheduler) Start() {
	s.mu.Lock()
	jobs := s.onStart
	s.mu.Unlock()

	for _, job := range jobs {
		s.wg.Add(1)
		go func(job namedJob) {
			defer s.wg.Done()
			s.run(job.name, job.fn)
		}(job)
	}

	s.cron.Start()
	s.logger.Info("Scheduler: started")
}

// Stop останавливает планировщик и ждет завершения задач или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop().Done()

	done := make(chan struct{})
	go func() {
		<-cronDone
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancelBase()
		s.logger.Info("Scheduler: stopped")
		return nil
	case <-ctx.Done():
		s.cancelBase()
		return fmt.Errorf("scheduler: stop: %w", ctx.Err())
	}
}

func (s *Scheduler) run(name string, fn JobFunc) {
	ctx := s.baseCtx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := fn(ctx); err != nil {
		s.logger.Error("Scheduler: job %s failed after %s: %v", name, time.Since(start), err)
		return
	}
	s.logger.Info("Scheduler: job %s finished in %s", name, time.Since(start))
}

type printfAdapter struct {
	logger Logger
}

func (a printfAdapter) Printf(format string, v ...interface{}) {
	a.logger.Info("cron: "+format, v...)
}
