package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type StatusChecker interface {
	CheckStatuses(ctx context.Context) error
}

// Scheduler запускает цикл опроса с фиксированным интервалом. Ошибки
// цикла логируются и никогда не останавливают расписание.
type Scheduler struct {
	scheduler *gocron.Scheduler
	checker   StatusChecker
	logger    *slog.Logger
	interval  time.Duration
}

func NewScheduler(checker StatusChecker, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Scheduler{
		scheduler: scheduler,
		checker:   checker,
		logger:    logger,
		interval:  interval,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.logger.Debug("Запуск цикла опроса")

		ctx := context.Background()
		if err := s.checker.CheckStatuses(ctx); err != nil {
			s.logger.Error("Цикл опроса завершился с ошибкой",
				"error", err,
			)
		}
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
