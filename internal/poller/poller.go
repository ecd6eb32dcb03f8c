package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/central-university-dev/go-homework-bot/internal/common/metrics"
	"github.com/central-university-dev/go-homework-bot/internal/config"
	"github.com/central-university-dev/go-homework-bot/internal/practicum"
)

type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// Poller выполняет один цикл опроса: запрос статусов, проверка ответа,
// отправка уведомлений. Всё изменяемое состояние цикла (метка времени,
// очередь недоставленных ошибок, дедупликация) принадлежит Poller и не
// переживает перезапуск процесса.
type Poller struct {
	client   practicum.HomeworkStatusGetter
	notifier Notifier
	backlog  *Backlog
	logger   *slog.Logger

	dedupWindow time.Duration

	fromDate        int64
	lastErrorText   string
	lastErrorSentAt time.Time

	now func() time.Time
}

func NewPoller(
	client practicum.HomeworkStatusGetter,
	notifier Notifier,
	fromDate int64,
	cfg *config.Config,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		client:      client,
		notifier:    notifier,
		backlog:     NewBacklog(cfg.BacklogLimit, logger),
		logger:      logger,
		dedupWindow: cfg.ErrorDedupWindow,
		fromDate:    fromDate,
		now:         time.Now,
	}
}

// CheckStatuses выполняет один цикл опроса. Любая ошибка цикла перехватывается
// здесь: она превращается в сообщение оператору и никогда не останавливает
// опрос. После каждого цикла, удачного или нет, выполняется попытка доставить
// накопившиеся сообщения об ошибках.
func (p *Poller) CheckStatuses(ctx context.Context) error {
	err := p.runCycle(ctx)
	if err != nil {
		metrics.PollCyclesTotal.WithLabelValues(metrics.ResultError).Inc()

		message := "Сбой в работе программы: " + err.Error()
		p.logger.Error(message)
		p.reportFailure(ctx, message)
	} else {
		metrics.PollCyclesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	}

	p.drainBacklog(ctx)
	metrics.ErrorBacklogSize.Set(float64(p.backlog.Len()))

	return err
}

func (p *Poller) runCycle(ctx context.Context) error {
	body, err := p.client.GetHomeworkStatuses(ctx, p.fromDate)
	if err != nil {
		return err
	}

	response, err := CheckResponse(body)
	if err != nil {
		p.logger.Error("Ответ API не прошёл проверку", "error", err)
		return err
	}

	if len(response.Homeworks) == 0 {
		p.logger.Debug("Новых статусов нет.")
	}

	for _, homework := range response.Homeworks {
		message, err := ParseStatus(homework)
		if err != nil {
			p.logger.Error("Не удалось разобрать статус домашней работы", "error", err)
			return err
		}

		p.notifier.Notify(ctx, message)
		metrics.HomeworkStatusesProcessed.Inc()
	}

	// Метка времени сдвигается только после полностью успешного цикла.
	p.fromDate = response.CurrentDate

	return nil
}

// reportFailure отправляет сообщение об ошибке оператору. Повтор того же
// текста внутри окна дедупликации подавляется. Сообщение, прошедшее
// дедупликацию, но не доставленное транспортом, попадает в очередь
// и будет переотправлено на следующем цикле.
func (p *Poller) reportFailure(ctx context.Context, message string) {
	if message == p.lastErrorText && p.now().Sub(p.lastErrorSentAt) <= p.dedupWindow {
		p.logger.Debug("Повторное сообщение об ошибке подавлено", "text", message)
		metrics.NotificationsTotal.WithLabelValues(metrics.StatusSuppressed).Inc()

		return
	}

	if p.notifier.Notify(ctx, message) {
		p.lastErrorText = message
		p.lastErrorSentAt = p.now()

		return
	}

	p.backlog.Push(message)
}

func (p *Poller) drainBacklog(ctx context.Context) {
	if p.backlog.Len() == 0 {
		return
	}

	p.backlog.Drain(func(text string) bool {
		if !p.notifier.Notify(ctx, text) {
			return false
		}

		// Доставка из очереди тоже фиксируется для дедупликации,
		// иначе та же ошибка на следующем цикле уйдёт повторно.
		p.lastErrorText = text
		p.lastErrorSentAt = p.now()

		return true
	})

	if remaining := p.backlog.Len(); remaining > 0 {
		p.logger.Error("Не все отложенные уведомления доставлены",
			"remaining", remaining,
		)
	}
}

// FromDate возвращает текущую нижнюю границу выборки статусов.
func (p *Poller) FromDate() int64 {
	return p.fromDate
}
