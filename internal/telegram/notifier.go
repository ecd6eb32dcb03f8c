package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/central-university-dev/go-homework-bot/internal/common/metrics"
	"github.com/central-university-dev/go-homework-bot/internal/config"
)

// MessageSender — транспорт отправки сообщений. Телеграмный *tgbotapi.BotAPI
// удовлетворяет ему напрямую, в тестах подменяется моком.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет текстовые уведомления в один фиксированный чат.
// Любая ошибка отправки поглощается здесь и наружу не распространяется.
type Notifier struct {
	bot     MessageSender
	chatID  int64
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewNotifier(token string, cfg *config.Config, logger *slog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return NewNotifierWithSender(bot, cfg, logger), nil
}

func NewNotifierWithSender(sender MessageSender, cfg *config.Config, logger *slog.Logger) *Notifier {
	// Telegram ограничивает частоту сообщений в один чат.
	limiter := rate.NewLimiter(rate.Limit(cfg.TelegramSendRate), cfg.TelegramSendBurst)

	return &Notifier{
		bot:     sender,
		chatID:  cfg.TelegramChatID,
		limiter: limiter,
		logger:  logger,
	}
}

// Notify доставляет text в фиксированный чат. Возвращает true при
// подтверждённой доставке и false при любой ошибке транспорта.
func (n *Notifier) Notify(ctx context.Context, text string) bool {
	if err := n.limiter.Wait(ctx); err != nil {
		n.logger.Error("Ошибка при отправке сообщения", "error", err)
		metrics.NotificationsTotal.WithLabelValues(metrics.StatusFailed).Inc()

		return false
	}

	msg := tgbotapi.NewMessage(n.chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Ошибка при отправке сообщения", "error", err)
		metrics.NotificationsTotal.WithLabelValues(metrics.StatusFailed).Inc()

		return false
	}

	n.logger.Debug("Сообщение успешно отправлено в чат",
		"chatID", n.chatID,
		"text", text,
	)
	metrics.NotificationsTotal.WithLabelValues(metrics.StatusSent).Inc()

	return true
}
