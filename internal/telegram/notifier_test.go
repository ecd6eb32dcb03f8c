package telegram_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-homework-bot/internal/config"
	"github.com/central-university-dev/go-homework-bot/internal/telegram"
)

type fakeSender struct {
	err  error
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)

	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}

	return tgbotapi.Message{MessageID: 1}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		TelegramChatID:    123456,
		TelegramSendRate:  100,
		TelegramSendBurst: 100,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNotifier_Delivered(t *testing.T) {
	sender := &fakeSender{}

	notifier := telegram.NewNotifierWithSender(sender, testConfig(), testLogger())

	ok := notifier.Notify(context.Background(), "Новое уведомление")

	assert.True(t, ok)
	require.Len(t, sender.sent, 1)

	msg, isMessage := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, isMessage)
	assert.Equal(t, int64(123456), msg.ChatID)
	assert.Equal(t, "Новое уведомление", msg.Text)
}

func TestNotifier_TransportFailureAbsorbed(t *testing.T) {
	sender := &fakeSender{err: errors.New("forbidden: bot was blocked by the user")}

	notifier := telegram.NewNotifierWithSender(sender, testConfig(), testLogger())

	ok := notifier.Notify(context.Background(), "Новое уведомление")

	assert.False(t, ok, "ошибка транспорта поглощается и наружу не выходит")
	assert.Len(t, sender.sent, 1)
}

func TestNotifier_CanceledContext(t *testing.T) {
	sender := &fakeSender{}

	notifier := telegram.NewNotifierWithSender(sender, testConfig(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := notifier.Notify(ctx, "Новое уведомление")

	assert.False(t, ok)
	assert.Empty(t, sender.sent)
}
