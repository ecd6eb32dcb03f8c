package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/central-university-dev/go-homework-bot/internal/common/metrics"
	"github.com/central-university-dev/go-homework-bot/internal/config"
	domainerrors "github.com/central-university-dev/go-homework-bot/internal/domain/errors"
	"github.com/central-university-dev/go-homework-bot/internal/poller"
	"github.com/central-university-dev/go-homework-bot/internal/practicum"
	"github.com/central-university-dev/go-homework-bot/internal/scheduler"
	"github.com/central-university-dev/go-homework-bot/internal/telegram"
	"github.com/central-university-dev/go-homework-bot/pkg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		var missing *domainerrors.ErrMissingEnvVar
		if errors.As(err, &missing) {
			appLogger.Error("Отсутствует обязательная переменная окружения. Программа принудительно остановлена.",
				"name", missing.Name,
			)
		}

		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании Telegram клиента",
			"error", err,
		)

		return err
	}

	client := practicum.NewClient(cfg.PracticumToken, "", cfg, appLogger)

	statusPoller := poller.NewPoller(client, notifier, time.Now().Unix(), cfg, appLogger)

	pollScheduler := scheduler.NewScheduler(statusPoller, cfg.PollInterval, appLogger)
	pollScheduler.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	appLogger.Info("Получен сигнал завершения",
		"signal", sig.String(),
	)

	pollScheduler.Stop()
	cancel()

	return nil
}
