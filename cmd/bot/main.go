package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	itg "homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	mainLogger := appLogger.WithField("component", "main")
	mainLogger.WithField("poll_interval", cfg.PollInterval.String()).Info("Configuration loaded")

	bot, err := telebot.NewBot(telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, c telebot.Context) { // Global error handler
			appLogger.WithError(err).Error("telebot error")
		},
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := itg.NewTelebotAdapter(bot, cfg.TelegramChatID)
	apiClient := practicum.NewClient(cfg.PracticumToken, appLogger.WithField("component", "practicum"))

	watchdog := app.NewWatchdogService(
		apiClient,
		notifier,
		appLogger.WithField("component", "watchdog"),
		cfg.PollInterval,
	)

	digest := scheduler.NewDigestScheduler(
		watchdog,
		notifier,
		appLogger.WithField("component", "scheduler"),
		cfg.CronSpecDailyDigest,
	)
	if err := digest.Start(); err != nil {
		mainLogger.WithError(err).Fatal("Could not start daily digest scheduler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go watchdog.Run(ctx)
	mainLogger.Info("Application setup complete. Watchdog is running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	cancel()
	digest.Stop()
	mainLogger.Info("Application shut down gracefully")
}
