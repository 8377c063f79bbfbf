package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ring-inspector/config"
	telegram "ring-inspector/internal/api"
	"ring-inspector/internal/container"
	"ring-inspector/internal/infrastructure/describer"
	"ring-inspector/internal/infrastructure/storage"
	"ring-inspector/internal/infrastructure/vision"
	"ring-inspector/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to parse log level: %v", err)
	}
	logger := logging.NewLogger("bot", level)

	// Создаём хранилища
	userRepo := storage.NewMemoryUserRepository()
	historyRepo := storage.NewMemoryInspectionRepository(cfg.HistoryLimit)

	// Детектор дефектов формы кольца
	detector := vision.NewDetector(vision.Options{
		JumpThreshold: cfg.JumpThreshold,
		BlurKernel:    cfg.BlurKernel,
		MaxSide:       cfg.MaxImageSide,
		Logger:        logger.With("vision"),
	})

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, historyRepo, detector, describer.NewTextDescriber(), logger.With("app"))

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logger)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("bot is running", "threshold", cfg.JumpThreshold, "blur", cfg.BlurKernel)
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot error: %v", err)
	}
	logger.Info("bot stopped")
}
