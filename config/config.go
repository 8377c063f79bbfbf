package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	// Параметры анализа
	JumpThreshold float64 // порог скачка радиуса, px
	BlurKernel    int     // размер ядра размытия, 1 — без размытия
	MaxImageSide  int     // ограничение большей стороны, 0 — без уменьшения

	LogLevel     string
	HistoryLimit int // сколько проверок хранить на пользователя
	Workers      int // размер пула для пакетной проверки
	OutputDir    string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		OutputDir:     getEnvOrDefault("OUTPUT_DIR", "output"),
	}

	var err error
	if cfg.JumpThreshold, err = getEnvAsFloat("JUMP_THRESHOLD", 2.5); err != nil {
		return nil, err
	}
	if cfg.BlurKernel, err = getEnvAsInt("BLUR_KERNEL", 5); err != nil {
		return nil, err
	}
	if cfg.MaxImageSide, err = getEnvAsInt("MAX_IMAGE_SIDE", 0); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getEnvAsInt("HISTORY_LIMIT", 20); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvAsInt("WORKERS", 4); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность параметров.
func (c *Config) Validate() error {
	if c.JumpThreshold <= 0 {
		return fmt.Errorf("JUMP_THRESHOLD must be positive, got %v", c.JumpThreshold)
	}
	if c.BlurKernel < 1 || c.BlurKernel%2 == 0 {
		return fmt.Errorf("BLUR_KERNEL must be a positive odd number, got %d", c.BlurKernel)
	}
	if c.MaxImageSide < 0 {
		return fmt.Errorf("MAX_IMAGE_SIDE must not be negative, got %d", c.MaxImageSide)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("HISTORY_LIMIT must be at least 1, got %d", c.HistoryLimit)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, value)
	}
	return f, nil
}
