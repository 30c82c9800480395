// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	AppEnv string `env:"ENV"`
	Port   string `env:"PORT" envDefault:"8080"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath      string `env:"DB_PATH" envDefault:"marketing.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	TelegramToken string `env:"TELEGRAM_APITOKEN"`
	OwnerChatID   int64  `env:"OWNER_CHAT_ID"`

	ReferralBaseURL string `env:"REFERRAL_BASE_URL" envDefault:"https://argument-st.ru/?ref="`
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL обязателен для DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("неподдерживаемый DB_DRIVER: %q", cfg.DBDriver)
	}

	if cfg.TelegramToken == "" {
		log.Println("Предупреждение: TELEGRAM_APITOKEN не установлен. Уведомления в Telegram отключены.")
	} else if cfg.OwnerChatID == 0 {
		log.Println("Предупреждение: OWNER_CHAT_ID не установлен. Уведомления в Telegram отключены.")
	}

	log.Println("Конфигурация загружена.")
	return cfg, nil
}

// DSN возвращает строку подключения для выбранного драйвера.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.DatabaseURL
	}
	return c.DBPath
}

// NotificationsEnabled сообщает, заданы ли токен бота и чат владельца.
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.OwnerChatID != 0
}

// IsDev сообщает, запущено ли приложение в режиме разработки.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}
