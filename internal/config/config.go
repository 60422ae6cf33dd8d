package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Address string `env:"HTTP_ADDRESS" env-default:":8080"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"reviewer"`
	Password string `env:"DB_PASSWORD" env-default:"reviewer"`
	DBName   string `env:"DB_NAME" env-default:"pr_review"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// DSN собирает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load читает конфигурацию из окружения; .env, если он есть, подхватывается
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return &cfg, nil
}
