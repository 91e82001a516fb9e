package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Gateway  GatewayConfig  `toml:"gateway"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig часовой пояс клуба и сетка слотов
type BusinessConfig struct {
	Timezone    string `toml:"timezone"`
	OpeningHour int    `toml:"opening_hour"`
	ClosingHour int    `toml:"closing_hour"`
	SlotMinutes int    `toml:"slot_minutes"`
	Currency    string `toml:"currency"`
}

// Location загружает часовой пояс клуба
func (b BusinessConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// SlotDuration длительность одного слота
func (b BusinessConfig) SlotDuration() time.Duration {
	return time.Duration(b.SlotMinutes) * time.Minute
}

// GatewayConfig параметры платежного шлюза (таймаут в секундах)
type GatewayConfig struct {
	URL           string `toml:"url"`
	APIKey        string `toml:"api_key"`
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	Timeout       int    `toml:"timeout"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// Load читает TOML файл, подмешивает секреты из окружения (и .env, если он есть) и проверяет результат
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "beachclub-reservation-service",
		},
		Business: BusinessConfig{
			Timezone:    "Europe/Istanbul",
			OpeningHour: 8,
			ClosingHour: 22,
			SlotMinutes: 60,
			Currency:    "TRY",
		},
		Gateway: GatewayConfig{
			Timeout: 10,
		},
	}
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":            &c.Database.Password,
		"GATEWAY_API_KEY":        &c.Gateway.APIKey,
		"GATEWAY_SECRET_KEY":     &c.Gateway.SecretKey,
		"GATEWAY_WEBHOOK_SECRET": &c.Gateway.WebhookSecret,
		"AUTH_JWT_SECRET":        &c.Auth.JWTSecret,
	}

	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
}

// Validate проверяет обязательные поля и границы значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.user and database.dbname are required", ErrInvalidConfig)
	}

	if _, err := c.Business.Location(); err != nil {
		return fmt.Errorf("%w: business.timezone: %v", ErrInvalidConfig, err)
	}

	b := c.Business
	if b.OpeningHour < 0 || b.ClosingHour > 24 || b.OpeningHour >= b.ClosingHour {
		return fmt.Errorf("%w: business hours must satisfy 0 <= opening_hour < closing_hour <= 24", ErrInvalidConfig)
	}

	if b.SlotMinutes <= 0 || ((b.ClosingHour-b.OpeningHour)*60)%b.SlotMinutes != 0 {
		return fmt.Errorf("%w: business.slot_minutes must evenly divide the operating window", ErrInvalidConfig)
	}

	if len(b.Currency) != 3 {
		return fmt.Errorf("%w: business.currency must be an ISO 4217 code", ErrInvalidConfig)
	}

	if c.Gateway.URL == "" {
		return fmt.Errorf("%w: gateway.url is required", ErrInvalidConfig)
	}

	if c.Gateway.WebhookSecret == "" {
		return fmt.Errorf("%w: gateway webhook secret is required (GATEWAY_WEBHOOK_SECRET)", ErrInvalidConfig)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth jwt secret is required (AUTH_JWT_SECRET)", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
