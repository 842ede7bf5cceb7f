package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Redis    RedisConfig    `toml:"redis"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки выпуска и проверки токенов
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// BookingConfig политика сетки слотов.
// Единственный источник правды для рабочих часов и шага слота:
// и выдача слотов, и запись бронирования читают одну и ту же политику.
type BookingConfig struct {
	OpenTime    string `toml:"open_time"`
	CloseTime   string `toml:"close_time"`
	StepMinutes int    `toml:"step_minutes"`
}

// SlotPolicy конвертирует секцию [booking] в доменную политику
func (b BookingConfig) SlotPolicy() (domain.SlotPolicy, error) {
	openTime, err := types.NewTimeStringFromString(b.OpenTime)
	if err != nil {
		return domain.SlotPolicy{}, fmt.Errorf("booking.open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(b.CloseTime)
	if err != nil {
		return domain.SlotPolicy{}, fmt.Errorf("booking.close_time: %w", err)
	}

	policy := domain.SlotPolicy{
		OpenTime:    openTime,
		CloseTime:   closeTime,
		StepMinutes: b.StepMinutes,
	}
	if err := policy.Validate(); err != nil {
		return domain.SlotPolicy{}, err
	}
	return policy, nil
}

// SMTPConfig настройки отправки почты
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// RedisConfig настройки redis для rate limiter
type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	RateLimit       int    `toml:"rate_limit"`
	RateLimitWindow int    `toml:"rate_limit_window"` // seconds
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
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
			File:  "logs/booking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "qc-booking-service",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60,
		},
		Booking: BookingConfig{
			OpenTime:    domain.DefaultOpenTime,
			CloseTime:   domain.DefaultCloseTime,
			StepMinutes: domain.DefaultSlotStepMinutes,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			RateLimit:       120,
			RateLimitWindow: 60,
		},
	}
}

func (c *Config) validate() error {
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if c.SMTP.Enabled && c.SMTP.Host == "" {
		return fmt.Errorf("config: smtp.host is required when smtp is enabled")
	}
	if _, err := c.Booking.SlotPolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
