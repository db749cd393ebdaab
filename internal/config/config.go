package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Shop     ShopConfig     `toml:"shop"`
	Redis    RedisConfig    `toml:"redis"`
	Throttle ThrottleConfig `toml:"throttle"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | memory
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ShopConfig параметры салона
type ShopConfig struct {
	Timezone          string `toml:"timezone"`
	MaxAdvanceDays    int    `toml:"max_advance_days"` // 0 - без ограничения
	PurgeGraceMinutes int    `toml:"purge_grace_minutes"`
	PurgeCron         string `toml:"purge_cron"`    // пусто - очистка отключена
	ReminderCron      string `toml:"reminder_cron"` // пусто - напоминания отключены
	JobTimeout        int    `toml:"job_timeout"`   // секунды
}

// Location часовой пояс салона
func (c ShopConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// RedisConfig пустой адрес означает, что Redis не используется
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (c RedisConfig) Enabled() bool {
	return c.Address != ""
}

// ThrottleConfig ограничение частоты заявок с одного номера
type ThrottleConfig struct {
	Enabled       bool   `toml:"enabled"`
	Limit         int    `toml:"limit"`
	WindowSeconds int    `toml:"window_seconds"`
	KeyPrefix     string `toml:"key_prefix"`
}

func (c ThrottleConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// Load читает конфигурацию из TOML файла
//
// Перед разбором подгружается .env из каталога файла (если есть),
// плейсхолдеры ${VAR} в файле подставляются из окружения.
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envPath, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(os.ExpandEnv(string(data)), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию; поля из файла их перекрывают
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "barber_booking",
			Path:        "/metrics",
		},
		Shop: ShopConfig{
			Timezone:          "UTC",
			PurgeGraceMinutes: 60,
			PurgeCron:         "*/15 * * * *",
			ReminderCron:      "* * * * *",
			JobTimeout:        30,
		},
		Throttle: ThrottleConfig{
			Enabled:       true,
			Limit:         5,
			WindowSeconds: 60,
			KeyPrefix:     "barber:submit:",
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database.host and database.dbname are required for postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown database.driver %q", c.Database.Driver)
	}

	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("config: invalid shop.timezone %q: %w", c.Shop.Timezone, err)
	}
	if c.Shop.MaxAdvanceDays < 0 {
		return fmt.Errorf("config: shop.max_advance_days must not be negative")
	}
	if c.Shop.PurgeGraceMinutes < 0 {
		return fmt.Errorf("config: shop.purge_grace_minutes must not be negative")
	}

	if c.Throttle.Enabled && (c.Throttle.Limit <= 0 || c.Throttle.WindowSeconds <= 0) {
		return fmt.Errorf("config: throttle.limit and throttle.window_seconds must be positive")
	}

	return nil
}
