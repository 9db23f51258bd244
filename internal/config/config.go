package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	PlatformAPI PlatformAPIConfig `toml:"platform_api"`
	Realtime    RealtimeConfig    `toml:"realtime"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// PlatformAPIConfig настройки клиента REST API платформы
type PlatformAPIConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`   // сервисный токен шлюза
	Timeout int    `toml:"timeout"` // секунды
}

// RealtimeConfig настройки подключения к pub/sub каналу платформы
type RealtimeConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"` // ws:// или wss://
	AppKey        string `toml:"app_key"`
	ChannelPrefix string `toml:"channel_prefix"`
	PingInterval  int    `toml:"ping_interval"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "evp-gateway"
	}
	if c.PlatformAPI.Timeout == 0 {
		c.PlatformAPI.Timeout = 10
	}
	if c.Realtime.PingInterval == 0 {
		c.Realtime.PingInterval = 30
	}
	if c.Realtime.ChannelPrefix == "" {
		c.Realtime.ChannelPrefix = "private-conversation"
	}
}

func (c *Config) validate() error {
	if c.PlatformAPI.URL == "" {
		return fmt.Errorf("config: platform_api.url is required")
	}
	if c.Realtime.Enabled && c.Realtime.URL == "" {
		return fmt.Errorf("config: realtime.url is required when realtime is enabled")
	}
	return nil
}
