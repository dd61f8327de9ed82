package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQL  = "sql"
	BackendFile = "file"
)

// Config holds every setting of the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Redis    RedisConfig    `yaml:"redis"`
	Kitchen  KitchenConfig  `yaml:"kitchen"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig selects the order store: "sql" (default) or "file".
type StorageConfig struct {
	Backend  string `yaml:"backend"`
	FilePath string `yaml:"file_path"`
}

// DatabaseConfig is used by the sql backend. URL wins over the discrete fields;
// with neither set a local sqlite file is used.
type DatabaseConfig struct {
	URL            string `yaml:"url"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode"`
	MaxConns       int    `yaml:"max_conns"`
	ConnectRetries int    `yaml:"connect_retries"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
	UseTLS   bool   `yaml:"use_tls"`
}

func (c RabbitMQConfig) Enabled() bool { return c.Host != "" }

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type KitchenConfig struct {
	Timezone     string        `yaml:"timezone"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":5001"},
		Storage:  StorageConfig{Backend: BackendSQL, FilePath: "orders.json"},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable", MaxConns: 10, ConnectRetries: 10},
		RabbitMQ: RabbitMQConfig{Port: 5672, VHost: "/"},
		Kitchen:  KitchenConfig{Timezone: "America/Toronto", PollInterval: 5 * time.Second},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads path (when non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("couldn't read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("couldn't parse config file %s: %w", path, err)
		}
	}
	applyEnv(cfg, getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := getenv("ORDER_DESK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			cfg.Server.Addr = ":" + v
		}
	}
	if v := getenv("ORDER_DESK_STORAGE"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := getenv("RABBITMQ_HOST"); v != "" {
		cfg.RabbitMQ.Host = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQL:
	case BackendFile:
		if c.Storage.FilePath == "" {
			return errors.New("invalid config: storage.file_path is required for the file backend")
		}
	default:
		return fmt.Errorf("invalid config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Kitchen.PollInterval <= 0 {
		return errors.New("invalid config: kitchen.poll_interval must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: kitchen.timezone: %w", err)
	}
	if c.Server.Addr == "" {
		return errors.New("invalid config: server.addr is empty")
	}
	return nil
}

// Location is the display time zone for order timestamps.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Kitchen.Timezone)
}

func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
