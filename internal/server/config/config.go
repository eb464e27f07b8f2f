package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Переменные окружения сервера
const (
	EnvAddr         = "GUIDE_ADDR"
	EnvDBPath       = "GUIDE_DB"
	EnvJWTSecret    = "GUIDE_JWT_SECRET"
	EnvKafkaBrokers = "GUIDE_KAFKA_BROKERS"
	EnvKafkaTopic   = "GUIDE_KAFKA_TOPIC"
)

// KafkaConfig настройки публикации событий. Пустой Brokers отключает публикацию.
type KafkaConfig struct {
	Topic   string   `yaml:"topic"`
	Brokers []string `yaml:"brokers"`
}

// Config конфигурация сервера
type Config struct {
	Addr            string        `yaml:"addr"`
	DBPath          string        `yaml:"db_path"`
	JWTSecret       string        `yaml:"jwt_secret"`
	LogLevel        string        `yaml:"log_level"`
	SeedFile        string        `yaml:"seed_file"`
	Kafka           KafkaConfig   `yaml:"kafka"`
	TokenTTL        time.Duration `yaml:"token_ttl"`
	RateWindow      time.Duration `yaml:"rate_window"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       int           `yaml:"rate_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":8080",
		DBPath:          "guide.db",
		LogLevel:        "info",
		TokenTTL:        365 * 24 * time.Hour,
		RateLimit:       60,
		RateWindow:      time.Minute,
		ShutdownTimeout: 10 * time.Second,
		Kafka: KafkaConfig{
			Topic: "counter-events",
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML файл (--config),
// затем переменные окружения, затем явно указанные флаги.
func Load(args []string, getenv func(string) string) (Config, bool, error) {
	cfg := Default()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	showVersion := fs.Bool("version", false, "Show version information")
	addr := fs.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := fs.String("db", cfg.DBPath, "Path to SQLite database")
	seedFile := fs.String("seed", "", "YAML file with listings and campaigns to import on start")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}
	if *showVersion {
		return cfg, true, nil
	}

	if *configPath != "" {
		if err := loadFile(*configPath, &cfg); err != nil {
			return Config{}, false, err
		}
	}

	applyEnv(&cfg, getenv)

	// Флаги имеют наивысший приоритет, но только если заданы явно
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "db":
			cfg.DBPath = *dbPath
		case "seed":
			cfg.SeedFile = *seedFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, false, err
	}

	return cfg, false, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvJWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := getenv(EnvKafkaBrokers); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	if v := getenv(EnvKafkaTopic); v != "" {
		cfg.Kafka.Topic = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// minSecretLen минимальная длина секрета для HS256
const minSecretLen = 32

// Validate проверяет конфигурацию перед запуском
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	if len(c.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("jwt_secret must be at least %d characters (set %s)", minSecretLen, EnvJWTSecret))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		errs = append(errs, errors.New("rate_limit and rate_window must be positive"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic is required when brokers are set"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SlogLevel переводит LogLevel в slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
