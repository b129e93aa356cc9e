package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFeedURL - адрес RSS-ленты подкаста Operation Code.
const DefaultFeedURL = "http://operationcode.libsyn.com/rss"

// Переменные окружения, переопределяющие значения из файла конфигурации.
const (
	EnvFeedURL  = "PODCASTS_FEED_URL"
	EnvAddress  = "PODCASTS_ADDRESS"
	EnvLogLevel = "PODCASTS_LOG_LEVEL"
)

// Config представляет основную конфигурацию сервиса страницы подкастов.
type Config struct {
	Server ServerConfig `json:"server" toml:"server" yaml:"server"`
	Logger LoggerConfig `json:"logger" toml:"logger" yaml:"logger"`
	App    AppConfig    `json:"app" toml:"app" yaml:"app"`
}

// ServerConfig содержит настройки HTTP-сервера приложения.
type ServerConfig struct {
	Address string `json:"address" toml:"address" yaml:"address"`
}

// LoggerConfig содержит настройки системы логирования.
// Если File или ErrorFile не заданы, логи пишутся в stdout и stderr.
type LoggerConfig struct {
	Level     string `json:"level" toml:"level" yaml:"level"`
	File      string `json:"file" toml:"file" yaml:"file"`
	ErrorFile string `json:"error_file" toml:"error_file" yaml:"error_file"`
}

// AppConfig содержит настройки загрузки ленты.
type AppConfig struct {
	FeedURL string `json:"feed_url" toml:"feed_url" yaml:"feed_url"`
}

// Load загружает конфигурацию из файла по указанному пути.
// Формат определяется по расширению: .toml, .yaml/.yml, иначе JSON.
// Пустой путь означает значения по умолчанию. После чтения файла
// применяются переменные окружения (в том числе из .env).
func Load(configPath string) (*Config, error) {
	cfg := New()
	if configPath != "" {
		fileData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := decode(configPath, fileData, cfg); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.applyEnv()
	cfg.Logger.Level = strings.ToLower(strings.TrimSpace(cfg.Logger.Level))
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFeedURL); v != "" {
		c.App.FeedURL = v
	}
	if v := os.Getenv(EnvAddress); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logger.Level = v
	}
}

// New создает новый экземпляр Config с значениями по умолчанию.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		App: AppConfig{
			FeedURL: DefaultFeedURL,
		},
	}
}

// Validate проверяет корректность конфигурации.
// Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is not set")
	}
	u, err := url.ParseRequestURI(c.App.FeedURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid app.feed_url: %q", c.App.FeedURL)
	}
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logger.level: %q", c.Logger.Level)
	}
	return nil
}
