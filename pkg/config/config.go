package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultClientBaseURL = "http://localhost:5000"

// LoadDotEnv loads environment variables from the given .env files, or ".env" if none are given.
// Variables already set in the environment take precedence. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %q: %v", filename, err)
		}
	}
	return nil
}

func ProvideConfig() Config {
	return Config{
		BasePath: getEnv("BASE_PATH", ""),
		Port:     getEnvAsInt("PORT", 5000),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Logging: Logging{
			Level:  getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
			Pretty: getEnvAsBool("LOG_PRETTY", false),
		},
		Tracing: Tracing{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
		},
	}
}

type Config struct {
	BasePath   string
	Port       int
	Postgresql Postgresql
	Logging    Logging
	Tracing    Tracing
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Logging struct {
	Level  slog.Level
	Pretty bool
}

type Tracing struct {
	// JaegerEndpoint is the collector endpoint spans are exported to. Tracing is disabled if empty.
	JaegerEndpoint string
}

func (t Tracing) Enabled() bool {
	return t.JaegerEndpoint != ""
}

// ProvideClientConfig returns the configuration of the event log terminal client. Nothing is
// required, every setting has a default.
func ProvideClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: getEnv("EVENTLOG_URL", DefaultClientBaseURL),
		LogFile: getEnv("EVENTLOG_LOG_FILE", ""),
		Logging: Logging{
			Level: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
		},
	}
}

type ClientConfig struct {
	BaseURL string
	// LogFile receives the client logs. Logs are discarded if empty as the terminal is owned by the UI.
	LogFile string
	Logging Logging
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse %s as integer: %s", key, err.Error())
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("Can't parse %s as boolean: %s", key, err.Error())
	}
	return value
}

func getEnvAsLevel(key string, fallback slog.Level) slog.Level {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(valueStr)); err != nil {
		log.Fatalf("Can't parse %s as log level: %s", key, err.Error())
	}
	return level
}
