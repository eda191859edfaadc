package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/eval-consolidator/pkg/config/env"
	"github.com/DjordjeVuckovic/eval-consolidator/pkg/stringsutil"
)

const (
	defaultPort      = "8080"
	defaultBodyLimit = "2M"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	BodyLimit   string
	LogLevel    slog.Level
	// SettingsPath points at an optional consolidation settings YAML file.
	SettingsPath string
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/consolidate_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitTrim(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	bodyLimit := os.Getenv("BODY_LIMIT")
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		BodyLimit:    bodyLimit,
		LogLevel:     level,
		SettingsPath: os.Getenv("CONSOLIDATION_CONFIG"),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
