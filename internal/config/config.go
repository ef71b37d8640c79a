package config

import (
	"fmt"
	"os"
	"strconv"

	"artspace/internal/logger"
)

const (
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 760
	DefaultImageMaxEdge = 1024
)

type Config struct {
	LogLevel     string
	JSONLogs     bool
	WindowWidth  int
	WindowHeight int
	ImageMaxEdge int
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		ImageMaxEdge: DefaultImageMaxEdge,
	}
}

// FromEnv overlays ARTSPACE_* environment variables on the defaults.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("ARTSPACE_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := lookup("ARTSPACE_JSON_LOGS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("ARTSPACE_JSON_LOGS: %w", err)
		}
		cfg.JSONLogs = b
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"ARTSPACE_WINDOW_WIDTH", &cfg.WindowWidth},
		{"ARTSPACE_WINDOW_HEIGHT", &cfg.WindowHeight},
		{"ARTSPACE_IMAGE_MAX_EDGE", &cfg.ImageMaxEdge},
	}
	for _, entry := range ints {
		v, ok := lookup(entry.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.target = n
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.ImageMaxEdge <= 0 {
		return fmt.Errorf("image max edge must be positive, got %d", c.ImageMaxEdge)
	}
	return nil
}
