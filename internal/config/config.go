package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the client's connection and polling settings.
type Config struct {
	BaseURL      string
	Environment  string
	StatePath    string
	PollInterval time.Duration
}

const (
	defaultConfigPath  = "~/.config/frotactl/config.toml"
	defaultStatePath   = "~/.config/frotactl/state.json"
	defaultPollSeconds = 30
	devBaseURL         = "http://localhost:8000"
	prodBaseURL        = "https://api.frotaops.com"
	defaultEnvironment = "dev"
)

// Load locates and parses the config file, falling back to defaults
// when it is missing. The base_url key wins over the environment
// shorthand when both are set.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Environment:  defaultEnvironment,
		PollInterval: defaultPollSeconds * time.Second,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.BaseURL = devBaseURL
			cfg.StatePath = mustExpand(defaultStatePath)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL     string `toml:"base_url"`
		Environment string `toml:"environment"`
		StatePath   string `toml:"state_path"`
		PollSeconds int    `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Environment = strings.TrimSpace(raw.Environment)
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}

	cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = baseURLFor(cfg.Environment)
	}

	cfg.StatePath = strings.TrimSpace(raw.StatePath)
	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath
	}
	cfg.StatePath = mustExpand(cfg.StatePath)

	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}

	return cfg, nil
}

func baseURLFor(environment string) string {
	if environment == "prod" || environment == "production" {
		return prodBaseURL
	}
	return devBaseURL
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
