package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the values shutter needs at boot.
type Config struct {
	APIURL      string
	APIKey      string
	DownloadDir string
	LogFile     string
	LogLevel    string
}

const (
	defaultConfigPath  = "~/.config/shutter/config.toml"
	defaultAPIURL      = "https://api.pexels.com/v1/search"
	defaultDownloadDir = "~/Pictures/shutter"
	defaultLogFile     = "~/.local/state/shutter/shutter.log"
	defaultLogLevel    = "info"

	// EnvAPIKey overrides api_key from the config file.
	EnvAPIKey = "PEXELS_API_KEY"
	// EnvAPIURL overrides api_url from the config file.
	EnvAPIURL = "SHUTTER_API_URL"
)

// ErrMissingAPIKey is returned by Validate when no API key was supplied.
var ErrMissingAPIKey = errors.New("api key not configured (set api_key or " + EnvAPIKey + ")")

// Load locates and parses the shutter config, falling back to defaults when
// missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIURL      string `toml:"api_url"`
		APIKey      string `toml:"api_key"`
		DownloadDir string `toml:"download_dir"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if v, ok := os.LookupEnv(EnvAPIKey); ok && strings.TrimSpace(v) != "" {
		raw.APIKey = v
	}
	if v, ok := os.LookupEnv(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		raw.APIURL = v
	}

	cfg := Config{
		APIURL:      orDefault(raw.APIURL, defaultAPIURL),
		APIKey:      strings.TrimSpace(raw.APIKey),
		DownloadDir: mustExpand(orDefault(raw.DownloadDir, defaultDownloadDir)),
		LogFile:     mustExpand(orDefault(raw.LogFile, defaultLogFile)),
		LogLevel:    strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel)),
	}
	return cfg, nil
}

// Validate reports configuration that would make every search fail.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
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
