package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/memoix/internal/store"
)

// Config holds the resolved memoix settings.
type Config struct {
	DataDir       string
	DBPath        string
	LogFile       string
	LogLevel      string
	OnDuplicate   store.Policy
	PollSeconds   int
	CollectionDir string // seeded on startup when the directory exists
	IngredientsDB string // gzip JSON ingredient index; optional
}

const (
	defaultConfigPath  = "~/.config/memoix/config.toml"
	defaultDataDir     = "~/.local/share/memoix"
	defaultLogLevel    = "info"
	defaultPollSeconds = 2
)

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{
		DataDir:     mustExpand(defaultDataDir),
		LogLevel:    defaultLogLevel,
		OnDuplicate: store.PolicySkip,
		PollSeconds: defaultPollSeconds,
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, "memoix.db")
	cfg.LogFile = filepath.Join(cfg.DataDir, "memoix.log")
	cfg.CollectionDir = filepath.Join(cfg.DataDir, "collection")
	cfg.IngredientsDB = filepath.Join(cfg.DataDir, "ingredients_json.gz")
	return cfg
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config at path (or the default location), falling back to
// defaults when the file is missing and for every blank value.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir       string `toml:"data_dir"`
		DBPath        string `toml:"db_path"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
		OnDuplicate   string `toml:"on_duplicate"`
		PollSeconds   int    `toml:"poll_seconds"`
		CollectionDir string `toml:"collection_dir"`
		IngredientsDB string `toml:"ingredients_db"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		DataDir:     strings.TrimSpace(raw.DataDir),
		LogLevel:    strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		PollSeconds: raw.PollSeconds,
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	cfg.DBPath = pathOr(raw.DBPath, filepath.Join(cfg.DataDir, "memoix.db"))
	cfg.LogFile = pathOr(raw.LogFile, filepath.Join(cfg.DataDir, "memoix.log"))
	cfg.CollectionDir = pathOr(raw.CollectionDir, filepath.Join(cfg.DataDir, "collection"))
	cfg.IngredientsDB = pathOr(raw.IngredientsDB, filepath.Join(cfg.DataDir, "ingredients_json.gz"))

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.PollSeconds <= 0 {
		cfg.PollSeconds = defaultPollSeconds
	}
	policy, err := store.ParsePolicy(raw.OnDuplicate)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.OnDuplicate = policy

	return cfg, nil
}

func pathOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return mustExpand(value)
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
