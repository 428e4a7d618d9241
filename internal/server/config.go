package server

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the resolved server configuration. Precedence, lowest to
// highest: defaults, config file, environment, command-line flags.
type AppConfig struct {
	Addr       string
	ScriptDir  string
	AssetDir   string
	StartScene string
	ConfigPath string
}

// DefaultAppConfig returns the built-in defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:       ":8080",
		ConfigPath: "configs/novel.json",
	}
}

// fileConfig mirrors the optional JSON config file. Pointer fields so
// absent keys leave the base value alone.
type fileConfig struct {
	Addr       *string `json:"addr"`
	ScriptDir  *string `json:"scriptDir"`
	AssetDir   *string `json:"assetDir"`
	StartScene *string `json:"startScene"`
}

// envConfig mirrors the environment overrides.
type envConfig struct {
	Addr       *string `env:"NIGHTFALL_ADDR"`
	ScriptDir  *string `env:"NIGHTFALL_SCRIPT_DIR"`
	AssetDir   *string `env:"NIGHTFALL_ASSET_DIR"`
	StartScene *string `env:"NIGHTFALL_START_SCENE"`
}

func mergeFileConfig(base AppConfig, cfg *fileConfig) AppConfig {
	if cfg == nil {
		return base
	}
	if cfg.Addr != nil {
		base.Addr = *cfg.Addr
	}
	if cfg.ScriptDir != nil {
		base.ScriptDir = *cfg.ScriptDir
	}
	if cfg.AssetDir != nil {
		base.AssetDir = *cfg.AssetDir
	}
	if cfg.StartScene != nil {
		base.StartScene = *cfg.StartScene
	}
	return base
}

// loadConfigFromFile merges the JSON config at path into base. A missing
// file is not an error; the defaults stand.
func loadConfigFromFile(path string, base AppConfig) (AppConfig, error) {
	if path == "" {
		return base, nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read config %q: %w", cleanPath, err)
	}
	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %q: %w", cleanPath, err)
	}
	return mergeFileConfig(base, &cfg), nil
}

// applyEnvConfig merges NIGHTFALL_* environment variables into base.
func applyEnvConfig(base AppConfig) (AppConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Addr != nil {
		base.Addr = *cfg.Addr
	}
	if cfg.ScriptDir != nil {
		base.ScriptDir = *cfg.ScriptDir
	}
	if cfg.AssetDir != nil {
		base.AssetDir = *cfg.AssetDir
	}
	if cfg.StartScene != nil {
		base.StartScene = *cfg.StartScene
	}
	return base, nil
}

// ResolveConfig applies the file and environment layers over base.
func ResolveConfig(base AppConfig) AppConfig {
	cfg, err := loadConfigFromFile(base.ConfigPath, base)
	if err != nil {
		// A broken config file should not keep the novel from starting.
		log.Printf("config: %v (using defaults)", err)
		cfg = base
	}
	cfg, err = applyEnvConfig(cfg)
	if err != nil {
		log.Printf("config: %v (ignoring env)", err)
	}
	return cfg
}
