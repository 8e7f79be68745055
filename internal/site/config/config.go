// Package config loads the site server settings from an optional YAML file and LANDING_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultListen   = "127.0.0.1:4173"
	defaultAssets   = "ui"
	defaultSiteName = "Landing"
	defaultTagline  = "Launch a polished product page in an afternoon."
	defaultLogLevel = "info"

	envPrefix = "LANDING_"
)

// Config captures runtime settings for the site server.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `koanf:"listen"`
	// Assets is the directory holding main.wasm and wasm_exec.js.
	Assets string `koanf:"assets"`
	// Content optionally points at a directory of Markdown sections overriding the embedded copy.
	Content string `koanf:"content"`
	// LogDir enables the rotating file log when set.
	LogDir   string `koanf:"log_dir"`
	LogLevel string `koanf:"log_level"`
	// BrowserLogLevel is passed to the WASM bundle through the page markup.
	BrowserLogLevel string `koanf:"browser_log_level"`
	SiteName        string `koanf:"site_name"`
	// Description feeds the meta description and the hero copy.
	Description string `koanf:"description"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Listen:          defaultListen,
		Assets:          defaultAssets,
		LogLevel:        defaultLogLevel,
		BrowserLogLevel: defaultLogLevel,
		SiteName:        defaultSiteName,
		Description:     defaultTagline,
	}
}

// Load reads path when it exists, then overlays LANDING_* environment variables.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// LANDING_LOG_DIR -> log_dir, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.normalise()
	return cfg, nil
}

func (c *Config) normalise() {
	c.Listen = strings.TrimSpace(c.Listen)
	c.Assets = strings.TrimSpace(c.Assets)
	c.Content = strings.TrimSpace(c.Content)
	c.LogDir = strings.TrimSpace(c.LogDir)
	c.SiteName = strings.TrimSpace(c.SiteName)
	c.Description = strings.TrimSpace(c.Description)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.BrowserLogLevel = strings.ToLower(strings.TrimSpace(c.BrowserLogLevel))
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is required")
	}
	if c.Assets == "" {
		return fmt.Errorf("config: assets directory is required")
	}
	if c.SiteName == "" {
		return fmt.Errorf("config: site name is required")
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("config: invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if !validLevels[c.BrowserLogLevel] {
		return fmt.Errorf("config: invalid browser_log_level %q: must be one of debug, info, warn, error", c.BrowserLogLevel)
	}
	return nil
}
