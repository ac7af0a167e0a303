// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
	BackendScript   = "script"
)

const (
	RendererDialog = "dialog"
	RendererForm   = "form"
	RendererPlain  = "plain"
)

const envPrefix = "DIALOGMGR_"

type Config struct {
	Backend  string `toml:"backend,omitempty"`
	Renderer string `toml:"renderer,omitempty"`
	Language string `toml:"language,omitempty"`
	LogFile  string `toml:"log_file,omitempty"`
	Debug    bool   `toml:"debug,omitempty"`
	// Answers feeds the script backend, comma separated. It is normally
	// only set from the environment.
	Answers string `toml:"answers,omitempty"`
}

// Defaults fills unset fields.
func (c Config) Defaults() Config {
	if c.Backend == "" {
		c.Backend = BackendTerminal
	}
	if c.Renderer == "" {
		c.Renderer = RendererDialog
	}
	return c
}

func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case "", BackendTerminal, BackendHeadless, BackendScript:
	default:
		errs = append(errs, fmt.Errorf("backend %q must be terminal, headless, or script", c.Backend))
	}
	switch c.Renderer {
	case "", RendererDialog, RendererForm, RendererPlain:
	default:
		errs = append(errs, fmt.Errorf("renderer %q must be dialog, form, or plain", c.Renderer))
	}
	if c.Backend == BackendScript && strings.TrimSpace(c.Answers) == "" {
		errs = append(errs, errors.New("script backend needs answers"))
	}
	return errors.Join(errs...)
}

// ApplyEnv overlays DIALOGMGR_* variables from environ, which has the
// form of os.Environ.
func ApplyEnv(cfg Config, environ []string) (Config, error) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		switch strings.TrimPrefix(key, envPrefix) {
		case "BACKEND":
			cfg.Backend = strings.ToLower(strings.TrimSpace(value))
		case "RENDERER":
			cfg.Renderer = strings.ToLower(strings.TrimSpace(value))
		case "LANGUAGE":
			cfg.Language = strings.TrimSpace(value)
		case "LOG_FILE":
			cfg.LogFile = value
		case "DEBUG":
			if value == "" {
				cfg.Debug = false
				continue
			}
			debug, err := strconv.ParseBool(value)
			if err != nil {
				return cfg, fmt.Errorf("%sDEBUG: %w", envPrefix, err)
			}
			cfg.Debug = debug
		case "ANSWERS":
			cfg.Answers = value
		}
	}
	return cfg, nil
}

func Load() (Config, string, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := loadToml(path)
	if err == nil {
		return cfg, path, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, path, nil
	}
	return Config{}, path, err
}

func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Dir is the directory holding config.toml and the other state files.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(configHome, "dialogmgr"), nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func RemoveConfigFiles() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	for _, name := range []string{"config.toml", "dontask.toml"} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
