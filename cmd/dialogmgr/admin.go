// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shayne/dialogmgr/internal/config"
	"github.com/shayne/yargs"
)

type forgetArgs struct {
	Key string `pos:"0?" help:"remembered answer to forget (all when omitted)"`
}

type configFlags struct {
	Backend  string `flag:"backend" help:"set default backend (terminal, headless, or script)"`
	Renderer string `flag:"renderer" help:"set terminal renderer (dialog, form, or plain)"`
	Language string `flag:"language" help:"set preferred language, e.g. de or fr"`
	LogFile  string `flag:"log-file" help:"set the log file path"`
	Reset    bool   `flag:"reset" help:"remove the config file and remembered answers"`
}

func handleForgetCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, struct{}, forgetArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s := sessionFrom(ctx)
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open answer store: %w", err)
	}
	key := strings.TrimSpace(result.Args.Key)
	if key == "" {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "forgot all remembered answers")
		return nil
	}
	if _, ok := store.Answer(key); !ok {
		return newUsageError(fmt.Sprintf("no remembered answer for %q", key))
	}
	if err := store.Forget(key); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "forgot %s\n", key)
	return nil
}

func handleConfigCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s := sessionFrom(ctx)
	flags := result.SubCommandFlags
	if flags.Reset {
		if err := config.RemoveConfigFiles(); err != nil {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Fprintln(s.out, "removed config and remembered answers")
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updated := false
	if value := strings.TrimSpace(flags.Backend); value != "" {
		cfg.Backend = strings.ToLower(value)
		updated = true
	}
	if value := strings.TrimSpace(flags.Renderer); value != "" {
		cfg.Renderer = strings.ToLower(value)
		updated = true
	}
	if value := strings.TrimSpace(flags.Language); value != "" {
		cfg.Language = value
		updated = true
	}
	if value := strings.TrimSpace(flags.LogFile); value != "" {
		cfg.LogFile = value
		updated = true
	}
	if !updated {
		return s.showConfig(cfg, path)
	}
	if err := cfg.Validate(); err != nil {
		return newUsageError(err.Error())
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(s.out, "wrote config to %s\n", path)
	return nil
}

func (s *session) showConfig(cfg config.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintf(s.out, "Config path: %s\n%s\n", path, string(data))
	return nil
}

func handleVersionCommand(ctx context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(sessionFrom(ctx).out, versionString())
	return nil
}
