// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shayne/dialogmgr/internal/config"
	"github.com/shayne/dialogmgr/internal/dialog"
	"github.com/shayne/dialogmgr/internal/dontask"
	"github.com/shayne/dialogmgr/internal/logging"
	"github.com/shayne/dialogmgr/internal/nls"
	"github.com/shayne/dialogmgr/internal/tui"
)

// backendFlags are accepted by every dialog subcommand.
type backendFlags struct {
	Backend  string
	Answers  string
	Yes      bool
	Renderer string
}

// dialogEnv is what a dialog subcommand needs once flags are parsed.
type dialogEnv struct {
	ctx       context.Context
	localizer *nls.Localizer
	logger    *slog.Logger
	close     func()
}

func (e *dialogEnv) manager() *dialog.Manager {
	m, _ := dialog.FromContext(e.ctx)
	return m
}

// resolveConfig layers config file, environment, and flags, in that order.
func (s *session) resolveConfig(flags backendFlags) (config.Config, error) {
	cfg, _, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err = config.ApplyEnv(cfg, s.environ)
	if err != nil {
		return config.Config{}, newUsageError(err.Error())
	}
	if answers := strings.TrimSpace(flags.Answers); answers != "" {
		cfg.Answers = answers
		cfg.Backend = config.BackendScript
	}
	if backend := strings.TrimSpace(flags.Backend); backend != "" {
		cfg.Backend = strings.ToLower(backend)
	}
	if flags.Yes {
		cfg.Backend = config.BackendHeadless
	}
	if renderer := strings.TrimSpace(flags.Renderer); renderer != "" {
		cfg.Renderer = strings.ToLower(renderer)
	}
	cfg = cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, newUsageError(err.Error())
	}
	return cfg, nil
}

// start prepares logging, localization, and the dialog manager. A manager
// already carried by ctx is used as is.
func (s *session) start(ctx context.Context, flags backendFlags) (*dialogEnv, error) {
	cfg, err := s.resolveConfig(flags)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.Configure(cfg.LogFile, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	langs := append([]string{cfg.Language}, nls.LanguagesFromEnv()...)
	localizer, err := nls.New(langs...)
	if err != nil {
		closer.Close()
		return nil, err
	}
	env := &dialogEnv{
		ctx:       ctx,
		localizer: localizer,
		logger:    logger,
		close:     func() { closer.Close() },
	}
	if _, ok := dialog.FromContext(ctx); ok {
		return env, nil
	}
	m, err := s.newManager(cfg, localizer, logger)
	if err != nil {
		env.close()
		return nil, err
	}
	env.ctx = dialog.NewContext(ctx, m)
	return env, nil
}

// newManager builds a registry whose default is the terminal backend.
// Headless and script backends are registered over it.
func (s *session) newManager(cfg config.Config, localizer *nls.Localizer, logger *slog.Logger) (*dialog.Manager, error) {
	renderer, err := tui.ParseRenderer(cfg.Renderer)
	if err != nil {
		return nil, newUsageError(err.Error())
	}
	terminal := tui.NewBackend(s.in, s.errOut,
		tui.WithRenderer(renderer),
		tui.WithDoNotAskLabel(nls.Buttons(localizer).DoNotAsk),
	)
	reg := dialog.NewRegistry(dialog.WithLogging(terminal, logger))
	switch cfg.Backend {
	case config.BackendHeadless:
		reg.Register(dialog.WithLogging(dialog.Headless{}, logger))
	case config.BackendScript:
		answers, err := dialog.ParseAnswers(cfg.Answers)
		if err != nil {
			return nil, newUsageError(err.Error())
		}
		script := dialog.NewScripted(answers...).ShowFunc(dialog.Headless{}.Present)
		reg.Register(dialog.WithLogging(script, logger))
	}
	logger.Debug("dialog backend ready", "backend", cfg.Backend, "renderer", renderer)
	return dialog.New(reg, dialog.WithLogger(logger)), nil
}

func openStore() (*dontask.Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return dontask.OpenDir(dir)
}
