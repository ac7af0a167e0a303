// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

type loggingBackend struct {
	next   Backend
	logger *slog.Logger
}

// WithLogging wraps b so every call is logged with a request id. Message
// text is not logged.
func WithLogging(b Backend, logger *slog.Logger) Backend {
	if logger == nil {
		return b
	}
	return &loggingBackend{next: b, logger: logger}
}

func (l *loggingBackend) Present(d Descriptor) error {
	log := l.logger.With("request_id", uuid.NewString(), "descriptor", descriptorID(d))
	log.Debug("dialog show")
	start := time.Now()
	err := l.next.Present(d)
	if err != nil {
		log.Error("dialog show failed", tint.Err(err), "elapsed", time.Since(start))
		return err
	}
	log.Debug("dialog closed", "elapsed", time.Since(start))
	return nil
}

func (l *loggingBackend) PresentChoice(req Request) (int, error) {
	log := l.logger.With(
		"request_id", uuid.NewString(),
		"title", req.Title,
		"options", len(req.Options),
		"default", req.DefaultIndex,
		"focused", req.FocusedIndex,
	)
	log.Debug("dialog choice")
	start := time.Now()
	idx, err := l.next.PresentChoice(req)
	if err != nil {
		log.Error("dialog choice failed", tint.Err(err), "elapsed", time.Since(start))
		return idx, err
	}
	log.Info("dialog answered", "index", idx, "elapsed", time.Since(start))
	return idx, nil
}
