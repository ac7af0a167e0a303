// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialog routes blocking user decisions through a replaceable
// Backend. Callers hold a Manager; which backend answers a call is decided by
// the Manager's Resolver at the moment of the call, so a test harness can
// swap in a scripted backend without touching the flow under test.
package dialog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"

	"github.com/lmittmann/tint"
)

var (
	// ErrNoBackend is returned when no backend is registered and no
	// production default was configured.
	ErrNoBackend = errors.New("dialog: no backend registered")
	// ErrInvalidRequest is returned by backends for requests with no options
	// or with default/focused indices outside the option list.
	ErrInvalidRequest = errors.New("dialog: invalid request")
	// ErrNotInteractive is returned when a backend cannot complete a
	// descriptor without a user.
	ErrNotInteractive = errors.New("dialog: descriptor needs an interactive backend")
)

// NoSelection is reported by descriptors that have not completed.
const NoSelection = -1

// Results of ShowOKCancel.
const (
	OK     = 0
	Cancel = 1
)

// Results of ShowYesNoCancel.
const (
	Yes          = 0
	No           = 1
	CancelChoice = 2
)

// Descriptor is a caller-configured dialog. Backends type-assert it to the
// richer interfaces they know how to present; results are read back from the
// descriptor after Show returns.
type Descriptor interface {
	ID() string
}

// Icon is a presentation hint for message dialogs.
type Icon string

const (
	IconNone     Icon = ""
	IconInfo     Icon = "info"
	IconWarning  Icon = "warning"
	IconError    Icon = "error"
	IconQuestion Icon = "question"
)

// DoNotAskOption lets the user suppress a dialog in the future. The manager
// never inspects it; backends that can show a checkbox report the outcome
// through SetToBeShown.
type DoNotAskOption interface {
	IsToBeShown() bool
	SetToBeShown(toBeShown bool, exitCode int)
	CanBeHidden() bool
	ShouldSaveOptionsOnCancel() bool
	DoNotAskMessage() string
}

// Request describes a labelled choice. The returned index refers to Options.
type Request struct {
	Message      string
	Title        string
	Options      []string
	DefaultIndex int
	FocusedIndex int
	Icon         Icon
	DoNotAsk     DoNotAskOption
}

// Validate reports whether the request is well formed. The Manager does not
// call it; backends do.
func (r Request) Validate() error {
	if len(r.Options) == 0 {
		return errors.Join(ErrInvalidRequest, errors.New("no options"))
	}
	if r.DefaultIndex < 0 || r.DefaultIndex >= len(r.Options) {
		return errors.Join(ErrInvalidRequest, errors.New("default index out of range"))
	}
	if r.FocusedIndex < 0 || r.FocusedIndex >= len(r.Options) {
		return errors.Join(ErrInvalidRequest, errors.New("focused index out of range"))
	}
	return nil
}

// Backend presents dialogs. Present blocks until the descriptor completes;
// PresentChoice blocks until an option is picked and returns its index.
type Backend interface {
	Present(d Descriptor) error
	PresentChoice(req Request) (int, error)
}

// Resolver returns the backend that should answer the next call.
type Resolver interface {
	Backend() (Backend, error)
}

type staticResolver struct {
	backend Backend
}

func (s staticResolver) Backend() (Backend, error) {
	if isNil(s.backend) {
		return nil, ErrNoBackend
	}
	return s.backend, nil
}

// Static returns a Resolver that always answers with b.
func Static(b Backend) Resolver {
	return staticResolver{backend: b}
}

// Manager is the indirection point between flows and backends.
type Manager struct {
	resolver Resolver
	logger   *slog.Logger
}

type Option func(*Manager)

// WithLogger sets the logger used for resolution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func New(resolver Resolver, opts ...Option) *Manager {
	m := &Manager{
		resolver: resolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) backend() (Backend, error) {
	if m == nil || m.resolver == nil {
		return nil, ErrNoBackend
	}
	b, err := m.resolver.Backend()
	if err != nil {
		m.logger.Warn("dialog backend resolution failed", tint.Err(err))
		return nil, err
	}
	if isNil(b) {
		return nil, ErrNoBackend
	}
	return b, nil
}

// isNil reports whether b is nil or an interface holding a nil pointer,
// map, or func.
func isNil(b Backend) bool {
	if b == nil {
		return true
	}
	switch v := reflect.ValueOf(b); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Show presents d and blocks until it completes.
func (m *Manager) Show(d Descriptor) error {
	b, err := m.backend()
	if err != nil {
		return err
	}
	return b.Present(d)
}

// ShowMessage presents a choice among req.Options and returns the picked index.
func (m *Manager) ShowMessage(req Request) (int, error) {
	b, err := m.backend()
	if err != nil {
		return NoSelection, err
	}
	return b.PresentChoice(req)
}

// ShowOKCancel returns OK or Cancel.
func (m *Manager) ShowOKCancel(message, title, okText, cancelText string, icon Icon) (int, error) {
	return m.ShowMessage(OKCancelRequest(message, title, okText, cancelText, icon))
}

// ShowYesNoCancel returns Yes, No or CancelChoice.
func (m *Manager) ShowYesNoCancel(message, title, yesText, noText, cancelText string, icon Icon) (int, error) {
	return m.ShowMessage(YesNoCancelRequest(message, title, yesText, noText, cancelText, icon))
}

// OKCancelRequest is the request ShowOKCancel presents. OK is both the
// default and the focused option.
func OKCancelRequest(message, title, okText, cancelText string, icon Icon) Request {
	return Request{
		Message:      message,
		Title:        title,
		Options:      []string{okText, cancelText},
		DefaultIndex: OK,
		FocusedIndex: OK,
		Icon:         icon,
	}
}

// YesNoCancelRequest is the request ShowYesNoCancel presents. Yes is the
// default and focus starts on No.
func YesNoCancelRequest(message, title, yesText, noText, cancelText string, icon Icon) Request {
	return Request{
		Message:      message,
		Title:        title,
		Options:      []string{yesText, noText, cancelText},
		DefaultIndex: Yes,
		FocusedIndex: No,
		Icon:         icon,
	}
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying m.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext extracts the Manager stored by NewContext.
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	return m, ok && m != nil
}
