// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "sync"

// Registry is the execution context a Manager resolves against: a
// production default plus an optional override installed by a harness.
type Registry struct {
	mu       sync.RWMutex
	fallback Backend
	override Backend
}

// NewRegistry returns a Registry whose default backend is fallback, which may
// be nil.
func NewRegistry(fallback Backend) *Registry {
	if isNil(fallback) {
		fallback = nil
	}
	return &Registry{fallback: fallback}
}

// Register installs b as the active backend. The returned func puts back
// whatever override was active before. A nil b, typed or not, clears the
// override.
func (r *Registry) Register(b Backend) (restore func()) {
	if isNil(b) {
		b = nil
	}
	r.mu.Lock()
	prev := r.override
	r.override = b
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.override = prev
		r.mu.Unlock()
	}
}

// Reset drops any override so the default backend answers again.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.override = nil
	r.mu.Unlock()
}

// SetDefault replaces the production default.
func (r *Registry) SetDefault(b Backend) {
	if isNil(b) {
		b = nil
	}
	r.mu.Lock()
	r.fallback = b
	r.mu.Unlock()
}

func (r *Registry) Backend() (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.override != nil {
		return r.override, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, ErrNoBackend
}
