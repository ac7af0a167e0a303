// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dontask persists "do not ask again" answers between runs.
package dontask

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "dontask.toml"

type file struct {
	Answers map[string]int `toml:"answers"`
}

// Store maps dialog keys to the option index the user asked to remember.
type Store struct {
	mu      sync.Mutex
	path    string
	answers map[string]int
}

// Open reads the store at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, answers: map[string]int{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for key, idx := range f.Answers {
		s.answers[key] = idx
	}
	return s, nil
}

// OpenDir opens the store file inside dir.
func OpenDir(dir string) (*Store, error) {
	return Open(filepath.Join(dir, FileName))
}

func (s *Store) Path() string { return s.path }

// Answer returns the remembered index for key.
func (s *Store) Answer(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.answers[key]
	return idx, ok
}

// Keys returns the remembered keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.answers))
	for key := range s.answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Remember(key string, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[key] = idx
	return s.saveLocked()
}

// Forget drops key. Forgetting an unknown key is not an error.
func (s *Store) Forget(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.answers[key]; !ok {
		return nil
	}
	delete(s.answers, key)
	return s.saveLocked()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = map[string]int{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) saveLocked() error {
	data, err := toml.Marshal(file{Answers: s.answers})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Option returns a dialog.DoNotAskOption bound to key. message is the
// checkbox label; empty leaves the choice to the backend.
func (s *Store) Option(key, message string) *Option {
	return &Option{store: s, key: key, message: message}
}

// Option remembers the answer to one dialog. Cancelling is not remembered
// unless SaveOnCancel is set.
type Option struct {
	store        *Store
	key          string
	message      string
	SaveOnCancel bool
	// Err holds the last error from writing the store.
	Err error
}

func (o *Option) Key() string { return o.key }

func (o *Option) IsToBeShown() bool {
	_, ok := o.store.Answer(o.key)
	return !ok
}

// Remembered returns the stored answer, if any.
func (o *Option) Remembered() (int, bool) {
	return o.store.Answer(o.key)
}

func (o *Option) SetToBeShown(toBeShown bool, exitCode int) {
	if toBeShown {
		o.Err = o.store.Forget(o.key)
		return
	}
	o.Err = o.store.Remember(o.key, exitCode)
}

func (o *Option) CanBeHidden() bool { return true }

func (o *Option) ShouldSaveOptionsOnCancel() bool { return o.SaveOnCancel }

func (o *Option) DoNotAskMessage() string { return o.message }
