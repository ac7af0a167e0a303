// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrUnexpectedDialog is returned by Scripted when a choice arrives and no
	// answer is left.
	ErrUnexpectedDialog = errors.New("dialog: unexpected dialog")
	// ErrAnswerOutOfRange is returned by Scripted when the programmed answer
	// does not index the request's options.
	ErrAnswerOutOfRange = errors.New("dialog: scripted answer out of range")
)

// Scripted answers choices from a queue of programmed indices and records
// every call. It never renders anything.
type Scripted struct {
	mu         sync.Mutex
	answers    []int
	answerFunc func(Request) (int, error)
	showFunc   func(Descriptor) error
	requests   []Request
	shown      []Descriptor
}

func NewScripted(answers ...int) *Scripted {
	return &Scripted{answers: slices.Clone(answers)}
}

// Answer queues more answers.
func (s *Scripted) Answer(answers ...int) *Scripted {
	s.mu.Lock()
	s.answers = append(s.answers, answers...)
	s.mu.Unlock()
	return s
}

// AnswerFunc is consulted once the queue is empty.
func (s *Scripted) AnswerFunc(f func(Request) (int, error)) *Scripted {
	s.mu.Lock()
	s.answerFunc = f
	s.mu.Unlock()
	return s
}

// ShowFunc handles descriptors passed to Present. Without one, Present only
// records the descriptor.
func (s *Scripted) ShowFunc(f func(Descriptor) error) *Scripted {
	s.mu.Lock()
	s.showFunc = f
	s.mu.Unlock()
	return s
}

func (s *Scripted) Present(d Descriptor) error {
	s.mu.Lock()
	s.shown = append(s.shown, d)
	f := s.showFunc
	s.mu.Unlock()
	if f != nil {
		return f(d)
	}
	return nil
}

func (s *Scripted) PresentChoice(req Request) (int, error) {
	req.Options = slices.Clone(req.Options)
	s.mu.Lock()
	s.requests = append(s.requests, req)
	if len(s.answers) > 0 {
		answer := s.answers[0]
		s.answers = s.answers[1:]
		s.mu.Unlock()
		return checkAnswer(req, answer)
	}
	f := s.answerFunc
	s.mu.Unlock()
	if f == nil {
		return NoSelection, fmt.Errorf("%w: %q", ErrUnexpectedDialog, req.Title)
	}
	answer, err := f(req)
	if err != nil {
		return NoSelection, err
	}
	return checkAnswer(req, answer)
}

func checkAnswer(req Request, answer int) (int, error) {
	if answer < 0 || answer >= len(req.Options) {
		return NoSelection, fmt.Errorf("%w: %d for %d options", ErrAnswerOutOfRange, answer, len(req.Options))
	}
	return answer, nil
}

// Requests returns the choices seen so far, oldest first.
func (s *Scripted) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Shown returns the descriptors passed to Present, oldest first.
func (s *Scripted) Shown() []Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.shown)
}

// Remaining reports how many queued answers have not been used.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// ParseAnswers parses a comma-separated list of indices such as "1,0,2".
func ParseAnswers(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	answers := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q", part)
		}
		if n < 0 {
			return nil, fmt.Errorf("answer must be >= 0 (got %d)", n)
		}
		answers = append(answers, n)
	}
	return answers, nil
}
