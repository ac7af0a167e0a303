// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "fmt"

type defaultSubmitter interface {
	SubmitDefault()
}

// Headless answers every dialog with its default, for runs with nobody at
// the terminal.
type Headless struct{}

func (Headless) Present(d Descriptor) error {
	if s, ok := d.(defaultSubmitter); ok {
		s.SubmitDefault()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotInteractive, descriptorID(d))
}

func (Headless) PresentChoice(req Request) (int, error) {
	if err := req.Validate(); err != nil {
		return NoSelection, err
	}
	return req.DefaultIndex, nil
}

func descriptorID(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return d.ID()
}
