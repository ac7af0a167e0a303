// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools pins the versions of the license-header and dependency
// audit tools run over this repository.
package tools

import (
	_ "github.com/google/addlicense"
	_ "github.com/tailscale/depaware/depaware"
)
