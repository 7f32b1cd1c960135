// © 2026 The Kage Authors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools

// Package tools pins the developer tooling used by this repository:
// buf lints the embedded standard library schemas, stringer generates
// stdlib.Kind names, and the gocov family merges and renders coverage.
package tools

import (
	_ "github.com/AlekSi/gocov-xml"
	_ "github.com/axw/gocov/gocov"
	_ "github.com/bufbuild/buf/cmd/buf"
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/matm/gocov-html/cmd/gocov-html"
	_ "github.com/wadey/gocovmerge"
	_ "golang.org/x/tools/cmd/goimports"
	_ "golang.org/x/tools/cmd/stringer"
)
