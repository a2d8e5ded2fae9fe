// SPDX-License-Identifier: MIT
// Package: paramop/config
//
// errors.go — sentinel errors of the configuration tree.
//
// Every sentinel wraps errs.ErrConfiguration, so callers that only care about
// the kind test errors.Is(err, errs.ErrConfiguration).

package config

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
)

var (
	// ErrKeyNotFound is returned by Get*/Sub for a missing key or sub-tree.
	ErrKeyNotFound = fmt.Errorf("config: key not found: %w", errs.ErrConfiguration)

	// ErrKeyExists is returned by Add when the target prefix is already used.
	ErrKeyExists = fmt.Errorf("config: key already exists: %w", errs.ErrConfiguration)

	// ErrInvalidKey flags empty keys, empty dotted segments, and keys that
	// would be both a value and a sub-tree.
	ErrInvalidKey = fmt.Errorf("config: invalid key: %w", errs.ErrConfiguration)

	// ErrMalformedValue flags a value that does not parse as the requested kind.
	ErrMalformedValue = fmt.Errorf("config: malformed value: %w", errs.ErrConfiguration)

	// ErrYAML flags an unreadable or unrepresentable YAML document.
	ErrYAML = fmt.Errorf("config: yaml: %w", errs.ErrConfiguration)
)
