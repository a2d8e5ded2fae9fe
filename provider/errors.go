// SPDX-License-Identifier: MIT
// Package: paramop/provider
//
// errors.go — sentinel errors of the registry.

package provider

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
)

var (
	// ErrUnknownType is returned by Create/DefaultConfig for an unregistered type name.
	ErrUnknownType = fmt.Errorf("provider: unknown type: %w", errs.ErrConfiguration)

	// ErrDuplicate is returned by Register for a type name already present.
	ErrDuplicate = fmt.Errorf("provider: type already registered: %w", errs.ErrConfiguration)

	// ErrInvalidEntry is returned by Register for an empty type name or nil constructor.
	ErrInvalidEntry = fmt.Errorf("provider: invalid registry entry: %w", errs.ErrRequirementsNotMet)
)
