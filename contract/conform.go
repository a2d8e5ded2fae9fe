// SPDX-License-Identifier: MIT
// Package: paramop/contract
//
// conform.go — run-time conformance checks for dynamically produced values.

package contract

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/paramop/errs"
)

// Conform asserts that v satisfies the contract T.
//
// Errors:
//   - errs.ErrInterfaceViolation if v is nil or lacks a method of T.
func Conform[T any](v any) (T, error) {
	out, ok := v.(T)
	if !ok {
		var zero T
		want := reflect.TypeOf((*T)(nil)).Elem()

		return zero, fmt.Errorf("Conform: %T does not implement %v: %w", v, want, errs.ErrInterfaceViolation)
	}

	return out, nil
}

// MustConform is Conform for static wiring; it panics on violation.
func MustConform[T any](v any) T {
	out, err := Conform[T](v)
	if err != nil {
		panic(err)
	}

	return out
}
