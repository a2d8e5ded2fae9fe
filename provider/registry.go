// SPDX-License-Identifier: MIT
// Package: paramop/provider
//
// registry.go — type-name → constructor registry for non-parametric objects.
//
// Concurrency:
//   • Registration usually happens at package init; lookups happen anywhere.
//   • All methods are safe for concurrent use (sync.RWMutex).
//   • Constructors run outside the lock.

package provider

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramop/config"
)

// TypeKey is the configuration key holding the type name of an object.
const TypeKey = "type"

// Constructor builds an object from its (defaults-merged) configuration.
type Constructor[T any] func(cfg *config.Tree) (T, error)

// Entry is a snapshot of one registration.
type Entry struct {
	Type     string
	Defaults *config.Tree
}

type entry[T any] struct {
	ctor     Constructor[T]
	defaults *config.Tree
}

// Registry maps type names to constructors and default configurations.
type Registry[T any] struct {
	mu      sync.RWMutex
	name    string
	order   []string // registration order
	entries map[string]entry[T]
	logger  *zap.Logger
}

// NewRegistry returns an empty registry; name labels log events and errors.
func NewRegistry[T any](name string, opts ...Option) *Registry[T] {
	o := newOptions(opts...)

	return &Registry[T]{
		name:    name,
		entries: make(map[string]entry[T]),
		logger:  o.logger.With(zap.String("registry", name)),
	}
}

// Name returns the registry label.
func (r *Registry[T]) Name() string { return r.name }

// Register adds typeName with its constructor and default configuration
// (nil means no defaults). The "type" key of the defaults is forced to
// typeName.
//
// Errors:
//   - ErrInvalidEntry (empty name, nil constructor), ErrDuplicate.
func (r *Registry[T]) Register(typeName string, ctor Constructor[T], defaults *config.Tree) error {
	if typeName == "" || ctor == nil {
		return fmt.Errorf("%s.Register(%q): %w", r.name, typeName, ErrInvalidEntry)
	}
	d := config.New()
	if defaults != nil {
		d = defaults.Clone()
	}
	if err := d.Set(TypeKey, typeName); err != nil {
		return fmt.Errorf("%s.Register(%q): %w", r.name, typeName, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[typeName]; dup {
		return fmt.Errorf("%s.Register(%q): %w", r.name, typeName, ErrDuplicate)
	}
	r.entries[typeName] = entry[T]{ctor: ctor, defaults: d}
	r.order = append(r.order, typeName)
	r.logger.Debug("type registered", zap.String("type", typeName))

	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry[T]) MustRegister(typeName string, ctor Constructor[T], defaults *config.Tree) {
	if err := r.Register(typeName, ctor, defaults); err != nil {
		panic(err)
	}
}

// Create builds a typeName object from cfg, filling keys missing from cfg
// with the registered defaults. cfg may be nil.
//
// Errors:
//   - ErrUnknownType, errs.ErrConfiguration (cfg names another type),
//     anything the constructor returns.
func (r *Registry[T]) Create(typeName string, cfg *config.Tree) (T, error) {
	var zero T
	r.mu.RLock()
	e, ok := r.entries[typeName]
	r.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%s.Create(%q): %w, available %v", r.name, typeName, ErrUnknownType, r.Available())
	}

	merged := e.defaults.Clone()
	if cfg != nil {
		if got := cfg.GetOr(TypeKey, typeName); got != typeName {
			return zero, fmt.Errorf("%s.Create(%q): config declares type %q: %w", r.name, typeName, got, ErrUnknownType)
		}
		merged = cfg.Clone()
		merged.Merge(e.defaults)
	}
	obj, err := e.ctor(merged)
	if err != nil {
		return zero, fmt.Errorf("%s.Create(%q): %w", r.name, typeName, err)
	}
	r.logger.Debug("object created", zap.String("type", typeName), zap.Int("keys", merged.Len()))

	return obj, nil
}

// DefaultConfig returns a copy of the default configuration of typeName,
// including its "type" key.
//
// Errors:
//   - ErrUnknownType.
func (r *Registry[T]) DefaultConfig(typeName string) (*config.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[typeName]
	if !ok {
		return nil, fmt.Errorf("%s.DefaultConfig(%q): %w", r.name, typeName, ErrUnknownType)
	}

	return e.defaults.Clone(), nil
}

// Available returns the registered type names in registration order.
func (r *Registry[T]) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Entries returns a snapshot of every registration in registration order.
func (r *Registry[T]) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.order))
	for i, name := range r.order {
		out[i] = Entry{Type: name, Defaults: r.entries[name].defaults.Clone()}
	}

	return out
}

// Len returns the number of registered types.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
