// SPDX-License-Identifier: MIT
// Package: paramop/provider
//
// options.go — functional options for registries.
//
// Option constructors validate their input and panic on nonsensical values;
// registry methods themselves never panic (except the Must* helpers).

package provider

import "go.uber.org/zap"

// Option customizes a Registry at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger receiving registration and creation events.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("provider: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
