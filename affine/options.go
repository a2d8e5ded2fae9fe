// SPDX-License-Identifier: MIT
// Package: paramop/affine
//
// options.go — functional options for decompositions and declarative construction.
//
// Option constructors validate their input and panic on nonsensical values.

package affine

import "go.uber.org/zap"

// DefaultStaticID identifies decompositions built without WithStaticID.
const DefaultStaticID = "affinelydecomposed"

// Option customizes a Decomposition or a Create/DefaultConfig call.
type Option func(*options)

type options struct {
	name     string
	staticID string
	subName  string // "" = not set
	logger   *zap.Logger
	check    any // func([]C, C) error, asserted by New[C]
}

func newOptions(opts ...Option) options {
	o := options{staticID: DefaultStaticID, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = o.staticID
	}

	return o
}

// WithName sets the decomposition name. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic("affine: WithName(\"\")")
	}

	return func(o *options) { o.name = name }
}

// WithStaticID sets the type identifier used as default name and default
// sub-tree name by Create/DefaultConfig. Panics on "".
func WithStaticID(id string) Option {
	if id == "" {
		panic("affine: WithStaticID(\"\")")
	}

	return func(o *options) { o.staticID = id }
}

// WithSubName selects the configuration sub-tree read by Create (default:
// the static id) and the sub-tree DefaultConfig nests its keys under
// (default: none). Panics on "".
func WithSubName(sub string) Option {
	if sub == "" {
		panic("affine: WithSubName(\"\")")
	}

	return func(o *options) { o.subName = sub }
}

// WithLogger sets the logger receiving registration and construction events.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("affine: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithCheck installs a structural check run before every affine part and
// component is registered. existing lists the payloads already registered,
// affine part first. Panics on nil; New panics if C differs from the
// payload type of the decomposition.
func WithCheck[C any](check func(existing []C, candidate C) error) Option {
	if check == nil {
		panic("affine: WithCheck(nil)")
	}

	return func(o *options) { o.check = check }
}
