// SPDX-License-Identifier: MIT
// Package: paramop/affine
//
// create.go — declarative construction from a configuration tree.
//
// Recognized layout (relative to the selected sub-tree):
//
//	name                      = <name>                (default: static id)
//	affine_part.type          = <factory type>        (optional block)
//	affine_part.name          = <name>                (default: "<name>, affine part")
//	component.<q>.type        = <factory type>
//	component.<q>.name        = <name>                (default: "<name>, component <q>")
//	coefficient.<q>.expression= <expression>
//	coefficient.<q>.<mu name> = <size>                (one or more)
//
// Pairs are read for q = 0, 1, … and the scan stops at the first index where
// the pair is incomplete; higher indices are ignored.

package affine

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

// Configuration keys.
const (
	KeyName        = "name"
	KeyType        = "type"
	KeyExpression  = "expression"
	SubAffinePart  = "affine_part"
	SubComponent   = "component"
	SubCoefficient = "coefficient"
)

// Factory produces the non-parametric payloads of a decomposition.
// provider.Registry satisfies it.
type Factory[C any] interface {
	Create(typeName string, cfg *config.Tree) (C, error)
	DefaultConfig(typeName string) (*config.Tree, error)
	Available() []string
}

// coefficientSpec is the decoded coefficient.<q> block.
type coefficientSpec struct {
	Expression string         `validate:"required"`
	Sizes      map[string]int `validate:"min=1,dive,keys,required,endkeys,gt=0"`
	names      []string       // declaration order of Sizes
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeCoefficient reads and validates a coefficient block.
func decodeCoefficient(cfg *config.Tree) (coefficientSpec, error) {
	spec := coefficientSpec{
		Expression: cfg.GetOr(KeyExpression, ""),
		Sizes:      make(map[string]int),
	}
	for _, key := range cfg.ValueKeys() {
		if key == KeyExpression {
			continue
		}
		size, err := cfg.GetInt(key)
		if err != nil {
			return spec, err
		}
		spec.Sizes[key] = size
		spec.names = append(spec.names, key)
	}
	if err := validate.Struct(spec); err != nil {
		return spec, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	return spec, nil
}

// newCoefficient builds the parameter functional described by spec.
func (s coefficientSpec) newCoefficient() (*parameter.Functional, error) {
	var t parameter.Type
	for _, name := range s.names {
		if err := t.Add(name, s.Sizes[name]); err != nil {
			return nil, err
		}
	}

	return parameter.NewFunctional(t, s.Expression)
}

// Create builds a decomposition from cfg, obtaining payloads from factory.
// A nil cfg means DefaultConfig(factory, opts...).
//
// Errors:
//   - errs.ErrConfiguration for a missing type/expression key, a coefficient
//     without "name = size" pairs, an unmatched component.<q>/coefficient.<q>,
//     or a result with neither affine part nor components.
//   - anything factory.Create or RegisterComponent returns.
func Create[C any](cfg *config.Tree, factory Factory[C], opts ...Option) (*Decomposition[C], error) {
	o := newOptions(opts...)
	if cfg == nil {
		var err error
		if cfg, err = DefaultConfig(factory, opts...); err != nil {
			return nil, err
		}
	}
	sub := o.subName
	if sub == "" {
		sub = o.staticID
	}
	if cfg.HasSub(sub) {
		cfg, _ = cfg.Sub(sub) // HasSub guarantees presence
	}
	name := cfg.GetOr(KeyName, o.staticID)
	if name == "" {
		return nil, fmt.Errorf("Create: empty %q: %w", KeyName, errs.ErrConfiguration)
	}
	log := o.logger.With(zap.String("decomposition", name))

	d := New[C](append(append(make([]Option, 0, len(opts)+1), opts...), WithName(name))...)

	if cfg.HasSub(SubAffinePart) {
		partCfg, _ := cfg.Sub(SubAffinePart)
		obj, err := createPayload(factory, partCfg, SubAffinePart, name+", affine part")
		if err != nil {
			return nil, err
		}
		if err = d.RegisterAffinePart(obj); err != nil {
			return nil, err
		}
	}

	q := 0
	for ; cfg.HasSub(componentKey(q)) && cfg.HasSub(coefficientKey(q)); q++ {
		compCfg, _ := cfg.Sub(componentKey(q))
		obj, err := createPayload(factory, compCfg, componentKey(q), name+", component "+strconv.Itoa(q))
		if err != nil {
			return nil, err
		}
		coeffCfg, _ := cfg.Sub(coefficientKey(q))
		if !coeffCfg.HasKey(KeyExpression) {
			return nil, fmt.Errorf("Create(%s): no %q given in %q:\n%s: %w",
				name, KeyExpression, coefficientKey(q), coeffCfg, errs.ErrConfiguration)
		}
		spec, err := decodeCoefficient(coeffCfg)
		if err != nil {
			return nil, fmt.Errorf("Create(%s): %q: %w", name, coefficientKey(q), err)
		}
		theta, err := spec.newCoefficient()
		if err != nil {
			return nil, fmt.Errorf("Create(%s): %q: %w", name, coefficientKey(q), err)
		}
		if err = d.RegisterComponent(obj, theta); err != nil {
			return nil, err
		}
	}
	log.Debug("components read", zap.Int("count", q))

	hasComp, hasCoeff := cfg.HasSub(componentKey(q)), cfg.HasSub(coefficientKey(q))
	switch {
	case hasComp && !hasCoeff:
		return nil, fmt.Errorf("Create(%s): missing %q to match %q: %w",
			name, coefficientKey(q), componentKey(q), errs.ErrConfiguration)
	case !hasComp && hasCoeff:
		return nil, fmt.Errorf("Create(%s): missing %q to match %q: %w",
			name, componentKey(q), coefficientKey(q), errs.ErrConfiguration)
	}
	if !d.WellFormed() {
		return nil, fmt.Errorf("Create(%s): missing either %q or %q and %q in:\n%s: %w",
			name, SubAffinePart, SubComponent, SubCoefficient, cfg, errs.ErrConfiguration)
	}

	return d, nil
}

// createPayload creates one payload from its sub-tree, defaulting its name.
func createPayload[C any](factory Factory[C], cfg *config.Tree, where, defaultName string) (C, error) {
	var zero C
	typeName, err := cfg.Get(KeyType)
	if err != nil {
		return zero, fmt.Errorf("no %q given in %q:\n%s: %w", KeyType, where, cfg, errs.ErrConfiguration)
	}
	if !cfg.HasKey(KeyName) {
		_ = cfg.Set(KeyName, defaultName) // cfg is a fresh Sub copy; "name" is a free leaf key
	}
	obj, err := factory.Create(typeName, cfg)
	if err != nil {
		return zero, fmt.Errorf("%q: %w", where, err)
	}

	return obj, nil
}

// DefaultConfig returns a configuration Create accepts: an affine part and
// two components (coefficients "diffusion[0]" and "force[0] + sin(force[1])"),
// all of the first type factory offers. With WithSubName the keys are nested
// under that sub-tree.
//
// Errors:
//   - errs.ErrRequirementsNotMet if factory offers no type.
//   - anything factory.DefaultConfig returns.
func DefaultConfig[C any](factory Factory[C], opts ...Option) (*config.Tree, error) {
	o := newOptions(opts...)
	available := factory.Available()
	if len(available) == 0 {
		return nil, fmt.Errorf("DefaultConfig: factory offers no type: %w", errs.ErrRequirementsNotMet)
	}
	typeName := available[0]

	cfg := config.New()
	blocks := []struct{ sub, name string }{
		{componentKey(0), "component_0"},
		{componentKey(1), "component_1"},
		{SubAffinePart, "affine_part"},
	}
	for i, b := range blocks {
		defaults, err := factory.DefaultConfig(typeName)
		if err != nil {
			return nil, fmt.Errorf("DefaultConfig: %w", err)
		}
		if err = cfg.Add(b.sub, defaults); err != nil {
			return nil, fmt.Errorf("DefaultConfig: %w", err)
		}
		_ = cfg.Set(b.sub+config.Separator+KeyType, typeName)
		_ = cfg.Set(b.sub+config.Separator+KeyName, b.name)
		switch i {
		case 0:
			_ = cfg.Set(coefficientKey(0)+".diffusion", "1")
			_ = cfg.Set(coefficientKey(0)+"."+KeyExpression, "diffusion[0]")
		case 1:
			_ = cfg.Set(coefficientKey(1)+".force", "2")
			_ = cfg.Set(coefficientKey(1)+"."+KeyExpression, "force[0] + sin(force[1])")
		}
	}
	_ = cfg.Set(KeyName, o.staticID)

	if o.subName == "" {
		return cfg, nil
	}
	nested := config.New()
	if err := nested.Add(o.subName, cfg); err != nil {
		return nil, fmt.Errorf("DefaultConfig: %w", err)
	}

	return nested, nil
}

func componentKey(q int) string   { return SubComponent + config.Separator + strconv.Itoa(q) }
func coefficientKey(q int) string { return SubCoefficient + config.Separator + strconv.Itoa(q) }
