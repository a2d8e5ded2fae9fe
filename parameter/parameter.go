// SPDX-License-Identifier: MIT
// Package: paramop/parameter
//
// parameter.go — parameter values μ: an ordered name → []float64 map.

package parameter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/paramop/errs"
)

// Parameter is an ordered mapping from component name to its values.
// The zero value is the empty parameter, used for non-parametric calls.
// Parameters are immutable after construction; accessors return copies.
type Parameter struct {
	names  []string
	values map[string][]float64
}

// New builds a Parameter from parallel name/value-group lists.
//
// Errors:
//   - errs.ErrSizesDoNotMatch if the lists differ in length or a group is empty.
//   - errs.ErrConfiguration for empty or duplicate names.
func New(names []string, values [][]float64) (Parameter, error) {
	if len(names) != len(values) {
		return Parameter{}, fmt.Errorf("parameter.New: %d names vs %d value groups: %w",
			len(names), len(values), errs.ErrSizesDoNotMatch)
	}
	p := Parameter{values: make(map[string][]float64, len(names))}
	for i, name := range names {
		if name == "" {
			return Parameter{}, fmt.Errorf("parameter.New: empty name: %w", errs.ErrConfiguration)
		}
		if _, dup := p.values[name]; dup {
			return Parameter{}, fmt.Errorf("parameter.New: duplicate name %q: %w", name, errs.ErrConfiguration)
		}
		if len(values[i]) == 0 {
			return Parameter{}, fmt.Errorf("parameter.New: %q has no values: %w", name, errs.ErrSizesDoNotMatch)
		}
		group := make([]float64, len(values[i]))
		copy(group, values[i])
		p.values[name] = group
		p.names = append(p.names, name)
	}

	return p, nil
}

// NewOfType builds a Parameter and checks it against t.
//
// Errors:
//   - everything New returns, plus the errors of Check.
func NewOfType(t Type, names []string, values [][]float64) (Parameter, error) {
	p, err := New(names, values)
	if err != nil {
		return Parameter{}, err
	}
	if err = p.Check(t); err != nil {
		return Parameter{}, err
	}

	return p, nil
}

// FromMap builds a Parameter from a map; names are ordered lexicographically.
func FromMap(m map[string][]float64) (Parameter, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	values := make([][]float64, len(names))
	for i, name := range names {
		values[i] = m[name]
	}

	return New(names, values)
}

// Empty reports whether the parameter carries no components.
func (p Parameter) Empty() bool { return len(p.names) == 0 }

// Names returns the component names in construction order (copy).
func (p Parameter) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// Value returns a copy of the values of name.
func (p Parameter) Value(name string) ([]float64, bool) {
	v, ok := p.values[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out, true
}

// Type extracts the parameter type (names → lengths).
func (p Parameter) Type() Type {
	var t Type
	for _, name := range p.names {
		_ = t.Add(name, len(p.values[name])) // names unique and groups non-empty by construction
	}

	return t
}

// IsOfType reports whether p's extracted type equals t.
func (p Parameter) IsOfType(t Type) bool { return p.Type().Equal(t) }

// Check verifies p against the declared type t.
//
// Errors:
//   - errs.ErrWrongParameterType if the name sets differ.
//   - errs.ErrSizesDoNotMatch if a named group's length disagrees with t.
func (p Parameter) Check(t Type) error {
	if len(p.names) != t.Len() {
		return fmt.Errorf("Parameter.Check: %s is not of type %s: %w", p, t, errs.ErrWrongParameterType)
	}
	for _, name := range p.names {
		size, ok := t.Size(name)
		if !ok {
			return fmt.Errorf("Parameter.Check: %q not in %s: %w", name, t, errs.ErrWrongParameterType)
		}
		if got := len(p.values[name]); got != size {
			return fmt.Errorf("Parameter.Check: %q has %d values, type declares %d: %w", name, got, size, errs.ErrSizesDoNotMatch)
		}
	}

	return nil
}

// Restrict returns the sub-parameter holding exactly the names of t.
//
// Errors:
//   - errs.ErrWrongParameterType if a name of t is missing from p or has a
//     different length.
func (p Parameter) Restrict(t Type) (Parameter, error) {
	out := Parameter{values: make(map[string][]float64, t.Len())}
	for _, name := range t.names {
		v, ok := p.values[name]
		if !ok || len(v) != t.sizes[name] {
			return Parameter{}, fmt.Errorf("Parameter.Restrict: %s does not provide %q of size %d: %w",
				p, name, t.sizes[name], errs.ErrWrongParameterType)
		}
		out.values[name] = v // shared backing array; Parameter never mutates it
		out.names = append(out.names, name)
	}

	return out, nil
}

// String renders the parameter as "{name: [v ...], ...}".
func (p Parameter) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range p.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", name, p.values[name])
	}
	sb.WriteString("}")

	return sb.String()
}
