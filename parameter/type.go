// SPDX-License-Identifier: MIT
// Package: paramop/parameter
//
// type.go — the declared shape of a parameter: an ordered name → size map.

package parameter

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/paramop/errs"
)

// Type is an ordered mapping from component name to a positive size.
// The zero value is the empty type (non-parametric).
//
// Invariants: no duplicate names; all sizes > 0. Equality is order-insensitive.
type Type struct {
	names []string       // insertion order
	sizes map[string]int // name -> declared size (>0)
}

// NewType builds a Type from parallel name/size lists.
//
// Errors:
//   - errs.ErrSizesDoNotMatch if the lists differ in length.
//   - errs.ErrConfiguration for empty names, sizes <= 0 or conflicting
//     duplicates (see Add).
func NewType(names []string, sizes []int) (Type, error) {
	var t Type
	if len(names) != len(sizes) {
		return t, fmt.Errorf("NewType: %d names vs %d sizes: %w", len(names), len(sizes), errs.ErrSizesDoNotMatch)
	}
	for i, name := range names {
		if err := t.Add(name, sizes[i]); err != nil {
			return Type{}, err
		}
	}

	return t, nil
}

// MustType is NewType for static declarations; it panics on error.
func MustType(names []string, sizes []int) Type {
	t, err := NewType(names, sizes)
	if err != nil {
		panic(err)
	}

	return t
}

// Add declares name with the given size.
// It is a no-op if name is already declared with the same size.
//
// Errors:
//   - errs.ErrConfiguration if name is empty, size <= 0, or name is already
//     declared with a different size.
func (t *Type) Add(name string, size int) error {
	if name == "" {
		return fmt.Errorf("Type.Add: empty name: %w", errs.ErrConfiguration)
	}
	if size <= 0 {
		return fmt.Errorf("Type.Add(%q): size %d must be > 0: %w", name, size, errs.ErrConfiguration)
	}
	if have, ok := t.sizes[name]; ok {
		if have != size {
			return fmt.Errorf("Type.Add(%q): already declared with size %d, got %d: %w", name, have, size, errs.ErrConfiguration)
		}

		return nil
	}
	if t.sizes == nil {
		t.sizes = make(map[string]int)
	}
	t.sizes[name] = size
	t.names = append(t.names, name)

	return nil
}

// Size returns the declared size of name.
func (t Type) Size(name string) (int, bool) {
	size, ok := t.sizes[name]

	return size, ok
}

// Has reports whether name is declared.
func (t Type) Has(name string) bool {
	_, ok := t.sizes[name]

	return ok
}

// Names returns the declared names in insertion order (copy).
func (t Type) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Len returns the number of declared names.
func (t Type) Len() int { return len(t.names) }

// Empty reports whether no name is declared.
func (t Type) Empty() bool { return len(t.names) == 0 }

// Dim returns the total number of scalar slots (sum of sizes).
func (t Type) Dim() int {
	total := 0
	for _, name := range t.names {
		total += t.sizes[name]
	}

	return total
}

// Equal reports whether t and other map the same names to the same sizes,
// regardless of declaration order.
func (t Type) Equal(other Type) bool {
	if len(t.names) != len(other.names) {
		return false
	}
	for name, size := range t.sizes {
		if s, ok := other.sizes[name]; !ok || s != size {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (t Type) Clone() Type {
	out := Type{names: t.Names()}
	if t.sizes != nil {
		out.sizes = make(map[string]int, len(t.sizes))
		for k, v := range t.sizes {
			out.sizes[k] = v
		}
	}

	return out
}

// String renders the type as "{name: size, ...}" in declaration order.
func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range t.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", name, t.sizes[name])
	}
	sb.WriteString("}")

	return sb.String()
}

// Merge returns the union of existing and incoming without mutating either.
// Names already present in existing must carry the same size in incoming;
// alias names the contributor in the error context.
//
// Errors:
//   - errs.ErrParameterTypeConflict on a same-name/different-size collision.
//
// Complexity: O(len(incoming)).
func Merge(existing, incoming Type, alias string) (Type, error) {
	out := existing.Clone()
	for _, name := range incoming.names {
		size := incoming.sizes[name]
		if have, ok := out.sizes[name]; ok {
			if have != size {
				return existing, fmt.Errorf("Merge(%s): %q declared with size %d, already %d: %w",
					alias, name, size, have, errs.ErrParameterTypeConflict)
			}
			continue
		}
		if out.sizes == nil {
			out.sizes = make(map[string]int)
		}
		out.sizes[name] = size
		out.names = append(out.names, name)
	}

	return out, nil
}
