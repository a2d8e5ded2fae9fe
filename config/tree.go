// SPDX-License-Identifier: MIT
// Package: paramop/config
//
// tree.go — the hierarchical key/value tree.
//
// Layout:
//   • Keys are dotted paths ("component.0.type"); a prefix such as
//     "component.0" names a sub-tree.
//   • A key is either a value or a sub-tree, never both.
//   • Insertion order is preserved by Keys, ValueKeys, SubKeys and ToYAML.

package config

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a dotted key.
const Separator = "."

// Tree is an ordered mapping from dotted keys to string values.
// The zero value is not usable; call New. Not safe for concurrent mutation.
type Tree struct {
	keys   []string          // insertion order
	values map[string]string // key -> raw value
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{values: make(map[string]string)}
}

// FromMap builds a tree from flat dotted keys, inserted in lexicographic
// key order.
//
// Errors:
//   - ErrInvalidKey (see Set).
func FromMap(m map[string]string) (*Tree, error) {
	t := New()
	for _, k := range sortedKeys(m) {
		if err := t.Set(k, m[k]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of values.
func (t *Tree) Len() int { return len(t.keys) }

// Empty reports whether the tree holds no values.
func (t *Tree) Empty() bool { return len(t.keys) == 0 }

// HasKey reports whether key holds a value.
func (t *Tree) HasKey(key string) bool {
	_, ok := t.values[key]

	return ok
}

// HasSub reports whether sub names a non-empty sub-tree.
func (t *Tree) HasSub(sub string) bool {
	prefix := sub + Separator
	for _, k := range t.keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}

	return false
}

// Get returns the raw value of key.
//
// Errors:
//   - ErrKeyNotFound.
func (t *Tree) Get(key string) (string, error) {
	v, ok := t.values[key]
	if !ok {
		return "", fmt.Errorf("Get(%q): %w", key, ErrKeyNotFound)
	}

	return v, nil
}

// GetOr returns the value of key, or def if key is absent.
func (t *Tree) GetOr(key, def string) string {
	if v, ok := t.values[key]; ok {
		return v
	}

	return def
}

// Set stores value under key, overwriting an existing value.
//
// Errors:
//   - ErrInvalidKey for an empty key or segment, or when key is already a
//     sub-tree or lies below an existing value.
func (t *Tree) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, ok := t.values[key]; ok {
		t.values[key] = value

		return nil
	}
	if t.HasSub(key) {
		return fmt.Errorf("Set(%q): key is a sub-tree: %w", key, ErrInvalidKey)
	}
	segments := strings.Split(key, Separator)
	for i := 1; i < len(segments); i++ {
		parent := strings.Join(segments[:i], Separator)
		if _, ok := t.values[parent]; ok {
			return fmt.Errorf("Set(%q): %q holds a value: %w", key, parent, ErrInvalidKey)
		}
	}
	t.keys = append(t.keys, key)
	t.values[key] = value

	return nil
}

// Sub returns a copy of the sub-tree rooted at sub, keys relative to sub.
//
// Errors:
//   - ErrKeyNotFound if sub is not a sub-tree.
func (t *Tree) Sub(sub string) (*Tree, error) {
	prefix := sub + Separator
	out := New()
	for _, k := range t.keys {
		if rel, ok := strings.CutPrefix(k, prefix); ok {
			out.keys = append(out.keys, rel)
			out.values[rel] = t.values[k]
		}
	}
	if out.Empty() {
		return nil, fmt.Errorf("Sub(%q): %w", sub, ErrKeyNotFound)
	}

	return out, nil
}

// Add inserts every value of other below sub.
//
// Errors:
//   - ErrKeyExists if sub already holds a value or a sub-tree.
//   - ErrInvalidKey for an invalid sub.
func (t *Tree) Add(sub string, other *Tree) error {
	if err := validateKey(sub); err != nil {
		return err
	}
	if t.HasKey(sub) || t.HasSub(sub) {
		return fmt.Errorf("Add(%q): %w", sub, ErrKeyExists)
	}
	for _, k := range other.keys {
		if err := t.Set(sub+Separator+k, other.values[k]); err != nil {
			return err
		}
	}

	return nil
}

// Merge copies every value of defaults whose key is absent from t.
// Existing values win. Conflicting keys are skipped.
func (t *Tree) Merge(defaults *Tree) {
	for _, k := range defaults.keys {
		if t.HasKey(k) {
			continue
		}
		_ = t.Set(k, defaults.values[k]) // a value/sub-tree clash keeps t's shape
	}
}

// Keys returns every dotted key in insertion order.
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)

	return out
}

// ValueKeys returns the keys holding values directly at this level.
func (t *Tree) ValueKeys() []string {
	var out []string
	for _, k := range t.keys {
		if !strings.Contains(k, Separator) {
			out = append(out, k)
		}
	}

	return out
}

// SubKeys returns the names of the direct sub-trees, in first-seen order.
func (t *Tree) SubKeys() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, k := range t.keys {
		head, _, nested := strings.Cut(k, Separator)
		if !nested {
			continue
		}
		if _, dup := seen[head]; dup {
			continue
		}
		seen[head] = struct{}{}
		out = append(out, head)
	}

	return out
}

// Clone returns an independent copy.
func (t *Tree) Clone() *Tree {
	out := &Tree{keys: t.Keys(), values: make(map[string]string, len(t.values))}
	for k, v := range t.values {
		out.values[k] = v
	}

	return out
}

// String renders one "key = value" line per value, in insertion order.
func (t *Tree) String() string {
	var sb strings.Builder
	for _, k := range t.keys {
		fmt.Fprintf(&sb, "%s = %s\n", k, t.values[k])
	}

	return sb.String()
}

// validateKey rejects empty keys and empty dotted segments.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key: %w", ErrInvalidKey)
	}
	for _, seg := range strings.Split(key, Separator) {
		if seg == "" {
			return fmt.Errorf("key %q has an empty segment: %w", key, ErrInvalidKey)
		}
	}

	return nil
}
