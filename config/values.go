// SPDX-License-Identifier: MIT
// Package: paramop/config
//
// values.go — typed accessors over raw string values.
//
// Literal forms:
//   • scalars:  "3", "0.5", "1e-3"
//   • vectors:  "[1 2 3]"      (brackets optional, commas allowed)
//   • matrices: "[1 2; 3 4]"   (rows separated by ';')

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GetInt parses the value of key as a base-10 integer.
//
// Errors:
//   - ErrKeyNotFound, ErrMalformedValue.
func (t *Tree) GetInt(key string) (int, error) {
	raw, err := t.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("GetInt(%q): %q: %w", key, raw, ErrMalformedValue)
	}

	return n, nil
}

// GetFloat parses the value of key as a float64.
//
// Errors:
//   - ErrKeyNotFound, ErrMalformedValue.
func (t *Tree) GetFloat(key string) (float64, error) {
	raw, err := t.Get(key)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("GetFloat(%q): %q: %w", key, raw, ErrMalformedValue)
	}

	return x, nil
}

// GetFloats parses the value of key as a non-empty vector literal.
//
// Errors:
//   - ErrKeyNotFound, ErrMalformedValue.
func (t *Tree) GetFloats(key string) ([]float64, error) {
	raw, err := t.Get(key)
	if err != nil {
		return nil, err
	}
	out, err := ParseFloats(raw)
	if err != nil {
		return nil, fmt.Errorf("GetFloats(%q): %w", key, err)
	}

	return out, nil
}

// GetMatrix parses the value of key as a rectangular matrix literal.
//
// Errors:
//   - ErrKeyNotFound, ErrMalformedValue.
func (t *Tree) GetMatrix(key string) ([][]float64, error) {
	raw, err := t.Get(key)
	if err != nil {
		return nil, err
	}
	out, err := ParseMatrix(raw)
	if err != nil {
		return nil, fmt.Errorf("GetMatrix(%q): %w", key, err)
	}

	return out, nil
}

// ParseFloats parses "[1 2 3]", "1, 2, 3" and similar into a non-empty slice.
//
// Errors:
//   - ErrMalformedValue.
func ParseFloats(raw string) ([]float64, error) {
	fields := strings.FieldsFunc(stripBrackets(raw), isListSeparator)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty vector %q: %w", raw, ErrMalformedValue)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d of %q: %w", i, raw, ErrMalformedValue)
		}
		out[i] = x
	}

	return out, nil
}

// ParseMatrix parses "[1 2; 3 4]" into rows of equal, non-zero length.
//
// Errors:
//   - ErrMalformedValue.
func ParseMatrix(raw string) ([][]float64, error) {
	rows := strings.Split(stripBrackets(raw), ";")
	out := make([][]float64, 0, len(rows))
	for i, row := range rows {
		values, err := ParseFloats(row)
		if err != nil {
			return nil, fmt.Errorf("row %d of %q: %w", i, raw, err)
		}
		if i > 0 && len(values) != len(out[0]) {
			return nil, fmt.Errorf("row %d of %q has %d entries, expected %d: %w",
				i, raw, len(values), len(out[0]), ErrMalformedValue)
		}
		out = append(out, values)
	}

	return out, nil
}

// FormatFloats renders values as a vector literal "[1 2 3]".
func FormatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// FormatMatrix renders rows as a matrix literal "[1 2; 3 4]".
func FormatMatrix(rows [][]float64) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = strings.Trim(FormatFloats(row), "[]")
	}

	return "[" + strings.Join(parts, "; ") + "]"
}

func stripBrackets(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	return s
}

func isListSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n'
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
