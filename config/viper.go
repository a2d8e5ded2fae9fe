// SPDX-License-Identifier: MIT
// Package: paramop/config
//
// viper.go — override layers (environment, override files) via spf13/viper.
//
// Viper folds keys to lower case and does not keep document order, so it never
// builds a Tree. It only overrides values the Tree already holds: each tree
// key is looked up case-insensitively and the tree keeps its own spelling and
// order. Keys that fold together ("Kappa", "kappa") make an override
// ambiguous and are rejected.

package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvOverlay returns a viper instance resolving keys from environment
// variables: "coefficient.0.kappa" reads PREFIX_COEFFICIENT_0_KAPPA.
func EnvOverlay(prefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(Separator, "_"))
	v.AutomaticEnv()

	return v
}

// YAMLOverlay returns a viper instance holding the YAML override document.
//
// Errors:
//   - ErrYAML.
func YAMLOverlay(data []byte) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("YAMLOverlay: %w: %w", ErrYAML, err)
	}

	return v, nil
}

// Overlay replaces every value of t that v sets. Keys unknown to t are
// ignored. Sequences render as "[a b]" / "[a b; c d]" literals.
//
// Errors:
//   - ErrInvalidKey when an overridden key folds onto several tree keys.
func (t *Tree) Overlay(v *viper.Viper) error {
	folded := make(map[string][]string, len(t.keys))
	for _, k := range t.keys {
		lk := strings.ToLower(k)
		folded[lk] = append(folded[lk], k)
	}
	for _, k := range t.keys {
		lk := strings.ToLower(k)
		if !v.IsSet(lk) {
			continue
		}
		if spellings := folded[lk]; len(spellings) > 1 {
			return fmt.Errorf("Overlay(%q): ambiguous with %v: %w", k, spellings, ErrInvalidKey)
		}
		t.values[k] = overrideLiteral(v.Get(lk))
	}

	return nil
}

// LoadWithEnv loads path and applies the environment overlay for prefix.
//
// Errors:
//   - see Load and Overlay.
func LoadWithEnv(path, prefix string) (*Tree, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err = t.Overlay(EnvOverlay(prefix)); err != nil {
		return nil, err
	}

	return t, nil
}

func overrideLiteral(val any) string {
	switch x := val.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		rows := make([]string, 0, len(x))
		matrix := len(x) > 0
		for _, item := range x {
			row, ok := item.([]any)
			if !ok {
				matrix = false

				break
			}
			rows = append(rows, joinAny(row))
		}
		if matrix {
			return "[" + strings.Join(rows, "; ") + "]"
		}

		return "[" + joinAny(x) + "]"
	default:
		return fmt.Sprint(x)
	}
}

func joinAny(items []any) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}

	return strings.Join(parts, " ")
}
