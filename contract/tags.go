// SPDX-License-Identifier: MIT
// Package: paramop/contract
//
// tags.go — run-time type tags.

package contract

import "strings"

// Tag is a bit-set classifying an object by capability family.
// Decomposed tags contain the bit of their base family, so an affinely
// decomposed operator also reports TagOperator.
type Tag uint8

const (
	// TagFunctional marks scalar functionals.
	TagFunctional Tag = 1 << iota
	// TagOperator marks operators.
	TagOperator
	tagAffineFunctional
	tagAffineOperator
)

const (
	// TagAffinelyDecomposedFunctional implies TagFunctional.
	TagAffinelyDecomposedFunctional = TagFunctional | tagAffineFunctional
	// TagAffinelyDecomposedOperator implies TagOperator.
	TagAffinelyDecomposedOperator = TagOperator | tagAffineOperator
)

// Tagged is implemented by every paramop object.
type Tagged interface {
	Tags() Tag
}

// Has reports whether every bit of want is set in t.
func (t Tag) Has(want Tag) bool { return want != 0 && t&want == want }

// String lists the most specific family names, e.g. "AffinelyDecomposedOperator".
func (t Tag) String() string {
	var parts []string
	switch {
	case t.Has(TagAffinelyDecomposedFunctional):
		parts = append(parts, "AffinelyDecomposedFunctional")
	case t.Has(TagFunctional):
		parts = append(parts, "Functional")
	}
	switch {
	case t.Has(TagAffinelyDecomposedOperator):
		parts = append(parts, "AffinelyDecomposedOperator")
	case t.Has(TagOperator):
		parts = append(parts, "Operator")
	}
	if len(parts) == 0 {
		return "None"
	}

	return strings.Join(parts, "|")
}

// HasTag reports whether v is Tagged and carries tag.
func HasTag(v any, tag Tag) bool {
	t, ok := v.(Tagged)

	return ok && t.Tags().Has(tag)
}
