// SPDX-License-Identifier: MIT
// Package: paramop/config
//
// yaml.go — YAML loading and dumping via gopkg.in/yaml.v3 nodes.
//
// Flattening rules (YAML → Tree):
//   • nested mappings become dotted keys:   a: {b: 1}        → a.b = 1
//   • scalar sequences become vectors:      a: [1, 2]        → a = [1 2]
//   • sequences of scalar sequences:        a: [[1, 2], [3, 4]] → a = [1 2; 3 4]
//   • sequences of mappings are indexed:    a: [{type: x}]   → a.0.type = x
//   • null scalars become empty values.
// ToYAML inverts the first three rules, so FromYAML(ToYAML(t)) == t.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and flattens the YAML document at path.
//
// Errors:
//   - ErrYAML (I/O or syntax), ErrInvalidKey.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w: %w", path, ErrYAML, err)
	}

	return FromYAML(data)
}

// FromYAML flattens a YAML document into a Tree. An empty document yields an
// empty tree; a non-mapping top level is rejected.
//
// Errors:
//   - ErrYAML, ErrInvalidKey.
func FromYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("FromYAML: %w: %w", ErrYAML, err)
	}
	t := New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return t, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("FromYAML: top level must be a mapping, line %d: %w", root.Line, ErrYAML)
	}
	if err := flatten(t, "", root); err != nil {
		return nil, fmt.Errorf("FromYAML: %w", err)
	}

	return t, nil
}

// flatten writes node into t below prefix.
func flatten(t *Tree, prefix string, node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := resolveAlias(node.Content[i])
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("non-scalar key at line %d: %w", k.Line, ErrYAML)
			}
			if err := flatten(t, join(prefix, k.Value), node.Content[i+1]); err != nil {
				return err
			}
		}

		return nil

	case yaml.SequenceNode:
		if allKind(node.Content, yaml.MappingNode) && len(node.Content) > 0 {
			for i, item := range node.Content {
				if err := flatten(t, join(prefix, strconv.Itoa(i)), item); err != nil {
					return err
				}
			}

			return nil
		}
		literal, err := sequenceLiteral(node)
		if err != nil {
			return err
		}

		return t.Set(prefix, literal)

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return t.Set(prefix, "")
		}

		return t.Set(prefix, node.Value)

	default:
		return fmt.Errorf("unsupported node kind %d at line %d: %w", node.Kind, node.Line, ErrYAML)
	}
}

// sequenceLiteral renders a scalar sequence as "[a b]" and a sequence of
// scalar sequences as "[a b; c d]".
func sequenceLiteral(node *yaml.Node) (string, error) {
	items := make([]*yaml.Node, len(node.Content))
	for i, item := range node.Content {
		items[i] = resolveAlias(item)
	}
	switch {
	case allKind(items, yaml.ScalarNode):
		return "[" + joinScalars(items) + "]", nil
	case allKind(items, yaml.SequenceNode):
		rows := make([]string, len(items))
		for i, row := range items {
			cells := make([]*yaml.Node, len(row.Content))
			for j, c := range row.Content {
				cells[j] = resolveAlias(c)
			}
			if !allKind(cells, yaml.ScalarNode) {
				return "", fmt.Errorf("sequence nested deeper than a matrix at line %d: %w", row.Line, ErrYAML)
			}
			rows[i] = joinScalars(cells)
		}

		return "[" + strings.Join(rows, "; ") + "]", nil
	default:
		return "", fmt.Errorf("mixed sequence at line %d: %w", node.Line, ErrYAML)
	}
}

// ToYAML renders t as a nested YAML document in insertion order.
// Vector and matrix literals become flow sequences.
//
// Errors:
//   - ErrYAML if encoding fails.
func (t *Tree) ToYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range t.keys {
		parent := root
		segments := strings.Split(k, Separator)
		for _, seg := range segments[:len(segments)-1] {
			parent = childMapping(parent, seg)
		}
		parent.Content = append(parent.Content,
			scalarNode(segments[len(segments)-1]),
			valueNode(t.values[k]))
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("ToYAML: %w: %w", ErrYAML, err)
	}

	return out, nil
}

// childMapping returns the mapping stored under key in parent, creating it.
func childMapping(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == key && parent.Content[i+1].Kind == yaml.MappingNode {
			return parent.Content[i+1]
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, scalarNode(key), child)

	return child
}

// valueNode renders canonical vector/matrix literals ("[a b]", "[a b; c d]")
// as flow sequences and everything else as a scalar.
func valueNode(raw string) *yaml.Node {
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		n := scalarNode(raw)
		switch raw {
		case "null", "Null", "NULL", "~":
			n.Style = yaml.DoubleQuotedStyle
		}

		return n
	}
	rows := strings.Split(stripBrackets(raw), ";")
	cells := make([][]string, len(rows))
	canon := make([]string, len(rows))
	for i, row := range rows {
		cells[i] = strings.FieldsFunc(row, isListSeparator)
		canon[i] = strings.Join(cells[i], " ")
	}
	if "["+strings.Join(canon, "; ")+"]" != raw {
		return scalarNode(raw)
	}
	if len(rows) == 1 {
		return flowRow(cells[0])
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range cells {
		if len(c) == 0 {
			return scalarNode(raw)
		}
		seq.Content = append(seq.Content, flowRow(c))
	}

	return seq
}

func flowRow(cells []string) *yaml.Node {
	row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range cells {
		row.Content = append(row.Content, scalarNode(c))
	}

	return row
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func allKind(nodes []*yaml.Node, kind yaml.Kind) bool {
	for _, n := range nodes {
		if resolveAlias(n).Kind != kind {
			return false
		}
	}

	return true
}

func joinScalars(nodes []*yaml.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.Value
	}

	return strings.Join(parts, " ")
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + Separator + key
}
