// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/snapdiff/snapdiff/pretty"
)

// decodeYAML parses into a yaml.Node tree rather than a map so that
// mapping key order survives the trip.
func decodeYAML(data []byte) (pretty.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return pretty.Value{}, fmt.Errorf("invalid YAML document: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document.
		return pretty.Null(), nil
	}
	return fromNode(root.Content[0])
}

func fromNode(n *yaml.Node) (pretty.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]pretty.Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromNode(c)
			if err != nil {
				return pretty.Value{}, err
			}
			items = append(items, item)
		}
		return pretty.Seq(items...), nil
	case yaml.MappingNode:
		entries := make([]pretty.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromNode(n.Content[i+1])
			if err != nil {
				return pretty.Value{}, err
			}
			entries = append(entries, pretty.Entry{Key: n.Content[i].Value, Val: val})
		}
		return pretty.Map(entries...), nil
	case yaml.ScalarNode:
		return fromScalar(n), nil
	}
	return pretty.Value{}, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

func fromScalar(n *yaml.Node) pretty.Value {
	switch n.Tag {
	case "!!null":
		return pretty.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return pretty.Bool(b)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return pretty.Int(i)
		}
		// Overflowed int64; carry the magnitude as a float.
		var f float64
		if err := n.Decode(&f); err == nil {
			return pretty.Float(f)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return pretty.Float(f)
		}
	case "!!timestamp":
		return pretty.Str(n.Value)
	}
	return pretty.Str(n.Value)
}
