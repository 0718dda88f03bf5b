// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/snapdiff/snapdiff/pretty"
)

// ToYAML re-emits a value as YAML. yaml.v2's MapSlice keeps the mapping
// entry order the document arrived with, which yaml.v3 maps would lose.
func ToYAML(v pretty.Value) ([]byte, error) {
	out, err := yaml.Marshal(toNative(v))
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}

func toNative(v pretty.Value) interface{} {
	switch v.Kind() {
	case pretty.KindNull:
		return nil
	case pretty.KindBool:
		return v.BoolVal()
	case pretty.KindInteger:
		return v.IntVal()
	case pretty.KindFloat:
		return v.FloatVal()
	case pretty.KindString:
		return v.StrVal()
	case pretty.KindSequence:
		items := make([]interface{}, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, toNative(item))
		}
		return items
	case pretty.KindMapping:
		entries := make(yaml.MapSlice, 0, v.Len())
		for _, e := range v.Entries() {
			entries = append(entries, yaml.MapItem{Key: e.Key, Value: toNative(e.Val)})
		}
		return entries
	default:
		return nil
	}
}
