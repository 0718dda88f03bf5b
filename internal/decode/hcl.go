// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/snapdiff/snapdiff/pretty"
)

func decodeHCL(data []byte) (pretty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "input.hcl")
	if diags.HasErrors() {
		return pretty.Value{}, fmt.Errorf("invalid HCL document: %s", diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return pretty.Value{}, errors.New("unexpected HCL body type")
	}
	return fromBody(body)
}

// fromBody renders a body as a mapping. Attributes and block groups are
// ordered by their byte offset in the source; blocks sharing a type are
// grouped under the type name, with labels nesting as wrapper mappings.
func fromBody(b *hclsyntax.Body) (pretty.Value, error) {
	type member struct {
		key string
		pos int
		val pretty.Value
	}
	var members []member

	for name, attr := range b.Attributes {
		cv, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return pretty.Value{}, fmt.Errorf("attribute %q: %s", name, diags.Error())
		}
		val, err := fromCty(cv)
		if err != nil {
			return pretty.Value{}, fmt.Errorf("attribute %q: %w", name, err)
		}
		members = append(members, member{key: name, pos: attr.SrcRange.Start.Byte, val: val})
	}

	groups := map[string][]*hclsyntax.Block{}
	var order []string
	for _, blk := range b.Blocks {
		if _, ok := groups[blk.Type]; !ok {
			order = append(order, blk.Type)
		}
		groups[blk.Type] = append(groups[blk.Type], blk)
	}
	for _, typ := range order {
		blks := groups[typ]
		vals := make([]pretty.Value, 0, len(blks))
		for _, blk := range blks {
			val, err := fromBody(blk.Body)
			if err != nil {
				return pretty.Value{}, fmt.Errorf("block %q: %w", typ, err)
			}
			for i := len(blk.Labels) - 1; i >= 0; i-- {
				val = pretty.Map(pretty.Entry{Key: blk.Labels[i], Val: val})
			}
			vals = append(vals, val)
		}
		val := vals[0]
		if len(vals) > 1 {
			val = pretty.Seq(vals...)
		}
		members = append(members, member{key: typ, pos: blks[0].TypeRange.Start.Byte, val: val})
	}

	sort.Slice(members, func(i, j int) bool { return members[i].pos < members[j].pos })
	entries := make([]pretty.Entry, 0, len(members))
	for _, m := range members {
		entries = append(entries, pretty.Entry{Key: m.key, Val: m.val})
	}
	return pretty.Map(entries...), nil
}

func fromCty(cv cty.Value) (pretty.Value, error) {
	if cv.IsNull() {
		return pretty.Null(), nil
	}
	if !cv.IsKnown() {
		return pretty.Value{}, errors.New("unknown value")
	}
	ty := cv.Type()
	switch {
	case ty == cty.Bool:
		return pretty.Bool(cv.True()), nil
	case ty == cty.Number:
		bf := cv.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return pretty.Int(i), nil
			}
		}
		f, _ := bf.Float64()
		return pretty.Float(f), nil
	case ty == cty.String:
		return pretty.Str(cv.AsString()), nil
	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		var items []pretty.Value
		for it := cv.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			item, err := fromCty(ev)
			if err != nil {
				return pretty.Value{}, err
			}
			items = append(items, item)
		}
		return pretty.Seq(items...), nil
	case ty.IsObjectType(), ty.IsMapType():
		var entries []pretty.Entry
		for it := cv.ElementIterator(); it.Next(); {
			ek, ev := it.Element()
			val, err := fromCty(ev)
			if err != nil {
				return pretty.Value{}, err
			}
			entries = append(entries, pretty.Entry{Key: ek.AsString(), Val: val})
		}
		return pretty.Map(entries...), nil
	default:
		return pretty.Value{}, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
