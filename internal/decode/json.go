// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/snapdiff/snapdiff/pretty"
)

func decodeJSON(data []byte) (pretty.Value, error) {
	if !gjson.ValidBytes(data) {
		return pretty.Value{}, errors.New("invalid JSON document")
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// fromResult converts a gjson node. ForEach walks members in document
// order, which keeps mapping keys as they appear in the file. The raw
// number text decides Integer vs Float: no dot or exponent means integer,
// unless it overflows int64.
func fromResult(r gjson.Result) pretty.Value {
	switch r.Type {
	case gjson.Null:
		return pretty.Null()
	case gjson.False:
		return pretty.Bool(false)
	case gjson.True:
		return pretty.Bool(true)
	case gjson.String:
		return pretty.Str(r.String())
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return pretty.Int(i)
			}
		}
		return pretty.Float(r.Float())
	default:
		if r.IsArray() {
			var items []pretty.Value
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return pretty.Seq(items...)
		}
		var entries []pretty.Entry
		r.ForEach(func(key, val gjson.Result) bool {
			entries = append(entries, pretty.Entry{Key: key.String(), Val: fromResult(val)})
			return true
		})
		return pretty.Map(entries...)
	}
}
