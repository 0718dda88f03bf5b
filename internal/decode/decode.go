// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"

	"github.com/snapdiff/snapdiff/pretty"
)

// Format identifies a document syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// ErrUnknownFormat is returned when a format name is not one of the
// supported syntaxes.
var ErrUnknownFormat = errors.New("unknown format")

// ParseSpec splits an input spec of the form "path@format" into its path
// and format parts. A trailing "@format" is only honored when the suffix
// names a supported format, so paths containing a literal "@" still work.
// Specs without an override return FormatAuto.
func ParseSpec(spec string) (string, Format) {
	if i := strings.LastIndex(spec, "@"); i > 0 {
		switch f := Format(strings.ToLower(spec[i+1:])); f {
		case FormatJSON, FormatYAML, FormatTOML, FormatHCL:
			return spec[:i], f
		}
	}
	return spec, FormatAuto
}

// Detect resolves FormatAuto for a document: first by file extension, then
// by sniffing the content. HCL is never sniffed; it is selected only by
// extension or an explicit override, since its syntax overlaps TOML too
// closely to guess safely.
func Detect(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".tf", ".hcl":
		return FormatHCL
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && gjson.ValidBytes(data) {
		return FormatJSON
	}

	if bytes.ContainsRune(trimmed, '=') {
		var probe map[string]interface{}
		if _, err := toml.Decode(string(data), &probe); err == nil {
			return FormatTOML
		}
	}

	// YAML is the superset fallback.
	return FormatYAML
}

// Decode parses document bytes in the given format. The format must be
// concrete; resolve FormatAuto with Detect first.
func Decode(data []byte, format Format) (pretty.Value, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatHCL:
		return decodeHCL(data)
	default:
		return pretty.Value{}, fmt.Errorf("%q: %w", string(format), ErrUnknownFormat)
	}
}
