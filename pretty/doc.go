// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pretty renders structured values into a canonical, human-readable
// textual form and computes readable line diffs between two such values.
//
// The package operates on a closed value model (Value): null, bool, integer,
// float, string, sequence and mapping. Host values enter the model through
// FromNative or the typed constructors; Dump and Diff are pure functions of
// the resulting structure plus the active Flag set, so the same input always
// produces byte-identical output.
//
// The package never parses documents. Turning JSON/YAML/TOML/HCL bytes into
// a Value is the job of internal/decode.
package pretty
