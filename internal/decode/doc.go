// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package decode turns raw document bytes into pretty.Value trees.
//
// Supported formats are JSON, YAML, TOML and HCL. Mapping key order is
// preserved as it appears in the source document so that dumps and diffs
// line up with what the author wrote. Format selection is explicit
// ("path@format"), by file extension, or by content sniffing.
package decode
