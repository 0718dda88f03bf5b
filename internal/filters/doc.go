// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters removes volatile fields from documents before diffing.
//
// An --ignore specification is a delimiter-separated list of dot paths
// (default delimiter: comma, overridable via SNAPDIFF_IGNORE_DELIM).
// Each path is pruned from both sides of a diff so fields like serials
// and timestamps don't drown out the interesting changes.
package filters
