// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output writes dump and diff text to the terminal: colorized
// line rendering, the --stat summary table, ordered YAML re-emission and
// the interactive diff pager.
package output
