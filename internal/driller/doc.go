// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller traverses decoded documents to extract the sub-value a
// --select path points at before dumping or diffing.
package driller
