// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cache provides a disk cache for remote document fetches.
//
// Entries live under $SNAPDIFF_CACHE_DIR (or os.UserCacheDir()/snapdiff),
// keyed by the sha256 of the source URL, and are stored as msgpack
// envelopes carrying a schema version, the URL, the fetch time and the
// body. SNAPDIFF_CACHE=0 disables caching entirely.
package cache
