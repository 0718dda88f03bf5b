// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves input specs to raw document bytes.
//
// A spec is a local file path, "-" for stdin, an http(s) URL (fetched
// with an optional bearer token and a disk cache), or an s3:// object.
// Encrypted snapshot envelopes are detected and decrypted transparently,
// with the passphrase coming from the caller, SNAPDIFF_PASSPHRASE, or an
// interactive prompt.
package source
