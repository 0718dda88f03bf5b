// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fetch resolves an input spec to document bytes. passphrase is the value
// of the --passphrase flag and may be empty; it is only consulted when the
// fetched document turns out to be an encrypted envelope.
func Fetch(ctx context.Context, spec string, passphrase string) ([]byte, error) {
	data, err := fetch(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", spec, err)
	}

	if IsEncrypted(data) {
		pass, err := resolvePassphrase(passphrase)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", spec, err)
		}
		data, err = Decrypt(data, pass)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", spec, err)
		}
	}

	return data, nil
}

func fetch(ctx context.Context, spec string) ([]byte, error) {
	switch {
	case spec == "-":
		return io.ReadAll(os.Stdin)
	case strings.HasPrefix(spec, "https://"), strings.HasPrefix(spec, "http://"):
		return fetchHTTP(ctx, spec)
	case strings.HasPrefix(spec, "s3://"):
		return fetchS3(ctx, spec)
	default:
		return os.ReadFile(spec)
	}
}

// resolvePassphrase picks the first available passphrase source: the flag
// value, SNAPDIFF_PASSPHRASE, then an interactive prompt.
func resolvePassphrase(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("SNAPDIFF_PASSPHRASE"); env != "" {
		return env, nil
	}
	return PromptPassphrase()
}
