// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/snapdiff/snapdiff/internal/cache"
	"github.com/snapdiff/snapdiff/internal/config"
	"github.com/snapdiff/snapdiff/internal/log"
)

// cacheSubdir is where remote fetches land under the cache base.
var cacheSubdir = []string{"remote"}

func fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	if hours, err := config.GetInt("cache.clean", 0); err == nil {
		if err := cache.Purge(hours); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}
	}

	if entry, ok := cache.Read(cacheSubdir, url); ok {
		log.Debugf("cache hit: %s", entry.Path)
		return entry.Body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token, err := config.GetString("remote.token", ""); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if err := cache.Write(cacheSubdir, url, body); err != nil {
		log.WithError(err).Warn("failed to write response to cache")
	}

	return body, nil
}
