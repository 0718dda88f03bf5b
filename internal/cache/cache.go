// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/snapdiff/snapdiff/internal/config"
	"github.com/snapdiff/snapdiff/internal/log"
)

// schemaVersion is baked into every envelope. Bump it when the envelope
// layout changes; old entries then read back as misses instead of
// decoding garbage.
const schemaVersion uint16 = 1

// Envelope is the on-disk representation of a cached fetch.
type Envelope struct {
	Schema    uint16
	URL       string
	FetchedAt time.Time
	Body      []byte
}

// Entry pairs a decoded envelope with where it lives on disk.
type Entry struct {
	Envelope
	EncodedKey string
	Path       string
}

// Dir resolves the base cache directory.
// Precedence:
//  1. SNAPDIFF_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/snapdiff
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("SNAPDIFF_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "snapdiff"), true
	}
	return "", false
}

// Enabled returns true unless SNAPDIFF_CACHE explicitly disables it
// ("0"/"false"). When the env var is unset, the cache.enabled config key
// decides; missing or malformed values leave caching on.
func Enabled() bool {
	if enabled, ok := os.LookupEnv("SNAPDIFF_CACHE"); ok {
		return enabled == "" || (enabled != "0" && enabled != "false")
	}
	enabled, err := config.GetBool("cache.enabled", true)
	return err != nil || enabled
}

// EnsureBaseDir creates the base cache directory if caching is enabled and
// a base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	log.Debugf("created cache dir: path=%s", base)
	return base, true, nil
}

// EntryPath returns the absolute path where a cache entry would live given
// subdirectory components and the clear-text URL. It also returns true if a
// file currently exists at that path.
func EntryPath(subdirs []string, url string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	encoded := encodeKey(url)
	p := filepath.Join(append([]string{base}, append(subdirs, encoded)...)...)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

// Purge removes entries older than the provided number of hours.
// If hours <= 0 or the cache dir cannot be resolved, it is a no-op.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(base, func(path string, info os.FileInfo, walkErr error) error {
		// Guard against nil info (can occur if the file disappeared out
		// from under the walk, e.g. concurrent runs sharing a cache).
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}

		if info == nil {
			return nil
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s (written %s)", path, humanize.Time(info.ModTime()))
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// Read attempts to read a cached entry for the given URL. Entries whose
// envelope cannot be decoded, carries a different schema version, or was
// keyed by a different URL (hash collision) are treated as misses.
func Read(subdirs []string, url string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, url)
	if !ok {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}

	var env Envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		log.Debugf("cache entry undecodable, treating as miss: %s", p)
		return nil, false
	}
	if env.Schema != schemaVersion || env.URL != url {
		return nil, false
	}

	log.Debugf("cache hit: url=%s fetched=%s", url, humanize.Time(env.FetchedAt))
	return &Entry{
		Envelope:   env,
		EncodedKey: encodeKey(url),
		Path:       p,
	}, true
}

// Write stores the body for the given URL beneath subdirs. Creates
// directories as needed.
func Write(subdirs []string, url string, body []byte) error {
	if !Enabled() {
		return nil // treat as disabled.
	}
	base, ok := Dir()
	if !ok {
		return nil // treat as disabled.
	}

	env := Envelope{
		Schema:    schemaVersion,
		URL:       url,
		FetchedAt: time.Now().UTC(),
		Body:      body,
	}
	data, err := msgpack.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode cache envelope: %w", err)
	}

	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(url))
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: url=%s", url)
	return nil
}

// sha256 returns a 32-byte digest.
func encodeKey(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
