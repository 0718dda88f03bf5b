// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/snapdiff/snapdiff/internal/config"
)

// TestDir_WithSNAPDIFF_CACHE_DIR verifies Dir() respects SNAPDIFF_CACHE_DIR
// environment variable with highest priority.
func TestDir_WithSNAPDIFF_CACHE_DIR(t *testing.T) {
	customDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", customDir)

	result, ok := Dir()

	assert.True(t, ok)
	assert.Equal(t, customDir, result)
}

// TestDir_WithEmptySNAPDIFF_CACHE_DIR verifies empty SNAPDIFF_CACHE_DIR is
// treated as not set.
func TestDir_WithEmptySNAPDIFF_CACHE_DIR(t *testing.T) {
	t.Setenv("SNAPDIFF_CACHE_DIR", "")
	// Should fall back to os.UserCacheDir

	result, ok := Dir()

	// Result depends on system, but should not be empty string
	if ok {
		assert.NotEmpty(t, result)
		assert.True(t, filepath.IsAbs(result))
	}
}

// TestEnabled_Default verifies caching is enabled by default (no env var).
func TestEnabled_Default(t *testing.T) {
	t.Setenv("SNAPDIFF_CACHE", "")

	assert.True(t, Enabled())
}

// TestEnabled_WithSNAPDIFF_CACHE_Set verifies caching is enabled when
// SNAPDIFF_CACHE is any value other than "0" or "false".
func TestEnabled_WithSNAPDIFF_CACHE_Set(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"1", "1", true},
		{"true", "true", true},
		{"yes", "yes", true},
		{"empty string", "", true},
		{"0", "0", false},
		{"false", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SNAPDIFF_CACHE", tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

// TestEnabled_ConfigKey verifies the cache.enabled config key decides when
// SNAPDIFF_CACHE is not set, and that the env var wins when both are present.
func TestEnabled_ConfigKey(t *testing.T) {
	if orig, ok := os.LookupEnv("SNAPDIFF_CACHE"); ok {
		require.NoError(t, os.Unsetenv("SNAPDIFF_CACHE"))
		t.Cleanup(func() { os.Setenv("SNAPDIFF_CACHE", orig) })
	}

	cfg := filepath.Join(t.TempDir(), "snapdiff.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("cache:\n  enabled: false\n"), 0o600))
	t.Setenv("SNAPDIFF_CFG_FILE", cfg)
	_, err := config.Load()
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	assert.False(t, Enabled())

	require.NoError(t, os.WriteFile(cfg, []byte("cache:\n  enabled: true\n"), 0o600))
	_, err = config.Load()
	require.NoError(t, err)
	assert.True(t, Enabled())

	// The env var takes precedence over the config key.
	t.Setenv("SNAPDIFF_CACHE", "0")
	assert.False(t, Enabled())
}

// TestEnsureBaseDir_CachingDisabled verifies EnsureBaseDir returns empty
// when caching is disabled.
func TestEnsureBaseDir_CachingDisabled(t *testing.T) {
	t.Setenv("SNAPDIFF_CACHE", "0")

	base, ok, err := EnsureBaseDir()

	assert.False(t, ok)
	assert.Empty(t, base)
	assert.NoError(t, err)
}

// TestEnsureBaseDir_CreatesDirectory verifies EnsureBaseDir creates the
// cache directory when it doesn't exist.
func TestEnsureBaseDir_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache", "nested")
	t.Setenv("SNAPDIFF_CACHE_DIR", cacheDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	// Verify dir doesn't exist yet
	assert.NoFileExists(t, cacheDir)

	base, ok, err := EnsureBaseDir()

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cacheDir, base)
	assert.DirExists(t, cacheDir)
}

// TestEntryPath_NonexistentEntry verifies EntryPath returns computed path
// and false when file doesn't exist.
func TestEntryPath_NonexistentEntry(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)

	path, exists := EntryPath([]string{"remote"}, "https://example.com/snap.json")

	assert.False(t, exists)
	assert.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
}

// TestRead_CachingDisabled verifies Read returns false when caching is
// disabled.
func TestRead_CachingDisabled(t *testing.T) {
	t.Setenv("SNAPDIFF_CACHE", "0")

	entry, found := Read([]string{"remote"}, "https://example.com/x")

	assert.False(t, found)
	assert.Nil(t, entry)
}

// TestRead_FileNotFound verifies Read returns false when file doesn't exist.
func TestRead_FileNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	entry, found := Read([]string{"remote"}, "https://example.com/missing")

	assert.False(t, found)
	assert.Nil(t, entry)
}

// TestWriteRead_RoundTrip verifies a written entry reads back with its
// envelope fields populated.
func TestWriteRead_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/state.json"
	body := []byte(`{"serial": 42}`)

	err := Write([]string{"remote"}, url, body)
	require.NoError(t, err)

	entry, found := Read([]string{"remote"}, url)

	require.True(t, found)
	require.NotNil(t, entry)
	assert.Equal(t, url, entry.URL)
	assert.Equal(t, body, entry.Body)
	assert.Equal(t, schemaVersion, entry.Schema)
	assert.WithinDuration(t, time.Now(), entry.FetchedAt, time.Minute)
	assert.Equal(t, encodeKey(url), entry.EncodedKey)
	assert.FileExists(t, entry.Path)
}

// TestRead_SchemaMismatch verifies entries written with a different schema
// version read back as misses.
func TestRead_SchemaMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/old-schema"
	env := Envelope{
		Schema:    schemaVersion + 1,
		URL:       url,
		FetchedAt: time.Now(),
		Body:      []byte("body"),
	}
	data, err := msgpack.Marshal(env)
	require.NoError(t, err)

	p, _ := EntryPath(nil, url)
	require.NoError(t, os.WriteFile(p, data, 0o600))

	_, found := Read(nil, url)
	assert.False(t, found)
}

// TestRead_URLMismatch verifies an envelope recorded for a different URL
// is treated as a miss.
func TestRead_URLMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/a"
	env := Envelope{
		Schema:    schemaVersion,
		URL:       "https://example.com/b",
		FetchedAt: time.Now(),
		Body:      []byte("body"),
	}
	data, err := msgpack.Marshal(env)
	require.NoError(t, err)

	p, _ := EntryPath(nil, url)
	require.NoError(t, os.WriteFile(p, data, 0o600))

	_, found := Read(nil, url)
	assert.False(t, found)
}

// TestRead_UndecodableEnvelope verifies garbage on disk is a miss, not an
// error.
func TestRead_UndecodableEnvelope(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/garbage"
	p, _ := EntryPath(nil, url)
	require.NoError(t, os.WriteFile(p, []byte("not msgpack"), 0o600))

	entry, found := Read(nil, url)
	assert.False(t, found)
	assert.Nil(t, entry)
}

// TestWrite_CachingDisabled verifies Write is no-op when caching is
// disabled.
func TestWrite_CachingDisabled(t *testing.T) {
	t.Setenv("SNAPDIFF_CACHE", "0")

	err := Write([]string{"remote"}, "https://example.com/x", []byte("data"))

	assert.NoError(t, err)
}

// TestWrite_CreatesDirectories verifies Write creates missing
// subdirectories.
func TestWrite_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	subdir := filepath.Join(tmpDir, "level1", "level2")
	assert.NoFileExists(t, subdir)

	err := Write([]string{"level1", "level2"}, "https://example.com/x", []byte("data"))

	assert.NoError(t, err)
	assert.DirExists(t, subdir)
}

// TestWrite_FilePermissions verifies Write creates files with 0600
// permissions (user read/write only).
func TestWrite_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/perms"
	err := Write(nil, url, []byte("data"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tmpDir, encodeKey(url)))
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestWrite_OverwritesExisting verifies Write overwrites existing cache
// entries.
func TestWrite_OverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)
	t.Setenv("SNAPDIFF_CACHE", "1")

	url := "https://example.com/overwrite"

	require.NoError(t, Write(nil, url, []byte("old data")))
	require.NoError(t, Write(nil, url, []byte("new data")))

	entry, found := Read(nil, url)
	require.True(t, found)
	assert.Equal(t, []byte("new data"), entry.Body)
}

// TestPurge_DisabledWithZeroHours verifies Purge is no-op when hours <= 0.
func TestPurge_DisabledWithZeroHours(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)

	oldPath := filepath.Join(tmpDir, "old_file")
	err := os.WriteFile(oldPath, []byte("data"), 0o600)
	require.NoError(t, err)

	err = Purge(0)

	assert.NoError(t, err)
	assert.FileExists(t, oldPath)
}

// TestPurge_RemovesOldFiles verifies Purge removes files older than
// specified hours.
func TestPurge_RemovesOldFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)

	oldPath := filepath.Join(tmpDir, "old_file")
	err := os.WriteFile(oldPath, []byte("old data"), 0o600)
	require.NoError(t, err)

	pastTime := time.Now().Add(-3 * time.Hour)
	err = os.Chtimes(oldPath, pastTime, pastTime)
	require.NoError(t, err)

	err = Purge(1)

	assert.NoError(t, err)
	assert.NoFileExists(t, oldPath)
}

// TestPurge_MixedAges verifies Purge only removes files matching age
// criteria, including in nested directories.
func TestPurge_MixedAges(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SNAPDIFF_CACHE_DIR", tmpDir)

	nestedDir := filepath.Join(tmpDir, "remote")
	require.NoError(t, os.MkdirAll(nestedDir, 0o755))

	oldPath := filepath.Join(nestedDir, "old")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0o600))

	pastTime := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, pastTime, pastTime))

	recentPath := filepath.Join(nestedDir, "recent")
	require.NoError(t, os.WriteFile(recentPath, []byte("recent"), 0o600))

	err := Purge(1)

	assert.NoError(t, err)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, recentPath)
}

// TestEncodeKey_HexFormat verifies encodeKey returns a stable sha256 hex
// string for any input.
func TestEncodeKey_HexFormat(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"url", "https://example.com/snap.json?v=1"},
		{"spaces", "key with spaces"},
		{"unicode", "key-with-unicode-snowman-☃"},
		{"newlines", "key\nwith\nnewlines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := encodeKey(tt.key)
			assert.Equal(t, 64, len(encoded))
			assert.Equal(t, encoded, encodeKey(tt.key))
			for _, c := range encoded {
				assert.True(t,
					(c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'),
					"invalid hex character: %c", c,
				)
			}
		})
	}

	assert.NotEqual(t, encodeKey("key-one"), encodeKey("key-two"))
}
