// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/snapdiff/snapdiff/internal/decode"
	"github.com/snapdiff/snapdiff/pretty"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildIgnoresCase represents a single test case for TestBuildIgnores.
type testBuildIgnoresCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []string `yaml:"want"`
}

// testPruneCase represents a single test case for TestPrune.
type testPruneCase struct {
	Name    string   `yaml:"name"`
	JSON    string   `yaml:"json"`
	Ignores []string `yaml:"ignores"`
	Want    string   `yaml:"want"`
}

type ignoreCases struct {
	BuildIgnores []testBuildIgnoresCase `yaml:"buildIgnores"`
	Prune        []testPruneCase        `yaml:"prune"`
}

func loadCases(t *testing.T) ignoreCases {
	t.Helper()
	data, err := testDataFS.ReadFile("testdata/ignore_cases.yaml")
	require.NoError(t, err)
	var cases ignoreCases
	require.NoError(t, yaml.Unmarshal(data, &cases))
	return cases
}

func TestBuildIgnores(t *testing.T) {
	for _, tt := range loadCases(t).BuildIgnores {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("SNAPDIFF_IGNORE_DELIM", tt.Delimiter)
			}

			got := BuildIgnores(tt.Spec)

			if len(tt.Want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestPrune(t *testing.T) {
	for _, tt := range loadCases(t).Prune {
		t.Run(tt.Name, func(t *testing.T) {
			doc, err := decode.Decode([]byte(tt.JSON), decode.FormatJSON)
			require.NoError(t, err)
			want, err := decode.Decode([]byte(tt.Want), decode.FormatJSON)
			require.NoError(t, err)

			got := Prune(doc, tt.Ignores)

			assert.True(t, got.Equal(want),
				"pruned value mismatch: got %+v want %+v", got, want)
		})
	}
}

// TestPrune_PreservesOrder verifies the surviving entries keep their
// original order after pruning.
func TestPrune_PreservesOrder(t *testing.T) {
	doc, err := decode.Decode([]byte(`{"c": 1, "serial": 2, "a": 3}`), decode.FormatJSON)
	require.NoError(t, err)

	got := Prune(doc, []string{"serial"})

	out, err := pretty.Dump(got, pretty.None)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"c\": 1,\n  \"a\": 3\n}", out)
}

// TestPrune_NoPaths verifies Prune with no paths returns an equal value.
func TestPrune_NoPaths(t *testing.T) {
	doc, err := decode.Decode([]byte(`{"a": 1}`), decode.FormatJSON)
	require.NoError(t, err)

	got := Prune(doc, nil)
	assert.True(t, got.Equal(doc))
}
