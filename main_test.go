// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/snapdiff/snapdiff/internal/config"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no version flag",
			args:     []string{"snapdiff", "dump", "state.json"},
			expected: false,
		},
		{
			name:     "long flag",
			args:     []string{"snapdiff", "--version"},
			expected: true,
		},
		{
			name:     "short flag",
			args:     []string{"snapdiff", "-v"},
			expected: true,
		},
		{
			name:     "flag after command",
			args:     []string{"snapdiff", "diff", "--version"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.expected {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bare invocation gets help",
			args:     []string{"snapdiff"},
			expected: []string{"snapdiff", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"snapdiff", "dump", "state.json"},
			expected: []string{"snapdiff", "dump", "state.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestProcessCommandArgs_CompletionShortCircuit(t *testing.T) {
	args := []string{"snapdiff", "completion", "bash"}
	result := processCommandArgs(args)
	if !reflect.DeepEqual(result, args) {
		t.Errorf("completion args changed: got %v, want %v", result, args)
	}
}

func TestProcessSetOnly(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "snapdiff.yaml")
	body := "diff:\n" +
		"  defaults:\n" +
		"    - --color never\n" +
		"    - --ignore serial,lineage\n" +
		"  quick:\n" +
		"    - --stat\n"
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAPDIFF_CFG_FILE", cfg)
	if _, err := config.Load(); err != nil {
		t.Fatal(err)
	}
	defer func() { config.Config = config.Type{} }()

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set marker unchanged",
			args:     []string{"snapdiff", "diff", "a.json", "b.json"},
			expected: []string{"snapdiff", "diff", "a.json", "b.json"},
		},
		{
			name:     "explicit set expanded in place",
			args:     []string{"snapdiff", "diff", "@quick", "a.json", "b.json"},
			expected: []string{"snapdiff", "diff", "--stat", "a.json", "b.json"},
		},
		{
			name:     "multi-word entries split into fields",
			args:     []string{"snapdiff", "diff", "@defaults", "a.json", "b.json"},
			expected: []string{"snapdiff", "diff", "--color", "never", "--ignore", "serial,lineage", "a.json", "b.json"},
		},
		{
			name:     "unknown set removed with no expansion",
			args:     []string{"snapdiff", "diff", "@missing", "a.json", "b.json"},
			expected: []string{"snapdiff", "diff", "a.json", "b.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{}, tt.args...)
			result := processSetOnly(args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processSetOnly(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}
