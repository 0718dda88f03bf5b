// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pretty

import "testing"

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0s"},
		{"milliseconds", 3.1465, "3.15s"},
		{"integers", 42, "42s"},
		{"float", 42.0, "42s"},
		{"minute", 60, "1m"},
		{"hundred", 1e2, "1m 40s"},
		{"thousands", 1e3, "16m 40s"},
		{"hour", 3600, "1h"},
		{"day", 86400, "1d"},
		{"millions", 1e6, "11d 13h 46m 40s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.value); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSize(t *testing.T) {
	const kb = 1024

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"none", nil, "N/A"},
		{"zero", 0, "0B"},
		{"integers", 42, "42B"},
		{"float", 42.0, "42B"},
		{"hundred", 100, "100B"},
		{"kilos", kb, "1.0KB"},
		{"hundred_kilos", 100 * kb, "100.0KB"},
		{"megas", kb * kb, "1.0MB"},
		{"hundred_megas", 100 * kb * kb, "100.0MB"},
		{"gigas", kb * kb * kb, "1.0GB"},
		{"hundred_gigas", 100 * kb * kb * kb, "100.0GB"},
		{"teras", kb * kb * kb * kb, "1.0TB"},
		{"hundred_teras", uint64(100) * kb * kb * kb * kb, "100.0TB"},
		{"unsupported type", "nope", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.value); got != tt.want {
				t.Errorf("Size(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
