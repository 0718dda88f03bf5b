// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import (
	"fmt"
	"math"
	"strings"
)

// Duration renders a non-negative second count using d/h/m/s units, largest
// first, space-joined, omitting zero units: 3600 is "1h", not "1h 0m 0s".
// A sub-minute non-integral value keeps two decimals ("3.15s"); every other
// second count renders as an integer. Zero is "0s".
func Duration(seconds float64) string {
	units := []struct {
		name string
		secs float64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
	}

	rem := seconds
	var parts []string
	for _, u := range units {
		if n := math.Floor(rem / u.secs); n >= 1 {
			parts = append(parts, fmt.Sprintf("%d%s", int64(n), u.name))
			rem -= n * u.secs
		}
	}

	switch {
	case len(parts) == 0 && rem != math.Trunc(rem):
		parts = append(parts, fmt.Sprintf("%.2fs", rem))
	case rem > 0 || len(parts) == 0:
		parts = append(parts, fmt.Sprintf("%ds", int64(math.Round(rem))))
	}

	return strings.Join(parts, " ")
}

// Size renders a byte count scaled by powers of 1024: bytes with no
// decimals, larger units with exactly one ("1.0KB"). nil and non-numeric
// inputs render as "N/A".
func Size(v any) string {
	f, ok := toFloat64(v)
	if !ok {
		return "N/A"
	}

	if math.Abs(f) < 1024 {
		return fmt.Sprintf("%.0fB", f)
	}
	for _, unit := range []string{"KB", "MB", "GB"} {
		f /= 1024
		if math.Abs(f) < 1024 {
			return fmt.Sprintf("%.1f%s", f, unit)
		}
	}
	return fmt.Sprintf("%.1fTB", f/1024)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
