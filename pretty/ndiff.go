// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Line diffing with intraline annotations. The line alignment comes from a
// longest-common-subsequence matcher; replaced blocks are then re-examined
// pairwise, and a removed/added pair that is similar enough gets a "? "
// annotation line marking the differing columns: '^' under replaced runs,
// '-' under deleted runs, '+' under inserted runs.
//
// Annotation entries carry their own trailing newline so that joining the
// result with "\n" leaves a blank separator line after each annotation.

// Pair-selection ratios. The search starts just below the cutoff so a pair
// scraping past it still wins, and comparisons are strictly greater-than:
// "123" vs "132" (ratio 4/6) stays a plain replacement while a trailing
// comma ("  3" vs "  3,", ratio 6/7) gets annotated.
const (
	bestRatioFloor   = 0.74
	similarityCutoff = 0.75
)

// charJunk mirrors the intraline matcher's junk rule: blanks and tabs do not
// anchor a match on their own but extend one.
func charJunk(s string) bool { return s == " " || s == "\t" }

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

func tagLines(prefix string, lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, prefix+l)
	}
	return out
}

// compareLines aligns two line sequences and returns the annotated diff
// entries in document order.
func compareLines(a, b []string) []string {
	m := difflib.NewMatcher(a, b)
	var out []string
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'r':
			out = append(out, fancyReplace(a, op.I1, op.I2, b, op.J1, op.J2)...)
		case 'd':
			out = append(out, tagLines("- ", a[op.I1:op.I2])...)
		case 'i':
			out = append(out, tagLines("+ ", b[op.J1:op.J2])...)
		case 'e':
			out = append(out, tagLines("  ", a[op.I1:op.I2])...)
		}
	}
	return out
}

// fancyReplace picks the most similar removed/added line pair as a synch
// point, annotates it, and recurses on the lines before and after it. When
// no pair clears the cutoff the block falls back to an identical pair if
// one exists, or to a plain removed-then-added dump.
func fancyReplace(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	bestRatio := bestRatioFloor
	bestI, bestJ := -1, -1
	eqI, eqJ := -1, -1

	cr := difflib.NewMatcherWithJunk(nil, nil, true, charJunk)
	for j := blo; j < bhi; j++ {
		cr.SetSeq2(splitChars(b[j]))
		for i := alo; i < ahi; i++ {
			if a[i] == b[j] {
				if eqI < 0 {
					eqI, eqJ = i, j
				}
				continue
			}
			cr.SetSeq1(splitChars(a[i]))
			// Cheap upper bounds first; Ratio is the expensive one.
			if cr.RealQuickRatio() > bestRatio &&
				cr.QuickRatio() > bestRatio &&
				cr.Ratio() > bestRatio {
				bestRatio, bestI, bestJ = cr.Ratio(), i, j
			}
		}
	}

	synchEqual := false
	if bestRatio < similarityCutoff {
		if eqI < 0 {
			return plainReplace(a, alo, ahi, b, blo, bhi)
		}
		bestI, bestJ = eqI, eqJ
		synchEqual = true
	}

	out := fancyHelper(a, alo, bestI, b, blo, bestJ)

	if synchEqual {
		out = append(out, "  "+a[bestI])
	} else {
		out = append(out, annotatePair(a[bestI], b[bestJ])...)
	}

	return append(out, fancyHelper(a, bestI+1, ahi, b, bestJ+1, bhi)...)
}

func fancyHelper(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	switch {
	case alo < ahi && blo < bhi:
		return fancyReplace(a, alo, ahi, b, blo, bhi)
	case alo < ahi:
		return tagLines("- ", a[alo:ahi])
	case blo < bhi:
		return tagLines("+ ", b[blo:bhi])
	}
	return nil
}

func plainReplace(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	// The shorter side goes first so the reader sees the small change before
	// the bulk.
	if bhi-blo < ahi-alo {
		return append(tagLines("+ ", b[blo:bhi]), tagLines("- ", a[alo:ahi])...)
	}
	return append(tagLines("- ", a[alo:ahi]), tagLines("+ ", b[blo:bhi])...)
}

// annotatePair emits a removed/added line pair with tag strings built from
// the character-level opcodes. A numeric change therefore marks only the
// differing digit run, not the whole token.
func annotatePair(aline, bline string) []string {
	cr := difflib.NewMatcherWithJunk(splitChars(aline), splitChars(bline), true, charJunk)

	var atags, btags strings.Builder
	for _, op := range cr.GetOpCodes() {
		la, lb := op.I2-op.I1, op.J2-op.J1
		switch op.Tag {
		case 'r':
			atags.WriteString(strings.Repeat("^", la))
			btags.WriteString(strings.Repeat("^", lb))
		case 'd':
			atags.WriteString(strings.Repeat("-", la))
		case 'i':
			btags.WriteString(strings.Repeat("+", lb))
		case 'e':
			atags.WriteString(strings.Repeat(" ", la))
			btags.WriteString(strings.Repeat(" ", lb))
		}
	}

	return qformat(aline, bline, atags.String(), btags.String())
}

func qformat(aline, bline, atags, btags string) []string {
	atags = strings.TrimRight(keepOriginalWS(aline, atags), " \t")
	btags = strings.TrimRight(keepOriginalWS(bline, btags), " \t")

	out := []string{"- " + aline}
	if atags != "" {
		out = append(out, "? "+atags+"\n")
	}
	out = append(out, "+ "+bline)
	if btags != "" {
		out = append(out, "? "+btags+"\n")
	}
	return out
}

// keepOriginalWS replaces unmarked tag positions over whitespace with the
// original whitespace character, so tabs in the source line keep the tag
// columns aligned.
func keepOriginalWS(s, tags string) string {
	sr, tr := []rune(s), []rune(tags)
	n := len(sr)
	if len(tr) < n {
		n = len(tr)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if tr[i] == ' ' && unicode.IsSpace(sr[i]) {
			b.WriteRune(sr[i])
		} else {
			b.WriteRune(tr[i])
		}
	}
	return b.String()
}
