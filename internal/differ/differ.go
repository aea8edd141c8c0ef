// Package differ produces bounded, human-readable line diffs between two
// versions of a page's normalized text.
package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// NoDiffPlaceholder is reported when two texts have differing hashes but
// no line-level differences (e.g. the stored copy was clamped).
const NoDiffPlaceholder = "(No textual diff found)"

// TruncationMarker replaces the middle of a diff that exceeds the line
// budget.
const TruncationMarker = "... (diff truncated) ..."

// UnifiedDiff compares oldText and newText line by line and renders a
// unified-diff style listing with "--- before" / "+++ after" headers.
// The result never exceeds maxLines lines: an oversized diff keeps its
// head and tail with a single truncation marker in between. An empty diff
// yields NoDiffPlaceholder, never the empty string.
func UnifiedDiff(oldText, newText string, maxLines int) string {
	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	lines := []string{"--- before", "+++ after"}
	changed := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, line := range splitLines(d.Text) {
			lines = append(lines, prefix+line)
		}
	}

	if !changed {
		return NoDiffPlaceholder
	}

	return strings.Join(truncate(lines, maxLines), "\n")
}

// truncate bounds the diff to at most maxLines lines by keeping the first
// and last halves around a single marker line.
func truncate(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	half := (maxLines - 1) / 2
	truncated := make([]string, 0, 2*half+1)
	truncated = append(truncated, lines[:half]...)
	truncated = append(truncated, TruncationMarker)
	truncated = append(truncated, lines[len(lines)-half:]...)
	return truncated
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
