// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"html"
	"regexp"
	"strings"
)

// =============================================================================
// CODE HIGHLIGHTING HEURISTIC
// =============================================================================

// markedRun matches the shortest run bounded by "**" on a single line.
var markedRun = regexp.MustCompile(`\*\*.*?\*\*`)

// Segment is one piece of a code text after splitting on "**" runs.
type Segment struct {
	// Text is the segment with "**" markers removed.
	Text string
	// Marked is true for a run that was bounded by "**".
	Marked bool
	// Comment is true when Text starts with "//".
	Comment bool
}

// DecodeEntities decodes HTML character references ("a &lt; b" -> "a < b").
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// SplitMarked splits s on "**...**" runs. The runs are kept as their own
// segments with the markers stripped. A segment whose text starts with "//"
// is a comment and loses any stray markers too. Empty segments are dropped.
func SplitMarked(s string) []Segment {
	var out []Segment
	add := func(text string, marked bool) {
		if marked {
			text = strings.ReplaceAll(text, "**", "")
		}
		comment := strings.HasPrefix(text, "//")
		if comment {
			text = strings.ReplaceAll(text, "**", "")
		}
		if text == "" {
			return
		}
		out = append(out, Segment{Text: text, Marked: marked, Comment: comment})
	}

	last := 0
	for _, loc := range markedRun.FindAllStringIndex(s, -1) {
		add(s[last:loc[0]], false)
		add(s[loc[0]:loc[1]], true)
		last = loc[1]
	}
	add(s[last:], false)
	return out
}

// CodeSegments decodes entities and splits the result into segments.
func CodeSegments(s string) []Segment {
	return SplitMarked(DecodeEntities(s))
}

// Join reassembles the visible text of segments.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
