// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeSpan is a run of code text with its highlight class.
type CodeSpan struct {
	Text    string
	Comment bool
}

// CodeBlock renders pre-split code spans. There is no language grammar:
// spans are either comments or plain code.
type CodeBlock struct {
	Spans []CodeSpan
	// Label is shown above the block, e.g. a platform name.
	Label string
	Width int
}

// View renders the code block.
func (c CodeBlock) View(theme *styles.Theme) string {
	box := theme.CodeBlock
	if c.Width > 0 {
		box = box.Width(c.Width)
	}
	block := box.Render(c.lines(theme))
	if c.Label == "" {
		return block
	}
	return theme.PlatformTag.Render(c.Label+":") + "\n" + block
}

// lines styles the spans one line at a time. Rendering a multi-line span in
// one call would pad every line to the widest one.
func (c CodeBlock) lines(theme *styles.Theme) string {
	var sb strings.Builder
	for _, s := range c.Spans {
		style := theme.CodePlain
		if s.Comment {
			style = theme.CodeComment
		}
		for i, piece := range strings.Split(s.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if piece != "" {
				sb.WriteString(style.Render(piece))
			}
		}
	}
	return sb.String()
}
