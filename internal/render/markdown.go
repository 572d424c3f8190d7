// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"
)

// Markdown renders a tree as CommonMark. Code blocks carry their decoded
// text with "**" markers removed.
func Markdown(t Tree) string {
	var sb strings.Builder
	for i, p := range t.Panels {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n", p.Title)
		for _, b := range p.Blocks {
			sb.WriteString("\n")
			writeMarkdownBlock(&sb, b, 3)
		}
	}
	return sb.String()
}

func writeMarkdownBlock(sb *strings.Builder, b Block, level int) {
	switch b.Kind {
	case BlockParagraph:
		if b.Heading != "" {
			fmt.Fprintf(sb, "**%s:**\n", b.Heading)
		}
		sb.WriteString(b.Text)
		sb.WriteString("\n")

	case BlockList:
		if b.Heading != "" {
			fmt.Fprintf(sb, "**%s:**\n\n", b.Heading)
		}
		for _, it := range b.Items {
			fmt.Fprintf(sb, "- %s\n", it)
		}

	case BlockCode:
		writeMarkdownCode(sb, b.Code)

	case BlockTech:
		name := b.Heading
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(sb, "%s %s\n", strings.Repeat("#", level), name)
		for _, c := range b.Children {
			sb.WriteString("\n")
			writeMarkdownBlock(sb, c, level+1)
		}

	case BlockGroup:
		if b.Heading == HeadingLibraries {
			fmt.Fprintf(sb, "%s %s\n", strings.Repeat("#", level), b.Heading)
			for _, c := range b.Children {
				sb.WriteString("\n")
				writeMarkdownBlock(sb, c, level+1)
			}
			return
		}
		fmt.Fprintf(sb, "**%s:**\n", b.Heading)
		for _, c := range b.Children {
			sb.WriteString("\n")
			writeMarkdownBlock(sb, c, level)
		}
	}
}

func writeMarkdownCode(sb *strings.Builder, c *Code) {
	if c == nil {
		return
	}
	if c.Label != "" {
		fmt.Fprintf(sb, "_%s:_\n\n", c.Label)
	}
	text := strings.TrimRight(Join(c.Segments), "\n")
	fence := "```"
	for strings.Contains(text, fence) {
		fence += "`"
	}
	fmt.Fprintf(sb, "%s%s\n%s\n%s\n", fence, c.Language, text, fence)
}
