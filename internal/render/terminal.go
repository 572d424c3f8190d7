// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/jeranaias/devguide-tui/internal/ui/components"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// minWidth keeps panels readable on very narrow terminals.
const minWidth = 30

// CopyHint is shown in the title of the copyable code panel.
const CopyHint = "ctrl+y copy"

// Terminal renders a tree as styled terminal text at the given width.
func Terminal(t Tree, width int, theme *styles.Theme) string {
	if theme == nil {
		theme = styles.Plain()
	}
	if width < minWidth {
		width = minWidth
	}

	r := termRenderer{theme: theme}
	parts := make([]string, 0, len(t.Panels))
	for _, p := range t.Panels {
		parts = append(parts, r.panel(p, width))
	}
	return strings.Join(parts, "\n")
}

type termRenderer struct {
	theme *styles.Theme
}

var panelKinds = map[PanelKind]components.PanelKind{
	PanelSection: components.PanelDefault,
	PanelError:   components.PanelError,
	PanelCode:    components.PanelCode,
	PanelNotes:   components.PanelNotes,
}

func (r termRenderer) panel(p Panel, width int) string {
	box := components.Panel{
		Kind:  panelKinds[p.Kind],
		Title: p.Title,
		Meta:  r.codeMeta(p),
		Width: width,
	}
	for _, b := range p.Blocks {
		box.Sections = append(box.Sections, r.block(b, box.InnerWidth()))
	}
	return box.View(r.theme)
}

// codeMeta builds the language badge, line count and copy hint of a code panel.
func (r termRenderer) codeMeta(p Panel) string {
	if p.Kind != PanelCode {
		return ""
	}
	for _, b := range p.Blocks {
		if b.Code == nil {
			continue
		}
		var meta []string
		if b.Code.Language != "" {
			meta = append(meta, r.theme.CodeLangBadge.Render(b.Code.Language))
		}
		if b.Code.Lines > 0 {
			meta = append(meta, r.theme.Muted.Render(fmt.Sprintf("%d lines", b.Code.Lines)))
		}
		if b.Code.Copyable {
			meta = append(meta, r.theme.CodeCopyBtn.Render("["+CopyHint+"]"))
		}
		return strings.Join(meta, " ")
	}
	return ""
}

func (r termRenderer) block(b Block, width int) string {
	if width < 10 {
		width = 10
	}
	switch b.Kind {
	case BlockParagraph:
		return r.headed(b.Heading, r.theme.Body.Width(width).Render(b.Text))

	case BlockList:
		items := make([]string, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, r.theme.Body.Width(width).Render(styles.Bullet+it))
		}
		return r.headed(b.Heading, strings.Join(items, "\n"))

	case BlockCode:
		return r.code(b.Code, width)

	case BlockTech:
		// Left rule takes two columns.
		inner := width - 2
		lines := []string{r.theme.TechName.Render(b.Heading)}
		for _, c := range b.Children {
			lines = append(lines, r.block(c, inner))
		}
		return r.theme.TechBox.Render(strings.Join(lines, "\n"))

	case BlockGroup:
		style := r.theme.Subheading
		if b.Heading == HeadingLibraries {
			style = r.theme.GroupHeading
		}
		lines := []string{style.Render(b.Heading + ":")}
		for _, c := range b.Children {
			lines = append(lines, r.block(c, width))
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

func (r termRenderer) headed(heading, body string) string {
	if heading == "" {
		return body
	}
	return r.theme.Subheading.Render(heading+":") + "\n" + body
}

func (r termRenderer) code(c *Code, width int) string {
	if c == nil {
		return ""
	}
	block := components.CodeBlock{Label: c.Label, Width: width}
	for _, s := range c.Segments {
		block.Spans = append(block.Spans, components.CodeSpan{Text: s.Text, Comment: s.Comment})
	}
	return block.View(r.theme)
}
