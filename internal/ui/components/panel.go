// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// PanelKind selects border and title colors.
type PanelKind int

const (
	PanelDefault PanelKind = iota
	PanelError
	PanelCode
	PanelNotes
)

// Panel is a bordered, titled box.
type Panel struct {
	Kind  PanelKind
	Title string
	// Meta is appended to the title line as-is (already styled).
	Meta string
	// Sections are separated by blank lines.
	Sections []string
	// Width is the outer width including the border.
	Width int
}

// InnerWidth is the content width left inside border and padding.
func (p Panel) InnerWidth() int {
	return p.Width - 4
}

// View renders the panel.
func (p Panel) View(theme *styles.Theme) string {
	box := theme.Panel
	title := theme.PanelTitle
	switch p.Kind {
	case PanelError:
		box = theme.ErrorPanel
		title = theme.ErrorTitle
	case PanelCode:
		title = theme.CodeTitle
	case PanelNotes:
		title = theme.NotesTitle
	}

	head := title.Render(p.Title)
	if p.Meta != "" {
		head += " " + p.Meta
	}

	lines := []string{head}
	for _, s := range p.Sections {
		lines = append(lines, "", s)
	}
	if p.Width > 2 {
		box = box.Width(p.Width - 2)
	}
	return box.Render(strings.Join(lines, "\n"))
}
