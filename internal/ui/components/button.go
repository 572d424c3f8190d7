// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// Submit button labels.
const (
	SubmitLabel = "Generate Technical Recommendation"
	BusyLabel   = "Generating recommendation..."
)

// Button is a single-action button that shows a different label while busy.
type Button struct {
	Label     string
	BusyLabel string
	Busy      bool
	Focused   bool
}

// NewSubmitButton creates the form's submit button.
func NewSubmitButton() Button {
	return Button{Label: SubmitLabel, BusyLabel: BusyLabel}
}

// Text returns the label for the current state.
func (b Button) Text() string {
	if b.Busy && b.BusyLabel != "" {
		return b.BusyLabel
	}
	return b.Label
}

// Enabled reports whether pressing the button should do anything.
func (b Button) Enabled() bool {
	return !b.Busy
}

// View renders the button. Both labels get the same width so the button
// does not change size when it switches state.
func (b Button) View(theme *styles.Theme) string {
	width := runewidth.StringWidth(b.Label)
	if w := runewidth.StringWidth(b.BusyLabel); w > width {
		width = w
	}
	text := runewidth.FillRight(b.Text(), width)

	switch {
	case b.Busy:
		return theme.ButtonDisabled.Render(text)
	case b.Focused:
		return theme.ButtonFocused.Render(text)
	default:
		return theme.Button.Render(text)
	}
}
