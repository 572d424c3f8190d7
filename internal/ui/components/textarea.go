// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// Form text.
const (
	DescriptionLabel       = "Describe your project in detail:"
	DescriptionPlaceholder = "E.g. Inventory management system with sales tracking and analytics reports..."
	DescriptionHint        = "Minimum 20 characters. Be specific about key features."
)

// TextArea is the multi-line description input.
type TextArea struct {
	input textarea.Model
}

// NewTextArea creates an unfocused text area with the given placeholder.
func NewTextArea(placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetHeight(5)
	ta.SetWidth(60)
	return TextArea{input: ta}
}

// Focus gives the text area keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.input.Blur()
}

// Focused reports whether the text area has focus.
func (t TextArea) Focused() bool {
	return t.input.Focused()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.input.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.input.SetValue(s)
}

// SetWidth sets the outer width including the border.
func (t *TextArea) SetWidth(w int) {
	if w < 12 {
		w = 12
	}
	t.input.SetWidth(w - 2)
}

// CharCount returns the number of characters after trimming.
func (t TextArea) CharCount() int {
	return utf8.RuneCountInString(strings.TrimSpace(t.input.Value()))
}

// Update forwards messages to the underlying textarea.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the text area inside a border that highlights focus.
func (t TextArea) View(theme *styles.Theme) string {
	box := theme.Input
	if t.input.Focused() {
		box = theme.InputFocus
	}
	return box.Render(t.input.View())
}
