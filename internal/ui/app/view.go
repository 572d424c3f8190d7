// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/devguide-tui/internal/controller"
	"github.com/jeranaias/devguide-tui/internal/ui/components"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// AppTitle is shown at the top of the screen.
const AppTitle = "AI DevGuide"

// CharCountFormat renders the typed and required character counts.
const CharCountFormat = "%d/%d"

// =============================================================================
// VIEW
// =============================================================================

// View renders the form, the report and the footer.
func (m Model) View() string {
	parts := []string{m.formView()}
	if !m.tree.Empty() {
		parts = append(parts, m.viewport.View())
	}
	parts = append(parts, m.footerView())
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// formView renders everything above the report.
func (m Model) formView() string {
	t := m.theme
	width := m.contentWidth()

	rows := []string{
		t.Header.Render(AppTitle),
		"",
		t.Label.Render(components.DescriptionLabel),
		m.input.View(t),
		t.Hint.Render(m.hint()),
	}
	if banner := (components.Banner{Message: m.ctrl.State().Err}); banner.Visible() {
		rows = append(rows, banner.View(t, width))
	}
	rows = append(rows, "", m.button.View(t))
	if m.spinner.IsActive() {
		rows = append(rows, m.spinner.View(t))
	}
	return strings.Join(rows, "\n")
}

// hint shows the live character count. Narrow terminals drop the prose.
func (m Model) hint() string {
	count := fmt.Sprintf(CharCountFormat, m.input.CharCount(), controller.MinDescriptionLength)
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return count
	}
	return components.DescriptionHint + "  " + count
}

// footerView renders toasts and the key help.
func (m Model) footerView() string {
	var rows []string
	if m.toasts.HasToasts() {
		rows = append(rows, m.toasts.RenderToasts(m.theme))
	}
	rows = append(rows, m.help.View(m.keys))
	return strings.Join(rows, "\n")
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// =============================================================================
// PROGRAM
// =============================================================================

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
