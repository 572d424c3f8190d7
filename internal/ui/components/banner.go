// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/devguide-tui/internal/ui/styles"

// Banner shows the current validation or service error under the form.
type Banner struct {
	Message string
}

// Visible reports whether there is a message to show.
func (b Banner) Visible() bool {
	return b.Message != ""
}

// View renders the banner at the given width, or "" when empty.
func (b Banner) View(theme *styles.Theme, width int) string {
	if !b.Visible() {
		return ""
	}
	style := theme.ErrorBanner
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(styles.StatusIndicators.Error + " " + b.Message)
}
