// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the devguide TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Blue - Brand color, header and panel titles
  - Purple - Focus and code comments
  - Cyan - Technology names
  - Emerald - Success and confirmation toasts
  - Amber - Subsection headings and example code
  - Rose - Errors

# Theme System (theme.go)

A Theme owns a lipgloss.Renderer, so its profile can be forced without
touching global state:

	theme := styles.NewThemeWithOptions(styles.Options{Mode: "dark", NoColor: true})
	fmt.Println(theme.PanelTitle.Render("Database"))

Plain returns an uncolored theme for tests and piped output.

# Animation System (animations.go)

The LineSpinner frame set and the toast duration.
*/
package styles
