// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable UI pieces of the devguide TUI.

Components are small values rendered against a *styles.Theme, so the same
component renders with color in the TUI and without it in tests.

# Core Components

## Form

TextArea (textarea.go) - Multi-line description input on bubbles/textarea.
Button (button.go) - Submit button with a busy label; fixed width across states.

## Feedback

Spinner (spinner.go) - Animated spinner with message and elapsed timer.
Banner (banner.go) - Validation and service error line.
Toast (toast.go) - Auto-dismissing notifications managed by ToastManager.

## Report Display

Panel (panel.go) - Bordered, titled section box.
CodeBlock (codeblock.go) - Code spans highlighted as comment or plain text.

# Usage

	theme := styles.NewTheme()
	btn := components.NewSubmitButton()
	btn.Busy = true
	fmt.Println(btn.View(theme)) // Generating recommendation...
*/
package components
