// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted in configuration.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Options controls how a Theme detects the terminal.
type Options struct {
	// Mode is auto, dark or light.
	Mode string
	// NoColor forces the ASCII profile.
	NoColor bool
	// Output is the terminal the theme renders for (default: stdout).
	Output io.Writer
}

// Theme holds all the styled components for the application.
// Every style is bound to the theme's own renderer, so two themes with
// different profiles can coexist (the TUI and an export, for example).
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	renderer *lipgloss.Renderer

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER AND FORM
	// ==========================================================================

	Header     lipgloss.Style
	Label      lipgloss.Style
	Hint       lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style

	// ==========================================================================
	// BUTTON
	// ==========================================================================

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// ==========================================================================
	// FEEDBACK
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	ErrorBanner  lipgloss.Style
	Toast        lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style

	// ==========================================================================
	// REPORT PANELS
	// ==========================================================================

	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	ErrorPanel   lipgloss.Style
	ErrorTitle   lipgloss.Style
	NotesTitle   lipgloss.Style
	CodeTitle    lipgloss.Style
	Subheading   lipgloss.Style
	GroupHeading lipgloss.Style
	TechBox      lipgloss.Style
	TechName     lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	PlatformTag  lipgloss.Style

	// ==========================================================================
	// CODE BLOCK
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeComment   lipgloss.Style
	CodePlain     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeCopyBtn   lipgloss.Style
}

// NewTheme creates a theme for stdout with automatic detection.
func NewTheme() *Theme {
	return NewThemeWithOptions(Options{})
}

// NewThemeWithOptions creates a theme with all styles configured.
func NewThemeWithOptions(opts Options) *Theme {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	r := lipgloss.NewRenderer(out)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	switch strings.ToLower(opts.Mode) {
	case ModeDark:
		r.SetHasDarkBackground(true)
	case ModeLight:
		r.SetHasDarkBackground(false)
	}

	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		HasTrueColor: r.ColorProfile() == termenv.TrueColor,
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Plain returns an uncolored dark theme, used for tests and piped output.
func Plain() *Theme {
	return NewThemeWithOptions(Options{Mode: ModeDark, NoColor: true, Output: io.Discard})
}

// Renderer returns the lipgloss renderer the styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// NewStyle creates a style bound to the theme's renderer.
func (t *Theme) NewStyle() lipgloss.Style {
	return t.renderer.NewStyle()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	s := t.NewStyle

	// Header and form
	t.Header = s().
		Bold(true).
		Foreground(Blue).
		Padding(0, 1)

	t.Label = s().
		Foreground(TextSecondary).
		Bold(true)

	t.Hint = s().
		Foreground(TextMuted).
		Italic(true)

	t.Input = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.InputFocus = t.Input.
		BorderForeground(Purple)

	// Button
	t.Button = s().
		Foreground(TextInverse).
		Background(Blue).
		Bold(true).
		Padding(0, 2)

	t.ButtonFocused = t.Button.
		Background(Purple).
		Underline(true)

	t.ButtonDisabled = s().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Padding(0, 2)

	// Feedback
	t.Spinner = s().
		Foreground(Blue).
		Bold(true)

	t.ThinkingText = s().
		Foreground(TextSecondary)

	t.ErrorBanner = s().
		Foreground(Rose).
		Background(RoseDeep).
		Padding(0, 1)

	t.Toast = s().
		Foreground(Emerald).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 1)

	t.HelpKey = s().
		Foreground(Cyan).
		Bold(true)

	t.HelpDesc = s().
		Foreground(TextMuted)

	// Report panels
	t.Panel = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelTitle = s().
		Foreground(Blue).
		Bold(true)

	t.ErrorPanel = t.Panel.
		BorderForeground(Rose)

	t.ErrorTitle = s().
		Foreground(Rose).
		Bold(true)

	t.NotesTitle = s().
		Foreground(TextSecondary).
		Bold(true)

	t.CodeTitle = s().
		Foreground(Amber).
		Bold(true)

	t.Subheading = s().
		Foreground(Amber).
		Bold(true)

	t.GroupHeading = s().
		Foreground(Emerald).
		Bold(true)

	t.TechBox = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		BorderLeft(true).
		PaddingLeft(1)

	t.TechName = s().
		Foreground(Cyan).
		Bold(true)

	t.Body = s().
		Foreground(TextPrimary)

	t.Muted = s().
		Foreground(TextMuted)

	t.PlatformTag = s().
		Foreground(TextSecondary).
		Bold(true)

	// Code block
	t.CodeBlock = s().
		Background(SurfaceDim).
		Padding(0, 1)

	t.CodeComment = s().
		Foreground(SyntaxComment).
		Bold(true)

	t.CodePlain = s().
		Foreground(SyntaxPlain)

	t.CodeLangBadge = s().
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 1)

	t.CodeCopyBtn = s().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
