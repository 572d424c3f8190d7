// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
)

func TestPlainTheme_NoEscapes(t *testing.T) {
	theme := Plain()

	if theme.ColorProfile != termenv.Ascii {
		t.Errorf("expected Ascii profile, got %v", theme.ColorProfile)
	}
	if !theme.IsDark {
		t.Error("Plain theme should be dark")
	}

	out := theme.PanelTitle.Render("Database")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain theme rendered escape codes: %q", out)
	}
	if !strings.Contains(out, "Database") {
		t.Errorf("rendered output missing text: %q", out)
	}
}

func TestThemeModes(t *testing.T) {
	tests := []struct {
		mode string
		dark bool
	}{
		{ModeDark, true},
		{ModeLight, false},
		{"DARK", true},
	}

	for _, tt := range tests {
		theme := NewThemeWithOptions(Options{Mode: tt.mode, NoColor: true, Output: io.Discard})
		if theme.IsDark != tt.dark {
			t.Errorf("mode %q: IsDark = %v, want %v", tt.mode, theme.IsDark, tt.dark)
		}
	}
}

func TestThemeStylesBoundToRenderer(t *testing.T) {
	theme := Plain()
	if theme.Renderer() == nil {
		t.Fatal("theme should expose its renderer")
	}

	boxed := theme.Panel.Render("x")
	if !strings.Contains(boxed, "x") || strings.Count(boxed, "\n") < 2 {
		t.Errorf("panel should draw a border around content, got %q", boxed)
	}
}

func TestLayoutMode(t *testing.T) {
	theme := Plain()

	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{80, LayoutMedium},
		{120, LayoutWide},
	}

	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("width %d: got %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSpinnerConfigDuration(t *testing.T) {
	if got := LineSpinner.Duration(); got != 100*time.Millisecond {
		t.Errorf("LineSpinner.Duration() = %v", got)
	}
	if got := (SpinnerConfig{}).Duration(); got != time.Second {
		t.Errorf("zero FPS should fall back to one second, got %v", got)
	}
}

func TestStatusIndicatorsASCII(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	} {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q is not ASCII", s)
			}
		}
	}
}
