// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/devguide-tui/internal/config"
	"github.com/jeranaias/devguide-tui/internal/controller"
	"github.com/jeranaias/devguide-tui/internal/export"
	"github.com/jeranaias/devguide-tui/internal/predict"
	"github.com/jeranaias/devguide-tui/internal/render"
	"github.com/jeranaias/devguide-tui/internal/report"
	"github.com/jeranaias/devguide-tui/internal/ui/components"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
	"github.com/jeranaias/devguide-tui/internal/util"
)

const validDraft = "A booking system for a small dental clinic"

type fakeTransport struct {
	calls     []string
	endpoints []string
	result    predict.Result
}

func (f *fakeTransport) Submit(_ context.Context, description string) predict.Result {
	f.calls = append(f.calls, description)
	return f.result
}

func (f *fakeTransport) SetEndpoint(url string) {
	f.endpoints = append(f.endpoints, url)
}

func sampleEnvelope() *report.Envelope {
	return &report.Envelope{
		Success: true,
		Report: &report.Report{
			Introduction:    "Appointments and reminders for patients.",
			Recommendations: []string{"Send SMS reminders"},
		},
		CodeExample: &report.CodeExample{Content: "// **main**\nfmt.Println(1)", Language: "go", Lines: 2},
	}
}

type harness struct {
	m         Model
	transport *fakeTransport
	clipped   []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{transport: &fakeTransport{result: predict.Succeeded(sampleEnvelope())}}
	h.m = New(Options{
		Transport: h.transport,
		Theme:     styles.Plain(),
		Export:    &export.Options{OutputDir: t.TempDir(), IncludeMetadata: true},
		Clipboard: func(s string) error {
			h.clipped = append(h.clipped, s)
			return nil
		},
	})
	h.update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(k tea.KeyType) tea.Cmd {
	return h.update(tea.KeyMsg{Type: k})
}

func (h *harness) typeText(s string) {
	h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// submitAndDeliver submits the draft and feeds the transport result back in.
func (h *harness) submitAndDeliver(t *testing.T) {
	t.Helper()
	require.NotNil(t, h.key(tea.KeyCtrlS))
	require.True(t, h.m.State().Loading)
	msg := requestCmd(context.Background(), h.transport, h.m.ctrl.Seq(), h.m.ctrl.State().Draft)()
	h.update(msg)
}

// =============================================================================
// SUBMISSION
// =============================================================================

func TestSubmit_ShortDraftShowsBanner(t *testing.T) {
	h := newHarness(t)
	h.typeText("too short")

	cmd := h.key(tea.KeyCtrlS)

	assert.Nil(t, cmd)
	assert.Empty(t, h.transport.calls)
	assert.Equal(t, controller.PhaseFailed, h.m.State().Phase)
	assert.Contains(t, h.m.View(), controller.MsgDescriptionTooShort)
	assert.False(t, h.m.button.Busy)
}

func TestSubmit_SuccessRendersReport(t *testing.T) {
	h := newHarness(t)
	h.typeText(validDraft)

	h.submitAndDeliver(t)

	st := h.m.State()
	assert.Equal(t, controller.PhaseSuccess, st.Phase)
	assert.False(t, st.Loading)
	assert.False(t, h.m.button.Busy)
	assert.False(t, h.m.spinner.IsActive())
	assert.Equal(t, []string{validDraft}, h.transport.calls)

	view := h.m.View()
	assert.Contains(t, view, render.TitleIntroduction)
	assert.Contains(t, view, "Appointments and reminders for patients.")
	assert.NotContains(t, view, controller.MsgDescriptionTooShort)
}

func TestSubmit_IgnoredWhileLoading(t *testing.T) {
	h := newHarness(t)
	h.typeText(validDraft)

	require.NotNil(t, h.key(tea.KeyCtrlS))
	assert.True(t, h.m.button.Busy)
	assert.Contains(t, h.m.View(), components.BusyLabel)

	assert.Nil(t, h.key(tea.KeyCtrlS))
	assert.Equal(t, uint64(1), h.m.ctrl.Seq())
}

func TestSubmit_TransportErrorShowsConnectionMessage(t *testing.T) {
	h := newHarness(t)
	h.transport.result = predict.Unreachable()
	h.typeText(validDraft)

	h.submitAndDeliver(t)

	assert.Equal(t, controller.PhaseFailed, h.m.State().Phase)
	assert.Contains(t, h.m.View(), controller.MsgConnectionFailed)
	assert.True(t, h.m.tree.Empty())
}

func TestSubmit_EnterOnButton(t *testing.T) {
	h := newHarness(t)
	h.typeText(validDraft)

	h.key(tea.KeyTab)
	require.Equal(t, FocusButton, h.m.Focus())

	assert.NotNil(t, h.key(tea.KeyEnter))
	assert.True(t, h.m.State().Loading)
}

// =============================================================================
// FOCUS
// =============================================================================

func TestFocusCycle(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, FocusInput, h.m.Focus())

	h.key(tea.KeyTab)
	assert.Equal(t, FocusButton, h.m.Focus())
	assert.True(t, h.m.button.Focused)

	h.key(tea.KeyTab)
	assert.Equal(t, FocusInput, h.m.Focus(), "results join the cycle only when shown")

	h.typeText(validDraft)
	h.submitAndDeliver(t)

	h.key(tea.KeyTab)
	h.key(tea.KeyTab)
	assert.Equal(t, FocusResults, h.m.Focus())

	h.key(tea.KeyShiftTab)
	assert.Equal(t, FocusButton, h.m.Focus())
}

func TestTypingOnlyReachesInput(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyTab)
	h.typeText("ignored")
	assert.Empty(t, h.m.input.Value())

	h.key(tea.KeyShiftTab)
	h.typeText("kept")
	assert.Equal(t, "kept", h.m.input.Value())
	assert.Equal(t, "kept", h.m.State().Draft)
}

// =============================================================================
// COPY AND EXPORT
// =============================================================================

func TestCopy_RawCode(t *testing.T) {
	h := newHarness(t)
	h.typeText(validDraft)
	h.submitAndDeliver(t)

	assert.NotNil(t, h.key(tea.KeyCtrlY))
	assert.Equal(t, []string{"// **main**\nfmt.Println(1)"}, h.clipped)
	assert.Contains(t, h.m.View(), components.CopiedMessage)
}

func TestCopy_NothingToCopy(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyCtrlY)
	assert.Empty(t, h.clipped)
	assert.Contains(t, h.m.View(), MsgNothingToCopy)
}

func TestCopy_ClipboardError(t *testing.T) {
	h := newHarness(t)
	h.m.clip = func(string) error { return errors.New("no display") }
	h.typeText(validDraft)
	h.submitAndDeliver(t)

	h.key(tea.KeyCtrlY)
	assert.Contains(t, h.m.View(), "no display")
}

func TestExport_WritesMarkdown(t *testing.T) {
	h := newHarness(t)
	h.typeText(validDraft)
	h.submitAndDeliver(t)

	cmd := h.key(tea.KeyCtrlE)
	require.NotNil(t, cmd)
	done, ok := cmd().(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, h.m.exportOpt.OutputDir, filepath.Dir(done.Path))
	assert.True(t, strings.HasSuffix(done.Path, ".md"))

	data, err := os.ReadFile(done.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "> "+validDraft)

	h.update(done)
	assert.True(t, h.m.toasts.HasToasts())
}

func TestExport_NothingBeforeSuccess(t *testing.T) {
	h := newHarness(t)
	cmd := h.key(tea.KeyCtrlE)
	_, isExport := func() (tea.Msg, bool) {
		if cmd == nil {
			return nil, false
		}
		msg, ok := cmd().(exportDoneMsg)
		return msg, ok
	}()
	assert.False(t, isExport)
	assert.Contains(t, h.m.View(), MsgNothingToExport)
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

func TestReload_SwapsEndpoint(t *testing.T) {
	h := newHarness(t)
	cfg := config.Default()
	cfg.API.URL = "http://10.0.0.2:3000/predict"

	h.update(configReloadMsg{Reload: config.Reload{Config: cfg}})

	assert.Equal(t, []string{cfg.API.URL}, h.transport.endpoints)
	assert.Contains(t, h.m.View(), cfg.API.URL)
}

func TestReload_PinnedEndpointIgnored(t *testing.T) {
	h := newHarness(t)
	h.m.pinned = true
	cfg := config.Default()
	cfg.API.URL = "http://10.0.0.2:3000/predict"

	h.update(configReloadMsg{Reload: config.Reload{Config: cfg}})
	assert.Empty(t, h.transport.endpoints)
}

func TestReload_ErrorKeepsEndpoint(t *testing.T) {
	h := newHarness(t)
	h.update(configReloadMsg{Reload: config.Reload{Err: errors.New("bad toml")}})

	assert.Empty(t, h.transport.endpoints)
	assert.Contains(t, h.m.View(), "bad toml")
}

func TestWaitForReload(t *testing.T) {
	assert.Nil(t, waitForReload(nil))

	ch := make(chan config.Reload, 1)
	ch <- config.Reload{Err: errors.New("x")}
	msg := waitForReload(ch)()
	reload, ok := msg.(configReloadMsg)
	require.True(t, ok)
	assert.EqualError(t, reload.Reload.Err, "x")

	close(ch)
	assert.Nil(t, waitForReload(ch)())
}

// =============================================================================
// MISC
// =============================================================================

func TestQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.key(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_ShowsForm(t *testing.T) {
	h := newHarness(t)
	view := h.m.View()
	assert.Contains(t, view, AppTitle)
	assert.Contains(t, view, components.DescriptionLabel)
	assert.Contains(t, view, components.SubmitLabel)
}

func TestView_CharCountHint(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.m.View(), "0/20")

	h.typeText("  hello ")
	view := h.m.View()
	assert.Contains(t, view, "5/20")
	assert.Contains(t, view, components.DescriptionHint)

	h.update(tea.WindowSizeMsg{Width: 40, Height: 60})
	view = h.m.View()
	assert.Contains(t, view, "5/20")
	assert.NotContains(t, view, components.DescriptionHint)
}

func TestToast_TruncatedToWidth(t *testing.T) {
	h := newHarness(t)
	h.update(tea.WindowSizeMsg{Width: 40, Height: 60})
	cfg := config.Default()
	cfg.API.URL = "http://recommendations.internal.example.com:3000/api/v2/predict"

	h.update(configReloadMsg{Reload: config.Reload{Config: cfg}})

	toasts := h.m.toasts.Toasts()
	require.Len(t, toasts, 1)
	msg := toasts[0].Message
	assert.LessOrEqual(t, util.StringWidth(msg), h.m.contentWidth()-toastChrome)
	assert.True(t, strings.HasSuffix(msg, util.Ellipsis))
	assert.Equal(t, []string{cfg.API.URL}, h.transport.endpoints)
}

func TestFocusString(t *testing.T) {
	assert.Equal(t, "input", FocusInput.String())
	assert.Equal(t, "results", FocusResults.String())
	assert.Equal(t, "unknown", Focus(9).String())
}
