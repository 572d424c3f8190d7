// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/devguide-tui/internal/config"
	"github.com/jeranaias/devguide-tui/internal/controller"
	"github.com/jeranaias/devguide-tui/internal/export"
	"github.com/jeranaias/devguide-tui/internal/render"
	"github.com/jeranaias/devguide-tui/internal/ui/components"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
	"github.com/jeranaias/devguide-tui/internal/util"
)

// Status messages shown as toasts.
const (
	MsgNothingToCopy   = "No example code to copy"
	MsgNothingToExport = "Nothing to export yet"
	MsgExported        = "Report exported to %s"
	MsgEndpointChanged = "Endpoint: %s"
	MsgReloadFailed    = "Config reload failed: %v"
	MsgCopyFailed      = "Copy failed: %v"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the element receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusButton
	FocusResults
)

// String returns the focus name.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusButton:
		return "button"
	case FocusResults:
		return "results"
	default:
		return "unknown"
	}
}

// =============================================================================
// OPTIONS
// =============================================================================

// Transport is the request path plus endpoint swapping for config reloads.
type Transport interface {
	controller.Transport
	SetEndpoint(url string)
}

// Options configures the interactive model.
type Options struct {
	Transport Transport
	Theme     *styles.Theme
	Logger    *zap.Logger

	// Context bounds in-flight requests (default: Background).
	Context context.Context

	// Reloads delivers config reloads; nil disables live reload.
	Reloads <-chan config.Reload
	// PinnedEndpoint ignores endpoint changes from reloads, e.g. when
	// --api-url was given.
	PinnedEndpoint bool

	// Export configures ctrl+e.
	Export *export.Options

	// Clipboard writes text to the system clipboard (default: atotto/clipboard).
	Clipboard func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model of the interactive form.
type Model struct {
	ctrl      *controller.Controller
	transport Transport
	theme     *styles.Theme
	log       *zap.Logger
	ctx       context.Context

	keys KeyMap
	help help.Model

	input    components.TextArea
	button   components.Button
	spinner  components.Spinner
	toasts   *components.ToastManager
	viewport viewport.Model

	focus     Focus
	tree      render.Tree
	submitted string

	reloads   <-chan config.Reload
	pinned    bool
	exportOpt *export.Options
	clip      func(string) error

	width  int
	height int
}

// New creates the model with the description input focused.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Export == nil {
		opts.Export = export.DefaultOptions()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	h := help.New()
	h.Styles.ShortKey = opts.Theme.HelpKey
	h.Styles.ShortDesc = opts.Theme.HelpDesc
	h.Styles.ShortSeparator = opts.Theme.HelpDesc
	h.Styles.FullKey = opts.Theme.HelpKey
	h.Styles.FullDesc = opts.Theme.HelpDesc

	m := Model{
		ctrl:      controller.New(opts.Transport, opts.Logger),
		transport: opts.Transport,
		theme:     opts.Theme,
		log:       opts.Logger,
		ctx:       opts.Context,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     components.NewTextArea(components.DescriptionPlaceholder),
		button:    components.NewSubmitButton(),
		spinner:   components.NewSpinner(),
		toasts:    components.NewToastManager(),
		viewport:  viewport.New(80, 10),
		reloads:   opts.Reloads,
		pinned:    opts.PinnedEndpoint,
		exportOpt: opts.Export,
		clip:      opts.Clipboard,
		width:     80,
		height:    24,
	}
	m.theme.SetSize(m.width, m.height)
	m.input.Focus()
	m.layout()
	return m
}

// Init starts cursor blinking and the config reload loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), waitForReload(m.reloads))
}

// State returns the controller state.
func (m Model) State() controller.State {
	return m.ctrl.State()
}

// Focus returns the focused element.
func (m Model) Focus() Focus {
	return m.focus
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.refreshResults()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if !m.tree.Empty() {
			m.viewport, cmd = m.viewport.Update(msg)
		}

	case submitResultMsg:
		m, cmd = m.handleResult(msg)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case components.ToastTickMsg:
		if m.toasts.Tick(msg.Time) {
			cmd = components.ToastTickCmd()
		}

	case configReloadMsg:
		m, cmd = m.handleReload(msg)

	case exportDoneMsg:
		if msg.Err != nil {
			cmd = m.toast(components.NewErrorToast(msg.Err.Error()))
		} else {
			m.log.Info("EXPORT", zap.String("path", msg.Path))
			cmd = m.toast(components.NewSuccessToast(fmt.Sprintf(MsgExported, msg.Path)))
		}

	default:
		if m.focus == FocusInput {
			m.input, cmd = m.input.Update(msg)
		}
	}

	m.layout()
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Copy):
		return m.copyCode()

	case key.Matches(msg, m.keys.Export):
		return m.exportReport()

	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus(m.nextFocus(1))

	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(m.nextFocus(-1))
	}

	switch m.focus {
	case FocusButton:
		if key.Matches(msg, m.keys.Press) {
			return m.submit()
		}
		return m, nil

	case FocusResults:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetDraft(m.input.Value())
		return m, cmd
	}
}

// nextFocus walks the focus cycle. Results join the cycle once shown.
func (m Model) nextFocus(step int) Focus {
	order := []Focus{FocusInput, FocusButton}
	if !m.tree.Empty() {
		order = append(order, FocusResults)
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(order)) % len(order)
	return order[idx]
}

func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.focus = f
	m.button.Focused = f == FocusButton
	if f == FocusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

// submit validates the draft and starts a request. It does nothing while a
// request is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.button.Enabled() {
		return m, nil
	}

	m.ctrl.SetDraft(m.input.Value())
	desc, ok := m.ctrl.Begin()
	if !ok {
		return m, nil
	}

	m.submitted = desc
	m.tree = render.Tree{}
	m.refreshResults()
	if m.focus == FocusResults {
		m, _ = m.setFocus(FocusButton)
	}
	m.button.Busy = true
	return m, tea.Batch(
		m.spinner.Start(),
		requestCmd(m.ctx, m.transport, m.ctrl.Seq(), desc),
	)
}

func (m Model) handleResult(msg submitResultMsg) (Model, tea.Cmd) {
	st := m.ctrl.Complete(msg.Result)
	m.spinner.Stop()
	m.button.Busy = false

	if st.Phase == controller.PhaseSuccess {
		m.tree = render.Build(st.Response)
		m.refreshResults()
		m.viewport.GotoTop()
	}
	return m, nil
}

// copyCode copies the raw example code to the clipboard.
func (m Model) copyCode() (Model, tea.Cmd) {
	code, ok := m.tree.Copyable()
	if !ok {
		return m, m.toast(components.NewStatusToast(MsgNothingToCopy))
	}
	if err := m.clip(code.Raw); err != nil {
		m.log.Warn("COPY_FAILED", zap.Error(err))
		return m, m.toast(components.NewErrorToast(fmt.Sprintf(MsgCopyFailed, err)))
	}
	m.log.Debug("COPY", zap.Int("bytes", len(code.Raw)))
	return m, m.toast(components.NewSuccessToast(components.CopiedMessage))
}

// exportReport writes the current report as Markdown off the update loop.
func (m Model) exportReport() (Model, tea.Cmd) {
	st := m.ctrl.State()
	if st.Phase != controller.PhaseSuccess || !st.Response.Succeeded() {
		return m, m.toast(components.NewStatusToast(MsgNothingToExport))
	}

	doc := export.NewDocument(m.submitted, st.Response)
	opts := *m.exportOpt
	return m, func() tea.Msg {
		path, err := export.ExportToFile(doc, export.NewMarkdownExporter(&opts), &opts)
		if errors.Is(err, export.ErrNothingToExport) {
			err = errors.New(MsgNothingToExport)
		}
		return exportDoneMsg{Path: path, Err: err}
	}
}

func (m Model) handleReload(msg configReloadMsg) (Model, tea.Cmd) {
	next := waitForReload(m.reloads)

	if msg.Reload.Err != nil {
		return m, tea.Batch(next, m.toast(components.NewErrorToast(fmt.Sprintf(MsgReloadFailed, msg.Reload.Err))))
	}
	cfg := msg.Reload.Config
	if cfg == nil || m.pinned || m.transport == nil {
		return m, next
	}

	m.transport.SetEndpoint(cfg.API.URL)
	if cfg.Export.Dir != "" {
		opts := *m.exportOpt
		opts.OutputDir = cfg.Export.Dir
		m.exportOpt = &opts
	}
	return m, tea.Batch(next, m.toast(components.NewStatusToast(fmt.Sprintf(MsgEndpointChanged, cfg.API.URL))))
}

// toast shows a toast and starts the tick loop if it is not running.
// toastChrome is the width a toast adds around its message: border,
// padding and the status icon.
const toastChrome = 7

func (m Model) toast(t components.Toast) tea.Cmd {
	t.Message = util.TruncateWidth(t.Message, m.contentWidth()-toastChrome)
	running := m.toasts.HasToasts()
	m.toasts.Add(t)
	if running {
		return nil
	}
	return components.ToastTickCmd()
}

// =============================================================================
// LAYOUT
// =============================================================================

// contentWidth is the usable width inside the page margins.
func (m Model) contentWidth() int {
	w := m.width - 2
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

// refreshResults re-renders the report into the viewport.
func (m *Model) refreshResults() {
	m.input.SetWidth(m.contentWidth())
	m.viewport.Width = m.contentWidth()
	if m.tree.Empty() {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(render.Terminal(m.tree, m.contentWidth(), m.theme))
}

// layout gives the viewport whatever height the form and footer leave.
func (m *Model) layout() {
	used := lineCount(m.formView()) + lineCount(m.footerView())
	h := m.height - used - 1
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

