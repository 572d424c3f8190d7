// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/devguide-tui/internal/config"
	"github.com/jeranaias/devguide-tui/internal/controller"
	"github.com/jeranaias/devguide-tui/internal/predict"
)

// =============================================================================
// MESSAGES
// =============================================================================

// submitResultMsg carries the transport result of one submission.
type submitResultMsg struct {
	Seq    uint64
	Result predict.Result
}

// configReloadMsg carries a config file reload.
type configReloadMsg struct {
	Reload config.Reload
}

// exportDoneMsg reports where an export was written.
type exportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// requestCmd sends one description off the update loop.
func requestCmd(ctx context.Context, t controller.Transport, seq uint64, desc string) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{Seq: seq, Result: t.Submit(ctx, desc)}
	}
}

// waitForReload blocks until the watcher delivers a reload. A closed
// channel ends the loop.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadMsg{Reload: r}
	}
}
