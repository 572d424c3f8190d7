// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller owns the application state: the draft description, the
// last response, the loading flag and the current error message.
//
// A submission moves through the phases Idle, Validating, Loading and then
// Success or Failed. The cycle can be repeated any number of times.
//
// The controller holds no lock. In the TUI it is owned by the Bubble Tea
// update loop, which splits a submission into Begin (before the request) and
// Complete (when the result message arrives). Plain mode uses Submit, which
// does both synchronously.
//
// # Usage
//
//	ctl := controller.New(client, logger)
//	ctl.SetDraft(description)
//	st := ctl.Submit(ctx)
//	if st.Phase == controller.PhaseFailed {
//	    fmt.Println(st.Err)
//	}
package controller
