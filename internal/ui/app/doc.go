// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app implements the full-screen DevGuide form as a Bubble Tea model.
//
// The model owns a description input, a submit button and a scrollable report
// viewport. Submission goes through controller.Controller, so validation and
// phase changes match the non-interactive ask command. Requests run as tea.Cmd
// values off the update loop; while one is in flight further submissions are
// ignored.
//
// # Key Types
//
//   - Model: the tea.Model
//   - Options: transport, theme, logger, reload channel and export settings
//   - KeyMap: key bindings shown in the help footer
//
// # Usage
//
//	client := predict.NewClient(&predict.ClientConfig{URL: cfg.API.URL})
//	err := app.Run(ctx, app.Options{
//		Transport: client,
//		Theme:     styles.NewTheme(),
//		Logger:    logger,
//		Reloads:   watcher.Reloads(),
//	})
package app
