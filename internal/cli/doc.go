// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the devguide command tree.
//
// Configuration is resolved once per invocation in the root command's
// PersistentPreRunE: .env, the config file, environment variables, then
// flags. Commands return errors instead of printing and exiting; Execute
// maps them to exit codes.
//
// # Commands
//
//   - devguide: full-screen interface (internal/ui/app)
//   - devguide ask [description]: one request, report printed as Markdown
//   - devguide config [show|path|init]: inspect or create the config file
//
// # Exit Codes
//
//   - 0: success
//   - 1: validation or service error
//   - 2: invalid usage, e.g. a malformed --api-url
//   - 3: configuration error
//
// # Usage
//
//	func main() {
//		cli.Execute(context.Background())
//	}
package cli
