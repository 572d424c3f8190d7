// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across devguide.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth, StringWidth: display-width aware helpers (go-runewidth)
//   - Slugify: ASCII slug for file names
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	name := util.Slugify(description, 4) + ".md"
//	err := util.AtomicWriteFile(filepath.Join(dir, name), data, 0644)
package util
