// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a successful recommendation report to a file.
//
// # Key Types
//
//   - Document: The description plus the service response
//   - Exporter: Format-specific encoder
//   - Format: Export format enumeration (Markdown, JSON, HTML)
//   - Options: Export configuration options
//
// # Supported Formats
//
//   - Markdown: The report as rendered for plain mode
//   - JSON: The response envelope with canonical keys
//   - HTML: A standalone page laid out like the web client
//
// # Usage
//
// Export into a directory under a generated name:
//
//	doc := export.NewDocument(description, env)
//	path, err := export.ExportToFile(doc, export.NewMarkdownExporter(nil), nil)
//
// Export to a specific file, format from the extension:
//
//	err := export.WriteFile(doc, "report.html", nil)
package export
