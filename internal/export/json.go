// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/devguide-tui/internal/report"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports the response envelope with English keys, whatever
// keys the service used.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

type jsonDocument struct {
	Description string           `json:"description,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	Response    *report.Envelope `json:"response"`
}

// Export converts a document to indented JSON.
func (e *JSONExporter) Export(doc *Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	out := jsonDocument{Response: doc.Envelope}
	if e.options.IncludeMetadata {
		out.Description = doc.Description
		if !doc.CreatedAt.IsZero() {
			created := doc.CreatedAt
			out.CreatedAt = &created
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
