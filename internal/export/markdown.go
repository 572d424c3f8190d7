// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/devguide-tui/internal/render"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// ReportHeading is the top-level heading of exported documents.
const ReportHeading = "AI DevGuide Report"

// MarkdownExporter exports a report to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a document to Markdown.
func (e *MarkdownExporter) Export(doc *Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", ReportHeading)

	if e.options.IncludeMetadata {
		if !doc.CreatedAt.IsZero() {
			fmt.Fprintf(&sb, "**Generated:** %s\n\n", formatTimestamp(doc.CreatedAt))
		}
		if desc := strings.TrimSpace(doc.Description); desc != "" {
			for _, line := range strings.Split(desc, "\n") {
				sb.WriteString(strings.TrimRight("> "+line, " "))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(render.Markdown(e.tree(doc)))
	return []byte(sb.String()), nil
}

// tree builds the render tree, dropping service notes without metadata.
func (e *MarkdownExporter) tree(doc *Document) render.Tree {
	t := render.Build(doc.Envelope)
	if e.options.IncludeMetadata {
		return t
	}
	return withoutNotes(t)
}

func withoutNotes(t render.Tree) render.Tree {
	var out render.Tree
	for _, p := range t.Panels {
		if p.Kind != render.PanelNotes {
			out.Panels = append(out.Panels, p)
		}
	}
	return out
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
