// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/jeranaias/devguide-tui/internal/render"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports a report to a standalone page with embedded CSS.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

type htmlPage struct {
	Title       string
	Theme       string
	Description string
	Created     string
	Panels      []render.Panel
}

// Export converts a document to HTML.
func (e *HTMLExporter) Export(doc *Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	theme := e.options.Theme
	if theme != "light" {
		theme = "dark"
	}

	tree := render.Build(doc.Envelope)
	page := htmlPage{
		Title: ReportHeading,
		Theme: theme,
	}
	if e.options.IncludeMetadata {
		page.Description = strings.TrimSpace(doc.Description)
		if !doc.CreatedAt.IsZero() {
			page.Created = formatTimestamp(doc.CreatedAt)
		}
	} else {
		tree = withoutNotes(tree)
	}
	page.Panels = tree.Panels

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// TEMPLATE
// =============================================================================

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"panelClass": func(k render.PanelKind) string {
		switch k {
		case render.PanelError:
			return "panel error"
		case render.PanelCode:
			return "panel code"
		case render.PanelNotes:
			return "panel notes"
		default:
			return "panel"
		}
	},
	"isParagraph": func(b render.Block) bool { return b.Kind == render.BlockParagraph },
	"isList":      func(b render.Block) bool { return b.Kind == render.BlockList },
	"isCode":      func(b render.Block) bool { return b.Kind == render.BlockCode },
	"isTech":      func(b render.Block) bool { return b.Kind == render.BlockTech },
	"isGroup":     func(b render.Block) bool { return b.Kind == render.BlockGroup },
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="devguide">
    <title>{{.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            --font-mono: "SF Mono", "Monaco", "Inconsolata", "Fira Code", "Source Code Pro", monospace;
        }
        .dark-theme {
            --bg-primary: #030712; --bg-panel: #1f2937; --bg-inset: #111827;
            --text-primary: #f9fafb; --text-secondary: #d1d5db; --text-muted: #9ca3af;
            --border-color: #374151; --accent-blue: #60a5fa; --accent-green: #4ade80;
            --accent-purple: #c084fc; --accent-yellow: #facc15; --accent-red: #f87171;
        }
        .light-theme {
            --bg-primary: #ffffff; --bg-panel: #f7f8fa; --bg-inset: #eef0f3;
            --text-primary: #24292e; --text-secondary: #586069; --text-muted: #6a737d;
            --border-color: #e1e4e8; --accent-blue: #0366d6; --accent-green: #22863a;
            --accent-purple: #6f42c1; --accent-yellow: #b08800; --accent-red: #d73a49;
        }
        body { font-family: var(--font-sans); line-height: 1.6; color: var(--text-primary); background: var(--bg-primary); padding: 32px 16px; }
        .container { max-width: 900px; margin: 0 auto; }
        h1 { font-family: var(--font-mono); color: var(--accent-blue); text-align: center; margin-bottom: 24px; }
        .meta { color: var(--text-muted); font-size: 14px; margin-bottom: 8px; }
        blockquote { border-left: 3px solid var(--border-color); padding-left: 12px; color: var(--text-secondary); margin-bottom: 24px; white-space: pre-wrap; }
        .panel { background: var(--bg-panel); border: 1px solid var(--border-color); border-radius: 8px; padding: 20px; margin-bottom: 24px; }
        .panel > h2 { color: var(--accent-blue); margin-bottom: 16px; }
        .panel.code > h2 { color: var(--accent-yellow); }
        .panel.error { border-color: var(--accent-red); }
        .panel.error > h2, .panel.error p { color: var(--accent-red); }
        .panel.notes > h2 { color: var(--text-muted); }
        .tech { background: var(--bg-inset); border: 1px solid var(--border-color); border-radius: 8px; padding: 16px; margin-bottom: 16px; }
        .tech > h3 { color: var(--accent-blue); }
        h4 { color: var(--accent-purple); font-size: 15px; margin: 12px 0 4px; }
        p, li { color: var(--text-secondary); }
        ul { margin-left: 24px; }
        .label { color: var(--text-muted); font-size: 13px; text-transform: capitalize; }
        pre { background: var(--bg-inset); padding: 12px; border-radius: 6px; overflow-x: auto; font-family: var(--font-mono); font-size: 14px; margin: 6px 0 12px; }
        pre .marked { color: var(--accent-purple); font-weight: 600; }
        pre .comment { color: var(--accent-green); }
        .lang { color: var(--text-muted); font-size: 13px; }
        footer { text-align: center; color: var(--text-muted); font-size: 13px; }
    </style>
</head>
<body class="{{.Theme}}-theme">
    <div class="container">
        <h1>{{.Title}}</h1>
        {{- if .Created}}
        <p class="meta">Generated {{.Created}}</p>
        {{- end}}
        {{- if .Description}}
        <blockquote>{{.Description}}</blockquote>
        {{- end}}
        {{- range .Panels}}
        <section class="{{panelClass .Kind}}">
            <h2>{{.Title}}</h2>
            {{- range .Blocks}}{{template "block" .}}{{end}}
        </section>
        {{- end}}
        <footer>Exported from devguide</footer>
    </div>
</body>
</html>
{{define "block"}}
{{- if isParagraph .}}
            {{- if .Heading}}<h4>{{.Heading}}</h4>{{end}}
            <p>{{.Text}}</p>
{{- else if isList .}}
            {{- if .Heading}}<h4>{{.Heading}}</h4>{{end}}
            <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{- else if isCode .}}{{with .Code}}
            {{- if .Label}}<div class="label">{{.Label}}:</div>{{end}}
            {{- if .Language}}<div class="lang">{{.Language}}{{if .Lines}} &middot; {{.Lines}} lines{{end}}</div>{{end}}
            <pre><code>{{range .Segments}}{{if .Comment}}<span class="comment">{{.Text}}</span>{{else if .Marked}}<span class="marked">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</code></pre>
{{- end}}
{{- else if isTech .}}
            <div class="tech">
            <h3>{{if .Heading}}{{.Heading}}{{else}}(unnamed){{end}}</h3>
            {{- range .Children}}{{template "block" .}}{{end}}
            </div>
{{- else if isGroup .}}
            <h4>{{.Heading}}</h4>
            {{- range .Children}}{{template "block" .}}{{end}}
{{- end}}
{{- end}}`
