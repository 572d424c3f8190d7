// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/devguide-tui/internal/report"
)

const sampleBody = `{
	"success": true,
	"report": {
		"introduccion": "Inventory tracking for a small shop.",
		"explicacion_tecnologias": {
			"lenguaje": {"nombre": "Go", "justificacion": "single binary"},
			"librerias": [{"nombre": "pgx", "instalacion": "go get github.com/jackc/pgx/v5"}]
		},
		"recomendaciones": ["add backups"]
	},
	"code_example": {"content": "// setup\nif a &lt; b { **return** }", "language": "go", "lines": 2},
	"metadata": {"model": "mistral"}
}`

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	var env report.Envelope
	require.NoError(t, json.Unmarshal([]byte(sampleBody), &env))
	return &Document{
		Description: "Sistema de Gestión de inventario <beta>",
		Envelope:    &env,
		CreatedAt:   time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}
}

// =============================================================================
// FORMATS
// =============================================================================

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"md":       FormatMarkdown,
		".MD":      FormatMarkdown,
		"markdown": FormatMarkdown,
		"json":     FormatJSON,
		".html":    FormatHTML,
		"htm":      FormatHTML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/out/report.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("report")
	assert.Error(t, err)
}

func TestNewExporter(t *testing.T) {
	for _, f := range []Format{FormatMarkdown, FormatJSON, FormatHTML} {
		e, err := NewExporter(f, nil)
		require.NoError(t, err)
		got, err := FormatFromPath("x" + e.FileExtension())
		require.NoError(t, err)
		assert.Equal(t, f, got)
		assert.NotEmpty(t, e.MimeType())
	}
	_, err := NewExporter(Format("yaml"), nil)
	assert.Error(t, err)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestExport_RequiresSuccessfulEnvelope(t *testing.T) {
	failed := &Document{Envelope: &report.Envelope{Success: false}}
	for _, e := range []Exporter{NewMarkdownExporter(nil), NewJSONExporter(nil), NewHTMLExporter(nil)} {
		_, err := e.Export(failed)
		assert.ErrorIs(t, err, ErrNothingToExport)

		_, err = e.Export(&Document{})
		assert.ErrorIs(t, err, ErrNothingToExport)

		_, err = e.Export(nil)
		assert.Error(t, err)
	}
}

// =============================================================================
// MARKDOWN
// =============================================================================

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleDocument(t))
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "# AI DevGuide Report\n"))
	assert.Contains(t, md, "**Generated:** 2025-01-02 15:04:05")
	assert.Contains(t, md, "> Sistema de Gestión de inventario <beta>")
	assert.Contains(t, md, "## Introduction\n\nInventory tracking for a small shop.")
	assert.Contains(t, md, "### Go")
	assert.Contains(t, md, "**Technical rationale:**\nsingle binary")
	assert.Contains(t, md, "```go\n// setup\nif a < b { return }\n```")
	assert.Contains(t, md, "## Service notes")
}

func TestMarkdownExporter_WithoutMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeMetadata = false

	out, err := NewMarkdownExporter(opts).Export(sampleDocument(t))
	require.NoError(t, err)
	md := string(out)

	assert.NotContains(t, md, "Generated:")
	assert.NotContains(t, md, "> Sistema")
	assert.NotContains(t, md, "## Service notes")
	assert.Contains(t, md, "## Recommendations")
}

// =============================================================================
// JSON
// =============================================================================

func TestJSONExporter_CanonicalKeys(t *testing.T) {
	out, err := NewJSONExporter(nil).Export(sampleDocument(t))
	require.NoError(t, err)

	var decoded struct {
		Description string          `json:"description"`
		CreatedAt   time.Time       `json:"created_at"`
		Response    json.RawMessage `json:"response"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Sistema de Gestión de inventario <beta>", decoded.Description)
	assert.True(t, decoded.CreatedAt.Equal(time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)))

	resp := string(decoded.Response)
	assert.Contains(t, resp, `"introduction"`)
	assert.NotContains(t, resp, `"introduccion"`)

	var env report.Envelope
	require.NoError(t, json.Unmarshal(decoded.Response, &env))
	assert.Equal(t, "pgx", env.Report.Technologies.Libraries[0].Name)
	assert.Equal(t, "go get github.com/jackc/pgx/v5", env.Report.Technologies.Libraries[0].Install.Command)
}

// =============================================================================
// HTML
// =============================================================================

func TestHTMLExporter(t *testing.T) {
	out, err := NewHTMLExporter(nil).Export(sampleDocument(t))
	require.NoError(t, err)
	page := string(out)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<body class="dark-theme">`)
	assert.Contains(t, page, "<h2>Introduction</h2>")
	assert.Contains(t, page, "<h3>Go</h3>")
	assert.Contains(t, page, "<h4>Main libraries</h4>")
	assert.Contains(t, page, `<span class="marked">return</span>`)
	assert.Contains(t, page, `<span class="comment">// setup`)
	assert.Contains(t, page, "if a &lt; b {")
	assert.Contains(t, page, "inventario &lt;beta&gt;")
	assert.NotContains(t, page, "<beta>")
}

func TestHTMLExporter_LightTheme(t *testing.T) {
	opts := DefaultOptions()
	opts.Theme = "light"
	out, err := NewHTMLExporter(opts).Export(sampleDocument(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<body class="light-theme">`)
}

// =============================================================================
// FILES
// =============================================================================

func TestFilename(t *testing.T) {
	doc := sampleDocument(t)
	assert.Equal(t, "devguide_sistema-de-gestion-de-inventario-beta_20250102_150405.md", Filename(doc, ".md"))

	doc.Description = "!!!"
	assert.Equal(t, "devguide_report_20250102_150405.json", Filename(doc, ".json"))
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = filepath.Join(dir, "exports")

	path, err := ExportToFile(sampleDocument(t), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(opts.OutputDir, "devguide_sistema-de-gestion-de-inventario-beta_20250102_150405.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Introduction")
}

func TestExportToFile_NothingToExport(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()
	_, err := ExportToFile(&Document{Envelope: &report.Envelope{}}, NewJSONExporter(opts), opts)
	assert.ErrorIs(t, err, ErrNothingToExport)

	entries, err := os.ReadDir(opts.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFile_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDocument(t)

	htmlPath := filepath.Join(dir, "report.html")
	require.NoError(t, WriteFile(doc, htmlPath, nil))
	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")

	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, WriteFile(doc, jsonPath, nil))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	assert.Error(t, WriteFile(doc, filepath.Join(dir, "report.txt"), nil))
}
