// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jeranaias/devguide-tui/internal/report"
	"github.com/jeranaias/devguide-tui/internal/util"
)

// ErrNothingToExport is returned for a document without a successful response.
var ErrNothingToExport = errors.New("no successful report to export")

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is one answered submission: what was asked and what came back.
type Document struct {
	Description string
	Envelope    *report.Envelope
	CreatedAt   time.Time
}

// NewDocument stamps a document with the current time.
func NewDocument(description string, env *report.Envelope) *Document {
	return &Document{
		Description: description,
		Envelope:    env,
		CreatedAt:   time.Now(),
	}
}

func (d *Document) validate() error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}
	if !d.Envelope.Succeeded() {
		return ErrNothingToExport
	}
	return nil
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for report exporters.
type Exporter interface {
	// Export converts a document to the target format and returns the content.
	Export(doc *Document) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".html").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// Format names an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// ParseFormat accepts a format name or file extension, with or without the dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use md, json or html)", s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q: no extension", path)
	}
	return ParseFormat(ext)
}

// NewExporter returns the exporter for a format.
func NewExporter(f Format, opts *Options) (Exporter, error) {
	switch f {
	case FormatMarkdown:
		return NewMarkdownExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	case FormatHTML:
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// IncludeMetadata includes the description, timestamp and service notes.
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	// Default: "dark"
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
		Theme:           "dark",
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Filename returns the generated file name for a document and extension,
// e.g. "devguide_inventory-system-for-a_20250102_150405.md".
func Filename(doc *Document, ext string) string {
	slug := util.Slugify(doc.Description, 6)
	if slug == "" {
		slug = "report"
	}
	created := doc.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return fmt.Sprintf("devguide_%s_%s%s", slug, created.Format("20060102_150405"), ext)
}

// ExportToFile exports a document into opts.OutputDir under a generated name.
// Returns the output file path or an error.
func ExportToFile(doc *Document, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := doc.validate(); err != nil {
		return "", err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	outputPath := filepath.Join(dir, Filename(doc, exporter.FileExtension()))
	if err := WriteTo(doc, exporter, outputPath); err != nil {
		return "", err
	}

	if opts.OpenAfterExport {
		// Non-fatal: the file was written.
		_ = openFile(outputPath)
	}
	return outputPath, nil
}

// WriteTo exports a document to an explicit path.
func WriteTo(doc *Document, exporter Exporter, path string) error {
	content, err := exporter.Export(doc)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// WriteFile exports a document to path, choosing the format from its extension.
func WriteFile(doc *Document, path string, opts *Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	exporter, err := NewExporter(f, opts)
	if err != nil {
		return err
	}
	return WriteTo(doc, exporter, path)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
