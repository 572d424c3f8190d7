// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/devguide-tui/internal/report"
)

// Panel titles.
const (
	TitleIntroduction    = "Introduction"
	TitleTechnologies    = "Recommended Technologies"
	TitleDatabase        = "Database"
	TitleArchitecture    = "Architecture"
	TitleInstallation    = "Installation"
	TitleRecommendations = "Recommendations"
	TitleExampleCode     = "Example Code"
	TitleServiceNotes    = "Service notes"
	TitleReportError     = "Report error"
)

// Subsection headings.
const (
	HeadingLibraries    = "Main libraries"
	HeadingComponents   = "Main components"
	HeadingPrereqs      = "Prerequisites"
	HeadingDependencies = "Installing dependencies"
	HeadingRationale    = "Technical rationale"
	HeadingUsage        = "Use in this project"
	HeadingInstall      = "Installation"
	HeadingKeyFeatures  = "Key features"
	HeadingUseCases     = "Use cases"
	HeadingDetails      = "Details"
	HeadingWarnings     = "Warnings"
)

// =============================================================================
// TREE TYPES
// =============================================================================

// PanelKind selects the visual treatment of a panel.
type PanelKind int

const (
	PanelSection PanelKind = iota
	PanelError
	PanelCode
	PanelNotes
)

// BlockKind identifies what a Block holds.
type BlockKind int

const (
	// BlockParagraph holds Text, with an optional Heading.
	BlockParagraph BlockKind = iota
	// BlockList holds Items, with an optional Heading.
	BlockList
	// BlockCode holds Code.
	BlockCode
	// BlockTech is a technology detail: Heading is the name, Children the body.
	BlockTech
	// BlockGroup is a Heading over Children.
	BlockGroup
)

// Block is one element inside a panel.
type Block struct {
	Kind     BlockKind
	Heading  string
	Text     string
	Items    []string
	Code     *Code
	Children []Block
}

// Code is a code block ready for display.
type Code struct {
	// Label names the platform for per-platform install commands.
	Label    string
	Language string
	Lines    int
	// Raw is the code as received, used for copying.
	Raw      string
	Segments []Segment
	Copyable bool
}

// Panel is one titled section of the report.
type Panel struct {
	Kind   PanelKind
	Title  string
	Blocks []Block
}

// Tree is the full visual structure of a response.
type Tree struct {
	Panels []Panel
}

// Empty reports whether there is nothing to show.
func (t Tree) Empty() bool {
	return len(t.Panels) == 0
}

// Copyable returns the first copyable code block, if any.
func (t Tree) Copyable() (*Code, bool) {
	for _, p := range t.Panels {
		for _, b := range p.Blocks {
			if b.Kind == BlockCode && b.Code != nil && b.Code.Copyable {
				return b.Code, true
			}
		}
	}
	return nil, false
}

// =============================================================================
// BUILD
// =============================================================================

// Build converts an envelope into a tree. It is total: nil or partial input
// yields fewer panels, never an error. Equal inputs give deep-equal trees.
func Build(env *report.Envelope) Tree {
	var t Tree
	if env == nil {
		return t
	}

	if r := env.Report; r != nil {
		if r.Failed() {
			t.Panels = append(t.Panels, Panel{
				Kind:   PanelError,
				Title:  TitleReportError,
				Blocks: paragraph("", r.Message),
			})
		} else {
			t.Panels = append(t.Panels, reportPanels(r)...)
		}
	}

	if env.HasCode() {
		t.Panels = append(t.Panels, codePanel(env.CodeExample))
	}

	if notes, ok := notesPanel(env.Metadata, env.Warnings); ok {
		t.Panels = append(t.Panels, notes)
	}
	return t
}

func reportPanels(r *report.Report) []Panel {
	var panels []Panel

	if r.Introduction != "" {
		panels = append(panels, Panel{Title: TitleIntroduction, Blocks: paragraph("", r.Introduction)})
	}

	if techs := r.Technologies; techs != nil {
		var blocks []Block
		if techs.Language != nil {
			blocks = append(blocks, techBlock(techs.Language))
		}
		if techs.Framework != nil {
			blocks = append(blocks, techBlock(techs.Framework))
		}
		if len(techs.Libraries) > 0 {
			group := Block{Kind: BlockGroup, Heading: HeadingLibraries}
			for i := range techs.Libraries {
				group.Children = append(group.Children, techBlock(&techs.Libraries[i]))
			}
			blocks = append(blocks, group)
		}
		panels = append(panels, Panel{Title: TitleTechnologies, Blocks: blocks})
	}

	if r.Database != nil {
		panels = append(panels, Panel{Title: TitleDatabase, Blocks: []Block{techBlock(r.Database)}})
	}

	if a := r.Architecture; a != nil {
		var blocks []Block
		blocks = append(blocks, paragraph("", a.Diagram)...)
		blocks = append(blocks, list(HeadingComponents, a.Components)...)
		panels = append(panels, Panel{Title: TitleArchitecture, Blocks: blocks})
	}

	if in := r.Installation; in != nil {
		var blocks []Block
		blocks = append(blocks, list(HeadingPrereqs, in.Requirements)...)
		if libs := in.Libraries; libs != nil {
			group := Block{Kind: BlockGroup, Heading: HeadingDependencies}
			group.Children = append(group.Children, codeBlock("", libs.Command)...)
			group.Children = append(group.Children, codeBlock("", libs.Example)...)
			blocks = append(blocks, group)
		}
		panels = append(panels, Panel{Title: TitleInstallation, Blocks: blocks})
	}

	if len(r.Recommendations) > 0 {
		panels = append(panels, Panel{Title: TitleRecommendations, Blocks: list("", r.Recommendations)})
	}

	return panels
}

// techBlock renders one technology detail.
func techBlock(d *report.TechDetail) Block {
	b := Block{Kind: BlockTech, Heading: d.Name}
	b.Children = append(b.Children, paragraph("", d.Description)...)
	b.Children = append(b.Children, paragraph(HeadingRationale, d.Rationale)...)
	b.Children = append(b.Children, paragraph(HeadingUsage, d.Usage)...)

	if d.Install.IsSet() {
		group := Block{Kind: BlockGroup, Heading: HeadingInstall}
		mapped := d.Install.IsMapping()
		for _, cmd := range d.Install.Blocks() {
			label := ""
			if mapped {
				label = platformLabel(cmd.Platform)
			}
			group.Children = append(group.Children, codeBlock(label, cmd.Command)...)
		}
		b.Children = append(b.Children, group)
	}

	b.Children = append(b.Children, list(HeadingKeyFeatures, d.KeyFeatures)...)
	b.Children = append(b.Children, list(HeadingUseCases, d.UseCases)...)
	return b
}

func codePanel(c *report.CodeExample) Panel {
	code := &Code{
		Language: c.Language,
		Lines:    c.Lines,
		Raw:      c.Content,
		Segments: CodeSegments(c.Content),
		Copyable: true,
	}
	return Panel{
		Kind:   PanelCode,
		Title:  TitleExampleCode,
		Blocks: []Block{{Kind: BlockCode, Code: code}},
	}
}

func notesPanel(m *report.Metadata, w *report.Warnings) (Panel, bool) {
	if m.IsZero() && w.IsZero() {
		return Panel{}, false
	}

	var details []string
	if !m.IsZero() {
		if m.Model != "" {
			details = append(details, "Model: "+m.Model)
		}
		if m.Version != "" {
			details = append(details, "Service version: "+m.Version)
		}
		if m.Timestamp != "" {
			details = append(details, "Generated: "+m.Timestamp)
		}
		if m.CacheHit {
			details = append(details, "Served from cache")
		}
	}

	var warnings []string
	if !w.IsZero() {
		if w.Report != "" {
			warnings = append(warnings, fmt.Sprintf("Report: %s", w.Report))
		}
		if w.Code != "" {
			warnings = append(warnings, fmt.Sprintf("Code: %s", w.Code))
		}
	}

	var blocks []Block
	blocks = append(blocks, list(HeadingDetails, details)...)
	blocks = append(blocks, list(HeadingWarnings, warnings)...)
	return Panel{Kind: PanelNotes, Title: TitleServiceNotes, Blocks: blocks}, true
}

// =============================================================================
// BLOCK HELPERS
// =============================================================================

// Each helper returns no block for empty input so callers can append freely.

func paragraph(heading, text string) []Block {
	if text == "" {
		return nil
	}
	return []Block{{Kind: BlockParagraph, Heading: heading, Text: text}}
}

func list(heading string, items []string) []Block {
	if len(items) == 0 {
		return nil
	}
	return []Block{{Kind: BlockList, Heading: heading, Items: append([]string(nil), items...)}}
}

func codeBlock(label, raw string) []Block {
	if raw == "" {
		return nil
	}
	return []Block{{Kind: BlockCode, Code: &Code{Label: label, Raw: raw, Segments: CodeSegments(raw)}}}
}

// platformLabel title-cases a platform key ("linux" -> "Linux").
func platformLabel(platform string) string {
	return cases.Title(language.Und).String(platform)
}
