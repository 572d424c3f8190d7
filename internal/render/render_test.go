// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/devguide-tui/internal/report"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// =============================================================================
// CODE HEURISTIC
// =============================================================================

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, "a < b", DecodeEntities("a &lt; b"))
	assert.Equal(t, `if (x && y) { return "ok"; }`, DecodeEntities(`if (x &amp;&amp; y) { return &quot;ok&quot;; }`))
	assert.Equal(t, "plain", DecodeEntities("plain"))
}

func TestSplitMarked(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "marked then rest",
			in:   "** comment **rest",
			want: []Segment{
				{Text: " comment ", Marked: true},
				{Text: "rest"},
			},
		},
		{
			name: "marked comment",
			in:   "x := 1 **// set x** y",
			want: []Segment{
				{Text: "x := 1 "},
				{Text: "// set x", Marked: true, Comment: true},
				{Text: " y"},
			},
		},
		{
			name: "unmarked comment",
			in:   "// just a comment",
			want: []Segment{{Text: "// just a comment", Comment: true}},
		},
		{
			name: "unclosed marker",
			in:   "a ** b",
			want: []Segment{{Text: "a ** b"}},
		},
		{
			name: "markers do not span lines",
			in:   "**a\nb**",
			want: []Segment{{Text: "**a\nb**"}},
		},
		{
			name: "non-greedy",
			in:   "**a** mid **b**",
			want: []Segment{
				{Text: "a", Marked: true},
				{Text: " mid "},
				{Text: "b", Marked: true},
			},
		},
		{
			name: "empty run dropped",
			in:   "****",
			want: nil,
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMarked(tt.in))
		})
	}
}

func TestCodeSegments_DecodesBeforeSplitting(t *testing.T) {
	segs := CodeSegments("**// a &amp;&amp; b**\nif a &lt; b {}")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "// a && b", Marked: true, Comment: true}, segs[0])
	assert.Equal(t, "\nif a < b {}", segs[1].Text)
	assert.Equal(t, "// a && b\nif a < b {}", Join(segs))
}

// =============================================================================
// BUILD
// =============================================================================

func decode(t *testing.T, body string) *report.Envelope {
	t.Helper()
	var env report.Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return &env
}

func panelTitles(tree Tree) []string {
	var out []string
	for _, p := range tree.Panels {
		out = append(out, p.Title)
	}
	return out
}

const fullBody = `{
	"success": true,
	"report": {
		"introduction": "A booking platform for small gyms.",
		"technologies": {
			"language": {"name": "Go", "description": "Compiled language", "rationale": "Fast", "usage": "API server", "installCommands": "brew install go", "keyFeatures": ["goroutines"]},
			"framework": {"name": "Echo", "useCases": ["REST APIs"]},
			"libraries": [{"name": "pgx"}, {"name": "zap"}]
		},
		"database": {"name": "PostgreSQL", "installCommands": {"linux": "apt install x", "windows": ""}},
		"architecture": {"diagram": "client -> api -> db", "components": ["api", "scheduler"]},
		"installation": {"requirements": ["Go 1.24"], "libraries": {"command": "go mod download", "example": ""}},
		"recommendations": ["Add rate limiting"]
	},
	"code_example": {"content": "**// entry point**\nfunc main() {}", "language": "go", "lines": 2},
	"metadata": {"model": "mistral", "version": "1.0"},
	"warnings": {"code": "may be incomplete"}
}`

func TestBuild_PanelOrder(t *testing.T) {
	tree := Build(decode(t, fullBody))

	assert.Equal(t, []string{
		TitleIntroduction,
		TitleTechnologies,
		TitleDatabase,
		TitleArchitecture,
		TitleInstallation,
		TitleRecommendations,
		TitleExampleCode,
		TitleServiceNotes,
	}, panelTitles(tree))
}

func TestBuild_InstallCommandsString(t *testing.T) {
	tech := techBlock(&report.TechDetail{Name: "Node", Install: report.SingleCommand("apt install nodejs")})

	codes := codeBlocks(tech)
	require.Len(t, codes, 1)
	assert.Equal(t, "apt install nodejs", codes[0].Raw)
	assert.Empty(t, codes[0].Label)
}

func TestBuild_InstallCommandsMapping(t *testing.T) {
	tech := techBlock(&report.TechDetail{
		Name: "PostgreSQL",
		Install: report.PlatformCommands(
			report.PlatformCommand{Platform: "linux", Command: "apt install x"},
			report.PlatformCommand{Platform: "windows", Command: ""},
		),
	})

	codes := codeBlocks(tech)
	require.Len(t, codes, 1)
	assert.Equal(t, "apt install x", codes[0].Raw)
	assert.Equal(t, "Linux", codes[0].Label)
}

func TestBuild_InstallMappingAllEmptyKeepsHeading(t *testing.T) {
	tech := techBlock(&report.TechDetail{
		Name:    "Redis",
		Install: report.PlatformCommands(report.PlatformCommand{Platform: "macos"}),
	})

	var groups []string
	for _, c := range tech.Children {
		if c.Kind == BlockGroup {
			groups = append(groups, c.Heading)
		}
	}
	assert.Equal(t, []string{HeadingInstall}, groups)
	assert.Empty(t, codeBlocks(tech))
}

func TestBuild_TechDetailSections(t *testing.T) {
	tree := Build(decode(t, fullBody))
	lang := tree.Panels[1].Blocks[0]

	require.Equal(t, BlockTech, lang.Kind)
	assert.Equal(t, "Go", lang.Heading)

	var headings []string
	for _, c := range lang.Children {
		headings = append(headings, c.Heading)
	}
	assert.Equal(t, []string{"", HeadingRationale, HeadingUsage, HeadingInstall, HeadingKeyFeatures}, headings)

	framework := tree.Panels[1].Blocks[1]
	require.Len(t, framework.Children, 1)
	assert.Equal(t, HeadingUseCases, framework.Children[0].Heading)

	libs := tree.Panels[1].Blocks[2]
	assert.Equal(t, HeadingLibraries, libs.Heading)
	assert.Len(t, libs.Children, 2)
}

func TestBuild_EmptyLibraryCommandsSkipped(t *testing.T) {
	tree := Build(decode(t, fullBody))
	install := tree.Panels[4]

	require.Len(t, install.Blocks, 2)
	deps := install.Blocks[1]
	assert.Equal(t, HeadingDependencies, deps.Heading)
	require.Len(t, deps.Children, 1)
	assert.Equal(t, "go mod download", deps.Children[0].Code.Raw)
}

func TestBuild_AbsentSections(t *testing.T) {
	assert.True(t, Build(nil).Empty())
	assert.True(t, Build(&report.Envelope{Success: true}).Empty())
	assert.True(t, Build(&report.Envelope{Success: true, Report: &report.Report{}}).Empty())

	tree := Build(&report.Envelope{Report: &report.Report{Recommendations: []string{"one"}}})
	assert.Equal(t, []string{TitleRecommendations}, panelTitles(tree))

	codeOnly := Build(&report.Envelope{CodeExample: &report.CodeExample{Content: "x"}})
	assert.Equal(t, []string{TitleExampleCode}, panelTitles(codeOnly))

	emptyCode := Build(&report.Envelope{CodeExample: &report.CodeExample{Language: "go"}})
	assert.True(t, emptyCode.Empty())
}

func TestBuild_ReportError(t *testing.T) {
	env := decode(t, `{
		"success": true,
		"report": {"error": "parse", "message": "model output was not JSON", "introduction": "ignored"},
		"code_example": {"content": "print(1)"}
	}`)

	tree := Build(env)
	assert.Equal(t, []string{TitleReportError, TitleExampleCode}, panelTitles(tree))
	assert.Equal(t, PanelError, tree.Panels[0].Kind)
	assert.Equal(t, "model output was not JSON", tree.Panels[0].Blocks[0].Text)
}

func TestBuild_Copyable(t *testing.T) {
	tree := Build(decode(t, fullBody))
	code, ok := tree.Copyable()
	require.True(t, ok)
	assert.Equal(t, "**// entry point**\nfunc main() {}", code.Raw)
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, 2, code.Lines)

	_, ok = Build(&report.Envelope{}).Copyable()
	assert.False(t, ok)
}

func TestBuild_Idempotent(t *testing.T) {
	env := decode(t, fullBody)

	first := Build(env)
	second := Build(env)
	assert.Equal(t, first, second)

	theme := styles.Plain()
	assert.Equal(t, Terminal(first, 80, theme), Terminal(second, 80, theme))
	assert.Equal(t, Markdown(first), Markdown(second))
}

// codeBlocks collects every code block under b.
func codeBlocks(b Block) []*Code {
	var out []*Code
	if b.Kind == BlockCode && b.Code != nil {
		out = append(out, b.Code)
	}
	for _, c := range b.Children {
		out = append(out, codeBlocks(c)...)
	}
	return out
}

// =============================================================================
// OUTPUT
// =============================================================================

func TestTerminal_PlainOutput(t *testing.T) {
	out := Terminal(Build(decode(t, fullBody)), 80, styles.Plain())

	for _, want := range []string{
		TitleIntroduction,
		"A booking platform for small gyms.",
		"Technical rationale:",
		"Linux:",
		"apt install x",
		"Main libraries:",
		"// entry point",
		CopyHint,
		"2 lines",
		"Model: mistral",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Windows:")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminal_MultiLineCodeKeepsIndent(t *testing.T) {
	env := &report.Envelope{
		Success:     true,
		CodeExample: &report.CodeExample{Content: "const answer = compute(42);\n**// explain it**\nrun();"},
	}
	out := Terminal(Build(env), 80, styles.Plain())

	column := func(text string) int {
		for _, line := range strings.Split(out, "\n") {
			if i := strings.Index(line, text); i >= 0 {
				return i
			}
		}
		t.Fatalf("%q not rendered:\n%s", text, out)
		return -1
	}

	first := column("const answer")
	assert.Equal(t, first, column("// explain it"))
	assert.Equal(t, first, column("run();"))
}

func TestTerminal_NarrowWidthClamped(t *testing.T) {
	tree := Build(&report.Envelope{Report: &report.Report{Introduction: "short"}})
	assert.Equal(t, Terminal(tree, minWidth, styles.Plain()), Terminal(tree, 5, styles.Plain()))
}

func TestTerminal_EmptyTree(t *testing.T) {
	assert.Empty(t, Terminal(Tree{}, 80, nil))
}

func TestMarkdown(t *testing.T) {
	md := Markdown(Build(decode(t, fullBody)))

	assert.True(t, strings.HasPrefix(md, "## Introduction\n\nA booking platform for small gyms.\n"))
	assert.Contains(t, md, "### Go\n")
	assert.Contains(t, md, "**Technical rationale:**\nFast\n")
	assert.Contains(t, md, "### Main libraries\n")
	assert.Contains(t, md, "#### pgx\n")
	assert.Contains(t, md, "_Linux:_\n\n```\napt install x\n```\n")
	assert.Contains(t, md, "```go\n// entry point\nfunc main() {}\n```\n")
	assert.Contains(t, md, "- Add rate limiting\n")
	assert.NotContains(t, md, "_Windows:_")
}

func TestMarkdown_FenceEscapes(t *testing.T) {
	tree := Build(&report.Envelope{CodeExample: &report.CodeExample{Content: "```\nnested\n```"}})
	md := Markdown(tree)
	assert.Contains(t, md, "````\n```\nnested\n```\n````\n")
}
