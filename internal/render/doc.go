// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns a response envelope into something to look at.
//
// Rendering happens in two steps. Build converts an envelope into a Tree of
// panels and blocks; it is a pure, total function, so partial or absent data
// just produces fewer panels. Terminal and Markdown then turn a Tree into
// styled terminal text or CommonMark.
//
// # Code Blocks
//
// Code text goes through a small heuristic instead of a highlighter: HTML
// entities are decoded, the text is split on "**...**" runs, and any segment
// starting with "//" is shown as a comment.
//
// # Usage
//
//	tree := render.Build(env)
//	fmt.Println(render.Terminal(tree, 80, styles.NewTheme()))
//	os.WriteFile("report.md", []byte(render.Markdown(tree)), 0o644)
package render
