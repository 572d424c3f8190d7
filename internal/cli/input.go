// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/devguide-tui/internal/config"
)

// PromptText is shown by the interactive description prompt.
const PromptText = "Describe your project: "

// maxStdinBytes caps piped descriptions.
const maxStdinBytes = 1 << 20

// ErrPromptAborted is returned when the user cancels the prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// promptFunc asks the user for a description interactively.
type promptFunc func() (string, error)

// readDescription resolves the description for plain mode: arguments first,
// then piped stdin, then the interactive prompt.
func readDescription(args []string, stdin io.Reader, prompt promptFunc) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin != nil && !isTerminal(stdin) {
		data, err := io.ReadAll(io.LimitReader(stdin, maxStdinBytes))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	if prompt == nil {
		return "", nil
	}
	return prompt()
}

// =============================================================================
// LINE EDITING
// =============================================================================

// historyPrompt reads one line with arrow-key history stored in the config
// directory.
func historyPrompt() (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile, err := config.HistoryPath()
	if err == nil {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	input, err := line.Prompt(PromptText)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrPromptAborted
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		line.AppendHistory(input)
		if historyFile != "" {
			saveHistory(line, historyFile)
		}
	}
	return input, nil
}

// saveHistory persists prompt history with owner-only permissions.
func saveHistory(line *liner.State, path string) {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}
