// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/devguide-tui/internal/config"
	"github.com/jeranaias/devguide-tui/internal/controller"
	"github.com/jeranaias/devguide-tui/internal/export"
	"github.com/jeranaias/devguide-tui/internal/logging"
	"github.com/jeranaias/devguide-tui/internal/render"
	"github.com/jeranaias/devguide-tui/internal/report"
	"github.com/jeranaias/devguide-tui/internal/ui/components"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// askOptions holds the flags of the ask command.
type askOptions struct {
	json   bool
	output string

	prompt promptFunc
}

func newAskCommand(g *globalOptions) *cobra.Command {
	opts := &askOptions{prompt: historyPrompt}

	cmd := &cobra.Command{
		Use:   "ask [description]",
		Short: "Get a recommendation without the interactive interface",
		Long: `Send one project description and print the report as Markdown.

The description is taken from the arguments, else from stdin when it is
piped, else from an interactive prompt with history.`,
		Example: `  devguide ask "Inventory management system with sales tracking"
  echo "Booking platform for yoga studios with payments" | devguide ask
  devguide ask --json "Chat app for remote teams" > report.json
  devguide ask --output report.html "Recipe sharing site with ratings"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, g, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the response envelope as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export the report to FILE (.md, .json or .html)")
	cmd.MarkFlagsMutuallyExclusive("json", "output")
	return cmd
}

func runAsk(cmd *cobra.Command, g *globalOptions, opts *askOptions, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	cfg := config.Global()

	log := zap.NewNop()
	if g.verbose {
		l, err := logging.New(cfg, logging.SinkStderr)
		if err != nil {
			return configError(err)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()

	var prompt promptFunc
	if isTerminal(cmd.InOrStdin()) {
		prompt = opts.prompt
	}
	desc, err := readDescription(args, cmd.InOrStdin(), prompt)
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			return reportedError(err.Error())
		}
		return err
	}

	ctl := controller.New(g.newClient(log), log)
	ctl.OnTransition(func(_, to controller.Phase, _ controller.State) {
		if to == controller.PhaseLoading {
			fmt.Fprintln(stderr, components.AnalyzingMessage)
		}
	})
	ctl.SetDraft(desc)
	st := ctl.Submit(cmd.Context())

	if st.Phase != controller.PhaseSuccess {
		fmt.Fprintf(stderr, "Error: %s\n", st.Err)
		return reportedError(st.Err)
	}

	if opts.output != "" {
		doc := export.NewDocument(desc, st.Response)
		if err := export.WriteFile(doc, opts.output, g.exportOptions()); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(stderr, "Report exported to %s\n", opts.output)
		return nil
	}

	if opts.json {
		return writeJSON(stdout, st.Response)
	}
	return writeReport(stdout, st.Response, cfg.UI.Theme, cfg.UI.NoColor)
}

// writeJSON prints the envelope with canonical keys.
func writeJSON(w io.Writer, env *report.Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// writeReport prints the report as Markdown, rendered through glamour when
// w is a color terminal.
func writeReport(w io.Writer, env *report.Envelope, theme string, noColor bool) error {
	md := render.Markdown(render.Build(env))

	if colorsEnabled(w, noColor) {
		if out, err := renderMarkdown(md, theme, terminalWidth(w)); err == nil {
			md = out
		}
	}
	_, err := io.WriteString(w, md)
	return err
}

// renderMarkdown styles Markdown for the terminal.
func renderMarkdown(md, theme string, width int) (string, error) {
	style := glamour.WithAutoStyle()
	switch theme {
	case styles.ModeDark:
		style = glamour.WithStandardStyle("dark")
	case styles.ModeLight:
		style = glamour.WithStandardStyle("light")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
