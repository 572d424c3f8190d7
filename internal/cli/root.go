// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/devguide-tui/internal/config"
	"github.com/jeranaias/devguide-tui/internal/export"
	"github.com/jeranaias/devguide-tui/internal/logging"
	"github.com/jeranaias/devguide-tui/internal/predict"
	"github.com/jeranaias/devguide-tui/internal/ui/app"
	"github.com/jeranaias/devguide-tui/internal/ui/styles"
)

// Version information (set from main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags. The configuration they resolve
// to is published through config.SetGlobal.
type globalOptions struct {
	apiURL  string
	noColor bool
	verbose bool
}

// NewRootCommand builds the devguide command tree.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "devguide",
		Short: "Technical recommendations for your project idea",
		Long: `devguide sends a short description of a software project to a
recommendation service and shows the report: recommended language, framework
and libraries, database, architecture, installation steps and example code.

Run without arguments to start the interactive interface.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), g)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.apiURL, "api-url", "", "recommendation endpoint (overrides config and DEVGUIDE_API_URL)")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log requests to stderr (plain mode)")

	root.AddCommand(newAskCommand(g), newConfigCommand(g))
	return root
}

// load resolves configuration: .env, config file, environment, then flags.
func (g *globalOptions) load() error {
	if err := config.LoadDotEnv(); err != nil {
		return configError(err)
	}
	cfg, err := config.Load()
	if err != nil {
		return configError(err)
	}

	if u := strings.TrimSpace(g.apiURL); u != "" {
		if err := config.ValidateURL(u); err != nil {
			return &ExitError{Code: ExitUsageError, Err: fmt.Errorf("--api-url: %w", err)}
		}
		cfg.API.URL = u
	}
	if g.noColor {
		cfg.UI.NoColor = true
	}

	config.SetGlobal(cfg)
	return nil
}

// pinned reports whether the endpoint came from the command line.
func (g *globalOptions) pinned() bool {
	return strings.TrimSpace(g.apiURL) != ""
}

// newClient creates the transport for the resolved endpoint.
func (g *globalOptions) newClient(log *zap.Logger) *predict.Client {
	cfg := config.Global()
	return predict.NewClient(&predict.ClientConfig{
		URL:       cfg.API.URL,
		Timeout:   cfg.Timeout(),
		UserAgent: "devguide/" + Version,
		Logger:    log,
	})
}

// exportOptions maps the export section of the config.
func (g *globalOptions) exportOptions() *export.Options {
	cfg := config.Global()
	opts := export.DefaultOptions()
	if cfg.Export.Dir != "" {
		opts.OutputDir = cfg.Export.Dir
	}
	if cfg.UI.Theme == styles.ModeLight {
		opts.Theme = "light"
	}
	return opts
}

// =============================================================================
// INTERACTIVE MODE
// =============================================================================

func runTUI(ctx context.Context, g *globalOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Global()
	log, err := logging.New(cfg, logging.SinkFile)
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()
	log.Info("STARTUP", zap.String("version", Version), zap.String("endpoint", cfg.API.URL))

	reloads, stop := watchConfig(log)
	defer stop()

	theme := styles.NewThemeWithOptions(styles.Options{
		Mode:    cfg.UI.Theme,
		NoColor: cfg.UI.NoColor,
	})

	return app.Run(ctx, app.Options{
		Transport:      g.newClient(log),
		Theme:          theme,
		Logger:         log,
		Reloads:        reloads,
		PinnedEndpoint: g.pinned(),
		Export:         g.exportOptions(),
	})
}

// watchConfig starts the config file watcher when the config directory
// exists. The returned stop function is always safe to call.
func watchConfig(log *zap.Logger) (<-chan config.Reload, func()) {
	noop := func() {}

	path, err := config.ConfigPathTOML()
	if err != nil {
		return nil, noop
	}
	w, err := config.NewWatcher(path, config.DefaultReloadDebounce, log)
	if err != nil {
		log.Warn("CONFIG_WATCH_ERROR", zap.Error(err))
		return nil, noop
	}
	if err := w.Watch(); err != nil {
		log.Debug("CONFIG_WATCH_DISABLED", zap.String("path", path), zap.Error(err))
		_ = w.Close()
		return nil, noop
	}
	return w.Reloads(), func() { _ = w.Close() }
}

// =============================================================================
// ENTRY POINT
// =============================================================================

// Execute runs the command tree and exits the process on failure.
func Execute(ctx context.Context) {
	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var ee *ExitError
	if !errors.As(err, &ee) || !ee.Reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
