package cli

import (
	"fmt"

	"artspace/internal/config"
	"artspace/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg    config.Config
	logger logger.Logger

	logLevel string
	jsonLogs bool
	width    int
	height   int
	maxEdge  int
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "artspace",
		Short: "Browse a small gallery of paintings",
		Long: `Art Space shows one painting at a time with its title, artist and year.

Use the Previous and Next buttons, or the arrow keys, to move through the collection.
Moving past either end wraps around.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")

	addWindowFlags(cmd, opts)

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newListCmd(opts))

	return cmd
}

func addWindowFlags(cmd *cobra.Command, opts *rootOptions) {
	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", config.DefaultWindowWidth, "window width")
	flags.IntVar(&opts.height, "height", config.DefaultWindowHeight, "window height")
	flags.IntVar(&opts.maxEdge, "max-edge", config.DefaultImageMaxEdge, "longest edge in pixels for displayed images")
}

// load reads the environment, then lets explicitly set flags win.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if changed("json-logs") {
		cfg.JSONLogs = o.jsonLogs
	}
	if changed("width") {
		cfg.WindowWidth = o.width
	}
	if changed("height") {
		cfg.WindowHeight = o.height
	}
	if changed("max-edge") {
		cfg.ImageMaxEdge = o.maxEdge
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.JSONLogs)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = log
	return nil
}
