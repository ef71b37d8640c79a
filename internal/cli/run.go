package cli

import (
	"context"

	"artspace/internal/app"
	"artspace/internal/gallery"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the gallery window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.Context(), opts)
		},
	}

	addWindowFlags(cmd, opts)
	return cmd
}

func runGallery(ctx context.Context, opts *rootOptions) error {
	application, err := app.NewApplication(opts.cfg, gallery.DefaultCatalog(), opts.logger)
	if err != nil {
		opts.logger.Error("CLI", err, nil)
		return err
	}

	return application.Run(ctx)
}
