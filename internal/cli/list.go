package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"text/tabwriter"

	"artspace/internal/assets"
	"artspace/internal/gallery"
	"artspace/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type catalogDocument struct {
	Artworks []gallery.Artwork `yaml:"artworks"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var format string
	var check bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the collection in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := gallery.DefaultCatalog()

			if check {
				if err := checkAssets(catalog, assets.NewResolver(opts.logger, opts.cfg.ImageMaxEdge), opts.logger); err != nil {
					return err
				}
			}

			return writeCatalog(cmd.OutOrStdout(), catalog, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	cmd.Flags().BoolVar(&check, "check", false, "fail if any artwork image cannot be resolved")

	return cmd
}

type assetResolver interface {
	Resolve(key string) (image.Image, error)
	Keys() ([]string, error)
}

// checkAssets fails when a catalog image cannot be resolved. Bundled images that no artwork
// references are reported as warnings.
func checkAssets(catalog *gallery.Catalog, resolver assetResolver, log logger.Logger) error {
	referenced := make(map[string]bool, catalog.Len())
	var failed []error
	for _, a := range catalog.All() {
		referenced[a.ImageKey] = true
		if _, err := resolver.Resolve(a.ImageKey); err != nil {
			failed = append(failed, fmt.Errorf("%q: %w", a.Title, err))
		}
	}

	keys, err := resolver.Keys()
	if err != nil {
		failed = append(failed, fmt.Errorf("list bundled images: %w", err))
	}
	for _, key := range keys {
		if !referenced[key] {
			log.Warning("CLI", "bundled image is not used by any artwork", map[string]interface{}{
				"key": key,
			})
		}
	}

	return errors.Join(failed...)
}

func writeCatalog(w io.Writer, catalog *gallery.Catalog, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalogDocument{Artworks: catalog.All()}); err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tTITLE\tARTIST\tYEAR\tIMAGE")
		for i, a := range catalog.All() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, a.Title, a.Artist, a.Year, a.ImageKey)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
