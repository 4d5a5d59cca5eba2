package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/empireos/internal/config"
	"github.com/nfrund/empireos/internal/modules/introduction"
	"github.com/nfrund/empireos/internal/rendering"
	"github.com/nfrund/empireos/internal/server"
	"github.com/nfrund/empireos/internal/storage"
)

// fs is the filesystem render writes to. Tests swap in an in-memory one.
var fs afero.Fs = afero.NewOsFs()

type renderOptions struct {
	Out        string
	Fragment   bool
	Navigation string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the introduction page to a static HTML file",
	Long: `Render the introduction page exactly as the server would and write it to disk.

Examples:
  empire-cli render                                   # dist/introduction.html
  empire-cli render --out public/index.html
  empire-cli render --fragment --navigation anchors   # body only, plain links`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := runRender(cmd.Context(), storage.NewAferoStore(fs), renderOpts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", n, renderOpts.Out)
		return nil
	},
}

func runRender(ctx context.Context, store storage.Store, opts renderOptions) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Navigation != config.NavigationAnchors && opts.Navigation != config.NavigationHTMX {
		return 0, fmt.Errorf("invalid navigation %q: valid values are %s, %s", opts.Navigation, config.NavigationAnchors, config.NavigationHTMX)
	}

	out, err := introduction.Render(ctx, rendering.NewUniversalRenderer(), server.NewNavigator(opts.Navigation), opts.Fragment)
	if err != nil {
		return 0, err
	}

	n, err := store.Save(ctx, opts.Out, bytes.NewReader(out))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.Out, "out", "o", filepath.Join("dist", "introduction.html"), "Output file")
	renderCmd.Flags().BoolVar(&renderOpts.Fragment, "fragment", false, "Write only the page region, without the document layout")
	renderCmd.Flags().StringVar(&renderOpts.Navigation, "navigation", config.NavigationHTMX, "Link style (anchors|htmx)")
	rootCmd.AddCommand(renderCmd)
}
