package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/empireos/internal/modules/introduction/view"
	"github.com/nfrund/empireos/internal/nav"
)

var routesOutputFormat string

type routeEntry struct {
	Route  string `json:"route"`
	Module string `json:"module,omitempty"`
	Accent string `json:"accent,omitempty"`
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes the introduction page links to",
	Long: `List every route the introduction page can request navigation to,
together with the module card that links there, if any.

Examples:
  empire-cli routes                 # table output
  empire-cli routes --format json   # JSON output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := routeEntries()

		switch routesOutputFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		case "table":
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tMODULE\tACCENT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Route, e.Module, e.Accent)
			}
			return w.Flush()
		default:
			return fmt.Errorf("invalid format %q: valid formats are table, json", routesOutputFormat)
		}
	},
}

func routeEntries() []routeEntry {
	cards := map[nav.Route]view.Descriptor{}
	for _, d := range view.Descriptors() {
		cards[d.Route] = d
	}

	var entries []routeEntry
	for _, r := range nav.Routes() {
		e := routeEntry{Route: string(r)}
		if d, ok := cards[r]; ok {
			e.Module = d.Title
			e.Accent = string(d.Accent)
		}
		entries = append(entries, e)
	}
	return entries
}

func init() {
	routesCmd.Flags().StringVarP(&routesOutputFormat, "format", "f", "table", "Output format (table|json)")
	rootCmd.AddCommand(routesCmd)
}
