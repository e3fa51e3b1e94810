package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hub/internal/config"
	"github.com/MrSnakeDoc/hub/internal/domain"
	"github.com/MrSnakeDoc/hub/internal/sources/catalog"
)

func newListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the dashboards matching query",
		Long: `List prints the catalog the server would show, filtered the same way the
search box filters the page. Without a query every dashboard is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runList(cmd, query, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}

func runList(cmd *cobra.Command, query string, asJSON bool) error {
	cfg := config.Load()

	cat, _, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	entries := cat.Search(query)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []domain.Entry{}
		}
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "No dashboards match %q\n", query)
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tTITLE\tURL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Tag, e.Title, e.URL)
	}
	return tw.Flush()
}
