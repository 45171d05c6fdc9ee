package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/internal/iosources"
	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/gnames/gnlexicon/pkg/sources"
	"github.com/spf13/cobra"
)

// getSourcesCmd returns the command that lists configured sources.
func getSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List data sources from sources.yaml",
		Long: `Show data sources configured in ~/.config/gnlexicon/sources.yaml
together with defaults applied to empty fields. Use their IDs with
'gnlexicon build -s'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := iosources.New(cfg).Load()
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			printSources(cmd.OutOrStdout(), res, config.SourcesFilePath(cfg.HomeDir))
			return nil
		},
	}
}

func printSources(w io.Writer, sc *sources.SourcesConfig, path string) {
	fmt.Fprintf(w, "Sources from %s\n", path)
	for _, ds := range sc.DataSources {
		fmt.Fprintf(w, "\n[%d] %s\n", ds.ID, ds.Label())
		fmt.Fprintf(w, "  variant:         %s\n", ds.Variant)
		fmt.Fprintf(w, "  taxon file:      %s\n", ds.TaxonFile)
		fmt.Fprintf(w, "  vernacular file: %s\n", ds.VernacularFile)
		fmt.Fprintf(w, "  base file name:  %s\n", ds.BaseFileName)
		fmt.Fprintf(w, "  base URI:        %s\n", ds.BaseURI)
		fmt.Fprintf(w, "  languages:       %s\n", strings.Join(ds.Languages, "; "))
	}
	for _, warn := range sc.Warnings {
		fmt.Fprintf(w, "\nWarning for source %d, %s: %s\n",
			warn.DataSourceID, warn.Field, warn.Message)
	}
}
