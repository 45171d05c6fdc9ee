/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/internal/iolexicon"
	"github.com/gnames/gnlexicon/internal/iosources"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build lexicon files from Darwin Core sources",
		Long: `Create lexicon files from Darwin Core taxon and vernacular tables.

For every selected source this command:
  1. Reads the taxon table, writing scientific names with their URIs
     into files of kingdom-derived classes
  2. Reads the vernacular table, keeping names of accepted languages
     and routing them to the class and URI of their taxon
  3. Sorts files, removes duplicate lines and deletes empty files

Data sources are configured in: ~/.config/gnlexicon/sources.yaml
Output layout is configured in: ~/.config/gnlexicon/config.yaml
Flags override both files.

Examples:
  # Build lexicons for all sources
  gnlexicon build

  # Build specific sources only
  gnlexicon build --source-ids 1,2
  gnlexicon build -s 2

  # Flat layout with shared taxon and vernacular files
  gnlexicon build --subfolders=false --separate=false

  # Override accepted vernacular languages
  gnlexicon build -s 2 -l German,Ger`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	flags := buildCmd.Flags()
	flags.IntSliceP(
		"source-ids", "s", []int{},
		"data source IDs to process (empty = all)",
	)
	flags.StringSliceP(
		"languages", "l", []string{},
		"accepted vernacular languages (empty = per source defaults)",
	)
	flags.StringP("output-dir", "o", "", "base directory of lexicon files")
	flags.StringP("extension", "e", "", "extension of lexicon files")
	flags.IntP("jobs", "j", 0, "number of files sorted concurrently")
	flags.Bool("separate", true, "write vernacular names into separate files")
	flags.Bool("subfolders", true, "create a directory for every class")
	flags.Bool("sort", true, "sort files and remove duplicate lines")
	flags.Bool("delete-empty", true, "delete files without lines")

	return buildCmd
}

func runBuild(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if buildOpts := flagOptions(cmd, buildFlags()); len(buildOpts) > 0 {
		cfg.Update(buildOpts)
	}

	builder := iolexicon.New(cfg, iosources.New(cfg))

	gn.Info("Building lexicon files in <em>%s</em>", cfg.OutputPath())
	return builder.Build(ctx)
}
