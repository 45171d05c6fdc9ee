// Package iolexicon implements the Builder interface. It opens Darwin Core
// tables of configured sources, runs both passes of the lexicon processor
// and post-processes the output files.
// This is an impure I/O package.
package iolexicon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlexicon/internal/iooutput"
	gnlexicon "github.com/gnames/gnlexicon/pkg"
	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/gnames/gnlexicon/pkg/lexicon"
	"github.com/gnames/gnlexicon/pkg/parserpool"
	"github.com/gnames/gnlexicon/pkg/sources"
)

// builder implements the Builder interface.
type builder struct {
	cfg *config.Config
	src sources.Sources
}

// New creates a new Builder. Sources are loaded when Build is called.
func New(cfg *config.Config, src sources.Sources) gnlexicon.Builder {
	return &builder{cfg: cfg, src: src}
}

// Build creates lexicon files for every selected source. A failed source
// does not stop processing of the following ones, cancellation does.
func (b *builder) Build(ctx context.Context) error {
	startTime := time.Now()
	slog.Info("Starting lexicon build", "output", b.cfg.OutputPath())

	sourcesConfig, err := b.src.Load()
	if err != nil {
		return err
	}

	sourcesToProcess, err := b.collectSources(sourcesConfig)
	if err != nil {
		return err
	}

	return b.processSources(ctx, sourcesToProcess, startTime)
}

func (b *builder) collectSources(
	sourcesConfig *sources.SourcesConfig,
) ([]sources.DataSourceConfig, error) {
	res, missing := sourcesConfig.Filter(b.cfg.Build.SourceIDs)
	if len(res) == 0 {
		return nil, NoSourcesError(b.cfg.Build.SourceIDs)
	}

	if len(missing) > 0 {
		slog.Warn("Requested sources are not in configuration",
			"ids", missing)
		gn.Warn(fmt.Sprintf("Sources not found: %v", missing))
	}

	srcs := "source"
	if len(res) > 1 {
		srcs += "s"
	}
	gn.Info(fmt.Sprintf("Processing %d %s", len(res), srcs))
	return res, nil
}

func (b *builder) processSources(
	ctx context.Context,
	sourcesToProcess []sources.DataSourceConfig,
	startTime time.Time,
) error {
	successCount := 0
	errorCount := 0

	for i, source := range sourcesToProcess {
		sourceStartTime := time.Now()

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		msg := fmt.Sprintf("Data Source [%d]: %s", source.ID, source.Label())
		gn.Info(msg)
		fmt.Println(strings.Repeat("─", 60))

		slog.Info("Processing source",
			"index", i+1,
			"total", len(sourcesToProcess),
			"data_source_id", source.ID,
			"title", source.Label(),
			"variant", source.Variant,
		)

		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}

		err := b.processSource(ctx, source)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return CancelledError(ctxErr)
			}
			errorCount++
			err = SourceError(source.ID, source.Label(), err)
			slog.Error("Failed to process source",
				"data_source_id", source.ID,
				"title", source.Label(),
				"error", err,
			)
			gn.PrintErrorMessage(err)
			continue
		}

		successCount++
		sourceDuration := time.Since(sourceStartTime)
		slog.Info("Source processed successfully",
			"data_source_id", source.ID,
			"title", source.Label(),
			"duration", gnfmt.TimeString(sourceDuration.Seconds()),
		)
		gn.Info(fmt.Sprintf("Completed in %s",
			gnfmt.TimeString(sourceDuration.Seconds())))
	}

	totalDuration := time.Since(startTime)
	slog.Info("Build complete",
		"success", successCount,
		"errors", errorCount,
		"total", len(sourcesToProcess),
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Build complete
Sources succeeded: %d, failed %d, total %d.
Output: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		len(sourcesToProcess),
		b.cfg.OutputPath(),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	if errorCount > 0 {
		return SourcesFailedError(errorCount, len(sourcesToProcess))
	}
	return nil
}

// processSource runs both passes for a single data source and
// post-processes its files.
func (b *builder) processSource(
	ctx context.Context,
	source sources.DataSourceConfig,
) error {
	opts := source.VariantOptions()
	if source.Variant == lexicon.VariantCatalogue &&
		!source.Compose() && source.ParseNames {
		pool := parserpool.NewPool(b.cfg.JobsNumber)
		defer pool.Close()
		opts = append(opts, lexicon.OptParser(pool))
	}

	variant, err := lexicon.NewVariant(source.Variant, opts...)
	if err != nil {
		return err
	}

	layout := iooutput.Layout{
		Dir:        b.cfg.OutputPath(),
		BaseName:   source.BaseFileName,
		Extension:  b.cfg.Output.Extension,
		Separate:   b.cfg.Output.SeparateVernaculars,
		Subfolders: b.cfg.Output.UseSubfolders,
	}
	sink, err := iooutput.New(layout)
	if err != nil {
		return err
	}
	defer sink.Close()

	languages := source.Languages
	if len(b.cfg.Build.Languages) > 0 {
		languages = b.cfg.Build.Languages
	}
	proc := lexicon.New(variant, sink, languages)

	gn.Info("(1/3) Reading taxa from <em>%s</em>",
		filepath.Base(source.TaxonFile))
	err = b.readTable(ctx, source.ID, source.TaxonFile, "taxa ", proc.ReadTaxa)
	if err != nil {
		return err
	}
	st := proc.Stats()
	gn.Message(
		"<em>Emitted %s of %s scientific names</em>",
		humanize.Comma(int64(st.TaxaEmitted)),
		humanize.Comma(int64(st.TaxaRows)),
	)

	gn.Info("(2/3) Reading vernacular names from <em>%s</em>",
		filepath.Base(source.VernacularFile))
	err = b.readTable(ctx, source.ID, source.VernacularFile, "vernaculars ",
		proc.ReadVernaculars)
	if err != nil {
		return err
	}
	st = proc.Stats()
	report := st.FilterReport(proc.Languages())
	slog.Info(report, "data_source_id", source.ID)
	gn.Message("<em>%s</em>", report)

	if err = sink.Close(); err != nil {
		return err
	}

	gn.Info("(3/3) Post-processing output files...")
	if err = b.postProcess(ctx, sink.Paths()); err != nil {
		return err
	}

	logStats(source.ID, st)
	return nil
}

func (b *builder) readTable(
	ctx context.Context,
	sourceID int,
	path, prefix string,
	read func(context.Context, io.Reader) error,
) error {
	f, err := os.Open(path)
	if err != nil {
		return OpenTableError(sourceID, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return OpenTableError(sourceID, path, err)
	}

	bar := newProgressBar(info.Size(), prefix)
	defer bar.Finish()

	return read(ctx, bar.NewProxyReader(f))
}

func (b *builder) postProcess(ctx context.Context, paths []string) error {
	if b.cfg.Output.Sort {
		err := iooutput.SortUnique(ctx, paths, b.cfg.JobsNumber)
		if err != nil {
			return err
		}
		slog.Info("Sorted output files", "files", len(paths))
	}

	if !b.cfg.Output.DeleteEmpty {
		return nil
	}
	deleted, err := iooutput.DeleteEmpty(paths)
	if err != nil {
		return err
	}
	slog.Info("Deleted empty output files", "files", len(deleted))
	gn.Message(
		"<em>Kept %d of %d output files</em>",
		len(paths)-len(deleted), len(paths),
	)
	return nil
}

func logStats(sourceID int, st lexicon.Stats) {
	slog.Info("Source statistics",
		"data_source_id", sourceID,
		"taxa_rows", st.TaxaRows,
		"taxa_emitted", st.TaxaEmitted,
		"taxa_skipped", st.TaxaSkipped,
		"deferred", st.Deferred,
		"backfilled", st.Backfilled,
		"dropped", st.Dropped,
		"vernacular_rows", st.VernacularRows,
		"vernacular_filtered", st.VernacularFiltered,
		"vernacular_emitted", st.VernacularEmitted,
	)
	if st.Dropped > 0 {
		gn.Warn(fmt.Sprintf(
			"%s names without identifier never met their accepted name",
			humanize.Comma(int64(st.Dropped)),
		))
	}
}
