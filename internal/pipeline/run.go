package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/catalog"
	"github.com/enarroied/get-amm/internal/config"
)

// Runner drives one end-to-end pass: locate the current dataset release,
// fetch the archive, filter, enrich, classify and export. Any failure
// aborts the run; no partial output is kept.
type Runner struct {
	cfg     config.Config
	locator *catalog.Locator
	fetcher *catalog.Fetcher
	log     *zap.Logger
}

type RunResult struct {
	SourceRows   int
	RetainedRows int
	ExpandedRows int
	OutputPath   string
}

func NewRunner(cfg config.Config, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		locator: catalog.NewLocator(cfg),
		fetcher: catalog.NewFetcher(cfg),
		log:     logger,
	}
}

func (r *Runner) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()

	archiveURL, err := r.locator.FindArchiveURL(ctx)
	if err != nil {
		return RunResult{}, err
	}
	r.log.Info("dataset release located", zap.String("url", archiveURL))

	table, err := r.fetcher.FetchUsageTable(ctx, archiveURL, r.cfg.CSVMember)
	if err != nil {
		return RunResult{}, err
	}
	r.log.Info("usage table fetched",
		zap.String("member", r.cfg.CSVMember),
		zap.Int("rows", table.Len()))

	result, err := r.transform(catalog.UsageRecords(table), table.Len())
	if err != nil {
		return RunResult{}, err
	}

	r.log.Info("run complete",
		zap.String("output", result.OutputPath),
		zap.Int("retained", result.RetainedRows),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// RunFromCSV applies the same transform to an already-downloaded member
// file, skipping the locator and the fetch.
func (r *Runner) RunFromCSV(path string) (RunResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return RunResult{}, err
	}
	defer f.Close()

	table, err := catalog.ParseUsageCSV(f)
	if err != nil {
		return RunResult{}, err
	}
	r.log.Info("usage table read", zap.String("path", path), zap.Int("rows", table.Len()))

	return r.transform(catalog.UsageRecords(table), table.Len())
}

func (r *Runner) transform(records []internal.UsageRecord, sourceRows int) (RunResult, error) {
	retained := FilterOrganicVine(records)
	expanded := ExpandSecondNames(Enrich(retained))
	report := Classify(expanded)

	r.log.Info("rows classified",
		zap.Int("retained", len(retained)),
		zap.Int("expanded", len(expanded)),
		zap.Int("copper", len(report.Copper)),
		zap.Int("sulphur", len(report.Sulphur)),
		zap.Int("insecticide", len(report.Insecticide)),
		zap.Int("pheromone", len(report.Pheromone)),
		zap.Int("other", len(report.Other)))

	if err := writeReport(report, r.cfg.OutputPath, r.cfg.OutputFormat); err != nil {
		return RunResult{}, err
	}

	return RunResult{
		SourceRows:   sourceRows,
		RetainedRows: len(retained),
		ExpandedRows: len(expanded),
		OutputPath:   r.cfg.OutputPath,
	}, nil
}

func writeReport(report internal.Report, path, format string) error {
	switch format {
	case config.FormatLegacy:
		return WriteLegacyCSV(report, path)
	case config.FormatWide:
		return WriteWideCSV(report, path)
	case config.FormatXLSX:
		return WriteXLSX(report, path)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
