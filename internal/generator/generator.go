// =============================================================================
// CSV to Invoice Generator - Pipeline Orchestrator
// =============================================================================
//
// This module contains the core generation logic. It orchestrates the entire
// pipeline for one uploaded table, from grouping to the finished archive.
//
// GENERATION PIPELINE:
//   1. Detect the processing mode (PO vs. vendor-only)
//   2. Validate the required headers for that mode
//   3. Partition the rows into invoice groups
//   4. Vendor-only: synthesize line items per group
//   5. Fill in missing invoice dates and reference numbers
//   6. Render one PDF per group
//   7. Add each PDF to the ZIP archive and report progress
//
// FAILURE MODEL:
//   The run is all-or-nothing. A validation failure stops processing before
//   any document is produced; a failure mid-run aborts the whole run and no
//   partial archive is returned. Progress is reported after each completed
//   document as (completed, total).
//
// CONCURRENCY:
//   A Generator holds per-run state (the synthetic data RNG) and processes
//   one table at a time. Concurrent sessions each construct their own
//   Generator; there is no process-wide mutable state.
//
// =============================================================================

package generator

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/archive"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/config"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/grouper"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/pdfrender"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/synthdata"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/types"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/xlsxparser"
	"github.com/ginjaninja78/CSV-to-invoice-generation/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one generation run.
type Result struct {
	// Archive is the finished ZIP container. Nil when the run failed.
	Archive []byte

	// DocumentCount is the number of invoices inside the archive.
	DocumentCount int

	// Mode is the processing mode that was used (config.ModePO or
	// config.ModeVendor).
	Mode string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a run.
type Stats struct {
	// RowsProcessed is the number of data rows in the upload.
	RowsProcessed int

	// GroupsCreated is the number of invoice groups formed.
	GroupsCreated int

	// LineItemsCreated is the total number of line items across all groups.
	LineItemsCreated int

	// ProcessingTime is the time taken for the run.
	ProcessingTime time.Duration
}

// ProgressFunc receives (completed, total) after each finished document.
type ProgressFunc func(completed, total int)

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the leveled logging interface used by the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// nopLogger discards everything; used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator runs the generation pipeline for one table at a time.
type Generator struct {
	cfg      *config.Config
	renderer types.Renderer
	synth    *synthdata.Generator
	logger   Logger
	progress ProgressFunc
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRenderer substitutes the document renderer (tests use this to avoid
// producing real PDFs).
func WithRenderer(r types.Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithLogger attaches a logger.
func WithLogger(l Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithProgress attaches a progress callback.
func WithProgress(p ProgressFunc) Option {
	return func(g *Generator) { g.progress = p }
}

// WithSyntheticSeed fixes the synthetic data seed, for reproducible runs.
func WithSyntheticSeed(seed int64) Option {
	return func(g *Generator) { g.synth = synthdata.NewSeeded(seed) }
}

// New creates a Generator for the given configuration.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		renderer: pdfrender.New(),
		synth:    synthdata.New(),
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// =============================================================================
// ENTRY POINTS
// =============================================================================

// RunFile parses an export from disk and runs the pipeline. The file type
// is chosen by extension: .xlsx goes through the workbook parser, anything
// else is treated as CSV.
func (g *Generator) RunFile(path string) (*Result, error) {
	var (
		table *csvparser.Table
		err   error
	)

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		table, err = xlsxparser.Parse(path)
	} else {
		table, err = csvparser.Parse(path)
	}
	if err != nil {
		return nil, err
	}

	return g.Run(table)
}

// RunReader parses an uploaded export and runs the pipeline. The filename
// is only used to pick the parser by extension.
func (g *Generator) RunReader(r io.Reader, filename string) (*Result, error) {
	var (
		table *csvparser.Table
		err   error
	)

	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		table, err = xlsxparser.ParseReader(r)
	} else {
		table, err = csvparser.ParseReader(r)
	}
	if err != nil {
		return nil, err
	}

	return g.Run(table)
}

// =============================================================================
// MAIN PIPELINE
// =============================================================================

// Run executes the generation pipeline for a parsed table.
func (g *Generator) Run(table *csvparser.Table) (*Result, error) {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: DETECT MODE
	// =========================================================================

	mode := grouper.DetectMode(table, g.cfg.Columns, g.cfg.Mode)
	g.logger.Debug("Detected mode: %s", mode)

	// =========================================================================
	// STEP 2: VALIDATE REQUIRED COLUMNS
	// =========================================================================
	// A missing header is a hard failure; nothing is processed.

	if err := grouper.ValidateColumns(table, g.cfg.Columns, mode); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 3: GROUP ROWS
	// =========================================================================

	var groups []types.InvoiceGroup
	if mode == config.ModeVendor {
		groups = grouper.GroupByVendor(table, g.cfg.Columns)
	} else {
		groups = grouper.GroupByDocument(table, g.cfg.Columns)
	}

	g.logger.Debug("Formed %d group(s) from %d row(s)", len(groups), len(table.Rows))

	// =========================================================================
	// STEP 4-7: SYNTHESIZE, RENDER, ARCHIVE
	// =========================================================================

	zw := archive.NewWriter()
	lineItems := 0

	for i := range groups {
		group := g.complete(groups[i])
		lineItems += len(group.Items)

		pdfBytes, err := g.renderer.Render(group)
		if err != nil {
			return nil, fmt.Errorf("failed to render invoice for %q: %w", group.GroupKey, err)
		}

		if err := zw.Add(documentFilename(group), pdfBytes); err != nil {
			return nil, err
		}

		if g.progress != nil {
			g.progress(i+1, len(groups))
		}
	}

	data, count, err := zw.Close()
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generated %d invoice(s)", count)

	return &Result{
		Archive:       data,
		DocumentCount: count,
		Mode:          mode,
		Stats: Stats{
			RowsProcessed:    len(table.Rows),
			GroupsCreated:    len(groups),
			LineItemsCreated: lineItems,
			ProcessingTime:   time.Since(startTime),
		},
	}, nil
}

// complete fills in the parts of a group the upload could not provide:
// synthetic line items for vendor-only groups, and a date and reference
// number wherever the group has none.
func (g *Generator) complete(group types.InvoiceGroup) types.InvoiceGroup {
	if group.Synthetic && len(group.Items) == 0 {
		group.Items = g.synth.LineItems()
	}
	if group.Date == "" {
		group.Date = g.synth.InvoiceDate()
	}
	if group.ReferenceNumber == "" {
		group.ReferenceNumber = g.synth.InvoiceNumber()
	}
	return group
}

// documentFilename derives the archive entry name for a group:
//   PO mode:          <sanitizedDisplayName>_<sanitizedReferenceNumber>.pdf
//   vendor-only mode: <sanitizedDisplayName>_Invoice.pdf
// Either sanitized part falls back to "Invoice" when nothing survives.
func documentFilename(group types.InvoiceGroup) string {
	display := utils.SanitizeFilenameOr(group.DisplayName, "Invoice")

	if group.Synthetic {
		return display + "_Invoice.pdf"
	}

	reference := utils.SanitizeFilenameOr(group.ReferenceNumber, "Invoice")
	return display + "_" + reference + ".pdf"
}
