// =============================================================================
// CSV to Invoice Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which is the main batch command.
// It discovers CSV/XLSX exports in the input directory and runs the
// generation pipeline for each one.
//
// COMMAND USAGE:
//   invoicegen generate [flags]
//
// FLAGS:
//   --file : Process a single export instead of scanning the input directory
//   --mode : Force the processing mode ("po" or "vendor") instead of
//            detecting it from the upload headers
//
// PROCESSING PIPELINE (per file):
//   1. Parse the export into a table
//   2. Detect the mode and validate the required columns
//   3. Group rows and render one PDF invoice per group
//   4. Write the ZIP archive to the output directory
//   5. Move the processed export to the input archive
//
// On error the export stays where it is and processing continues with the
// next file; no partial archive is written.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/config"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/generator"
	"github.com/ginjaninja78/CSV-to-invoice-generation/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// singleFilePath is the path to a specific export to process.
var singleFilePath string

// modeOverride forces the processing mode for this run.
var modeOverride string

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate PDF invoices from CSV/XLSX exports",
	Long: `The generate command scans the input directory for CSV and XLSX exports,
groups each export's rows into invoices (by purchase-order number, or by
vendor name when the export carries no PO data), and writes one ZIP archive
of PDF invoices per export into the output directory.

On successful processing the source export is moved to the input archive.
On error the export stays in the input directory and processing continues
with the remaining files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// init registers the generate command with the root command and its flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&singleFilePath,
		"file",
		"",
		"Process a single export instead of scanning the input directory",
	)

	generateCmd.Flags().StringVar(
		&modeOverride,
		"mode",
		"",
		`Force the processing mode: "po" or "vendor"`,
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate orchestrates the batch run.
func runGenerate() error {
	startTime := time.Now()
	logger := &stdoutLogger{verbose: verbose}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if modeOverride != "" {
		cfg.Mode = modeOverride
		if cfg.Mode != config.ModePO && cfg.Mode != config.ModeVendor {
			return fmt.Errorf("invalid --mode %q: must be %q or %q", modeOverride, config.ModePO, config.ModeVendor)
		}
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	// =========================================================================
	// DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if singleFilePath != "" {
		inputFiles = []string{singleFilePath}
	} else {
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No exports found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d export(s) to process\n", len(inputFiles))

	// =========================================================================
	// PROCESS EACH FILE
	// =========================================================================
	// One upload is one blocking run; progress is printed per finished
	// invoice. A failed export is reported and left in place.

	var successCount, errorCount, invoiceCount int

	for _, file := range inputFiles {
		fmt.Printf("Processing %s\n", filepath.Base(file))

		gen := generator.New(cfg,
			generator.WithLogger(logger),
			generator.WithProgress(func(completed, total int) {
				fmt.Printf("\r  %d/%d invoices", completed, total)
				if completed == total {
					fmt.Println()
				}
			}),
		)

		result, err := gen.RunFile(file)
		if err != nil {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), err)
			continue
		}

		outputName := utils.BuildOutputName(cfg.OutputNameFormat, file)
		outputPath := filepath.Join(cfg.OutputDir, outputName)
		if err := os.WriteFile(outputPath, result.Archive, 0644); err != nil {
			errorCount++
			fmt.Printf("  ✗ %s: failed to write archive: %v\n", filepath.Base(file), err)
			continue
		}

		// Only archived once the output is safely on disk.
		if singleFilePath == "" {
			if err := fm.ArchiveInput(file); err != nil {
				logger.Warn("Failed to archive input file: %v", err)
			}
		}

		successCount++
		invoiceCount += result.DocumentCount
		fmt.Printf("  ✓ %s -> %s (%d invoices, %s mode)\n",
			filepath.Base(file), outputName, result.DocumentCount, result.Mode)
	}

	// =========================================================================
	// SUMMARY
	// =========================================================================

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Exports processed:  %d\n", successCount)
	fmt.Printf("Errors:             %d\n", errorCount)
	fmt.Printf("Invoices generated: %d\n", invoiceCount)
	fmt.Printf("Time elapsed:       %s\n", time.Since(startTime))

	if errorCount > 0 {
		return fmt.Errorf("%d export(s) failed", errorCount)
	}
	return nil
}
