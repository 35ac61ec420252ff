// =============================================================================
// CSV to Invoice Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (invoicegen)
//   ├── generateCmd (invoicegen generate)
//   ├── serveCmd (invoicegen serve)
//   └── versionCmd (invoicegen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "invoicegen",

	Short: "CSV to Invoice Generator - Turn PO exports into PDF invoices",

	Long: `CSV to Invoice Generator is a CLI tool that turns a CSV or XLSX export of
purchase orders (or a plain vendor list) into one PDF invoice per purchase
order, packaged into a single ZIP archive. Vendor lists without PO data get
randomized invoice content, which is useful for testing and demo
environments against real vendor records.

Key Features:
  - Groups export rows by purchase-order number, or by vendor name
  - Lenient currency parsing for inconsistent accounting exports
  - Synthetic line items, dates, and invoice numbers in vendor-only mode
  - Multi-page PDF layout with automatic pagination
  - Optional HTTP upload form for non-CLI users

Example Usage:
  invoicegen generate                   # Process all exports in the input directory
  invoicegen generate --file ./po.csv   # Process a single export
  invoicegen serve                      # Start the upload form on :8080`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
