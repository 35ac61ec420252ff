// =============================================================================
// CSV to Invoice Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to Invoice Generator CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   invoicegen generate      - Generate invoice archives from exports in the input directory
//   invoicegen serve         - Start the HTTP upload form
//   invoicegen version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-invoice-generation/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
