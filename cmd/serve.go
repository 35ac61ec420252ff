// =============================================================================
// CSV to Invoice Generator - Serve Command
// =============================================================================
//
// This file defines the 'serve' command: a thin HTTP shell around the same
// generation pipeline the batch command uses. It exists for users who prefer
// a browser form over the CLI.
//
// ROUTES:
//   GET  /          - Upload form
//   POST /invoices  - Multipart upload; responds with the ZIP archive
//
// Each request constructs its own Generator, so concurrent sessions are
// fully isolated. Any processing failure becomes a single descriptive HTTP
// error; no partial archive is ever offered for download.
//
// =============================================================================

package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/config"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/generator"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/grouper"
)

// uploadPage is the minimal upload form. Inlined so the binary stays
// self-contained.
const uploadPage = `<!DOCTYPE html>
<html>
<head><title>Invoice Generator</title></head>
<body>
  <h1>Invoice Generator</h1>
  <p>Upload a CSV or XLSX export of purchase orders, or a plain vendor list.
  You get back a ZIP archive with one PDF invoice per purchase order (or per
  vendor).</p>
  <form action="/invoices" method="post" enctype="multipart/form-data">
    <input type="file" name="export" accept=".csv,.xlsx" required>
    <button type="submit">Generate Invoices</button>
  </form>
</body>
</html>
`

// =============================================================================
// SERVE COMMAND DEFINITION
// =============================================================================

// listenAddr overrides the configured listen address.
var listenAddr string

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP upload form for invoice generation",
	Long: `The serve command starts an HTTP server with an upload form. Uploaded
exports run through the same pipeline as the generate command, and the
resulting ZIP archive is returned as the download. No uploads or archives
are stored server-side.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// init registers the serve command with the root command and its flags.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&listenAddr,
		"listen",
		"",
		"Listen address (overrides the configured listen_addr)",
	)
}

// =============================================================================
// SERVER
// =============================================================================

// runServe starts the HTTP shell.
func runServe() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	logger := &stdoutLogger{verbose: verbose}

	r := mux.NewRouter()
	r.HandleFunc("/", indexHandler).Methods(http.MethodGet)
	r.HandleFunc("/invoices", invoicesHandler(cfg, logger)).Methods(http.MethodPost)

	logger.Info("Listening on %s", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, r)
}

// indexHandler serves the upload form.
func indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, uploadPage)
}

// invoicesHandler accepts a multipart upload, runs the pipeline, and
// responds with the ZIP archive.
func invoicesHandler(cfg *config.Config, logger generator.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)

		file, header, err := r.FormFile("export")
		if err != nil {
			http.Error(w, "upload a CSV or XLSX file in the \"export\" field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		// One generator per request: no shared state between sessions.
		gen := generator.New(cfg, generator.WithLogger(logger))

		result, err := gen.RunReader(file, header.Filename)
		if err != nil {
			// Column validation problems are the user's to fix; everything
			// else is reported verbatim as a server-side failure.
			status := http.StatusInternalServerError
			if _, ok := err.(*grouper.MissingColumnsError); ok {
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, err.Error(), status)
			return
		}

		logger.Info("Generated %d invoice(s) for upload %s", result.DocumentCount, header.Filename)

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="generated_invoices.zip"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(result.Archive)))
		w.Header().Set("X-Invoice-Count", strconv.Itoa(result.DocumentCount))
		w.Write(result.Archive)
	}
}
