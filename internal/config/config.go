// =============================================================================
// CSV to Invoice Generator - Configuration
// =============================================================================
//
// This module loads the application configuration from a YAML file. The tool
// is meant to run with zero setup, so every setting has a default and a
// missing config file is not an error.
//
// CONFIGURATION AREAS:
//   1. Directories (input, output, input archive)
//   2. Column mapping (header names in the uploaded export)
//   3. Output naming (placeholders for the ZIP file name)
//   4. Mode selection (auto-detect, or force PO / vendor-only)
//   5. HTTP shell settings (listen address, upload size limit)
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MODE CONSTANTS
// =============================================================================

// Processing modes. Auto detects the mode from the uploaded headers:
// a document-number column means PO mode, otherwise vendor-only.
const (
	ModeAuto   = "auto"
	ModePO     = "po"
	ModeVendor = "vendor"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration, loaded from config.yaml.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for CSV/XLSX exports.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated ZIP archives are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed exports are moved.
	// Files are only moved here after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// =========================================================================
	// COLUMN MAPPING
	// =========================================================================

	// Columns maps the logical fields to the header names used in the
	// uploaded export. Header matching trims surrounding whitespace.
	Columns Columns `yaml:"columns"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the ZIP file name for the batch command.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {source}    - Source file base name, sanitized
	// Default: "invoices_{source}_{timestamp}.zip"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// Mode selects the processing mode: "auto", "po", or "vendor".
	// Default: "auto"
	Mode string `yaml:"mode"`

	// =========================================================================
	// HTTP SHELL SETTINGS
	// =========================================================================

	// ListenAddr is the address the serve command binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// MaxUploadBytes limits the size of uploads accepted by the HTTP shell.
	// Default: 16 MiB
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Columns names the expected headers in the uploaded export.
// These are the NetSuite saved-search defaults; departments with renamed
// result columns override them here.
type Columns struct {
	// Name is the vendor/company name column. Required in every mode.
	Name string `yaml:"name"`

	// DocumentNumber is the purchase-order identifier column.
	// Its presence in an upload is what selects PO mode under "auto".
	DocumentNumber string `yaml:"document_number"`

	// Amount is the signed line total column.
	Amount string `yaml:"amount"`

	// Item is the line-item description column. Rows with a blank item
	// are treated as header-only rows.
	Item string `yaml:"item"`

	// Quantity is the line quantity column.
	Quantity string `yaml:"quantity"`

	// ItemRate is the per-unit rate column.
	ItemRate string `yaml:"item_rate"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the given path and applies defaults.
// A missing file yields the default configuration; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in zero-valued settings.
func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "./input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./output"
	}
	if c.InputArchiveDir == "" {
		c.InputArchiveDir = "./input_archive"
	}
	if c.OutputNameFormat == "" {
		c.OutputNameFormat = "invoices_{source}_{timestamp}.zip"
	}
	if c.Mode == "" {
		c.Mode = ModeAuto
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 16 << 20
	}

	if c.Columns.Name == "" {
		c.Columns.Name = "Name"
	}
	if c.Columns.DocumentNumber == "" {
		c.Columns.DocumentNumber = "Document Number"
	}
	if c.Columns.Amount == "" {
		c.Columns.Amount = "Amount"
	}
	if c.Columns.Item == "" {
		c.Columns.Item = "Item"
	}
	if c.Columns.Quantity == "" {
		c.Columns.Quantity = "Quantity"
	}
	if c.Columns.ItemRate == "" {
		c.Columns.ItemRate = "Item Rate"
	}
}

// validate rejects settings that cannot be defaulted away.
func (c *Config) validate() error {
	switch c.Mode {
	case ModeAuto, ModePO, ModeVendor:
		return nil
	default:
		return fmt.Errorf("invalid mode %q: must be %q, %q, or %q", c.Mode, ModeAuto, ModePO, ModeVendor)
	}
}
