// =============================================================================
// CSV to Invoice Generator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the batch command,
// including:
//   - Input file discovery (CSV and XLSX exports)
//   - Input archival (moving processed exports out of the input directory)
//   - Output archive naming
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to input_archive after successful processing
//   - Failed files remain in their original location
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the generator.
type FileManager struct {
	// InputDir is the directory where input exports are placed.
	InputDir string

	// OutputDir is the directory where output ZIP archives are placed.
	OutputDir string

	// InputArchiveDir is the directory for archived input files.
	InputArchiveDir string
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.InputArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles scans the input directory for tabular exports.
//
// RETURNS:
//   - A slice of paths to .csv and .xlsx files, in directory order.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			files = append(files, filepath.Join(fm.InputDir, entry.Name()))
		}
	}

	return files, nil
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveInput moves a processed input file into the input archive directory.
// Called only after the output archive was written successfully.
func (fm *FileManager) ArchiveInput(path string) error {
	dest := filepath.Join(fm.InputArchiveDir, filepath.Base(path))

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to archive input file: %w", err)
	}

	return nil
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// BuildOutputName generates the output archive file name from a format string.
//
// PLACEHOLDERS:
//   {uuid}      - A random UUID
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {source}    - Base name of the source file, without extension, sanitized
//
// A missing .zip extension is appended.
func BuildOutputName(format, sourcePath string) string {
	source := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{source}", SanitizeFilenameOr(source, "invoices"))

	if filepath.Ext(name) != ".zip" {
		name += ".zip"
	}

	return name
}
