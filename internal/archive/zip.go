// =============================================================================
// CSV to Invoice Generator - Archive Assembler
// =============================================================================
//
// This module accumulates rendered documents into a single in-memory ZIP
// container, in encounter order, and serializes it exactly once.
//
// COLLISION HANDLING:
//   Two groups can sanitize to the same filename (e.g. vendors that differ
//   only by punctuation). Instead of silently overwriting, colliding names
//   get a numeric suffix before the extension: "Acme_Invoice.pdf",
//   "Acme_Invoice_2.pdf", "Acme_Invoice_3.pdf", ...
//
// =============================================================================

package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// Writer assembles rendered documents into a ZIP archive. It owns the
// accumulated entries until Close; a Writer is single-use.
type Writer struct {
	buf   bytes.Buffer
	zw    *zip.Writer
	used  map[string]bool
	count int
}

// NewWriter returns an empty archive assembler.
func NewWriter() *Writer {
	w := &Writer{used: make(map[string]bool)}
	w.zw = zip.NewWriter(&w.buf)
	return w
}

// Add appends one document under the given filename, disambiguating
// collisions with a numeric suffix.
func (w *Writer) Add(filename string, data []byte) error {
	name := w.disambiguate(filename)

	entry, err := w.zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", name, err)
	}

	w.used[name] = true
	w.count++
	return nil
}

// Count returns the number of entries written so far.
func (w *Writer) Count() int {
	return w.count
}

// Close finalizes the container and returns its bytes plus the entry count.
// The Writer must not be used afterwards.
func (w *Writer) Close() ([]byte, int, error) {
	if err := w.zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return w.buf.Bytes(), w.count, nil
}

// disambiguate returns filename, or the first "name_N.ext" variant not yet
// present in the archive.
func (w *Writer) disambiguate(filename string) string {
	if !w.used[filename] {
		return filename
	}

	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !w.used[candidate] {
			return candidate
		}
	}
}
