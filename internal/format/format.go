package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind classifies an uploaded artifact by filename extension.
type Kind int

const (
	Unsupported Kind = iota
	CSV
	Excel
	PDF
)

func (k Kind) String() string {
	switch k {
	case CSV:
		return "csv"
	case Excel:
		return "xlsx"
	case PDF:
		return "pdf"
	default:
		return "unsupported"
	}
}

// Tabular reports whether the kind normalizes into a Table.
func (k Kind) Tabular() bool { return k == CSV || k == Excel }

// UnsupportedFormatError indicates an extension outside the upload boundary.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	ext := strings.TrimPrefix(filepath.Ext(e.Filename), ".")
	if ext == "" {
		return fmt.Sprintf("unsupported file %q: missing extension (supported: csv, xlsx, pdf)", e.Filename)
	}
	return fmt.Sprintf("unsupported file format %q (supported: csv, xlsx, pdf)", ext)
}

// Detect classifies by extension only, case-insensitively. Content is never
// sniffed; the bytes argument exists so callers hand the whole upload to a
// single entry point.
func Detect(filename string, _ []byte) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return Excel, nil
	case ".pdf":
		return PDF, nil
	default:
		return Unsupported, &UnsupportedFormatError{Filename: filename}
	}
}
