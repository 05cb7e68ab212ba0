// Package csvutil reads CSV input for loading. It wraps encoding/csv with the
// behavior the loader needs: a UTF-8 BOM on the first header cell is
// tolerated, quoted fields may embed the delimiter and line breaks, and row
// width is deliberately not validated against the header so that arity
// mismatches surface as database errors rather than parse errors.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyFile indicates a CSV with no records at all, not even a header.
var ErrEmptyFile = errors.New("csv file is empty")

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "﻿"

// Reader reads one header record followed by data records from a CSV file.
type Reader struct {
	f  *os.File
	cr *csv.Reader
}

// Open opens the CSV file at path. A missing file surfaces as a wrapped
// *fs.PathError, so errors.Is(err, fs.ErrNotExist) holds and the message
// names the path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	cr := csv.NewReader(f)
	// Width enforcement is left to the database.
	cr.FieldsPerRecord = -1
	return &Reader{f: f, cr: cr}, nil
}

// Header reads the first record. A file with no records at all yields
// ErrEmptyFile.
func (r *Reader) Header() ([]string, error) {
	h, err := r.cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(h) > 0 {
		h[0] = strings.TrimPrefix(h[0], utf8BOM)
	}
	return h, nil
}

// Next returns the next data record. io.EOF signals end of input.
func (r *Reader) Next() ([]string, error) {
	return r.cr.Read()
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
