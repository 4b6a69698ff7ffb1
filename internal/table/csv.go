package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV normalizes raw CSV bytes into a Table. The first row is the
// header; short rows are padded so row/column counts stay consistent.
func ParseCSV(name string, data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Filename: name, Err: fmt.Errorf("empty file")}
		}
		return nil, &ParseError{Filename: name, Err: fmt.Errorf("read header: %w", err)}
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Filename: name, Err: fmt.Errorf("read row %d: %w", len(rows)+1, err)}
		}
		cp := make([]string, len(rec))
		copy(cp, rec)
		rows = append(rows, cp)
	}

	t, err := fromRecords(name, header, rows)
	if err != nil {
		return nil, &ParseError{Filename: name, Err: err}
	}
	return t, nil
}
