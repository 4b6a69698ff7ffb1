package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind is the cached classification of a column, derived once at
// construction. Axis/color choices and prompt context both read this value,
// so it is never recomputed elsewhere.
type Kind int

const (
	Other Kind = iota
	Numeric
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "other"
	}
}

// Column is a named, typed column of cell values. Empty cells count as nulls
// and stay in Values as empty strings so row indices line up across columns.
type Column struct {
	Name   string
	Kind   Kind
	Values []string
	Nulls  int
}

// Float parses the i-th cell as a number. Returns false for nulls and
// non-numeric cells.
func (c *Column) Float(i int) (float64, bool) {
	if i < 0 || i >= len(c.Values) {
		return 0, false
	}
	return parseNumeric(c.Values[i])
}

// Table is the canonical normalized representation of tabular input.
// It is immutable after construction.
type Table struct {
	Name string
	cols []Column
	idx  map[string]int
	rows int
}

// ParseError indicates the underlying tabular parse failed.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Filename, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

func (t *Table) Rows() int { return t.rows }
func (t *Table) Cols() int { return len(t.cols) }

// Columns returns the columns in original order. Callers must not mutate.
func (t *Table) Columns() []Column { return t.cols }

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.idx[name]
	if !ok {
		return nil, false
	}
	return &t.cols[i], true
}

// NumericColumns returns names of numeric-kind columns, in table order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.cols {
		if c.Kind == Numeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// CategoricalColumns returns names of categorical-kind columns, in table order.
func (t *Table) CategoricalColumns() []string {
	var out []string
	for _, c := range t.cols {
		if c.Kind == Categorical {
			out = append(out, c.Name)
		}
	}
	return out
}

// Cell returns the raw cell at row i for the given column index.
func (t *Table) Cell(i, col int) string {
	if col < 0 || col >= len(t.cols) || i < 0 || i >= len(t.cols[col].Values) {
		return ""
	}
	return t.cols[col].Values[i]
}

// fromRecords builds a Table from a header row plus data rows. Duplicate
// header names get a numeric suffix so the unique-name invariant holds.
// Column kinds are classified here, once, by predominant parsed type.
func fromRecords(name string, header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	t := &Table{Name: name, idx: make(map[string]int, len(header)), rows: len(rows)}
	seen := map[string]int{}
	for _, h := range header {
		n := strings.TrimSpace(h)
		if n == "" {
			n = "unnamed"
		}
		base := n
		for i := 2; ; i++ {
			if _, dup := seen[n]; !dup {
				break
			}
			n = fmt.Sprintf("%s_%d", base, i)
		}
		seen[n] = len(t.cols)
		t.idx[n] = len(t.cols)
		t.cols = append(t.cols, Column{Name: n, Values: make([]string, 0, len(rows))})
	}
	for _, rec := range rows {
		for j := range t.cols {
			v := ""
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			if v == "" {
				t.cols[j].Nulls++
			}
			t.cols[j].Values = append(t.cols[j].Values, v)
		}
	}
	for j := range t.cols {
		t.cols[j].Kind = classify(t.cols[j].Values)
	}
	return t, nil
}

// classify decides a column kind by counting how its non-null cells parse.
// Numeric wins ties with datetime/text; datetime maps to Other because it is
// neither an aggregation target nor a grouping key.
func classify(values []string) Kind {
	var numCnt, dtCnt, txtCnt int
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := parseNumeric(v); ok {
			numCnt++
			continue
		}
		if _, ok := parseTimeMaybe(v); ok {
			dtCnt++
			continue
		}
		txtCnt++
	}
	switch {
	case numCnt > 0 && numCnt >= dtCnt && numCnt >= txtCnt:
		return Numeric
	case dtCnt > 0 && dtCnt >= txtCnt:
		return Other
	case txtCnt > 0:
		return Categorical
	default:
		return Other
	}
}

func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseTimeMaybe(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
		"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
