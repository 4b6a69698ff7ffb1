// Package insight turns normalized inputs into bounded, deterministic
// analysis context and composes intent-specific prompts from it.
package insight

import (
	"fmt"
	"strings"

	"github.com/SAIRAALMAS88/AI-FYP/internal/document"
	"github.com/SAIRAALMAS88/AI-FYP/internal/table"
)

// sampleRowCount is fixed: always the first rows, never a random sample, so
// the same Table yields the same context run to run.
const sampleRowCount = 3

// TableContext is the compact descriptive summary of a Table embedded in
// prompts.
type TableContext struct {
	Rows       int
	Cols       int
	Columns    []string
	Dtypes     map[string]string
	NullCounts map[string]int
	Sample     []map[string]string
}

// DocumentContext holds the (possibly truncated) extracted text.
type DocumentContext struct {
	Text      string
	Truncated bool
}

// Context is a discriminated union: exactly one variant is populated.
type Context struct {
	Table    *TableContext
	Document *DocumentContext
}

// FromTable builds a fresh TableContext. The Table is immutable, so building
// twice yields identical content.
func FromTable(t *table.Table) *Context {
	tc := &TableContext{
		Rows:       t.Rows(),
		Cols:       t.Cols(),
		Columns:    t.ColumnNames(),
		Dtypes:     make(map[string]string, t.Cols()),
		NullCounts: make(map[string]int, t.Cols()),
	}
	for _, c := range t.Columns() {
		tc.Dtypes[c.Name] = c.Kind.String()
		tc.NullCounts[c.Name] = c.Nulls
	}
	n := sampleRowCount
	if t.Rows() < n {
		n = t.Rows()
	}
	for i := 0; i < n; i++ {
		rec := make(map[string]string, t.Cols())
		for j, name := range tc.Columns {
			rec[name] = t.Cell(i, j)
		}
		tc.Sample = append(tc.Sample, rec)
	}
	return &Context{Table: tc}
}

// FromDocument wraps extracted document text. Truncation happened upstream
// at the prompt cap; no further bounding is applied here.
func FromDocument(d document.Text) *Context {
	return &Context{Document: &DocumentContext{Text: d.Text, Truncated: d.Truncated}}
}

// Rendering below iterates the ordered Columns slice rather than ranging
// over maps, keeping prompt content byte-stable.

func (c *TableContext) columnsList() string {
	return "[" + strings.Join(c.Columns, ", ") + "]"
}

func (c *TableContext) dtypesList() string {
	parts := make([]string, len(c.Columns))
	for i, name := range c.Columns {
		parts[i] = fmt.Sprintf("%s: %s", name, c.Dtypes[name])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c *TableContext) nullCountsList() string {
	parts := make([]string, len(c.Columns))
	for i, name := range c.Columns {
		parts[i] = fmt.Sprintf("%s: %d", name, c.NullCounts[name])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c *TableContext) sampleList() string {
	recs := make([]string, len(c.Sample))
	for i, rec := range c.Sample {
		parts := make([]string, len(c.Columns))
		for j, name := range c.Columns {
			parts[j] = fmt.Sprintf("%s: %s", name, rec[name])
		}
		recs[i] = "{" + strings.Join(parts, ", ") + "}"
	}
	return "[" + strings.Join(recs, ", ") + "]"
}
