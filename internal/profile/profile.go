// Package profile generates an exportable HTML profiling report for a Table.
package profile

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/SAIRAALMAS88/AI-FYP/internal/table"
)

const topValueCount = 8

// ValueCount is a categorical value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// ColumnProfile captures per-column statistics.
type ColumnProfile struct {
	Name       string
	Kind       string
	NonNull    int
	Missing    int
	MissingPct float64
	Unique     int
	// Numeric stats (Welford)
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Categorical top values
	TopValues []ValueCount
}

// Report is a profiling summary of a whole Table.
type Report struct {
	Name    string
	Rows    int
	Cols    int
	Columns []ColumnProfile
}

// Build computes the report. Statistics come from a single pass per column;
// column kinds are read from the Table, never re-inferred here.
func Build(t *table.Table) *Report {
	rep := &Report{Name: t.Name, Rows: t.Rows(), Cols: t.Cols()}
	for _, c := range t.Columns() {
		cp := ColumnProfile{Name: c.Name, Kind: c.Kind.String(), Missing: c.Nulls, NonNull: len(c.Values) - c.Nulls}
		if total := len(c.Values); total > 0 {
			cp.MissingPct = float64(c.Nulls) * 100 / float64(total)
		}
		switch c.Kind {
		case table.Numeric:
			var n int
			var mean, m2 float64
			min, max := math.Inf(1), math.Inf(-1)
			for i := range c.Values {
				x, ok := c.Float(i)
				if !ok {
					continue
				}
				n++
				if x < min {
					min = x
				}
				if x > max {
					max = x
				}
				delta := x - mean
				mean += delta / float64(n)
				m2 += delta * (x - mean)
			}
			if n > 0 {
				cp.Min, cp.Max, cp.Mean = min, max, mean
			}
			if n > 1 {
				cp.Std = math.Sqrt(m2 / float64(n-1))
			}
		default:
			counts := map[string]int{}
			for _, v := range c.Values {
				if v == "" {
					continue
				}
				counts[v]++
			}
			cp.Unique = len(counts)
			tops := make([]ValueCount, 0, len(counts))
			for v, n := range counts {
				tops = append(tops, ValueCount{Value: v, Count: n})
			}
			sort.Slice(tops, func(i, j int) bool {
				if tops[i].Count == tops[j].Count {
					return tops[i].Value < tops[j].Value
				}
				return tops[i].Count > tops[j].Count
			})
			if len(tops) > topValueCount {
				tops = tops[:topValueCount]
			}
			cp.TopValues = tops
		}
		rep.Columns = append(rep.Columns, cp)
	}
	return rep
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"num": func(f float64) string { return fmt.Sprintf("%.4g", f) },
	"pct": func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Dataset Profile: {{.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
.kind { color: #666; font-style: italic; }
</style>
</head>
<body>
<h1>Dataset Profile</h1>
<p><strong>{{.Name}}</strong>: {{.Rows}} rows, {{.Cols}} columns</p>
<table>
<tr><th>Column</th><th>Kind</th><th>Non-null</th><th>Missing</th><th>Details</th></tr>
{{range .Columns}}
<tr>
<td>{{.Name}}</td>
<td class="kind">{{.Kind}}</td>
<td>{{.NonNull}}</td>
<td>{{.Missing}} ({{pct .MissingPct}})</td>
<td>
{{if eq .Kind "numeric"}}min {{num .Min}}, max {{num .Max}}, mean {{num .Mean}}, std {{num .Std}}{{else}}{{if .TopValues}}unique {{.Unique}}; top: {{range $i, $v := .TopValues}}{{if $i}}, {{end}}{{$v.Value}} ({{$v.Count}}){{end}}{{end}}{{end}}
</td>
</tr>
{{end}}
</table>
</body>
</html>
`))

// HTML renders the report as a standalone document.
func (r *Report) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTemp writes the rendered report to a uniquely named temp file and
// returns its path with a cleanup func. Callers must invoke cleanup once the
// report has been displayed and offered for download, even on failure.
func (r *Report) WriteTemp() (string, func(), error) {
	b, err := r.HTML()
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(os.TempDir(), "profile-"+uuid.NewString()+".html")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", nil, fmt.Errorf("write report: %w", err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}
