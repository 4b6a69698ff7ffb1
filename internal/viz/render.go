package viz

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/SAIRAALMAS88/AI-FYP/internal/table"
	"github.com/SAIRAALMAS88/AI-FYP/internal/utils"
)

// maxFacets caps how many facet panels a single page renders.
const maxFacets = 12

// histogramBins is the fixed bin count for numeric histograms.
const histogramBins = 10

// Render draws a validated Spec against the Table as a self-contained HTML
// page. A facet column produces one panel per facet value on the same page.
func Render(w io.Writer, spec *Spec, t *table.Table) error {
	all := make([]int, t.Rows())
	for i := range all {
		all[i] = i
	}
	if spec.Facet == "" {
		page := components.NewPage()
		ch, err := buildChart(spec, t, all, chartTitle(spec, ""))
		if err != nil {
			return err
		}
		page.AddCharts(ch)
		return page.Render(w)
	}

	keys, groups := groupRows(t, spec.Facet, all)
	if len(keys) > maxFacets {
		keys = keys[:maxFacets]
	}
	page := components.NewPage()
	for _, k := range keys {
		ch, err := buildChart(spec, t, groups[k], chartTitle(spec, k))
		if err != nil {
			return err
		}
		page.AddCharts(ch)
	}
	return page.Render(w)
}

// RenderFile renders to path atomically.
func RenderFile(path string, spec *Spec, t *table.Table) error {
	var buf bytes.Buffer
	if err := Render(&buf, spec, t); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func chartTitle(spec *Spec, facetValue string) string {
	title := fmt.Sprintf("%s of %s", spec.Kind, spec.X)
	if spec.Y != "" {
		title = fmt.Sprintf("%s of %s by %s", spec.Kind, spec.Y, spec.X)
	}
	if facetValue != "" {
		title = fmt.Sprintf("%s (%s = %s)", title, spec.Facet, facetValue)
	}
	return title
}

func buildChart(spec *Spec, t *table.Table, rows []int, title string) (components.Charter, error) {
	switch spec.Kind {
	case Scatter:
		return buildPointChart(spec, t, rows, title, true)
	case Line:
		return buildPointChart(spec, t, rows, title, false)
	case Bar:
		return buildBarChart(spec, t, rows, title, false)
	case Histogram:
		return buildBarChart(spec, t, rows, title, true)
	case Box:
		return buildBoxChart(spec, t, rows, title)
	default:
		return nil, &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown chart kind %q", spec.Kind)}
	}
}

// buildPointChart renders scatter and line charts from (x, y) value pairs,
// one series per color-column value.
func buildPointChart(spec *Spec, t *table.Table, rows []int, title string, scatter bool) (components.Charter, error) {
	xc, _ := t.Column(spec.X)
	yIdx := columnIndex(t, spec.Y)
	xIdx := columnIndex(t, spec.X)

	axisType := "category"
	if xc.Kind == table.Numeric {
		axisType = "value"
	}

	seriesKeys, seriesRows := seriesGroups(t, spec.Color, rows)

	if scatter {
		ch := charts.NewScatter()
		ch.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: title}),
			charts.WithXAxisOpts(opts.XAxis{Type: axisType, Name: spec.X}),
			charts.WithYAxisOpts(opts.YAxis{Name: spec.Y}),
		)
		for _, k := range seriesKeys {
			var data []opts.ScatterData
			for _, i := range seriesRows[k] {
				yv, ok := t.Columns()[yIdx].Float(i)
				if !ok {
					continue
				}
				data = append(data, opts.ScatterData{Value: []interface{}{pointX(t, xIdx, i, axisType), yv}})
			}
			ch.AddSeries(k, data)
		}
		return ch, nil
	}

	ch := charts.NewLine()
	ch.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: axisType, Name: spec.X}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.Y}),
	)
	for _, k := range seriesKeys {
		var data []opts.LineData
		for _, i := range seriesRows[k] {
			yv, ok := t.Columns()[yIdx].Float(i)
			if !ok {
				continue
			}
			data = append(data, opts.LineData{Value: []interface{}{pointX(t, xIdx, i, axisType), yv}})
		}
		ch.AddSeries(k, data)
	}
	return ch, nil
}

// buildBarChart covers bar charts and histograms. Without a y column the
// chart degrades to a count aggregation per category or bin; with one it
// sums y per category.
func buildBarChart(spec *Spec, t *table.Table, rows []int, title string, histogram bool) (components.Charter, error) {
	xc, _ := t.Column(spec.X)
	yIdx := columnIndex(t, spec.Y)

	var categories []string
	var rowCategory func(i int) (string, bool)

	if histogram && xc.Kind == table.Numeric {
		bins, assign := numericBins(t, spec.X, rows)
		categories = bins
		rowCategory = assign
	} else {
		xIdx := columnIndex(t, spec.X)
		seen := map[string]bool{}
		for _, i := range rows {
			v := t.Cell(i, xIdx)
			if !seen[v] {
				seen[v] = true
				categories = append(categories, v)
			}
		}
		rowCategory = func(i int) (string, bool) { return t.Cell(i, xIdx), true }
	}

	catIndex := make(map[string]int, len(categories))
	for i, c := range categories {
		catIndex[c] = i
	}

	ch := charts.NewBar()
	ch.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: spec.X}),
	)
	ch.SetXAxis(categories)

	seriesKeys, seriesRows := seriesGroups(t, spec.Color, rows)
	for _, k := range seriesKeys {
		vals := make([]float64, len(categories))
		for _, i := range seriesRows[k] {
			cat, ok := rowCategory(i)
			if !ok {
				continue
			}
			ci, ok := catIndex[cat]
			if !ok {
				continue
			}
			if spec.Y == "" {
				vals[ci]++
				continue
			}
			if yv, ok := t.Columns()[yIdx].Float(i); ok {
				vals[ci] += yv
			}
		}
		data := make([]opts.BarData, len(vals))
		for i, v := range vals {
			data[i] = opts.BarData{Value: v}
		}
		ch.AddSeries(k, data)
	}
	return ch, nil
}

func buildBoxChart(spec *Spec, t *table.Table, rows []int, title string) (components.Charter, error) {
	ch := charts.NewBoxPlot()
	ch.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: spec.X}),
	)

	if spec.Y == "" {
		// Single box over the x column itself.
		xc, _ := t.Column(spec.X)
		if xc.Kind != table.Numeric {
			return nil, &ValidationError{Field: "y", Reason: "box plot of a non-numeric x column requires a numeric y column"}
		}
		vals := numericValues(t, spec.X, rows)
		ch.SetXAxis([]string{spec.X})
		ch.AddSeries(spec.X, []opts.BoxPlotData{{Value: fiveNumber(vals)}})
		return ch, nil
	}

	xIdx := columnIndex(t, spec.X)
	yIdx := columnIndex(t, spec.Y)
	var categories []string
	grouped := map[string][]float64{}
	for _, i := range rows {
		cat := t.Cell(i, xIdx)
		yv, ok := t.Columns()[yIdx].Float(i)
		if !ok {
			continue
		}
		if _, seen := grouped[cat]; !seen {
			categories = append(categories, cat)
		}
		grouped[cat] = append(grouped[cat], yv)
	}
	data := make([]opts.BoxPlotData, len(categories))
	for i, cat := range categories {
		data[i] = opts.BoxPlotData{Value: fiveNumber(grouped[cat])}
	}
	ch.SetXAxis(categories)
	ch.AddSeries(spec.Y, data)
	return ch, nil
}

// seriesGroups splits rows into one series per color value, or a single
// unnamed-by-column series when no color column is set. Key order follows
// first appearance.
func seriesGroups(t *table.Table, color string, rows []int) ([]string, map[string][]int) {
	if color == "" {
		return []string{""}, map[string][]int{"": rows}
	}
	return groupRows(t, color, rows)
}

func groupRows(t *table.Table, col string, rows []int) ([]string, map[string][]int) {
	idx := columnIndex(t, col)
	var keys []string
	groups := map[string][]int{}
	for _, i := range rows {
		v := t.Cell(i, idx)
		if _, seen := groups[v]; !seen {
			keys = append(keys, v)
		}
		groups[v] = append(groups[v], i)
	}
	return keys, groups
}

func columnIndex(t *table.Table, name string) int {
	for i, c := range t.Columns() {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func pointX(t *table.Table, xIdx, row int, axisType string) interface{} {
	if axisType == "value" {
		if v, ok := t.Columns()[xIdx].Float(row); ok {
			return v
		}
	}
	return t.Cell(row, xIdx)
}

func numericValues(t *table.Table, col string, rows []int) []float64 {
	idx := columnIndex(t, col)
	var out []float64
	for _, i := range rows {
		if v, ok := t.Columns()[idx].Float(i); ok {
			out = append(out, v)
		}
	}
	return out
}

// numericBins builds equal-width bin labels for a numeric column and an
// assignment function from row index to bin label.
func numericBins(t *table.Table, col string, rows []int) ([]string, func(int) (string, bool)) {
	idx := columnIndex(t, col)
	vals := numericValues(t, col, rows)
	if len(vals) == 0 {
		return nil, func(int) (string, bool) { return "", false }
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		label := fmt.Sprintf("%.4g", lo)
		return []string{label}, func(i int) (string, bool) {
			_, ok := t.Columns()[idx].Float(i)
			return label, ok
		}
	}
	width := (hi - lo) / float64(histogramBins)
	labels := make([]string, histogramBins)
	for b := 0; b < histogramBins; b++ {
		labels[b] = fmt.Sprintf("%.4g to %.4g", lo+float64(b)*width, lo+float64(b+1)*width)
	}
	assign := func(i int) (string, bool) {
		v, ok := t.Columns()[idx].Float(i)
		if !ok {
			return "", false
		}
		b := int((v - lo) / width)
		if b >= histogramBins {
			b = histogramBins - 1
		}
		return labels[b], true
	}
	return labels, assign
}

// fiveNumber returns [min, Q1, median, Q3, max] for box plot data.
func fiveNumber(vals []float64) []float64 {
	if len(vals) == 0 {
		return []float64{0, 0, 0, 0, 0}
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return []float64{cp[0], quantile(cp, 0.25), quantile(cp, 0.5), quantile(cp, 0.75), cp[len(cp)-1]}
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
