// Package viz validates user-selected chart parameters against the current
// Table and renders the resulting spec through the charting engine.
package viz

import (
	"fmt"
	"strings"

	"github.com/SAIRAALMAS88/AI-FYP/internal/table"
)

// ChartKind enumerates the supported visualization types.
type ChartKind string

const (
	Histogram ChartKind = "histogram"
	Box       ChartKind = "box"
	Scatter   ChartKind = "scatter"
	Bar       ChartKind = "bar"
	Line      ChartKind = "line"
)

// ParseChartKind maps a user string to a ChartKind.
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "histogram", "hist":
		return Histogram, nil
	case "box", "boxplot", "box-plot":
		return Box, nil
	case "scatter":
		return Scatter, nil
	case "bar":
		return Bar, nil
	case "line":
		return Line, nil
	default:
		return "", &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown chart kind %q (histogram|box|scatter|bar|line)", s)}
	}
}

// Spec is a validated description of a single chart. Empty optional fields
// mean "not used". A Bar or Histogram spec without Y is a valid count-based
// aggregation, not an error.
type Spec struct {
	Kind  ChartKind
	X     string
	Y     string
	Color string
	Facet string
}

// ValidationError names the first constraint a field combination violated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid visualization: %s: %s", e.Field, e.Reason)
}

// BuildSpec validates the chosen fields against the Table in a fixed order;
// the first failure wins. "none" and "" both mean an optional field was left
// unset. Color and facet may be columns of any kind on purpose.
func BuildSpec(t *table.Table, kind ChartKind, x, y, color, facet string) (*Spec, error) {
	x = strings.TrimSpace(x)
	y = optional(y)
	color = optional(color)
	facet = optional(facet)

	if _, ok := t.Column(x); !ok {
		return nil, &ValidationError{Field: "x", Reason: fmt.Sprintf("column %q does not exist", x)}
	}
	if kind == Scatter || kind == Line {
		if y == "" {
			return nil, &ValidationError{Field: "y", Reason: fmt.Sprintf("%s charts require a y column", kind)}
		}
	}
	if y != "" {
		yc, ok := t.Column(y)
		if !ok {
			return nil, &ValidationError{Field: "y", Reason: fmt.Sprintf("column %q does not exist", y)}
		}
		if yc.Kind != table.Numeric {
			return nil, &ValidationError{Field: "y", Reason: fmt.Sprintf("column %q is not numeric", y)}
		}
	}
	if color != "" {
		if _, ok := t.Column(color); !ok {
			return nil, &ValidationError{Field: "color", Reason: fmt.Sprintf("column %q does not exist", color)}
		}
	}
	if facet != "" {
		if _, ok := t.Column(facet); !ok {
			return nil, &ValidationError{Field: "facet", Reason: fmt.Sprintf("column %q does not exist", facet)}
		}
	}
	return &Spec{Kind: kind, X: x, Y: y, Color: color, Facet: facet}, nil
}

func optional(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "none") {
		return ""
	}
	return v
}
