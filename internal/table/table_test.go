package table

import (
	"errors"
	"reflect"
	"testing"
)

const salesCSV = `date,region,amount
2024-01-01,North,100.50
2024-01-02,South,
2024-01-03,North,87.25
2024-01-04,,210
`

func TestParseCSVScenario(t *testing.T) {
	tbl, err := ParseCSV("sales.csv", []byte(salesCSV))
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if tbl.Rows() != 4 || tbl.Cols() != 3 {
		t.Fatalf("got %dx%d, want 4x3", tbl.Rows(), tbl.Cols())
	}
	want := []string{"date", "region", "amount"}
	if !reflect.DeepEqual(tbl.ColumnNames(), want) {
		t.Fatalf("columns = %v, want %v", tbl.ColumnNames(), want)
	}

	date, _ := tbl.Column("date")
	region, _ := tbl.Column("region")
	amount, _ := tbl.Column("amount")
	if date.Kind != Other {
		t.Fatalf("date kind = %v, want Other (datetime)", date.Kind)
	}
	if region.Kind != Categorical {
		t.Fatalf("region kind = %v, want Categorical", region.Kind)
	}
	if amount.Kind != Numeric {
		t.Fatalf("amount kind = %v, want Numeric", amount.Kind)
	}
	if region.Nulls != 1 || amount.Nulls != 1 {
		t.Fatalf("nulls region=%d amount=%d, want 1 and 1", region.Nulls, amount.Nulls)
	}

	if got := tbl.NumericColumns(); !reflect.DeepEqual(got, []string{"amount"}) {
		t.Fatalf("NumericColumns = %v", got)
	}
	if got := tbl.CategoricalColumns(); !reflect.DeepEqual(got, []string{"region"}) {
		t.Fatalf("CategoricalColumns = %v", got)
	}
}

func TestParseCSVDuplicateHeaders(t *testing.T) {
	data := []byte("a,a,,a\n1,2,3,4\n")
	tbl, err := ParseCSV("dup.csv", data)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	want := []string{"a", "a_2", "unnamed", "a_3"}
	if !reflect.DeepEqual(tbl.ColumnNames(), want) {
		t.Fatalf("columns = %v, want %v", tbl.ColumnNames(), want)
	}
	for _, name := range want {
		if _, ok := tbl.Column(name); !ok {
			t.Fatalf("column %q not addressable", name)
		}
	}
}

func TestParseCSVShortRowsPadded(t *testing.T) {
	data := []byte("a,b,c\n1,2\n3\n")
	tbl, err := ParseCSV("short.csv", data)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Rows())
	}
	c, _ := tbl.Column("c")
	if len(c.Values) != 2 || c.Values[0] != "" || c.Values[1] != "" {
		t.Fatalf("padded column values = %v", c.Values)
	}
	if c.Nulls != 2 {
		t.Fatalf("padded column nulls = %d, want 2", c.Nulls)
	}
}

func TestParseCSVErrors(t *testing.T) {
	var perr *ParseError
	if _, err := ParseCSV("empty.csv", nil); !errors.As(err, &perr) {
		t.Fatalf("empty file: got %T, want ParseError", err)
	}
	malformed := []byte("a,b\n\"unterminated,1\n")
	if _, err := ParseCSV("bad.csv", malformed); !errors.As(err, &perr) {
		t.Fatalf("malformed file: got %T, want ParseError", err)
	}
}

func TestClassifyPredominance(t *testing.T) {
	cases := []struct {
		name   string
		values []string
		want   Kind
	}{
		{"mostly numeric", []string{"1", "2", "x", "4"}, Numeric},
		{"percent and commas", []string{"1,200", "35%", "9.5"}, Numeric},
		{"text", []string{"red", "blue", "red"}, Categorical},
		{"dates", []string{"2024-01-01", "2024-02-01"}, Other},
		{"all null", []string{"", "", ""}, Other},
		{"numeric ties text", []string{"1", "x"}, Numeric},
	}
	for _, tc := range cases {
		if got := classify(tc.values); got != tc.want {
			t.Fatalf("%s: classify = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestColumnFloat(t *testing.T) {
	c := Column{Values: []string{"1,500", "42%", "oops", ""}}
	if v, ok := c.Float(0); !ok || v != 1500 {
		t.Fatalf("Float(0) = %v %v", v, ok)
	}
	if v, ok := c.Float(1); !ok || v != 42 {
		t.Fatalf("Float(1) = %v %v", v, ok)
	}
	if _, ok := c.Float(2); ok {
		t.Fatal("Float(2) should fail")
	}
	if _, ok := c.Float(3); ok {
		t.Fatal("Float on null should fail")
	}
	if _, ok := c.Float(9); ok {
		t.Fatal("Float out of range should fail")
	}
}
