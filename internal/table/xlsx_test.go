package table

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

// buildXLSX assembles a minimal workbook ZIP from the given named XML parts.
func buildXLSX(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

const sheetWithSharedStrings = `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
<row r="2"><c r="A2" t="s"><v>2</v></c><c r="B2"><v>100.5</v></c></row>
<row r="3"><c r="A3" t="s"><v>3</v></c><c r="B3"><v>87.25</v></c></row>
</sheetData>
</worksheet>`

const sharedStringsXML = `<?xml version="1.0"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="4" uniqueCount="4">
<si><t>region</t></si><si><t>amount</t></si><si><t>North</t></si><si><t>South</t></si>
</sst>`

func TestParseXLSXResolvesFirstSheet(t *testing.T) {
	data := buildXLSX(t, map[string]string{
		"xl/workbook.xml": `<?xml version="1.0"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="Data" sheetId="1" r:id="rId1"/></sheets>
</workbook>`,
		"xl/_rels/workbook.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/data.xml"/>
</Relationships>`,
		"xl/worksheets/data.xml": sheetWithSharedStrings,
		"xl/sharedStrings.xml":   sharedStringsXML,
	})

	tbl, err := ParseXLSX("report.xlsx", data)
	if err != nil {
		t.Fatalf("ParseXLSX error: %v", err)
	}
	if tbl.Rows() != 2 || tbl.Cols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", tbl.Rows(), tbl.Cols())
	}
	region, ok := tbl.Column("region")
	if !ok || region.Kind != Categorical {
		t.Fatalf("region column missing or wrong kind: %+v", region)
	}
	if region.Values[0] != "North" || region.Values[1] != "South" {
		t.Fatalf("region values = %v", region.Values)
	}
	amount, ok := tbl.Column("amount")
	if !ok || amount.Kind != Numeric {
		t.Fatalf("amount column missing or wrong kind: %+v", amount)
	}
}

func TestParseXLSXFallsBackToSheet1(t *testing.T) {
	data := buildXLSX(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<?xml version="1.0"?>
<worksheet><sheetData>
<row r="1"><c r="A1" t="str"><v>name</v></c></row>
<row r="2"><c r="A2" t="str"><v>x</v></c></row>
</sheetData></worksheet>`,
	})
	tbl, err := ParseXLSX("bare.xlsx", data)
	if err != nil {
		t.Fatalf("ParseXLSX error: %v", err)
	}
	if tbl.Rows() != 1 || tbl.Cols() != 1 {
		t.Fatalf("got %dx%d, want 1x1", tbl.Rows(), tbl.Cols())
	}
}

func TestParseXLSXCellsWithoutRefs(t *testing.T) {
	// Streaming writers may omit the cell r attribute entirely; cells then
	// fill positions left to right.
	data := buildXLSX(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<?xml version="1.0"?>
<worksheet><sheetData>
<row><c t="str"><v>name</v></c><c t="str"><v>score</v></c></row>
<row><c t="str"><v>alice</v></c><c><v>7</v></c></row>
<row><c t="str"><v>bob</v></c><c><v>9</v></c></row>
</sheetData></worksheet>`,
	})
	tbl, err := ParseXLSX("noref.xlsx", data)
	if err != nil {
		t.Fatalf("ParseXLSX error: %v", err)
	}
	if tbl.Rows() != 2 || tbl.Cols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", tbl.Rows(), tbl.Cols())
	}
	name, ok := tbl.Column("name")
	if !ok || name.Values[0] != "alice" || name.Values[1] != "bob" {
		t.Fatalf("name column = %+v", name)
	}
	score, ok := tbl.Column("score")
	if !ok || score.Kind != Numeric || score.Values[1] != "9" {
		t.Fatalf("score column = %+v", score)
	}
}

func TestParseXLSXErrors(t *testing.T) {
	var perr *ParseError
	if _, err := ParseXLSX("junk.xlsx", []byte("not a zip")); !errors.As(err, &perr) {
		t.Fatalf("non-zip: got %T, want ParseError", err)
	}
	empty := buildXLSX(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<worksheet><sheetData></sheetData></worksheet>`,
	})
	if _, err := ParseXLSX("empty.xlsx", empty); !errors.As(err, &perr) {
		t.Fatalf("empty worksheet: got %T, want ParseError", err)
	}
}

func TestColIndexFromRef(t *testing.T) {
	cases := map[string]int{"A1": 0, "C12": 2, "Z3": 25, "AA1": 26}
	for ref, want := range cases {
		if got := colIndexFromRef(ref); got != want {
			t.Fatalf("colIndexFromRef(%q) = %d, want %d", ref, got, want)
		}
	}
}
