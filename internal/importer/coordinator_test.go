package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a one-sheet workbook with a header row and the given
// data rows into memory.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestParseReader_Basic(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Sport", "Details", "Notes", "Location", "Start", "End", "Times", "Price", "Inventory", "", "", "", "Early", "Vet", "Open"},
		{
			"Kickball",
			"TUESDAY\nOpen",
			"Skipping 11/27",
			"Dewitt Clinton Park",
			"10/15/25",
			"12/10/25",
			"8:00 PM - 11:00 PM",
			"$45",
			"120",
			"", "", "",
			"Registration opens 10/1/25 at 6pm",
			"Veteran registration 9/29/25 at 6pm\n25 vet spots",
			"Registration 10/3/25 at 6pm",
		},
	}

	c := NewCoordinator()
	report, err := c.ParseReader(buildWorkbook(t, rows), "leagues.xlsx", ImportOptions{HeaderRows: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.BatchID == "" {
		t.Fatalf("expected a batch id")
	}
	if report.TotalRows != 1 || report.ParsedRows != 1 || report.ErrorRows != 0 {
		t.Fatalf("counts: %+v", report)
	}

	row := report.Rows[0]
	if row.Status != "parsed" || row.RowNo != 2 || row.SportName != "Kickball" {
		t.Fatalf("row: %+v", row)
	}
	if row.Payload == nil || row.Payload.Season != "Fall" || row.Payload.InventoryInfo.Price != 45 {
		t.Fatalf("payload: %+v", row.Payload)
	}
	if len(row.UnresolvedFields) == 0 {
		t.Fatalf("a sparse row should report unresolved fields")
	}
}

func TestParseReader_ShortAndBlankRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Sport"},
		{"Bowling", "Monday"},
		{},
	}

	c := NewCoordinator()
	report, err := c.ParseReader(buildWorkbook(t, rows), "leagues.xlsx", ImportOptions{HeaderRows: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Short rows still parse: missing trailing cells read as empty strings,
	// which is the normal unresolved path, not a structural error.
	if report.TotalRows != 1 || report.ParsedRows != 1 {
		t.Fatalf("counts: %+v", report)
	}
	if report.Rows[0].Payload.DayOfPlay != "Monday" {
		t.Fatalf("day: %q", report.Rows[0].Payload.DayOfPlay)
	}
}

func TestImportSync_FromFile(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Sport"},
		{"Kickball", "Sunday\nWTNB+", "", "McCarren", "3/1/26", "5/20/26"},
	}
	path := filepath.Join(t.TempDir(), "leagues.xlsx")
	if err := os.WriteFile(path, buildWorkbook(t, rows).Bytes(), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	c := NewCoordinator()
	report, err := c.ImportSync(ImportOptions{FilePath: path, HeaderRows: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ParsedRows != 1 {
		t.Fatalf("counts: %+v", report)
	}
	p := report.Rows[0].Payload
	if p.Division != "WTNB+" || p.Season != "Spring" || p.Year != 2026 {
		t.Fatalf("payload: %+v", p)
	}
	if report.Duration <= 0 {
		t.Fatalf("duration should be recorded")
	}
}

func TestImportSync_MissingFile(t *testing.T) {
	t.Parallel()

	c := NewCoordinator()
	if _, err := c.ImportSync(ImportOptions{FilePath: "/does/not/exist.xlsx"}); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestParseReader_BadStream(t *testing.T) {
	t.Parallel()

	c := NewCoordinator()
	if _, err := c.ParseReader(bytes.NewBufferString("not a workbook"), "x.xlsx", ImportOptions{}); err == nil {
		t.Fatalf("expected an error for a non-xlsx stream")
	}
}
