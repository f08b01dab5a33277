package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/model"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/parser"
)

// Coordinator drives a whole-workbook batch parse: one sheet, one league row
// per data row, each handed to the row orchestrator independently.
type Coordinator struct{}

// NewCoordinator creates the batch driver.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ImportOptions selects what to read from the workbook.
type ImportOptions struct {
	FilePath   string
	SheetName  string // empty = first sheet
	HeaderRows int    // leading rows to skip
}

// ProgressEvent reports batch progress on the channel returned by Import.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/row_done/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import opens the workbook and parses it in the background, streaming
// progress events. The final "done" event carries the ImportReport.
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progress := make(chan ProgressEvent, 100)

	go func() {
		defer close(progress)
		c.doImport(opts, progress)
	}()

	return progress
}

// ImportSync runs the batch to completion and returns the report directly.
func (c *Coordinator) ImportSync(opts ImportOptions) (*model.ImportReport, error) {
	var report *model.ImportReport
	var failure string
	for ev := range c.Import(opts) {
		switch ev.Type {
		case "done":
			if r, ok := ev.Data.(*model.ImportReport); ok {
				report = r
			}
		case "error":
			failure = ev.Message
		}
	}
	if report == nil {
		return nil, fmt.Errorf("import failed: %s", failure)
	}
	return report, nil
}

func (c *Coordinator) doImport(opts ImportOptions, progress chan ProgressEvent) {
	start := time.Now()
	send(progress, "start", fmt.Sprintf("parsing %s", filepath.Base(opts.FilePath)), nil)

	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		send(progress, "error", fmt.Sprintf("open workbook: %v", err), nil)
		return
	}
	defer file.Close()

	report, err := c.parseWorkbook(file, opts)
	if err != nil {
		send(progress, "error", err.Error(), nil)
		return
	}
	report.Filename = filepath.Base(opts.FilePath)
	report.Duration = time.Since(start)

	send(progress, "done", fmt.Sprintf("parsed %d/%d rows", report.ParsedRows, report.TotalRows), report)
}

// ParseReader parses a workbook from a stream (upload path).
func (c *Coordinator) ParseReader(r io.Reader, filename string, opts ImportOptions) (*model.ImportReport, error) {
	start := time.Now()
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	report, err := c.parseWorkbook(file, opts)
	if err != nil {
		return nil, err
	}
	report.Filename = filename
	report.Duration = time.Since(start)
	return report, nil
}

// parseWorkbook reads the target sheet row by row. A row failure is recorded
// in the report, never aborts the batch.
func (c *Coordinator) parseWorkbook(file *excelize.File, opts ImportOptions) (*model.ImportReport, error) {
	sheet := opts.SheetName
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	report := &model.ImportReport{
		BatchID:   uuid.New().String(),
		SheetName: sheet,
	}

	now := time.Now()
	for i := opts.HeaderRows; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		report.TotalRows++
		result := parseSheetRow(rows[i], i+1, now)
		if result.Status == "parsed" {
			report.ParsedRows++
		} else {
			report.ErrorRows++
		}
		report.Rows = append(report.Rows, result)
	}

	return report, nil
}

// parseSheetRow maps positional cells to the column contract and runs the
// orchestrator.
func parseSheetRow(cells []string, rowNo int, now time.Time) model.RowResult {
	input := model.RowInput{}
	for _, col := range model.RequiredColumns {
		input[col] = cellAt(cells, col)
	}
	sport := input[model.ColSportName]

	result := model.RowResult{RowNo: rowNo, SportName: sport}
	parsed, err := parser.ParseRowAt(input, sport, now)
	if err != nil {
		result.Status = "error"
		result.Errors = []string{err.Error()}
		return result
	}

	result.Status = "parsed"
	result.Payload = &parsed.Payload
	result.UnresolvedFields = parsed.UnresolvedFields
	return result
}

// cellAt fetches a cell by column letter; short rows read as empty cells.
func cellAt(cells []string, col string) string {
	n, err := excelize.ColumnNameToNumber(col)
	if err != nil || n < 1 || n > len(cells) {
		return ""
	}
	return cells[n-1]
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

func send(ch chan ProgressEvent, typ, msg string, data interface{}) {
	ch <- ProgressEvent{Type: typ, Message: msg, Data: data, Timestamp: time.Now()}
}
