package model

import "time"

// RowResult records the outcome of one row parse inside a batch.
type RowResult struct {
	RowNo            int               `json:"rowNo"`
	SportName        string            `json:"sportName"`
	Status           string            `json:"status"` // parsed/error
	Payload          *CanonicalPayload `json:"payload,omitempty"`
	UnresolvedFields []string          `json:"unresolvedFields,omitempty"`
	Errors           []string          `json:"errors,omitempty"`
}

// ImportReport summarizes one workbook batch parse.
type ImportReport struct {
	BatchID    string        `json:"batchId"`
	Filename   string        `json:"filename"`
	SheetName  string        `json:"sheetName"`
	TotalRows  int           `json:"totalRows"`
	ParsedRows int           `json:"parsedRows"`
	ErrorRows  int           `json:"errorRows"`
	Duration   time.Duration `json:"duration"`
	Rows       []RowResult   `json:"rows"`
}
