package models

import (
	"fmt"
)

// Table is the rectangular text rendering of a worksheet's used range.
// Columns is never empty and every row holds exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string

	Sheet  string
	Range  string
	Source string
}

func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the text at row, col or "" outside the table
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Rectangular reports whether every row matches the header width
func (t *Table) Rectangular() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return false
		}
	}
	return true
}

// RenderOutcome classifies a render that did not fail
type RenderOutcome int

const (
	// RenderUnknown is the zero value and never a valid result
	RenderUnknown RenderOutcome = iota
	RenderRendered
	// RenderNoData means the first sheet has no non-empty cell
	RenderNoData
	// RenderFileMissing means the path vanished since the last scan
	RenderFileMissing
)

func (o RenderOutcome) String() string {
	switch o {
	case RenderUnknown:
		return "unknown"
	case RenderRendered:
		return "rendered"
	case RenderNoData:
		return "no_data"
	case RenderFileMissing:
		return "file_missing"
	default:
		return fmt.Sprintf("RenderOutcome(%d)", int(o))
	}
}

// RenderResult contains the output of a render; Table is set only for RenderRendered
type RenderResult struct {
	Path    string
	Outcome RenderOutcome
	Table   *Table
}

// RenderError reports a workbook that could not be opened or parsed
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
