package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheet-viewer/internal/models"
)

// cellRange is a 1-based inclusive rectangle of sheet coordinates
type cellRange struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

func (r cellRange) Width() int {
	return r.LastCol - r.FirstCol + 1
}

// Ref formats the range in A1 notation
func (r cellRange) Ref() (string, error) {
	from, err := excelize.CoordinatesToCellName(r.FirstCol, r.FirstRow)
	if err != nil {
		return "", err
	}
	to, err := excelize.CoordinatesToCellName(r.LastCol, r.LastRow)
	if err != nil {
		return "", err
	}
	return from + ":" + to, nil
}

// usedRange returns the smallest rectangle covering every non-empty cell
func usedRange(rows [][]string) (cellRange, bool) {
	var bounds cellRange
	found := false

	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			sheetRow, sheetCol := r+1, c+1
			if !found {
				bounds = cellRange{FirstRow: sheetRow, LastRow: sheetRow, FirstCol: sheetCol, LastCol: sheetCol}
				found = true
				continue
			}
			bounds.FirstRow = min(bounds.FirstRow, sheetRow)
			bounds.LastRow = max(bounds.LastRow, sheetRow)
			bounds.FirstCol = min(bounds.FirstCol, sheetCol)
			bounds.LastCol = max(bounds.LastCol, sheetCol)
		}
	}

	return bounds, found
}

// cellAt returns the value at 1-based row, col; cells GetRows omitted are ""
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	cells := rows[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// HeaderLabel is the label of a column whose header cell is blank.
// col is the absolute sheet column, not the position inside the used range.
func HeaderLabel(col int) string {
	return fmt.Sprintf("Column %d", col)
}

func buildTable(rows [][]string, bounds cellRange, options RenderOptions) *models.Table {
	width := bounds.Width()

	columns := make([]string, 0, width)
	for col := bounds.FirstCol; col <= bounds.LastCol; col++ {
		header := strings.TrimSpace(cellAt(rows, bounds.FirstRow, col))
		if header == "" {
			header = HeaderLabel(col)
		}
		columns = append(columns, header)
	}

	data := make([][]string, 0, bounds.LastRow-bounds.FirstRow)
	for row := bounds.FirstRow + 1; row <= bounds.LastRow; row++ {
		cells := make([]string, width)
		blank := true
		for i := range cells {
			cells[i] = cellAt(rows, row, bounds.FirstCol+i)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank && options.SkipBlankRows {
			continue
		}
		data = append(data, cells)
	}

	return &models.Table{
		Columns: columns,
		Rows:    data,
	}
}
