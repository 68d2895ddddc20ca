package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sheet-viewer/internal/models"
)

const minColumnWidth = 48

// SheetTable displays a models.Table with a bold header row and columns
// sized to their content
type SheetTable struct {
	table *widget.Table
	data  *models.Table

	maxColumnWidth float32
	autoSizeSample int
}

func NewSheetTable(maxColumnWidth float32, autoSizeSample int) *SheetTable {
	st := &SheetTable{
		maxColumnWidth: maxColumnWidth,
		autoSizeSample: autoSizeSample,
	}
	st.createComponents()
	return st
}

func (st *SheetTable) createComponents() {
	st.table = widget.NewTable(
		func() (int, int) {
			if st.data == nil {
				return 0, 0
			}
			return st.data.RowCount(), st.data.ColumnCount()
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if st.data == nil {
				label.SetText("")
				return
			}
			label.SetText(st.data.Cell(id.Row, id.Col))
		},
	)

	st.table.ShowHeaderRow = true
	st.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Truncation = fyne.TextTruncateEllipsis
		return label
	}
	st.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if st.data == nil || id.Col < 0 || id.Col >= st.data.ColumnCount() {
			label.SetText("")
			return
		}
		label.SetText(st.data.Columns[id.Col])
	}
}

// SetTable shows table, replacing whatever was displayed
func (st *SheetTable) SetTable(table *models.Table) {
	st.data = table
	st.autoSizeColumns()
	st.table.Refresh()
	st.table.ScrollToTop()
}

// Clear empties the grid
func (st *SheetTable) Clear() {
	st.data = nil
	st.table.Refresh()
}

func (st *SheetTable) Table() *models.Table {
	return st.data
}

// ColumnWidth returns the width computed for column col of the current table
func (st *SheetTable) ColumnWidth(col int) float32 {
	if st.data == nil || col < 0 || col >= st.data.ColumnCount() {
		return 0
	}
	return st.columnWidth(col)
}

func (st *SheetTable) autoSizeColumns() {
	if st.data == nil {
		return
	}
	for col := 0; col < st.data.ColumnCount(); col++ {
		st.table.SetColumnWidth(col, st.columnWidth(col))
	}
}

// columnWidth measures the header and the first autoSizeSample rows
func (st *SheetTable) columnWidth(col int) float32 {
	size := theme.TextSize()
	width := fyne.MeasureText(st.data.Columns[col], size, fyne.TextStyle{Bold: true}).Width

	rows := min(st.data.RowCount(), st.autoSizeSample)
	for row := 0; row < rows; row++ {
		width = max(width, fyne.MeasureText(st.data.Cell(row, col), size, fyne.TextStyle{}).Width)
	}

	width += 2 * theme.InnerPadding()
	return min(max(width, minColumnWidth), st.maxColumnWidth)
}

func (st *SheetTable) GetContainer() fyne.CanvasObject {
	return st.table
}
