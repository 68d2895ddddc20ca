package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sheet-viewer/internal/models"
)

// StatusBar displays the last action and a summary of the shown table
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	tableInfo   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.tableInfo = widget.NewLabel("No file loaded")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.tableInfo,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetTableInfo summarises table; nil resets the summary
func (sb *StatusBar) SetTableInfo(table *models.Table) {
	if table == nil {
		sb.tableInfo.SetText("No file loaded")
		return
	}
	sb.tableInfo.SetText(fmt.Sprintf("%s!%s  |  %d rows x %d columns",
		table.Sheet, table.Range, table.RowCount(), table.ColumnCount()))
}

func (sb *StatusBar) GetTableInfo() string {
	return sb.tableInfo.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
