package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet-viewer/internal/models"
)

func sampleEntries() []models.FileEntry {
	return []models.FileEntry{
		{DisplayName: "a.xlsx", FullPath: "/data/Excel/a.xlsx"},
		{DisplayName: "b.xlsx", FullPath: "/data/Excel/b.xlsx"},
	}
}

func TestFileListSelection(t *testing.T) {
	test.NewTempApp(t)

	fl := NewFileList()
	fl.SetEntries(sampleEntries())
	assert.Equal(t, 2, fl.Count())
	assert.Nil(t, fl.Selected())

	fl.Select(1)
	require.NotNil(t, fl.Selected())
	assert.Equal(t, "/data/Excel/b.xlsx", fl.Selected().FullPath)

	fl.SetEntries(sampleEntries()[:1])
	assert.Nil(t, fl.Selected(), "a new list drops the old selection")
}

func TestFileListItemTapSelects(t *testing.T) {
	test.NewTempApp(t)

	fl := NewFileList()
	fl.SetEntries(sampleEntries())

	item := newFileListItem(fl)
	item.id = 0
	test.Tap(item)

	require.NotNil(t, fl.Selected())
	assert.Equal(t, "a.xlsx", fl.Selected().DisplayName)
}

func TestFileListItemDoubleTapOpens(t *testing.T) {
	test.NewTempApp(t)

	fl := NewFileList()
	fl.SetEntries(sampleEntries())

	var opened *models.FileEntry
	fl.SetOpenHandler(func(entry *models.FileEntry) {
		opened = entry
	})

	item := newFileListItem(fl)
	item.id = 1
	test.DoubleTap(item)

	require.NotNil(t, opened)
	assert.Equal(t, "b.xlsx", opened.DisplayName)
	assert.Equal(t, "b.xlsx", fl.Selected().DisplayName)
}

func TestFileListItemWithoutRowIgnoresTaps(t *testing.T) {
	test.NewTempApp(t)

	fl := NewFileList()
	fl.SetEntries(sampleEntries())
	called := false
	fl.SetOpenHandler(func(*models.FileEntry) { called = true })

	item := newFileListItem(fl)
	test.DoubleTap(item)

	assert.False(t, called)
	assert.Nil(t, fl.Selected())
}

func TestSheetTableSetAndClear(t *testing.T) {
	test.NewTempApp(t)

	st := NewSheetTable(200, 10)
	table := &models.Table{
		Columns: []string{"Name", "Column 2"},
		Rows:    [][]string{{"alpha", ""}, {"a much longer value than the header", "x"}},
	}

	st.SetTable(table)
	assert.Same(t, table, st.Table())

	st.Clear()
	assert.Nil(t, st.Table())
	assert.Zero(t, st.ColumnWidth(0))
}

func TestSheetTableColumnWidthBounds(t *testing.T) {
	test.NewTempApp(t)

	st := NewSheetTable(120, 10)
	st.SetTable(&models.Table{
		Columns: []string{"A", "Description"},
		Rows:    [][]string{{"", "a value far too wide to fit inside the configured maximum width"}},
	})

	assert.GreaterOrEqual(t, st.ColumnWidth(0), float32(minColumnWidth))
	assert.Equal(t, float32(120), st.ColumnWidth(1))
	assert.Zero(t, st.ColumnWidth(5))
}

func TestSheetTableSampleLimitsMeasuredRows(t *testing.T) {
	test.NewTempApp(t)

	wide := "this cell is only reached when every row is sampled"
	table := &models.Table{
		Columns: []string{"H"},
		Rows:    [][]string{{"x"}, {wide}},
	}

	sampled := NewSheetTable(1000, 1)
	sampled.SetTable(table)
	full := NewSheetTable(1000, 2)
	full.SetTable(table)

	assert.Less(t, sampled.ColumnWidth(0), full.ColumnWidth(0))
}

func TestToolbarBusyDisablesActions(t *testing.T) {
	test.NewTempApp(t)

	tb := NewToolbar()
	refreshed, read := 0, 0
	tb.SetRefreshHandler(func() { refreshed++ })
	tb.SetReadHandler(func() { read++ })

	test.Tap(tb.refreshButton)
	test.Tap(tb.readButton)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1, read)

	tb.SetBusy(true)
	assert.True(t, tb.IsBusy())
	assert.True(t, tb.refreshButton.Disabled())
	assert.True(t, tb.readButton.Disabled())

	test.Tap(tb.readButton)
	assert.Equal(t, 1, read)

	tb.SetBusy(false)
	assert.False(t, tb.readButton.Disabled())
}

func TestStatusBarTableInfo(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Loading a.xlsx...")
	sb.SetTableInfo(&models.Table{
		Columns: []string{"A", "B", "C"},
		Rows:    [][]string{{"1", "2", "3"}},
		Sheet:   "Sheet1",
		Range:   "A1:C2",
	})
	assert.Equal(t, "Loading a.xlsx...", sb.GetStatus())
	assert.Equal(t, "Sheet1!A1:C2  |  1 rows x 3 columns", sb.GetTableInfo())

	sb.SetTableInfo(nil)
	assert.Equal(t, "No file loaded", sb.GetTableInfo())
}
