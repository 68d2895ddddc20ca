package views

import (
	"errors"
	"fmt"

	"sheet-viewer/internal/models"
	"sheet-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const fileListOffset = 0.28

// ViewOptions sizes the sheet grid
type ViewOptions struct {
	MaxColumnWidth float32
	AutoSizeSample int
}

// MainView is the application window content: file list on the left,
// sheet grid in the center, toolbar on top and status bar below.
// All methods must be called on the fyne event goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	fileList      *components.FileList
	sheetTable    *components.SheetTable
	statusBar     *components.StatusBar

	refreshHandler func()
	openHandler    func(entry *models.FileEntry)

	lastNotice *models.Notice
}

func NewMainView(window fyne.Window, options ViewOptions) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(options)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(options ViewOptions) {
	mv.toolbar = components.NewToolbar()
	mv.fileList = components.NewFileList()
	mv.sheetTable = components.NewSheetTable(options.MaxColumnWidth, options.AutoSizeSample)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	split := container.NewHSplit(
		mv.fileList.GetContainer(),
		mv.sheetTable.GetContainer(),
	)
	split.SetOffset(fileListOffset)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		split,
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetRefreshHandler(func() {
		if mv.refreshHandler != nil {
			mv.refreshHandler()
		}
	})

	mv.toolbar.SetReadHandler(func() {
		if mv.openHandler != nil {
			mv.openHandler(mv.fileList.Selected())
		}
	})

	mv.fileList.SetOpenHandler(func(entry *models.FileEntry) {
		if mv.openHandler != nil && !mv.toolbar.IsBusy() {
			mv.openHandler(entry)
		}
	})
}

// SetRefreshHandler sets the handler for rescan requests
func (mv *MainView) SetRefreshHandler(handler func()) {
	mv.refreshHandler = handler
}

// SetOpenHandler sets the handler for read requests. The handler receives
// nil when nothing is selected.
func (mv *MainView) SetOpenHandler(handler func(entry *models.FileEntry)) {
	mv.openHandler = handler
}

func (mv *MainView) SetFiles(entries []models.FileEntry) {
	mv.fileList.SetEntries(entries)
}

func (mv *MainView) ClearTable() {
	mv.sheetTable.Clear()
	mv.statusBar.SetTableInfo(nil)
}

func (mv *MainView) ShowTable(table *models.Table) {
	mv.sheetTable.SetTable(table)
	mv.statusBar.SetTableInfo(table)
}

func (mv *MainView) SetBusy(busy bool) {
	mv.toolbar.SetBusy(busy)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowNotice opens a modal dialog matching the notice level
func (mv *MainView) ShowNotice(notice models.Notice) {
	mv.lastNotice = &notice

	switch notice.Level {
	case models.NoticeError:
		dialog.ShowError(errors.New(notice.Message), mv.window)
	default:
		dialog.ShowInformation(notice.Title, notice.Message, mv.window)
	}
}

func (mv *MainView) ShowAboutDialog(name, version, folder string) {
	content := container.NewVBox(
		widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel(fmt.Sprintf("Version %s", version)),
		widget.NewLabel("Lists the .xlsx files of the Excel folder and shows the first worksheet of the selected file."),
		widget.NewLabel(fmt.Sprintf("Folder: %s", folder)),
	)
	dialog.ShowCustom("About", "Close", content, mv.window)
}

// ViewState is a snapshot of what the window currently shows
type ViewState struct {
	Files      int
	Selected   *models.FileEntry
	Table      *models.Table
	Busy       bool
	Status     string
	TableInfo  string
	LastNotice *models.Notice
}

func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		Files:      mv.fileList.Count(),
		Selected:   mv.fileList.Selected(),
		Table:      mv.sheetTable.Table(),
		Busy:       mv.toolbar.IsBusy(),
		Status:     mv.statusBar.GetStatus(),
		TableInfo:  mv.statusBar.GetTableInfo(),
		LastNotice: mv.lastNotice,
	}
}

// SelectFile selects the entry at index as if clicked
func (mv *MainView) SelectFile(index int) {
	mv.fileList.Select(index)
}

// Read triggers the toolbar read action
func (mv *MainView) Read() {
	if mv.openHandler != nil {
		mv.openHandler(mv.fileList.Selected())
	}
}

func (mv *MainView) Refresh() {
	if mv.refreshHandler != nil {
		mv.refreshHandler()
	}
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
