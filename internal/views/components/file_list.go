package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"sheet-viewer/internal/models"
)

// FileList shows the workbooks of the last scan with single selection.
// Double-clicking an entry opens it.
type FileList struct {
	card     *widget.Card
	list     *widget.List
	entries  []models.FileEntry
	selected widget.ListItemID

	openHandler func(entry *models.FileEntry)
}

func NewFileList() *FileList {
	fl := &FileList{selected: -1}
	fl.createComponents()
	return fl
}

func (fl *FileList) createComponents() {
	fl.list = widget.NewList(
		func() int {
			return len(fl.entries)
		},
		func() fyne.CanvasObject {
			return newFileListItem(fl)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			item := obj.(*fileListItem)
			item.id = id
			if id < len(fl.entries) {
				item.SetText(fl.entries[id].DisplayName)
			}
		},
	)

	fl.list.OnSelected = func(id widget.ListItemID) {
		fl.selected = id
	}
	fl.list.OnUnselected = func(id widget.ListItemID) {
		if fl.selected == id {
			fl.selected = -1
		}
	}

	fl.card = widget.NewCard("", "Excel files", fl.list)
}

// SetEntries replaces the list contents and drops the selection
func (fl *FileList) SetEntries(entries []models.FileEntry) {
	fl.entries = make([]models.FileEntry, len(entries))
	copy(fl.entries, entries)
	fl.list.UnselectAll()
	fl.selected = -1
	fl.list.Refresh()
}

// Selected returns the selected entry or nil
func (fl *FileList) Selected() *models.FileEntry {
	if fl.selected < 0 || fl.selected >= len(fl.entries) {
		return nil
	}
	entry := fl.entries[fl.selected]
	return &entry
}

func (fl *FileList) Select(id widget.ListItemID) {
	fl.list.Select(id)
}

func (fl *FileList) Count() int {
	return len(fl.entries)
}

func (fl *FileList) SetOpenHandler(handler func(entry *models.FileEntry)) {
	fl.openHandler = handler
}

func (fl *FileList) open(id widget.ListItemID) {
	fl.list.Select(id)
	if fl.openHandler != nil {
		fl.openHandler(fl.Selected())
	}
}

func (fl *FileList) GetContainer() fyne.CanvasObject {
	return fl.card
}

// fileListItem is a label that forwards taps to the list and opens on double tap
type fileListItem struct {
	widget.Label
	owner *FileList
	id    widget.ListItemID
}

func newFileListItem(owner *FileList) *fileListItem {
	item := &fileListItem{owner: owner, id: -1}
	item.Truncation = fyne.TextTruncateEllipsis
	item.ExtendBaseWidget(item)
	return item
}

func (i *fileListItem) Tapped(_ *fyne.PointEvent) {
	if i.id >= 0 {
		i.owner.Select(i.id)
	}
}

func (i *fileListItem) DoubleTapped(_ *fyne.PointEvent) {
	if i.id >= 0 {
		i.owner.open(i.id)
	}
}
