package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the refresh and read actions
type Toolbar struct {
	container     *fyne.Container
	refreshButton *widget.Button
	readButton    *widget.Button

	refreshHandler func()
	readHandler    func()

	busy bool
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents() {
	t.refreshButton = widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		if t.refreshHandler != nil {
			t.refreshHandler()
		}
	})

	t.readButton = widget.NewButtonWithIcon("Read file", theme.DocumentIcon(), func() {
		if t.readHandler != nil {
			t.readHandler()
		}
	})
	t.readButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.refreshButton,
		widget.NewSeparator(),
		t.readButton,
	)
}

func (t *Toolbar) SetRefreshHandler(handler func()) {
	t.refreshHandler = handler
}

func (t *Toolbar) SetReadHandler(handler func()) {
	t.readHandler = handler
}

// SetBusy disables every action while a file is being read
func (t *Toolbar) SetBusy(busy bool) {
	t.busy = busy
	if busy {
		t.refreshButton.Disable()
		t.readButton.Disable()
	} else {
		t.refreshButton.Enable()
		t.readButton.Enable()
	}
}

func (t *Toolbar) IsBusy() bool {
	return t.busy
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
