package main

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh", func() {
			a.controller.Refresh()
		}),
		fyne.NewMenuItem("Open Excel folder", func() {
			a.openFolder()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)

	recordItem := fyne.NewMenuItem("Record diagnostics", nil)
	recordItem.Checked = a.controller.DiagnosticsEnabled()
	recordItem.Action = func() {
		a.controller.SetDiagnostics(!a.controller.DiagnosticsEnabled())
		recordItem.Checked = a.controller.DiagnosticsEnabled()
		a.window.MainMenu().Refresh()
	}

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Diagnostics", func() {
			dialog.ShowInformation("Diagnostics", a.controller.DiagnosticsReport(), a.window)
		}),
		fyne.NewMenuItem("Reset timings", func() {
			a.controller.ResetDiagnostics()
		}),
		fyne.NewMenuItemSeparator(),
		recordItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion, a.controller.Folder())
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, debugMenu, helpMenu))
}

// openFolder shows the Excel folder in the system file manager
func (a *Application) openFolder() {
	folderURL, err := url.Parse(storage.NewFileURI(a.controller.Folder()).String())
	if err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"folder": a.controller.Folder(),
		})
		return
	}

	if err := a.fyneApp.OpenURL(folderURL); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"url": folderURL.String(),
		})
		dialog.ShowError(err, a.window)
	}
}
