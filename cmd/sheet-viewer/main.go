package main

import (
	"log"
	"runtime"

	"sheet-viewer/internal/config"
	"sheet-viewer/internal/controllers"
	"sheet-viewer/internal/debug/filetracker"
	"sheet-viewer/internal/debug/timing"
	"sheet-viewer/internal/logger"
	"sheet-viewer/internal/models"
	"sheet-viewer/internal/services"
	"sheet-viewer/internal/shutdown"
	"sheet-viewer/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Sheet Viewer"
	AppID      = "com.sheetviewer.desktop"
	AppVersion = "1.0.0"
)

// Application owns the window and every long-lived component
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView

	files    *filetracker.Tracker
	timings  *timing.Tracker
	shutdown *shutdown.Manager
}

func main() {
	baseDir, err := config.ExecutableDir()
	if err != nil {
		log.Fatalf("Cannot locate executable: %v", err)
	}

	cfg, err := config.Load(config.SettingsPath(baseDir))
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	application, err := NewApplication(cfg, baseDir)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication wires config, logging, services, controller and view
func NewApplication(cfg config.Config, baseDir string) (*Application, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	appLogger := logger.New(level, logger.Format(cfg.LogFormat))

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	files := filetracker.NewTracker()
	timings := timing.NewTracker()

	scanner := services.NewFolderScanner(appLogger)
	renderer := services.NewSheetRenderer(appLogger, files, services.RenderOptions{
		SkipBlankRows: cfg.Table.SkipBlankRows,
	})
	session := models.NewSessionRepository()

	folder := config.DataFolder(baseDir)
	mainController := controllers.NewMainController(
		folder, scanner, renderer, session, timings, files, appLogger,
	)
	mainView := views.NewMainView(window, views.ViewOptions{
		MaxColumnWidth: cfg.Table.MaxColumnWidth,
		AutoSizeSample: cfg.Table.AutoSizeSample,
	})
	mainController.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		files:      files,
		timings:    timings,
		shutdown:   shutdownManager,
	}

	application.setupMenus()
	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"version":    AppVersion,
		"folder":     folder,
		"go_version": runtime.Version(),
		"log_level":  level.String(),
	})

	return application, nil
}

// Run scans the folder once the window is up and blocks until it closes
func (a *Application) Run() {
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.controller.Refresh()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.ShowAndRun()
	a.shutdown.Shutdown()
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.shutdown.Shutdown()
	})
}
