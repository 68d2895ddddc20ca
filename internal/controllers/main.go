package controllers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sheet-viewer/internal/debug/filetracker"
	"sheet-viewer/internal/debug/timing"
	"sheet-viewer/internal/logger"
	"sheet-viewer/internal/models"
)

const (
	operationScan   = "scan"
	operationRender = "render"

	leakThreshold = time.Minute
)

// Scanner lists the workbooks of a folder
type Scanner interface {
	Scan(folder string) (models.ScanResult, error)
}

// Renderer reads one workbook into a table
type Renderer interface {
	Render(path string) (models.RenderResult, error)
}

// View is the presentation surface driven by the controller
type View interface {
	SetFiles(entries []models.FileEntry)
	ClearTable()
	ShowTable(table *models.Table)
	SetBusy(busy bool)
	UpdateStatus(status string)
	ShowNotice(notice models.Notice)
	SetRefreshHandler(handler func())
	SetOpenHandler(handler func(entry *models.FileEntry))
}

// MainController mediates between the folder/sheet services and the window.
// Every call runs to completion on the caller's goroutine.
type MainController struct {
	scanner  Scanner
	renderer Renderer
	session  *models.SessionRepository
	timings  *timing.Tracker
	files    *filetracker.Tracker
	logger   logger.Logger

	folder   string
	mainView View
}

func NewMainController(
	folder string,
	scanner Scanner,
	renderer Renderer,
	session *models.SessionRepository,
	timings *timing.Tracker,
	files *filetracker.Tracker,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if timings == nil {
		timings = timing.NewTracker()
	}
	return &MainController{
		scanner:  scanner,
		renderer: renderer,
		session:  session,
		timings:  timings,
		files:    files,
		logger:   log,
		folder:   folder,
	}
}

// SetMainView associates the view and connects its events to the controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetRefreshHandler(mc.Refresh)
	view.SetOpenHandler(mc.Open)
}

func (mc *MainController) Folder() string {
	return mc.folder
}

// Refresh rescans the folder and repopulates the file list
func (mc *MainController) Refresh() {
	opID := uuid.NewString()
	ctx := mc.timings.StartTiming(operationScan)

	mc.session.ClearEntries()
	mc.mainView.SetFiles(nil)

	result, err := mc.scanner.Scan(mc.folder)
	elapsed := mc.timings.EndTiming(ctx)
	if err == nil {
		err = checkScan(mc.folder, result)
	}

	fields := map[string]interface{}{
		"op_id":      opID,
		"folder":     mc.folder,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	if err != nil {
		mc.logger.Error("MainController", err, fields)
		mc.mainView.UpdateStatus("Could not list the Excel folder")
		mc.mainView.ShowNotice(scanFailedNotice(err))
		return
	}

	mc.session.SetScan(result)
	fields["outcome"] = result.Outcome.String()
	fields["count"] = len(result.Entries)
	mc.logger.Info("MainController", "folder scanned", fields)

	switch result.Outcome {
	case models.ScanFolderCreated:
		mc.mainView.UpdateStatus("Folder created")
		mc.mainView.ShowNotice(folderCreatedNotice(result.Folder))
	case models.ScanNoFiles:
		mc.mainView.UpdateStatus("No Excel files found")
		mc.mainView.ShowNotice(noFilesNotice(result.Folder))
	case models.ScanListed:
		mc.mainView.SetFiles(result.Entries)
		mc.mainView.UpdateStatus(fmt.Sprintf("%d file(s) in %s", len(result.Entries), result.Folder))
	}
}

// Open renders the selected workbook. The table is cleared before the read
// and only replaced when the read succeeds.
func (mc *MainController) Open(entry *models.FileEntry) {
	if entry == nil {
		mc.mainView.ShowNotice(noSelectionNotice())
		return
	}

	opID := uuid.NewString()
	mc.mainView.SetBusy(true)
	defer mc.mainView.SetBusy(false)

	mc.session.BeginLoading()
	mc.mainView.ClearTable()
	mc.mainView.UpdateStatus(fmt.Sprintf("Loading %s...", entry.DisplayName))

	ctx := mc.timings.StartTiming(operationRender)
	result, err := mc.renderer.Render(entry.FullPath)
	elapsed := mc.timings.EndTiming(ctx)
	if err == nil {
		err = checkRender(entry.FullPath, result)
	}

	fields := map[string]interface{}{
		"op_id":      opID,
		"path":       entry.FullPath,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	if err != nil {
		mc.session.Finish(models.StateFailed, nil)
		mc.logger.Error("MainController", err, fields)
		mc.mainView.UpdateStatus(fmt.Sprintf("Could not read %s", entry.DisplayName))
		mc.mainView.ShowNotice(readFailedNotice(err))
		return
	}

	fields["outcome"] = result.Outcome.String()

	switch result.Outcome {
	case models.RenderFileMissing:
		mc.session.Finish(models.StateFailed, nil)
		mc.logger.Warning("MainController", "selected file vanished", fields)
		mc.mainView.ShowNotice(fileMissingNotice())
		mc.Refresh()
	case models.RenderNoData:
		mc.session.Finish(models.StateEmpty, nil)
		mc.logger.Info("MainController", "sheet is empty", fields)
		mc.mainView.UpdateStatus(fmt.Sprintf("%s has no data", entry.DisplayName))
		mc.mainView.ShowNotice(noDataNotice())
	case models.RenderRendered:
		table := result.Table
		mc.session.Finish(models.StateRendered, table)
		fields["rows"] = table.RowCount()
		fields["columns"] = table.ColumnCount()
		mc.logger.Info("MainController", "sheet rendered", fields)
		mc.mainView.ShowTable(table)
		mc.mainView.UpdateStatus(fmt.Sprintf("%s loaded in %d ms", entry.DisplayName, elapsed.Milliseconds()))
	}
}

func checkScan(folder string, result models.ScanResult) error {
	switch result.Outcome {
	case models.ScanListed, models.ScanFolderCreated, models.ScanNoFiles:
		return nil
	default:
		return &models.ScanError{Folder: folder, Err: fmt.Errorf("scanner reported outcome %s", result.Outcome)}
	}
}

// checkRender rejects results a renderer must never produce: an unknown
// outcome, or a rendered outcome without a table
func checkRender(path string, result models.RenderResult) error {
	switch result.Outcome {
	case models.RenderNoData, models.RenderFileMissing:
		return nil
	case models.RenderRendered:
		if result.Table == nil {
			return &models.RenderError{Path: path, Err: errors.New("renderer returned no table")}
		}
		return nil
	default:
		return &models.RenderError{Path: path, Err: fmt.Errorf("renderer reported outcome %s", result.Outcome)}
	}
}

// State returns where the table view is in its per-selection lifecycle
func (mc *MainController) State() models.ViewState {
	return mc.session.State()
}

// Shutdown reports workbook handles still open and the average timings
func (mc *MainController) Shutdown() {
	if mc.files != nil {
		for _, leak := range mc.files.DetectLeaks(leakThreshold) {
			mc.logger.Warning("MainController", "workbook handle still open", map[string]interface{}{
				"path":      leak.Path,
				"opened_at": leak.OpenedAt,
			})
		}
	}

	mc.logger.Info("MainController", "session finished", map[string]interface{}{
		"scans":         len(mc.timings.GetTimings(operationScan)),
		"renders":       len(mc.timings.GetTimings(operationRender)),
		"avg_scan_ms":   mc.timings.GetAverageTime(operationScan).Milliseconds(),
		"avg_render_ms": mc.timings.GetAverageTime(operationRender).Milliseconds(),
	})
}

// DiagnosticsReport summarises timings per operation and workbook handle usage
func (mc *MainController) DiagnosticsReport() string {
	var b strings.Builder

	all := mc.timings.GetAllTimings()
	operations := make([]string, 0, len(all))
	for op := range all {
		operations = append(operations, op)
	}
	sort.Strings(operations)

	fmt.Fprintf(&b, "Folder: %s\n", mc.folder)
	fmt.Fprintf(&b, "State: %s\n", mc.session.State())
	if !mc.DiagnosticsEnabled() {
		b.WriteString("Recording: off\n")
	}
	if last := mc.session.LastScan(); !last.IsZero() {
		fmt.Fprintf(&b, "Last scan: %s\n", last.Format("15:04:05"))
	}

	b.WriteString("\nTimings:\n")
	if len(operations) == 0 {
		b.WriteString("  none\n")
	}
	for _, op := range operations {
		fmt.Fprintf(&b, "  %s: %d run(s), avg %d ms\n",
			op, len(all[op]), mc.timings.GetAverageTime(op).Milliseconds())
	}

	if mc.files != nil {
		opened, closed := mc.files.Counts()
		fmt.Fprintf(&b, "\nWorkbooks: %d opened, %d closed\n", opened, closed)
		for _, info := range mc.files.GetOpenFiles() {
			fmt.Fprintf(&b, "  open: %s\n", info.Path)
		}
	}

	return b.String()
}

// SetDiagnostics starts or stops recording timings and workbook handles
func (mc *MainController) SetDiagnostics(enabled bool) {
	mc.timings.SetEnabled(enabled)
	if mc.files != nil {
		mc.files.SetEnabled(enabled)
	}
	mc.logger.Info("MainController", "diagnostics toggled", map[string]interface{}{
		"enabled": enabled,
	})
}

func (mc *MainController) DiagnosticsEnabled() bool {
	return mc.timings.Enabled()
}

// ResetDiagnostics discards every recorded timing
func (mc *MainController) ResetDiagnostics() {
	mc.timings.Reset("")
}
