package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"sheet-viewer/internal/debug/filetracker"
	"sheet-viewer/internal/logger"
	"sheet-viewer/internal/models"
)

// RenderOptions tunes how a used range becomes a table
type RenderOptions struct {
	// SkipBlankRows omits rows of the used range without any value.
	SkipBlankRows bool
}

// SheetStrategy resolves the name of the sheet to render
type SheetStrategy struct {
	Name    string
	Resolve func(f *excelize.File) (string, error)
}

// DefaultSheetStrategies are tried in order until one resolves
var DefaultSheetStrategies = []SheetStrategy{
	{Name: "position", Resolve: sheetByPosition},
	{Name: "declaration", Resolve: sheetByDeclaration},
}

// SheetRenderer turns the first worksheet of a workbook into a models.Table
type SheetRenderer struct {
	logger     logger.Logger
	files      *filetracker.Tracker
	options    RenderOptions
	strategies []SheetStrategy
}

func NewSheetRenderer(log logger.Logger, files *filetracker.Tracker, options RenderOptions) *SheetRenderer {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &SheetRenderer{
		logger:     log,
		files:      files,
		options:    options,
		strategies: DefaultSheetStrategies,
	}
}

// Render reads path and builds the table of its first worksheet's used range.
// A vanished file yields RenderFileMissing and an empty sheet RenderNoData,
// neither being an error. Open and parse failures are *models.RenderError.
// The workbook is closed before Render returns.
func (sr *SheetRenderer) Render(path string) (result models.RenderResult, err error) {
	result = models.RenderResult{Path: path}
	// excelize can panic on structurally broken parts
	defer func() {
		if r := recover(); r != nil {
			result = models.RenderResult{Path: path}
			err = &models.RenderError{Path: path, Err: fmt.Errorf("malformed workbook: %v", r)}
		}
	}()

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Outcome = models.RenderFileMissing
		return result, nil
	case err != nil:
		return result, &models.RenderError{Path: path, Err: err}
	case info.IsDir():
		return result, &models.RenderError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return result, &models.RenderError{Path: path, Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	handle := sr.trackOpen(path)
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			sr.logger.Warning("SheetRenderer", "workbook close failed", map[string]interface{}{
				"path":  path,
				"error": closeErr.Error(),
			})
		}
		sr.trackClose(handle)
	}()
	sheet, strategy, err := sr.resolveSheet(f)
	if err != nil {
		return result, &models.RenderError{Path: path, Err: err}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return result, &models.RenderError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheet, err)}
	}

	bounds, ok := usedRange(rows)
	if !ok {
		sr.logger.Debug("SheetRenderer", "sheet has no data", map[string]interface{}{
			"path":  path,
			"sheet": sheet,
		})
		result.Outcome = models.RenderNoData
		return result, nil
	}

	table := buildTable(rows, bounds, sr.options)
	table.Sheet = sheet
	table.Source = path
	if table.Range, err = bounds.Ref(); err != nil {
		return result, &models.RenderError{Path: path, Err: err}
	}

	sr.logger.Debug("SheetRenderer", "sheet rendered", map[string]interface{}{
		"path":     path,
		"sheet":    sheet,
		"strategy": strategy,
		"range":    table.Range,
		"columns":  table.ColumnCount(),
		"rows":     table.RowCount(),
	})

	result.Outcome = models.RenderRendered
	result.Table = table
	return result, nil
}

// resolveSheet tries each strategy in order and returns the first sheet name found
func (sr *SheetRenderer) resolveSheet(f *excelize.File) (string, string, error) {
	var errs []error
	for _, strategy := range sr.strategies {
		name, err := strategy.Resolve(f)
		if err == nil && name != "" {
			return name, strategy.Name, nil
		}
		if err == nil {
			err = fmt.Errorf("no sheet")
		}
		errs = append(errs, fmt.Errorf("%s: %w", strategy.Name, err))
	}
	return "", "", fmt.Errorf("no worksheet found: %w", errors.Join(errs...))
}

func (sr *SheetRenderer) trackOpen(path string) filetracker.Handle {
	if sr.files == nil {
		return 0
	}
	return sr.files.TrackOpen(path)
}

func (sr *SheetRenderer) trackClose(handle filetracker.Handle) {
	if sr.files != nil {
		sr.files.TrackClose(handle)
	}
}

// sheetByPosition picks the first sheet of the workbook when it is a worksheet
func sheetByPosition(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook declares no sheets")
	}
	if err := checkWorksheet(f, sheets[0]); err != nil {
		return "", err
	}
	return sheets[0], nil
}

// sheetByDeclaration picks the first worksheet in workbook order, skipping
// chart and dialog sheets
func sheetByDeclaration(f *excelize.File) (string, error) {
	var errs []error
	for _, name := range f.GetSheetList() {
		err := checkWorksheet(f, name)
		if err == nil {
			return name, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("workbook declares no sheets")
	}
	return "", errors.Join(errs...)
}

// checkWorksheet fails for chartsheets, dialog sheets and macro sheets,
// which excelize otherwise reads as sheets without rows
func checkWorksheet(f *excelize.File, name string) error {
	_, err := f.GetSheetDimension(name)
	return err
}
