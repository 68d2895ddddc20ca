package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sheet-viewer/internal/logger"
	"sheet-viewer/internal/models"
)

const (
	// WorkbookExtension is the only file type listed by a scan
	WorkbookExtension = ".xlsx"
	// lockFilePrefix marks the owner files Excel leaves next to an open workbook
	lockFilePrefix = "~$"
)

// FolderScanner lists the workbooks of a single folder
type FolderScanner struct {
	logger logger.Logger
}

func NewFolderScanner(log logger.Logger) *FolderScanner {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FolderScanner{logger: log}
}

// Scan lists the top-level workbooks of folder sorted by full path. A missing
// folder is created and reported as ScanFolderCreated. I/O failures are
// returned as *models.ScanError.
func (s *FolderScanner) Scan(folder string) (models.ScanResult, error) {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return models.ScanResult{Folder: folder}, &models.ScanError{Folder: folder, Err: err}
	}
	result := models.ScanResult{Folder: absFolder}

	info, err := os.Stat(absFolder)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(absFolder, 0o755); err != nil {
			return result, &models.ScanError{Folder: absFolder, Err: fmt.Errorf("failed to create folder: %w", err)}
		}
		s.logger.Info("FolderScanner", "folder created", map[string]interface{}{
			"folder": absFolder,
		})
		result.Outcome = models.ScanFolderCreated
		return result, nil
	case err != nil:
		return result, &models.ScanError{Folder: absFolder, Err: err}
	case !info.IsDir():
		return result, &models.ScanError{Folder: absFolder, Err: fmt.Errorf("not a directory")}
	}

	dirEntries, err := os.ReadDir(absFolder)
	if err != nil {
		return result, &models.ScanError{Folder: absFolder, Err: fmt.Errorf("failed to list folder: %w", err)}
	}

	entries := make([]models.FileEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if !isWorkbook(entry) {
			continue
		}
		entries = append(entries, models.FileEntry{
			DisplayName: entry.Name(),
			FullPath:    filepath.Join(absFolder, entry.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FullPath < entries[j].FullPath
	})

	s.logger.Debug("FolderScanner", "scan completed", map[string]interface{}{
		"folder":  absFolder,
		"scanned": len(dirEntries),
		"matched": len(entries),
	})

	if len(entries) == 0 {
		result.Outcome = models.ScanNoFiles
		return result, nil
	}

	result.Outcome = models.ScanListed
	result.Entries = entries
	return result, nil
}

func isWorkbook(entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	name := entry.Name()
	if strings.HasPrefix(name, lockFilePrefix) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), WorkbookExtension)
}
