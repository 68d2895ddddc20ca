package controllers

import (
	"errors"
	"fmt"

	"sheet-viewer/internal/models"
)

func folderCreatedNotice(folder string) models.Notice {
	return models.Notice{
		Kind:    models.NoticeFolderCreated,
		Level:   models.NoticeInfo,
		Title:   "Information",
		Message: fmt.Sprintf("Created the folder:\n%s\n\nPlease put your Excel files here.", folder),
	}
}

func noFilesNotice(folder string) models.Notice {
	return models.Notice{
		Kind:    models.NoticeNoFiles,
		Level:   models.NoticeWarning,
		Title:   "Warning",
		Message: fmt.Sprintf("No Excel files (.xlsx) were found in:\n%s", folder),
	}
}

func scanFailedNotice(err error) models.Notice {
	return models.Notice{
		Kind:    models.NoticeScanFailed,
		Level:   models.NoticeError,
		Title:   "Error",
		Message: fmt.Sprintf("Error loading files:\n%s", cause(err)),
	}
}

func noSelectionNotice() models.Notice {
	return models.Notice{
		Kind:    models.NoticeNoSelection,
		Level:   models.NoticeWarning,
		Title:   "Warning",
		Message: "Please select a file from the list.",
	}
}

func noDataNotice() models.Notice {
	return models.Notice{
		Kind:    models.NoticeNoData,
		Level:   models.NoticeInfo,
		Title:   "Information",
		Message: "The file has no data on its first sheet.",
	}
}

func fileMissingNotice() models.Notice {
	return models.Notice{
		Kind:    models.NoticeFileMissing,
		Level:   models.NoticeError,
		Title:   "Error",
		Message: "The selected file no longer exists. The file list will be reloaded.",
	}
}

func readFailedNotice(err error) models.Notice {
	return models.Notice{
		Kind:  models.NoticeReadFailed,
		Level: models.NoticeError,
		Title: "Error",
		Message: fmt.Sprintf("Error reading the file:\n%s\n\n"+
			"Make sure that:\n"+
			"1. The file is not open in Excel\n"+
			"2. The file format is correct", cause(err)),
	}
}

// cause strips the path prefix added by the typed errors, the dialog already names the file
func cause(err error) string {
	var scanErr *models.ScanError
	if errors.As(err, &scanErr) && scanErr.Err != nil {
		return scanErr.Err.Error()
	}
	var renderErr *models.RenderError
	if errors.As(err, &renderErr) && renderErr.Err != nil {
		return renderErr.Err.Error()
	}
	return err.Error()
}
