package models

import (
	"fmt"
)

// FileEntry is one workbook found by a folder scan
type FileEntry struct {
	DisplayName string
	FullPath    string
}

// ScanOutcome classifies a scan that did not fail
type ScanOutcome int

const (
	// ScanUnknown is the zero value and never a valid result
	ScanUnknown ScanOutcome = iota
	// ScanListed means at least one workbook was found
	ScanListed
	// ScanFolderCreated means the folder did not exist and has just been created
	ScanFolderCreated
	// ScanNoFiles means the folder exists but holds no workbook
	ScanNoFiles
)

func (o ScanOutcome) String() string {
	switch o {
	case ScanUnknown:
		return "unknown"
	case ScanListed:
		return "listed"
	case ScanFolderCreated:
		return "folder_created"
	case ScanNoFiles:
		return "no_files"
	default:
		return fmt.Sprintf("ScanOutcome(%d)", int(o))
	}
}

// ScanResult contains the output of a folder scan
type ScanResult struct {
	Folder  string
	Outcome ScanOutcome
	Entries []FileEntry
}

// ScanError reports an I/O failure while listing or creating the folder
type ScanError struct {
	Folder string
	Err    error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Folder, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
