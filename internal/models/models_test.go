package models

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCellOutOfRange(t *testing.T) {
	table := &Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}},
	}

	assert.Equal(t, "2", table.Cell(0, 1))
	assert.Equal(t, "", table.Cell(1, 0))
	assert.Equal(t, "", table.Cell(0, 2))
	assert.Equal(t, "", table.Cell(-1, 0))
	assert.True(t, table.Rectangular())

	table.Rows = append(table.Rows, []string{"only one"})
	assert.False(t, table.Rectangular())
}

func TestErrorsUnwrap(t *testing.T) {
	scanErr := &ScanError{Folder: "/x/Excel", Err: fs.ErrPermission}
	assert.ErrorIs(t, scanErr, fs.ErrPermission)
	assert.Contains(t, scanErr.Error(), "/x/Excel")

	var wrapped error = &RenderError{Path: "/x/a.xlsx", Err: errors.New("zip: not a valid zip file")}
	var renderErr *RenderError
	require.ErrorAs(t, wrapped, &renderErr)
	assert.Equal(t, "read /x/a.xlsx: zip: not a valid zip file", wrapped.Error())
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "folder_created", ScanFolderCreated.String())
	assert.Equal(t, "no_files", ScanNoFiles.String())
	assert.Equal(t, "rendered", RenderRendered.String())
	assert.Equal(t, "file_missing", RenderFileMissing.String())
	assert.Equal(t, "RenderOutcome(9)", RenderOutcome(9).String())
	assert.Equal(t, "Warning", NoticeWarning.String())
}

func TestZeroResultsAreNotSuccess(t *testing.T) {
	var scan ScanResult
	var render RenderResult

	assert.Equal(t, ScanUnknown, scan.Outcome)
	assert.NotEqual(t, ScanListed, scan.Outcome)
	assert.Equal(t, "unknown", scan.Outcome.String())

	assert.Equal(t, RenderUnknown, render.Outcome)
	assert.NotEqual(t, RenderRendered, render.Outcome)
	assert.Equal(t, "unknown", render.Outcome.String())
}

func TestSessionScanReplacesEntries(t *testing.T) {
	repo := NewSessionRepository()
	assert.Empty(t, repo.Entries())
	assert.True(t, repo.LastScan().IsZero())

	entries := []FileEntry{{DisplayName: "a.xlsx", FullPath: "/x/a.xlsx"}}
	repo.SetScan(ScanResult{Folder: "/x", Outcome: ScanListed, Entries: entries})

	entries[0].DisplayName = "changed"
	got := repo.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "a.xlsx", got[0].DisplayName, "repository keeps its own copy")
	assert.Equal(t, "/x", repo.Folder())
	assert.False(t, repo.LastScan().IsZero())

	repo.ClearEntries()
	assert.Empty(t, repo.Entries())
}

func TestSessionRenderLifecycle(t *testing.T) {
	repo := NewSessionRepository()
	assert.Equal(t, StateIdle, repo.State())

	table := &Table{Columns: []string{"A"}}
	repo.BeginLoading()
	assert.Equal(t, StateLoading, repo.State())
	assert.Nil(t, repo.Table())

	repo.Finish(StateRendered, table)
	assert.Equal(t, StateRendered, repo.State())
	assert.Same(t, table, repo.Table())

	repo.BeginLoading()
	repo.Finish(StateEmpty, table)
	assert.Equal(t, StateEmpty, repo.State())
	assert.Nil(t, repo.Table(), "only a rendered state keeps a table")
	assert.Equal(t, "empty", repo.State().String())
}
