package models

import (
	"sync"
	"time"
)

// ViewState is the lifecycle of the table view for one selection
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateRendered
	StateEmpty
	StateFailed
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// SessionRepository holds what the window currently shows: the last scan
// and the table of the last successful render
type SessionRepository struct {
	mu       sync.RWMutex
	folder   string
	entries  []FileEntry
	table    *Table
	state    ViewState
	lastScan time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		entries: make([]FileEntry, 0),
	}
}

// SetScan replaces the file list; entries of a previous scan are discarded
func (r *SessionRepository) SetScan(result ScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.folder = result.Folder
	r.entries = make([]FileEntry, len(result.Entries))
	copy(r.entries, result.Entries)
	r.lastScan = time.Now()
}

func (r *SessionRepository) ClearEntries() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make([]FileEntry, 0)
}

func (r *SessionRepository) Entries() []FileEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]FileEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

func (r *SessionRepository) Folder() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.folder
}

func (r *SessionRepository) LastScan() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastScan
}

// BeginLoading drops the current table and enters StateLoading
func (r *SessionRepository) BeginLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = nil
	r.state = StateLoading
}

// Finish records the end state of a render; table is kept only for StateRendered
func (r *SessionRepository) Finish(state ViewState, table *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = state
	if state == StateRendered {
		r.table = table
	} else {
		r.table = nil
	}
}

func (r *SessionRepository) Table() *Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table
}

func (r *SessionRepository) State() ViewState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
