package filetracker

import (
	"runtime"
	"sort"
	"sync"
	"time"
)

// Handle identifies one tracked open
type Handle uint64

type FileInfo struct {
	Path       string
	Handle     Handle
	OpenedAt   time.Time
	StackTrace []uintptr
}

// Tracker records workbook handles between open and close so that leaked
// handles can be reported at shutdown and asserted on in tests
type Tracker struct {
	openFiles map[Handle]FileInfo
	next      Handle
	opened    int64
	closed    int64
	mu        sync.RWMutex
	enabled   bool
}

func NewTracker() *Tracker {
	return &Tracker{
		openFiles: make(map[Handle]FileInfo),
		enabled:   true,
	}
}

// TrackOpen registers path as open and returns the handle to pass to TrackClose
func (ft *Tracker) TrackOpen(path string) Handle {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	ft.next++
	handle := ft.next
	if !ft.enabled {
		return handle
	}

	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])

	ft.openFiles[handle] = FileInfo{
		Path:       path,
		Handle:     handle,
		OpenedAt:   time.Now(),
		StackTrace: pcs[:n],
	}
	ft.opened++
	return handle
}

func (ft *Tracker) TrackClose(handle Handle) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if _, exists := ft.openFiles[handle]; exists {
		delete(ft.openFiles, handle)
		ft.closed++
	}
}

// GetOpenFiles returns the handles still open, oldest first
func (ft *Tracker) GetOpenFiles() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make([]FileInfo, 0, len(ft.openFiles))
	for _, info := range ft.openFiles {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Handle < result[j].Handle })
	return result
}

// DetectLeaks returns handles open for longer than threshold
func (ft *Tracker) DetectLeaks(threshold time.Duration) []FileInfo {
	cutoff := time.Now().Add(-threshold)
	var leaks []FileInfo

	for _, info := range ft.GetOpenFiles() {
		if !info.OpenedAt.After(cutoff) {
			leaks = append(leaks, info)
		}
	}

	return leaks
}

// Counts returns how many opens and closes were recorded
func (ft *Tracker) Counts() (opened, closed int64) {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.opened, ft.closed
}

func (ft *Tracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}

func (ft *Tracker) Enabled() bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.enabled
}
