package pipeline

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Summary describes one pipeline run. On failure it lists what was written
// before the run stopped.
type Summary struct {
	RunID          string
	FilesRead      int
	UnitsGenerated int
	FilesWritten   int      // write operations, overwrites included
	Outputs        []string // distinct written paths, sorted
	Overwrites     []string // paths written more than once, sorted
	Duration       time.Duration
}

type summaryTracker struct {
	runID     string
	started   time.Time
	filesRead atomic.Int64
	units     atomic.Int64
	writes    atomic.Int64

	mu         sync.Mutex
	outputs    map[string]struct{}
	overwrites map[string]struct{}
}

func newSummaryTracker(runID string) *summaryTracker {
	return &summaryTracker{
		runID:      runID,
		started:    time.Now(),
		outputs:    make(map[string]struct{}),
		overwrites: make(map[string]struct{}),
	}
}

func (s *summaryTracker) read() {
	s.filesRead.Add(1)
}

func (s *summaryTracker) generated() {
	s.units.Add(1)
}

func (s *summaryTracker) wrote(path string) {
	s.writes.Add(1)
	s.mu.Lock()
	s.outputs[path] = struct{}{}
	s.mu.Unlock()
}

func (s *summaryTracker) overwrote(path string) {
	s.mu.Lock()
	s.overwrites[path] = struct{}{}
	s.mu.Unlock()
}

func (s *summaryTracker) snapshot() Summary {
	s.mu.Lock()
	outputs := sortedKeys(s.outputs)
	overwrites := sortedKeys(s.overwrites)
	s.mu.Unlock()

	return Summary{
		RunID:          s.runID,
		FilesRead:      int(s.filesRead.Load()),
		UnitsGenerated: int(s.units.Load()),
		FilesWritten:   int(s.writes.Load()),
		Outputs:        outputs,
		Overwrites:     overwrites,
		Duration:       time.Since(s.started),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
