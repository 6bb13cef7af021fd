// Package store keeps a round snapshot across a host recreation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"timefighter/internal/round"
)

type Store interface {
	Save(s round.Snapshot) error
	// Load reports false when nothing was saved.
	Load() (round.Snapshot, bool, error)
	Clear() error
}

// Memory is the in-process bundle. Loading leaves the snapshot in place,
// so a recreated game can restore it again.
type Memory struct {
	snap  round.Snapshot
	saved bool
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Save(s round.Snapshot) error {
	m.snap = s
	m.saved = true
	return nil
}

func (m *Memory) Load() (round.Snapshot, bool, error) {
	return m.snap, m.saved, nil
}

func (m *Memory) Clear() error {
	m.snap = round.Snapshot{}
	m.saved = false
	return nil
}

// --- File handoff ---

type fileState struct {
	Score      int   `json:"score"`
	TimeLeftMs int64 `json:"time_left_ms"`
}

// File hands a snapshot from one process to the next. Load consumes the
// file, so it never outlives a single restore.
type File struct {
	Path string
}

func NewFile(path string) *File { return &File{Path: path} }

func (f *File) Save(s round.Snapshot) error {
	data, err := json.MarshalIndent(fileState{
		Score:      s.Score,
		TimeLeftMs: s.Remaining.Milliseconds(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

func (f *File) Load() (round.Snapshot, bool, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return round.Snapshot{}, false, nil
	}
	if err != nil {
		return round.Snapshot{}, false, fmt.Errorf("failed to read state file: %w", err)
	}
	if err := f.Clear(); err != nil {
		return round.Snapshot{}, false, err
	}

	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return round.Snapshot{}, false, fmt.Errorf("failed to parse state file: %w", err)
	}
	return round.Snapshot{
		Score:     st.Score,
		Remaining: time.Duration(st.TimeLeftMs) * time.Millisecond,
	}, true, nil
}

func (f *File) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
