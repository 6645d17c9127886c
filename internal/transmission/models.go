// Package transmission maintains the self-refreshing log of synthetic broadcast entries.
//
// A Manager owns one State for the process lifetime. Request handlers and the
// background scheduler both call Manager.Refresh; the regeneration gate and the
// mutation run under one exclusive lock so at most one entry is generated per
// interval however many callers race. Persistence runs outside the lock on a copy.
package transmission

import (
	"errors"
	"fmt"
	"time"

	"github.com/oszuidwest/zwfm-beacon/internal/clock"
)

const (
	// GenerationInterval is the minimum time between two generated entries.
	GenerationInterval = 3 * time.Hour
	// MaxTransmissions caps the number of retained entries.
	MaxTransmissions = 12

	generationIntervalSeconds = int64(GenerationInterval / time.Second)
)

// Entry is one broadcast record. All fields are fixed at creation.
type Entry struct {
	Timestamp int64  `json:"timestamp"`
	TimeLabel string `json:"time_label"`
	Message   string `json:"message"`
}

// NewEntry builds an entry whose label is derived from its own timestamp.
func NewEntry(timestamp int64, message string) Entry {
	return Entry{
		Timestamp: timestamp,
		TimeLabel: clock.Label(timestamp),
		Message:   message,
	}
}

// Time returns the entry timestamp as a UTC instant.
func (e Entry) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// State is the persisted aggregate. Entries are newest first.
type State struct {
	LastGeneratedAt int64   `json:"last_generated_at"`
	Entries         []Entry `json:"entries"`
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s State) Clone() State {
	entries := make([]Entry, len(s.Entries))
	copy(entries, s.Entries)
	return State{
		LastGeneratedAt: s.LastGeneratedAt,
		Entries:         entries,
	}
}

// ErrNegativeTimestamp reports a timestamp before the epoch in loaded state.
var ErrNegativeTimestamp = errors.New("negative timestamp")

// Validate rejects state that could not have been written by this program.
func (s State) Validate() error {
	if s.LastGeneratedAt < 0 {
		return fmt.Errorf("last_generated_at %d: %w", s.LastGeneratedAt, ErrNegativeTimestamp)
	}
	for i, e := range s.Entries {
		if e.Timestamp < 0 {
			return fmt.Errorf("entries[%d].timestamp %d: %w", i, e.Timestamp, ErrNegativeTimestamp)
		}
	}
	return nil
}

// Store loads and persists State. Implemented by the store package.
type Store interface {
	Load() (State, error)
	Persist(State) error
}
