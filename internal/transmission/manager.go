package transmission

import (
	"math"
	"sync"

	"github.com/oszuidwest/zwfm-beacon/internal/apperrors"
	"github.com/oszuidwest/zwfm-beacon/internal/clock"
	"github.com/oszuidwest/zwfm-beacon/internal/metrics"
	"github.com/oszuidwest/zwfm-beacon/pkg/logger"
)

// Manager owns the in-memory transmission state and its store.
type Manager struct {
	// mu guards state; held exclusively only across gate check and mutation
	mu    sync.RWMutex
	state State
	// store persists copies of state outside the lock
	store Store
	clock clock.Clock

	// persistMu orders writes; persisted is the LastGeneratedAt most recently written
	persistMu sync.Mutex
	persisted int64
}

// NewManager loads the log from store, falling back to seed content.
// It never fails; store problems are logged and repaired.
func NewManager(store Store, c clock.Clock) *Manager {
	if c == nil {
		c = clock.RealClock{}
	}
	m := &Manager{
		store: store,
		clock: c,
	}
	m.state = m.loadOrSeed()
	metrics.ObserveState(len(m.state.Entries), m.state.LastGeneratedAt)
	return m
}

// loadOrSeed returns the stored state when it has entries, otherwise writes and returns seed content.
func (m *Manager) loadOrSeed() State {
	state, err := m.store.Load()
	if err == nil {
		if verr := state.Validate(); verr != nil {
			err = apperrors.StoreDecode("", verr)
		}
	}
	if err == nil && len(state.Entries) > 0 {
		logger.Info("Loaded %d transmissions from store", len(state.Entries))
		return state
	}
	if err == nil {
		err = apperrors.ErrStoreEmpty
	}

	reason := apperrors.CodeOf(err)
	logger.Info("Seeding transmission log (reason: %s): %v", reason, err)
	metrics.StoreRepairs.WithLabelValues(reason.String()).Inc()

	seeded := Seed(clock.NowSeconds(m.clock))
	m.persist(seeded.Clone())
	return seeded
}

// Seed returns the fixed fallback log anchored to now.
func Seed(now int64) State {
	return State{
		LastGeneratedAt: now,
		Entries: []Entry{
			NewEntry(saturatingSub(now, 1_200), "Uplink stabilized. Archive index pushed to public relay."),
			NewEntry(saturatingSub(now, 3_300), "Detected repeating pattern in ambient static. Logged as anomaly A-17."),
			NewEntry(saturatingSub(now, 5_800), "Scheduled new broadcast: Deep Space Transmitter."),
		},
	}
}

// RefreshIfDue prepends a generated entry when the interval since the last
// generation has elapsed. A now earlier than LastGeneratedAt keeps the gate shut.
func RefreshIfDue(state *State, now int64) bool {
	if saturatingSub(now, state.LastGeneratedAt) < generationIntervalSeconds {
		return false
	}

	entry := NewEntry(now, Synthesize(now, len(state.Entries)))

	entries := make([]Entry, 0, min(len(state.Entries)+1, MaxTransmissions))
	entries = append(entries, entry)
	for _, e := range state.Entries {
		if len(entries) == MaxTransmissions {
			break
		}
		entries = append(entries, e)
	}

	state.Entries = entries
	state.LastGeneratedAt = now
	return true
}

// Refresh runs the regeneration gate at the clock's current time and persists
// the result when an entry was generated. trigger labels the caller in metrics.
func (m *Manager) Refresh(trigger string) bool {
	return m.RefreshAt(clock.NowSeconds(m.clock), trigger)
}

// RefreshAt is Refresh with an explicit time.
func (m *Manager) RefreshAt(now int64, trigger string) bool {
	m.mu.Lock()
	generated := RefreshIfDue(&m.state, now)
	var snapshot State
	if generated {
		snapshot = m.state.Clone()
	}
	m.mu.Unlock()

	metrics.RecordRefresh(trigger, generated)
	if !generated {
		return false
	}

	metrics.ObserveState(len(snapshot.Entries), snapshot.LastGeneratedAt)
	logger.Debug("Generated transmission at %d: %s", now, snapshot.Entries[0].Message)

	m.persist(snapshot)
	return true
}

// persist writes snapshot unless a newer state has already been written.
// A failed write is logged; the in-memory state stays authoritative.
func (m *Manager) persist(snapshot State) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	if snapshot.LastGeneratedAt < m.persisted {
		return
	}
	if err := m.store.Persist(snapshot); err != nil {
		metrics.StorePersistFailures.Inc()
		logger.Error("Failed to persist transmissions: %v", err)
		return
	}
	m.persisted = snapshot.LastGeneratedAt
}

// Snapshot returns a copy of the current entries, newest first.
func (m *Manager) Snapshot() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]Entry, len(m.state.Entries))
	copy(entries, m.state.Entries)
	return entries
}

// State returns a copy of the full state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// LastGeneratedAt returns the epoch seconds of the most recent generation.
func (m *Manager) LastGeneratedAt() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.LastGeneratedAt
}

// Clock returns the clock the manager reads time from.
func (m *Manager) Clock() clock.Clock {
	return m.clock
}

// saturatingSub returns a-b clamped to [0, math.MaxInt64].
func saturatingSub(a, b int64) int64 {
	if a <= b {
		return 0
	}
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	return a - b
}
