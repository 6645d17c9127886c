package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oszuidwest/zwfm-beacon/internal/metrics"
)

type countingRefresher struct {
	mu       sync.Mutex
	triggers []string
}

func (r *countingRefresher) Refresh(trigger string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.triggers = append(r.triggers, trigger)
	return false
}

func (r *countingRefresher) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.triggers...)
}

func TestStartRunsImmediatelyThenOnTick(t *testing.T) {
	r := &countingRefresher{}
	s := NewTransmissionRefreshService(r, 10*time.Millisecond)

	s.Start()
	defer s.Stop()

	calls := r.calls()
	if assert.NotEmpty(t, calls) {
		assert.Equal(t, metrics.TriggerStartup, calls[0])
	}

	assert.Eventually(t, func() bool {
		return len(r.calls()) >= 3
	}, time.Second, 5*time.Millisecond)

	for _, trigger := range r.calls()[1:] {
		assert.Equal(t, metrics.TriggerScheduler, trigger)
	}
}

func TestStopHaltsTicks(t *testing.T) {
	r := &countingRefresher{}
	s := NewTransmissionRefreshService(r, 5*time.Millisecond)

	s.Start()
	assert.Eventually(t, func() bool {
		return len(r.calls()) >= 2
	}, time.Second, time.Millisecond)

	s.Stop()
	s.Stop()
	// Let a tick that was already being handled finish.
	time.Sleep(20 * time.Millisecond)
	settled := len(r.calls())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, len(r.calls()))
}

func TestStartIsIdempotent(t *testing.T) {
	r := &countingRefresher{}
	s := NewTransmissionRefreshService(r, time.Hour)

	s.Start()
	s.Start()
	defer s.Stop()

	assert.Equal(t, []string{metrics.TriggerStartup}, r.calls())
}
