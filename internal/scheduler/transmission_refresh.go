// Package scheduler provides background task scheduling services for the beacon site.
package scheduler

import (
	"sync"
	"time"

	"github.com/oszuidwest/zwfm-beacon/internal/metrics"
	"github.com/oszuidwest/zwfm-beacon/pkg/logger"
)

// Refresher is the gated regeneration operation shared with the request path.
type Refresher interface {
	Refresh(trigger string) bool
}

// TransmissionRefreshService periodically runs the transmission regeneration gate.
// Page requests are the primary trigger; this service is the backstop for idle periods.
type TransmissionRefreshService struct {
	refresher Refresher
	// interval between gate checks
	interval time.Duration
	// ticker controls the execution schedule
	ticker *time.Ticker
	// done channel enables graceful shutdown signaling
	done chan struct{}
	// startOnce and stopOnce make Start and Stop idempotent
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewTransmissionRefreshService creates the periodic refresh driver.
// The service must be started with [TransmissionRefreshService.Start] to begin operations.
func NewTransmissionRefreshService(refresher Refresher, interval time.Duration) *TransmissionRefreshService {
	return &TransmissionRefreshService{
		refresher: refresher,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start runs one refresh pass synchronously, then checks again on every tick.
func (s *TransmissionRefreshService) Start() {
	s.startOnce.Do(func() {
		logger.Info("Starting transmission refresh service (runs every %s)", s.interval)

		if s.refresher.Refresh(metrics.TriggerStartup) {
			logger.Info("Generated transmission on startup")
		}

		s.ticker = time.NewTicker(s.interval)
		ticks := s.ticker.C

		go func() {
			for {
				select {
				case <-ticks:
					if s.refresher.Refresh(metrics.TriggerScheduler) {
						logger.Info("Generated scheduled transmission")
					}
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop shuts down the service. Safe to call more than once.
func (s *TransmissionRefreshService) Stop() {
	s.stopOnce.Do(func() {
		logger.Info("Stopping transmission refresh service")
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
	})
}
