package statesync

import (
	"context"
	"sync"
	"time"
)

// Loop drives periodic reconciliation of a fixed set of targets.
// Distinct projects sync independently each tick; a per-target failure
// is logged and never stops the loop.
type Loop struct {
	manager  *SyncManager
	targets  []Target
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewLoop builds a loop over the manager's targets. A non-positive
// interval falls back to 30 seconds.
func NewLoop(manager *SyncManager, targets []Target, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Loop{
		manager:  manager,
		targets:  targets,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the loop until Stop is called or the context is cancelled.
// One pass runs immediately, then one per interval.
func (l *Loop) Start(ctx context.Context) {
	go func() {
		defer close(l.done)

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		l.syncAll(ctx)
		for {
			select {
			case <-l.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.syncAll(ctx)
			}
		}
	}()
}

// Stop halts the timer and waits for any pass already underway to
// complete. In-flight reconciliations finish; no new pass starts.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
}

// syncAll reconciles every target once.
func (l *Loop) syncAll(ctx context.Context) {
	for _, t := range l.targets {
		select {
		case <-l.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		result := l.manager.SyncProject(ctx, t)
		if !result.Success {
			l.manager.log("[sync] %s failed: %s", t.key(), result.Message)
		}
	}
}
