// Package poller runs the periodic fetch-and-replace loops that keep the agent's
// cached pickups in line with the collaborator.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller fetches a fresh snapshot on every tick and hands it to Apply. A snapshot
// replaces the previous one whole. A failed fetch keeps the old state; the next tick
// is the only retry.
type Poller[T any] struct {
	Name     string
	Interval time.Duration
	Fetch    func(ctx context.Context) (T, error)
	Apply    func(T)
	// Suspended, when set and true, skips ticks and drops snapshots that arrive
	// while a local edit session is open.
	Suspended func() bool

	Logger *slog.Logger

	triggerOnce sync.Once
	trigger     chan struct{}
}

func (p *Poller[T]) triggerCh() chan struct{} {
	p.triggerOnce.Do(func() {
		p.trigger = make(chan struct{}, 1)
	})
	return p.trigger
}

// Trigger asks for an immediate poll. It never blocks; triggers that arrive while
// one is pending are coalesced.
func (p *Poller[T]) Trigger() {
	select {
	case p.triggerCh() <- struct{}{}:
	default:
	}
}

// Run polls once immediately and then on every tick until ctx is done.
func (p *Poller[T]) Run(ctx context.Context) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("poller", p.Name))

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	var (
		wg       sync.WaitGroup
		inFlight = make(chan struct{}, 1)
	)
	defer wg.Wait()

	poll := func() {
		if p.suspended() {
			pollsSkipped.WithLabelValues(p.Name, "suspended").Inc()
			return
		}
		select {
		case inFlight <- struct{}{}:
		default:
			pollsSkipped.WithLabelValues(p.Name, "in_flight").Inc()
			return
		}

		wg.Go(func() {
			defer func() { <-inFlight }()

			start := time.Now()
			snapshot, err := p.Fetch(ctx)
			pollDuration.WithLabelValues(p.Name).Observe(time.Since(start).Seconds())
			if err != nil {
				if ctx.Err() == nil {
					pollsTotal.WithLabelValues(p.Name, "error").Inc()
					logger.Warn("poll failed", slog.Any("error", err))
				}
				return
			}

			// owner went away or started editing while we were fetching
			if ctx.Err() != nil {
				pollsSkipped.WithLabelValues(p.Name, "cancelled").Inc()
				return
			}
			if p.suspended() {
				pollsSkipped.WithLabelValues(p.Name, "suspended").Inc()
				return
			}

			p.Apply(snapshot)
			pollsTotal.WithLabelValues(p.Name, "ok").Inc()
		})
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("poller stopped")
			return
		case <-ticker.C:
			poll()
		case <-p.triggerCh():
			poll()
		}
	}
}

func (p *Poller[T]) suspended() bool {
	return p.Suspended != nil && p.Suspended()
}
