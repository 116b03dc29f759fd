package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/poller"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/utils"
)

var warmupRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     time.Second,
}

// Sync owns the watches that keep the cached snapshots fresh: the pickup list for
// the whole agent lifetime and one detail watch per opened partner screen.
type Sync struct {
	logger   *slog.Logger
	api      PickupAPI
	snaps    *snapshots
	polling  config.Polling
	registry *poller.Registry
	cancel   context.CancelFunc
}

func NewSync(logger *slog.Logger, api PickupAPI, cache Cache, polling config.Polling) *Sync {
	logger = logger.With(slog.String("service", "sync"))
	ctx, cancel := context.WithCancel(context.Background())
	return &Sync{
		logger:   logger,
		api:      api,
		snaps:    &snapshots{logger: logger, cache: cache},
		polling:  polling,
		registry: poller.NewRegistry(ctx),
		cancel:   cancel,
	}
}

// Start warms the list snapshot and opens the list watch. Watches are closed when
// ctx is done or on Stop.
func (s *Sync) Start(ctx context.Context) error {
	err := utils.Retry(ctx, warmupRetry, func(ctx context.Context) error {
		ps, err := s.api.List(ctx)
		if err != nil {
			return err
		}
		s.snaps.setList(ps)
		return nil
	})
	if err != nil {
		// the list watch keeps trying on every tick
		s.logger.Warn("failed to warm up pickups snapshot", slog.Any("error", err))
	}

	s.registry.Open(listKey, func() poller.Runner {
		return &poller.Poller[[]entities.Pickup]{
			Name:     listKey,
			Interval: s.polling.ListInterval,
			Fetch:    s.api.List,
			Apply:    s.applyList,
			Logger:   s.logger,
		}
	})
	s.logger.Info("pickups watch opened", slog.Duration("interval", s.polling.ListInterval))

	context.AfterFunc(ctx, s.Stop)
	return nil
}

func (s *Sync) applyList(ps []entities.Pickup) {
	s.snaps.setList(ps)
	for _, p := range ps {
		// watched pickups are kept by their own detail watch
		if s.registry.IsOpen(pickupKey(p.ID)) {
			continue
		}
		s.snaps.setPickup(p)
	}
}

// WatchPickup opens the detail watch of a partner screen. Opening an open watch is a no-op.
func (s *Sync) WatchPickup(ctx context.Context, actor entities.Actor, id string) error {
	if err := requirePartner(actor); err != nil {
		return err
	}
	if _, err := pickupOrFetch(ctx, s.api, s.snaps, id); err != nil {
		return err
	}

	opened := s.registry.Open(pickupKey(id), func() poller.Runner {
		return &poller.Poller[entities.Pickup]{
			Name:     pickupKey(id),
			Interval: s.polling.DetailInterval,
			Fetch: func(ctx context.Context) (entities.Pickup, error) {
				return s.api.Get(ctx, id)
			},
			Apply:     s.snaps.setPickup,
			Suspended: func() bool { return s.editing(id) },
			Logger:    s.logger,
		}
	})
	if opened {
		s.logger.Info("pickup watch opened", slog.String("id", id), slog.Duration("interval", s.polling.DetailInterval))
	}
	return nil
}

func (s *Sync) UnwatchPickup(actor entities.Actor, id string) error {
	if err := requirePartner(actor); err != nil {
		return err
	}
	if !s.registry.Close(pickupKey(id)) {
		return fmt.Errorf("%w: pickup %s is not watched", entities.ErrPickupNotFound, id)
	}
	s.logger.Info("pickup watch closed", slog.String("id", id))
	return nil
}

func (s *Sync) IsWatching(id string) bool {
	return s.registry.IsOpen(pickupKey(id))
}

// editing reports whether a working list session is open on the pickup.
func (s *Sync) editing(id string) bool {
	p, ok := s.snaps.pickup(id)
	return ok && p.Status == entities.StatusInProcess
}

// Refresh asks every open watch for an immediate poll.
func (s *Sync) Refresh() {
	s.registry.TriggerAll()
}

// RefreshPickup polls the list and, if watched, the pickup right away.
func (s *Sync) RefreshPickup(id string) {
	s.registry.Trigger(listKey)
	s.registry.Trigger(pickupKey(id))
}

func (s *Sync) Stop() {
	s.cancel()
	s.registry.CloseAll()
}
