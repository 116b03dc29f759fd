package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
)

// recentLimit is how many pickups the customer dashboard shows.
const recentLimit = 2

type customerService struct {
	logger *slog.Logger
	api    PickupAPI
	snaps  *snapshots
	tr     *transitioner
}

func NewCustomerService(logger *slog.Logger, api PickupAPI, cache Cache, events EventPublisher, strict bool) *customerService {
	logger = logger.With(slog.String("service", "customer"))
	snaps := &snapshots{logger: logger, cache: cache}
	return &customerService{
		logger: logger,
		api:    api,
		snaps:  snaps,
		tr: &transitioner{
			logger: logger,
			api:    api,
			snaps:  snaps,
			events: events,
			strict: strict,
			now:    time.Now,
		},
	}
}

func (s *customerService) CreatePickup(ctx context.Context, actor entities.Actor, req lifecycle.CreateRequest) (entities.Pickup, error) {
	p, err := lifecycle.NewPickup(actor, req, s.tr.now())
	if err != nil {
		transitionsTotal.WithLabelValues("create", "rejected").Inc()
		return entities.Pickup{}, err
	}
	if err := s.api.Create(ctx, p); err != nil {
		transitionsTotal.WithLabelValues("create", "error").Inc()
		return entities.Pickup{}, fmt.Errorf("failed to create pickup: %w", err)
	}

	s.snaps.written(p)
	transitionsTotal.WithLabelValues("create", "ok").Inc()
	s.logger.InfoContext(ctx, "pickup created", slog.String("id", p.ID), slog.String("date", p.Date), slog.String("slot", p.TimeSlot))

	s.tr.publish(ctx, actor, p.ID, "", p.Status)
	return p, nil
}

// Pickups is the customer's order history, newest first.
func (s *customerService) Pickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error) {
	if err := requireCustomer(actor); err != nil {
		return nil, err
	}
	ps, err := listOrFetch(ctx, s.api, s.snaps)
	if err != nil {
		return nil, err
	}
	own := lifecycle.FilterByPhone(ps, actor.Phone)
	lifecycle.SortNewestFirst(own)
	return own, nil
}

func (s *customerService) RecentPickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error) {
	ps, err := s.Pickups(ctx, actor)
	if err != nil {
		return nil, err
	}
	return lifecycle.Recent(ps, recentLimit), nil
}

func (s *customerService) Approve(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Pickup{}, err
	}
	return s.tr.apply(ctx, actor, id, "approve", func(_ context.Context, current entities.Pickup) (entities.PickupPatch, error) {
		return lifecycle.Approve(actor, current)
	})
}

func requireCustomer(actor entities.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role != entities.RoleCustomer {
		return fmt.Errorf("%w: %s is not a customer", entities.ErrForbidden, actor)
	}
	return nil
}

func requirePartner(actor entities.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role != entities.RolePartner {
		return fmt.Errorf("%w: %s is not a partner", entities.ErrForbidden, actor)
	}
	return nil
}
