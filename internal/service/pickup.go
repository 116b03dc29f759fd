package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/google/uuid"
)

type PickupAPI interface {
	List(ctx context.Context) ([]entities.Pickup, error)
	Get(ctx context.Context, id string) (entities.Pickup, error)
	Create(ctx context.Context, p entities.Pickup) error
	Patch(ctx context.Context, id string, patch entities.PickupPatch) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.PickupEvent) error
}

const listKey = "pickups"

func pickupKey(id string) string {
	return "pickup:" + id
}

// snapshots is the local cached copy of collaborator state.
type snapshots struct {
	logger *slog.Logger
	cache  Cache
}

func (s *snapshots) list() ([]entities.Pickup, bool) {
	data, ok := s.cache.Get(listKey)
	if !ok {
		return nil, false
	}
	var ps entities.Pickups
	if err := ps.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal pickups snapshot", slog.Any("error", err))
		s.cache.Delete(listKey)
		return nil, false
	}
	return ps, true
}

func (s *snapshots) setList(ps []entities.Pickup) {
	data, err := entities.Pickups(ps).Marshal()
	if err != nil {
		s.logger.Error("failed to marshal pickups snapshot", slog.Any("error", err))
		return
	}
	s.cache.Set(listKey, data)
}

func (s *snapshots) pickup(id string) (entities.Pickup, bool) {
	data, ok := s.cache.Get(pickupKey(id))
	if !ok {
		return entities.Pickup{}, false
	}
	var p entities.Pickup
	if err := p.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal pickup snapshot", slog.String("id", id), slog.Any("error", err))
		s.cache.Delete(pickupKey(id))
		return entities.Pickup{}, false
	}
	return p, true
}

func (s *snapshots) setPickup(p entities.Pickup) {
	data, err := p.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal pickup snapshot", slog.String("id", p.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(pickupKey(p.ID), data)
}

// written records the agent's own write in the detail and list snapshots so that
// views reflect it before the next poll.
func (s *snapshots) written(p entities.Pickup) {
	s.setPickup(p)

	ps, ok := s.list()
	if !ok {
		return
	}
	replaced := false
	for i := range ps {
		if ps[i].ID == p.ID {
			ps[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		ps = append(ps, p)
	}
	s.setList(ps)
}

// transitioner is the write path shared by both roles: fresh read, guard, patch.
type transitioner struct {
	logger *slog.Logger
	api    PickupAPI
	snaps  *snapshots
	events EventPublisher
	strict bool
	now    func() time.Time
}

type decideFunc func(ctx context.Context, current entities.Pickup) (entities.PickupPatch, error)

func (t *transitioner) apply(ctx context.Context, actor entities.Actor, id, event string, decide decideFunc) (entities.Pickup, error) {
	// guards are checked against the collaborator, never against the cache
	current, err := t.api.Get(ctx, id)
	if err != nil {
		transitionsTotal.WithLabelValues(event, "error").Inc()
		return entities.Pickup{}, fmt.Errorf("failed to fetch pickup %s: %w", id, err)
	}
	t.snaps.setPickup(current)

	patch, err := decide(ctx, current)
	if err != nil {
		transitionsTotal.WithLabelValues(event, "rejected").Inc()
		return entities.Pickup{}, err
	}

	if err := t.api.Patch(ctx, id, patch); err != nil {
		transitionsTotal.WithLabelValues(event, "error").Inc()
		return entities.Pickup{}, fmt.Errorf("failed to update pickup %s: %w", id, err)
	}

	updated := current.Apply(patch)
	if t.strict {
		stored, err := t.api.Get(ctx, id)
		if err != nil {
			transitionsTotal.WithLabelValues(event, "error").Inc()
			return entities.Pickup{}, fmt.Errorf("failed to confirm update of pickup %s: %w", id, err)
		}
		if !reflects(stored, patch) {
			t.snaps.written(stored)
			transitionsTotal.WithLabelValues(event, "conflict").Inc()
			t.logger.WarnContext(ctx, "concurrent write detected",
				slog.String("id", id),
				slog.String("event", event),
				slog.String("want_status", patch.Status.String()),
				slog.String("got_status", stored.Status.String()),
			)
			return stored, fmt.Errorf("%w: pickup %s is %q", entities.ErrConcurrentWrite, id, stored.Status)
		}
		updated = stored
	}

	t.snaps.written(updated)
	transitionsTotal.WithLabelValues(event, "ok").Inc()
	t.logger.InfoContext(ctx, "pickup updated",
		slog.String("id", id),
		slog.String("event", event),
		slog.String("actor", actor.String()),
		slog.String("status", updated.Status.String()),
	)

	t.publish(ctx, actor, id, current.Status, updated.Status)
	return updated, nil
}

// publish never fails the operation: the write has already happened.
func (t *transitioner) publish(ctx context.Context, actor entities.Actor, id string, from, to entities.Status) {
	e := entities.PickupEvent{
		ID:       uuid.NewString(),
		PickupID: id,
		From:     from,
		To:       to,
		Actor:    actor.Role,
		At:       t.now(),
	}
	if err := t.events.Publish(ctx, e); err != nil {
		t.logger.ErrorContext(ctx, "failed to publish pickup event", slog.String("id", id), slog.Any("error", err))
	}
}

func reflects(stored entities.Pickup, patch entities.PickupPatch) bool {
	if stored.Status != patch.Status {
		return false
	}
	if patch.PickupCode != nil && stored.PickupCode != *patch.PickupCode {
		return false
	}
	if patch.TotalAmount != nil && (stored.TotalAmount == nil || *stored.TotalAmount != *patch.TotalAmount) {
		return false
	}
	if patch.Items != nil && len(stored.Items) != len(patch.Items) {
		return false
	}
	return true
}

// listOrFetch serves the list snapshot, fetching it when the cache has none.
func listOrFetch(ctx context.Context, api PickupAPI, snaps *snapshots) ([]entities.Pickup, error) {
	if ps, ok := snaps.list(); ok {
		return ps, nil
	}
	ps, err := api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pickups: %w", err)
	}
	snaps.setList(ps)
	return ps, nil
}

func pickupOrFetch(ctx context.Context, api PickupAPI, snaps *snapshots, id string) (entities.Pickup, error) {
	if p, ok := snaps.pickup(id); ok {
		return p, nil
	}
	p, err := api.Get(ctx, id)
	if err != nil {
		return entities.Pickup{}, fmt.Errorf("failed to fetch pickup %s: %w", id, err)
	}
	snaps.setPickup(p)
	return p, nil
}
