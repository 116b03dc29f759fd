package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/trm"
)

type DraftRepo interface {
	Items(ctx context.Context, pickupID string) ([]entities.Item, error)
	ReplaceItems(ctx context.Context, pickupID string, items []entities.Item) error
	Clear(ctx context.Context, pickupID string) error
}

type Watcher interface {
	IsWatching(id string) bool
}

type partnerService struct {
	logger    *slog.Logger
	api       PickupAPI
	drafts    DraftRepo
	txManager trm.Manager
	watcher   Watcher
	snaps     *snapshots
	tr        *transitioner
	gen       lifecycle.CodeGenerator
}

func NewPartnerService(
	logger *slog.Logger,
	api PickupAPI,
	drafts DraftRepo,
	txManager trm.Manager,
	cache Cache,
	events EventPublisher,
	watcher Watcher,
	strict bool,
) *partnerService {
	logger = logger.With(slog.String("service", "partner"))
	snaps := &snapshots{logger: logger, cache: cache}
	return &partnerService{
		logger:    logger,
		api:       api,
		drafts:    drafts,
		txManager: txManager,
		watcher:   watcher,
		snaps:     snaps,
		gen:       lifecycle.GenerateCode,
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

// Pickups lists every pickup known to the collaborator, newest first.
func (s *partnerService) Pickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error) {
	if err := requirePartner(actor); err != nil {
		return nil, err
	}
	ps, err := listOrFetch(ctx, s.api, s.snaps)
	if err != nil {
		return nil, err
	}
	ps = slices.Clone(ps)
	lifecycle.SortNewestFirst(ps)
	return ps, nil
}

func (s *partnerService) Pickup(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error) {
	if err := requirePartner(actor); err != nil {
		return entities.PickupDetail{}, err
	}
	p, err := pickupOrFetch(ctx, s.api, s.snaps, id)
	if err != nil {
		return entities.PickupDetail{}, err
	}
	return s.detail(ctx, p)
}

func (s *partnerService) detail(ctx context.Context, p entities.Pickup) (entities.PickupDetail, error) {
	d := entities.PickupDetail{Pickup: p, Watched: s.watcher.IsWatching(p.ID)}
	if p.Status != entities.StatusInProcess {
		return d, nil
	}
	items, err := s.drafts.Items(ctx, p.ID)
	if err != nil {
		return entities.PickupDetail{}, fmt.Errorf("failed to load working items of %s: %w", p.ID, err)
	}
	wl := lifecycle.NewWorkingList(items)
	d.WorkingItems = wl.Items()
	d.WorkingTotal = wl.Total()
	return d, nil
}

func (s *partnerService) Accept(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error) {
	if err := requirePartner(actor); err != nil {
		return entities.Pickup{}, err
	}
	return s.tr.apply(ctx, actor, id, "accept", func(_ context.Context, current entities.Pickup) (entities.PickupPatch, error) {
		return lifecycle.Accept(actor, current, s.gen)
	})
}

// VerifyCode opens the item entry session. The working list always starts empty.
func (s *partnerService) VerifyCode(ctx context.Context, actor entities.Actor, id, code string) (entities.PickupDetail, error) {
	if err := requirePartner(actor); err != nil {
		return entities.PickupDetail{}, err
	}
	p, err := s.tr.apply(ctx, actor, id, "verify", func(_ context.Context, current entities.Pickup) (entities.PickupPatch, error) {
		return lifecycle.VerifyCode(actor, current, code)
	})
	if err != nil {
		return entities.PickupDetail{}, err
	}
	if err := s.drafts.Clear(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to reset working items", slog.String("id", id), slog.Any("error", err))
	}
	return entities.PickupDetail{Pickup: p, Watched: s.watcher.IsWatching(id)}, nil
}

func (s *partnerService) AddItem(ctx context.Context, actor entities.Actor, id string, item entities.Item) (entities.PickupDetail, error) {
	return s.editItems(ctx, actor, id, func(wl *lifecycle.WorkingList) error {
		if err := wl.Add(item); err != nil {
			return &entities.ValidationError{Field: "item", Reason: err.Error()}
		}
		return nil
	})
}

func (s *partnerService) RemoveItem(ctx context.Context, actor entities.Actor, id string, index int) (entities.PickupDetail, error) {
	return s.editItems(ctx, actor, id, func(wl *lifecycle.WorkingList) error {
		return wl.Remove(index)
	})
}

// editItems guards on the cached status: the detail watch is suspended while the
// pickup is In-Process, so the cached record is the one the session started from.
func (s *partnerService) editItems(ctx context.Context, actor entities.Actor, id string, edit func(*lifecycle.WorkingList) error) (entities.PickupDetail, error) {
	if err := requirePartner(actor); err != nil {
		return entities.PickupDetail{}, err
	}
	p, err := pickupOrFetch(ctx, s.api, s.snaps, id)
	if err != nil {
		return entities.PickupDetail{}, err
	}
	if err := lifecycle.RequireEditable(actor, p); err != nil {
		return entities.PickupDetail{}, err
	}

	var wl *lifecycle.WorkingList
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		items, err := s.drafts.Items(ctx, id)
		if err != nil {
			return err
		}
		wl = lifecycle.NewWorkingList(items)
		if err := edit(wl); err != nil {
			return err
		}
		return s.drafts.ReplaceItems(ctx, id, wl.Items())
	})
	if err != nil {
		return entities.PickupDetail{}, err
	}

	return entities.PickupDetail{
		Pickup:       p,
		WorkingItems: wl.Items(),
		WorkingTotal: wl.Total(),
		Watched:      s.watcher.IsWatching(id),
	}, nil
}

// Submit freezes the working list onto the pickup and ends the edit session.
func (s *partnerService) Submit(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error) {
	if err := requirePartner(actor); err != nil {
		return entities.Pickup{}, err
	}
	p, err := s.tr.apply(ctx, actor, id, "submit", func(ctx context.Context, current entities.Pickup) (entities.PickupPatch, error) {
		items, err := s.drafts.Items(ctx, id)
		if err != nil {
			return entities.PickupPatch{}, fmt.Errorf("failed to load working items of %s: %w", id, err)
		}
		return lifecycle.Submit(actor, current, items)
	})
	if err != nil {
		return entities.Pickup{}, err
	}
	if err := s.drafts.Clear(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear working items", slog.String("id", id), slog.Any("error", err))
	}
	return p, nil
}
