package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/pickupapi"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/pickupapi/pickupapitest"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/repo"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/service"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/storage"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/cache"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type recorder struct {
	mu     sync.Mutex
	events []entities.PickupEvent
}

func (r *recorder) Publish(_ context.Context, e entities.PickupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) transitions() []entities.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Status, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.To)
	}
	return out
}

type AgentSuite struct {
	suite.Suite

	server *pickupapitest.Server
	db     *sqlx.DB
	events *recorder
	sync   *service.Sync

	customer interface {
		CreatePickup(ctx context.Context, actor entities.Actor, req lifecycle.CreateRequest) (entities.Pickup, error)
		Pickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error)
		Approve(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
	}
	partner interface {
		Pickup(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error)
		Accept(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
		VerifyCode(ctx context.Context, actor entities.Actor, id, code string) (entities.PickupDetail, error)
		AddItem(ctx context.Context, actor entities.Actor, id string, item entities.Item) (entities.PickupDetail, error)
		Submit(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
	}
}

func TestAgentSuite(t *testing.T) {
	suite.Run(t, new(AgentSuite))
}

func (s *AgentSuite) SetupTest() {
	ctx := context.Background()
	logger := discardLogger()

	s.server = pickupapitest.NewServer()

	db, err := storage.New(ctx, config.Drafts{
		Driver:       "sqlite3",
		DSN:          "file:" + strings.ReplaceAll(s.T().Name(), "/", "_") + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	})
	s.Require().NoError(err)
	s.db = db

	api := pickupapi.NewClient(logger, config.PickupAPI{BaseURL: s.server.URL, Timeout: time.Second})
	snapshots := cache.NewLRUCache(100, time.Minute)
	s.events = &recorder{}

	s.sync = service.NewSync(logger, api, snapshots, config.Polling{
		ListInterval:   20 * time.Millisecond,
		DetailInterval: 20 * time.Millisecond,
	})
	s.customer = service.NewCustomerService(logger, api, snapshots, s.events, true)
	s.partner = service.NewPartnerService(logger, api, repo.NewDraftRepo(db, trm.NewManager(db)), trm.NewManager(db), snapshots, s.events, s.sync, true)
}

func (s *AgentSuite) TearDownTest() {
	s.sync.Stop()
	s.db.Close()
	s.server.Close()
}

func (s *AgentSuite) create() entities.Pickup {
	p, err := s.customer.CreatePickup(context.Background(), customer, lifecycle.CreateRequest{
		Date:     "2025-06-01",
		TimeSlot: "10–11 AM",
		Address:  "12 MG Road",
	})
	s.Require().NoError(err)
	return p
}

func (s *AgentSuite) TestFullLifecycle() {
	ctx := context.Background()
	p := s.create()

	accepted, err := s.partner.Accept(ctx, partner, p.ID)
	s.Require().NoError(err)
	s.Len(accepted.PickupCode, 6)

	_, err = s.partner.VerifyCode(ctx, partner, p.ID, "999999x")
	s.ErrorIs(err, entities.ErrCodeMismatch)

	_, err = s.partner.VerifyCode(ctx, partner, p.ID, accepted.PickupCode)
	s.Require().NoError(err)

	_, err = s.partner.AddItem(ctx, partner, p.ID, entities.Item{Name: "Shirt", Qty: 2, Price: 150})
	s.Require().NoError(err)
	detail, err := s.partner.AddItem(ctx, partner, p.ID, entities.Item{Name: "Pants", Qty: 1, Price: 300})
	s.Require().NoError(err)
	s.Equal(600.0, detail.WorkingTotal)

	// the working list stays local until submit
	stored, _ := s.server.Pickup(p.ID)
	s.Empty(stored.Items)

	submitted, err := s.partner.Submit(ctx, partner, p.ID)
	s.Require().NoError(err)
	s.Equal(entities.StatusPendingForApproval, submitted.Status)

	completed, err := s.customer.Approve(ctx, customer, p.ID)
	s.Require().NoError(err)
	s.Equal(entities.StatusCompleted, completed.Status)

	stored, _ = s.server.Pickup(p.ID)
	s.Equal(entities.StatusCompleted, stored.Status)
	s.Len(stored.Items, 2)
	s.Require().NotNil(stored.TotalAmount)
	s.Equal(600.0, *stored.TotalAmount)

	s.Equal([]entities.Status{
		entities.StatusPending,
		entities.StatusAccepted,
		entities.StatusInProcess,
		entities.StatusPendingForApproval,
		entities.StatusCompleted,
	}, s.events.transitions())

	_, err = s.customer.Approve(ctx, customer, p.ID)
	s.ErrorIs(err, entities.ErrInvalidTransition)
}

func (s *AgentSuite) TestConcurrentAccept() {
	ctx := context.Background()
	p := s.create()

	// another partner's accept lands right after ours
	s.server.AfterPatch = func(id string) {
		s.server.AfterPatch = nil
		rival := p
		rival.Status = entities.StatusAccepted
		rival.PickupCode = "111111"
		s.server.Put(rival)
	}

	_, err := s.partner.Accept(ctx, partner, p.ID)
	s.ErrorIs(err, entities.ErrConcurrentWrite)

	_, err = s.partner.VerifyCode(ctx, partner, p.ID, "111111")
	s.NoError(err, "the winning code stays valid")
}

func (s *AgentSuite) TestListWatchPicksUpOtherAgentsWrites() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.sync.Start(ctx))

	other := pickup("1717000000001", entities.StatusPending)
	s.server.Put(other)

	s.Eventually(func() bool {
		ps, err := s.customer.Pickups(ctx, customer)
		return err == nil && len(ps) == 1
	}, time.Second, 10*time.Millisecond)

	accepted := other
	accepted.Status = entities.StatusAccepted
	accepted.PickupCode = "222222"
	s.server.Put(accepted)

	s.Eventually(func() bool {
		ps, err := s.customer.Pickups(ctx, customer)
		return err == nil && len(ps) == 1 && ps[0].Status == entities.StatusAccepted
	}, time.Second, 10*time.Millisecond)
}

func (s *AgentSuite) TestDetailWatchSuspendedWhileEditing() {
	ctx := context.Background()
	p := s.create()

	accepted, err := s.partner.Accept(ctx, partner, p.ID)
	s.Require().NoError(err)
	_, err = s.partner.VerifyCode(ctx, partner, p.ID, accepted.PickupCode)
	s.Require().NoError(err)

	s.Require().NoError(s.sync.WatchPickup(ctx, partner, p.ID))
	s.True(s.sync.IsWatching(p.ID))
	_, err = s.partner.AddItem(ctx, partner, p.ID, entities.Item{Name: "Shirt", Qty: 2, Price: 150})
	s.Require().NoError(err)

	// a write from elsewhere must not clobber the open session
	changed := accepted
	changed.Status = entities.StatusAccepted
	s.server.Put(changed)
	gets := s.server.Calls("GET /pickups/{id}")
	time.Sleep(100 * time.Millisecond)

	detail, err := s.partner.Pickup(ctx, partner, p.ID)
	s.Require().NoError(err)
	s.Equal(entities.StatusInProcess, detail.Status)
	s.Len(detail.WorkingItems, 1)
	s.True(detail.Watched)
	s.Equal(gets, s.server.Calls("GET /pickups/{id}"), "suspended watch must not poll")

	s.Require().NoError(s.sync.UnwatchPickup(partner, p.ID))
	s.False(s.sync.IsWatching(p.ID))
	s.ErrorIs(s.sync.UnwatchPickup(partner, p.ID), entities.ErrPickupNotFound)
}

func (s *AgentSuite) TestDetailWatchFollowsCollaborator() {
	ctx := context.Background()
	p := s.create()

	s.Require().NoError(s.sync.WatchPickup(ctx, partner, p.ID))

	accepted := p
	accepted.Status = entities.StatusAccepted
	accepted.PickupCode = "333333"
	s.server.Put(accepted)

	s.Eventually(func() bool {
		d, err := s.partner.Pickup(ctx, partner, p.ID)
		return err == nil && d.Status == entities.StatusAccepted
	}, time.Second, 10*time.Millisecond)

	s.ErrorIs(s.sync.WatchPickup(ctx, partner, "missing"), entities.ErrPickupNotFound)
	s.ErrorIs(s.sync.WatchPickup(ctx, customer, p.ID), entities.ErrForbidden)
}
