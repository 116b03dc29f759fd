package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/service"
	mocks "github.com/DWARA-KESH/EpiCircleDemo/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Actor{Role: entities.RoleCustomer, Phone: "9876543210"}
	partner  = entities.Actor{Role: entities.RolePartner, PartnerID: "p-1"}

	collaboratorErr = errors.New("pickup api: 503: unavailable")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pickup(id string, status entities.Status) entities.Pickup {
	return entities.Pickup{
		ID:          id,
		Phone:       customer.Phone,
		Date:        "2025-06-01",
		DisplayDate: "2025-06-01",
		TimeSlot:    "10–11 AM",
		Address:     "12 MG Road",
		Status:      status,
	}
}

func marshal(t *testing.T, ps ...entities.Pickup) []byte {
	t.Helper()
	data, err := entities.Pickups(ps).Marshal()
	require.NoError(t, err)
	return data
}

// loosely expects snapshot writes; the tests below look at results, not cache bytes
func allowSnapshotWrites(cache *mocks.MockCache) {
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Maybe()
	cache.EXPECT().Get("pickups").Return(nil, false).Maybe()
}

func TestCustomerService_CreatePickup(t *testing.T) {
	type MockBehavior func(api *mocks.MockPickupAPI, cache *mocks.MockCache, events *mocks.MockEventPublisher)

	validReq := lifecycle.CreateRequest{
		Date:     "2025-06-01",
		TimeSlot: "10–11 AM",
		Address:  " 12 MG Road ",
		MapLink:  "https://maps.example.com/?q=12",
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		req          lifecycle.CreateRequest
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: customer,
			req:   validReq,
			mockBehavior: func(api *mocks.MockPickupAPI, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				api.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p entities.Pickup) bool {
					return p.Status == entities.StatusPending &&
						p.Phone == customer.Phone &&
						p.Address == "12 MG Road" &&
						p.PickupCode == "" &&
						p.TotalAmount == nil
				})).Return(nil).Once()
				allowSnapshotWrites(cache)
				events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.PickupEvent) bool {
					return e.From == "" && e.To == entities.StatusPending && e.Actor == entities.RoleCustomer && e.ID != ""
				})).Return(nil).Once()
			},
		},
		{
			name:  "publish failure does not fail the create",
			actor: customer,
			req:   validReq,
			mockBehavior: func(api *mocks.MockPickupAPI, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				api.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
				allowSnapshotWrites(cache)
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:         "missing address",
			actor:        customer,
			req:          lifecycle.CreateRequest{Date: "2025-06-01", TimeSlot: "10–11 AM"},
			mockBehavior: func(*mocks.MockPickupAPI, *mocks.MockCache, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "partner cannot create",
			actor:        partner,
			req:          validReq,
			mockBehavior: func(*mocks.MockPickupAPI, *mocks.MockCache, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:  "collaborator fails",
			actor: customer,
			req:   validReq,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockCache, _ *mocks.MockEventPublisher) {
				api.EXPECT().Create(mock.Anything, mock.Anything).
					Return(errors.Join(entities.ErrCollaborator, collaboratorErr)).Once()
			},
			wantErr: entities.ErrCollaborator,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockPickupAPI(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockEventPublisher(t)

			tc.mockBehavior(api, cache, events)

			svc := service.NewCustomerService(discardLogger(), api, cache, events, true)

			got, err := svc.CreatePickup(context.Background(), tc.actor, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPending, got.Status)
			assert.Equal(t, got.Date, got.DisplayDate)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestCustomerService_Pickups(t *testing.T) {
	other := pickup("1717000000005", entities.StatusPending)
	other.Phone = "1111111111"

	cached := marshal(t,
		pickup("1717000000001", entities.StatusCompleted),
		other,
		pickup("1717000000009", entities.StatusPending),
		pickup("1717000000003", entities.StatusAccepted),
	)

	t.Run("from cache, own only, newest first", func(t *testing.T) {
		api := mocks.NewMockPickupAPI(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("pickups").Return(cached, true)

		svc := service.NewCustomerService(discardLogger(), api, cache, mocks.NewMockEventPublisher(t), true)

		got, err := svc.Pickups(context.Background(), customer)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "1717000000009", got[0].ID)
		assert.Equal(t, "1717000000003", got[1].ID)
		assert.Equal(t, "1717000000001", got[2].ID)

		recent, err := svc.RecentPickups(context.Background(), customer)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "1717000000009", recent[0].ID)
		assert.Equal(t, "1717000000003", recent[1].ID)
	})

	t.Run("cache miss fetches the list", func(t *testing.T) {
		api := mocks.NewMockPickupAPI(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("pickups").Return(nil, false).Once()
		api.EXPECT().List(mock.Anything).Return([]entities.Pickup{pickup("1", entities.StatusPending)}, nil).Once()
		cache.EXPECT().Set("pickups", mock.Anything).Return().Once()

		svc := service.NewCustomerService(discardLogger(), api, cache, mocks.NewMockEventPublisher(t), true)

		got, err := svc.Pickups(context.Background(), customer)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("broken snapshot is dropped", func(t *testing.T) {
		api := mocks.NewMockPickupAPI(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("pickups").Return([]byte("broken"), true).Once()
		cache.EXPECT().Delete("pickups").Return().Once()
		api.EXPECT().List(mock.Anything).Return(nil, collaboratorErr).Once()

		svc := service.NewCustomerService(discardLogger(), api, cache, mocks.NewMockEventPublisher(t), true)

		_, err := svc.Pickups(context.Background(), customer)
		assert.ErrorIs(t, err, collaboratorErr)
	})

	t.Run("partner is not a customer", func(t *testing.T) {
		svc := service.NewCustomerService(discardLogger(), mocks.NewMockPickupAPI(t), mocks.NewMockCache(t), mocks.NewMockEventPublisher(t), true)

		_, err := svc.Pickups(context.Background(), partner)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestCustomerService_Approve(t *testing.T) {
	type MockBehavior func(api *mocks.MockPickupAPI, events *mocks.MockEventPublisher)

	submitted := pickup("1", entities.StatusPendingForApproval)
	submitted.Items = []entities.Item{{Name: "Shirt", Qty: 2, Price: 150}}
	submitted.TotalAmount = entities.Float(300)

	completed := submitted
	completed.Status = entities.StatusCompleted

	foreign := submitted
	foreign.Phone = "1111111111"

	testCases := []struct {
		name         string
		strict       bool
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name:   "OK",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, events *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(submitted, nil).Once()
				api.EXPECT().Patch(mock.Anything, "1", entities.PickupPatch{Status: entities.StatusCompleted}).Return(nil).Once()
				api.EXPECT().Get(mock.Anything, "1").Return(completed, nil).Once()
				events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.PickupEvent) bool {
					return e.From == entities.StatusPendingForApproval && e.To == entities.StatusCompleted
				})).Return(nil).Once()
			},
			wantStatus: entities.StatusCompleted,
		},
		{
			name:   "last write wins without confirm read",
			strict: false,
			mockBehavior: func(api *mocks.MockPickupAPI, events *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(submitted, nil).Once()
				api.EXPECT().Patch(mock.Anything, "1", mock.Anything).Return(nil).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusCompleted,
		},
		{
			name:   "not submitted yet",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(pickup("1", entities.StatusInProcess), nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "someone else's pickup",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(foreign, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:   "not found",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(entities.Pickup{}, entities.ErrPickupNotFound).Once()
			},
			wantErr: entities.ErrPickupNotFound,
		},
		{
			name:   "patch fails",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(submitted, nil).Once()
				api.EXPECT().Patch(mock.Anything, "1", mock.Anything).Return(collaboratorErr).Once()
			},
			wantErr: collaboratorErr,
		},
		{
			name:   "concurrent writer won",
			strict: true,
			mockBehavior: func(api *mocks.MockPickupAPI, _ *mocks.MockEventPublisher) {
				api.EXPECT().Get(mock.Anything, "1").Return(submitted, nil).Once()
				api.EXPECT().Patch(mock.Anything, "1", mock.Anything).Return(nil).Once()
				api.EXPECT().Get(mock.Anything, "1").Return(pickup("1", entities.StatusInProcess), nil).Once()
			},
			wantErr: entities.ErrConcurrentWrite,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockPickupAPI(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockEventPublisher(t)
			allowSnapshotWrites(cache)

			tc.mockBehavior(api, events)

			svc := service.NewCustomerService(discardLogger(), api, cache, events, tc.strict)

			got, err := svc.Approve(context.Background(), customer, "1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, 300.0, *got.TotalAmount)
		})
	}
}
