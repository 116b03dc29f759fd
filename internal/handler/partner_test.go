package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/handler"
	mocks "github.com/DWARA-KESH/EpiCircleDemo/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerHandler(t *testing.T) {
	const id = "1717000000001"

	inProcess := entities.PickupDetail{
		Pickup:       samplePickup(entities.StatusInProcess),
		WorkingItems: []entities.Item{{Name: "Shirt", Qty: 2, Price: 150}},
		WorkingTotal: 300,
		Watched:      true,
	}

	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockPartnerService, sync *mocks.MockSyncer)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list hides codes",
			method: http.MethodGet,
			path:   "/partner/pickups",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().Pickups(mock.Anything, partner).
					Return([]entities.Pickup{samplePickup(entities.StatusAccepted)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Accepted"`,
		},
		{
			name:   "detail",
			method: http.MethodGet,
			path:   "/partner/pickups/" + id,
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().Pickup(mock.Anything, partner, id).Return(inProcess, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"workingTotal":300`,
		},
		{
			name:   "accept",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/accept",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().Accept(mock.Anything, partner, id).Return(samplePickup(entities.StatusAccepted), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Accepted"`,
		},
		{
			name:   "accept twice",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/accept",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().Accept(mock.Anything, partner, id).
					Return(entities.Pickup{}, &entities.TransitionError{Event: "accept", Status: entities.StatusAccepted}).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "verify",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/verify",
			body:   `{"code":"483920"}`,
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().VerifyCode(mock.Anything, partner, id, "483920").Return(inProcess, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"In-Process"`,
		},
		{
			name:   "verify wrong code",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/verify",
			body:   `{"code":"000000"}`,
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().VerifyCode(mock.Anything, partner, id, "000000").
					Return(entities.PickupDetail{}, entities.ErrCodeMismatch).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "pickup code does not match",
		},
		{
			name:         "verify without code",
			method:       http.MethodPost,
			path:         "/partner/pickups/" + id + "/verify",
			body:         `{}`,
			mockBehavior: func(*mocks.MockPartnerService, *mocks.MockSyncer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Code":"required"`,
		},
		{
			name:   "add item",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/items",
			body:   `{"name":"Shirt","qty":2,"price":150}`,
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().AddItem(mock.Anything, partner, id, entities.Item{Name: "Shirt", Qty: 2, Price: 150}).
					Return(inProcess, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":300`,
		},
		{
			name:         "add item with zero qty",
			method:       http.MethodPost,
			path:         "/partner/pickups/" + id + "/items",
			body:         `{"name":"Shirt","qty":0,"price":150}`,
			mockBehavior: func(*mocks.MockPartnerService, *mocks.MockSyncer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Qty":"required"`,
		},
		{
			name:   "remove item",
			method: http.MethodDelete,
			path:   "/partner/pickups/" + id + "/items/0",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().RemoveItem(mock.Anything, partner, id, 0).Return(inProcess, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove item out of range",
			method: http.MethodDelete,
			path:   "/partner/pickups/" + id + "/items/7",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().RemoveItem(mock.Anything, partner, id, 7).Return(entities.PickupDetail{}, entities.ErrItemIndex).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "item index out of range",
		},
		{
			name:         "remove item bad index",
			method:       http.MethodDelete,
			path:         "/partner/pickups/" + id + "/items/first",
			mockBehavior: func(*mocks.MockPartnerService, *mocks.MockSyncer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"index"`,
		},
		{
			name:   "submit empty",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/submit",
			mockBehavior: func(svc *mocks.MockPartnerService, _ *mocks.MockSyncer) {
				svc.EXPECT().Submit(mock.Anything, partner, id).Return(entities.Pickup{}, entities.ErrEmptyItems).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "at least one item is required",
		},
		{
			name:   "watch",
			method: http.MethodPost,
			path:   "/partner/pickups/" + id + "/watch",
			mockBehavior: func(_ *mocks.MockPartnerService, sync *mocks.MockSyncer) {
				sync.EXPECT().WatchPickup(mock.Anything, partner, id).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "unwatch unknown",
			method: http.MethodDelete,
			path:   "/partner/pickups/" + id + "/watch",
			mockBehavior: func(_ *mocks.MockPartnerService, sync *mocks.MockSyncer) {
				sync.EXPECT().UnwatchPickup(partner, id).Return(entities.ErrPickupNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			path:   "/partner/pickups/refresh",
			mockBehavior: func(_ *mocks.MockPartnerService, sync *mocks.MockSyncer) {
				sync.EXPECT().Refresh().Return().Once()
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPartnerService(t)
			sync := mocks.NewMockSyncer(t)
			tc.mockBehavior(svc, sync)

			r := newRouter(handler.NewPartnerHandler(discardLogger(), svc, sync))
			status, body := do(t, r, tc.method, tc.path, "partner", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "pickupCode")
		})
	}
}

func TestPartnerHandler_DetailShape(t *testing.T) {
	svc := mocks.NewMockPartnerService(t)
	svc.EXPECT().Pickup(mock.Anything, partner, "1").Return(entities.PickupDetail{
		Pickup: samplePickup(entities.StatusAccepted),
	}, nil).Once()

	r := newRouter(handler.NewPartnerHandler(discardLogger(), svc, mocks.NewMockSyncer(t)))
	status, body := do(t, r, http.MethodGet, "/partner/pickups/1", "partner", "")
	require.Equal(t, http.StatusOK, status)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "Accepted", got["status"])
	assert.Equal(t, []any{}, got["workingItems"])
	assert.Equal(t, false, got["watched"])
	assert.NotContains(t, got, "pickupCode")
}

func TestPartnerHandler_CustomerForbidden(t *testing.T) {
	r := newRouter(handler.NewPartnerHandler(discardLogger(), mocks.NewMockPartnerService(t), mocks.NewMockSyncer(t)))
	status, _ := do(t, r, http.MethodPost, "/partner/pickups/1/accept", "customer", "")
	assert.Equal(t, http.StatusForbidden, status)
}
