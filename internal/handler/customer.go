package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/middleware"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CustomerService interface {
	CreatePickup(ctx context.Context, actor entities.Actor, req lifecycle.CreateRequest) (entities.Pickup, error)
	Pickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error)
	RecentPickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error)
	Approve(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
}

type CustomerHandler struct {
	baseHandler
	svc  CustomerService
	sync Refresher
}

func NewCustomerHandler(logger *slog.Logger, svc CustomerService, sync Refresher) *CustomerHandler {
	return &CustomerHandler{
		baseHandler: baseHandler{
			logger:   logger.With(slog.String("handler", "customer")),
			validate: validator.New(),
		},
		svc:  svc,
		sync: sync,
	}
}

func (h *CustomerHandler) Init(r chi.Router) {
	r.Route("/customer/pickups", func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleCustomer))
		r.Get("/", h.Pickups)
		r.Get("/recent", h.RecentPickups)
		r.Post("/", h.CreatePickup)
		r.Post("/refresh", h.Refresh)
		r.Post("/{id}/approve", h.Approve)
	})
}

// Pickups is the order history, newest first.
// @Summary      Order history
// @Description  Customer's pickups, newest first
// @Tags         customer
// @Security     BearerAuth
// @Success      200  {array}   Pickup
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /customer/pickups [get]
func (h *CustomerHandler) Pickups(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list", h.svc.Pickups)
}

// RecentPickups backs the dashboard.
// @Summary      Recent pickups
// @Description  Two most recent pickups for the dashboard
// @Tags         customer
// @Security     BearerAuth
// @Success      200  {array}   Pickup
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /customer/pickups/recent [get]
func (h *CustomerHandler) RecentPickups(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "recent", h.svc.RecentPickups)
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request, op string, fetch func(context.Context, entities.Actor) ([]entities.Pickup, error)) {
	ctx := r.Context()
	done := h.track(entities.RoleCustomer, op)

	pickups, err := fetch(ctx, h.actor(r))
	if err != nil {
		done(h.writeError(ctx, w, err, "list pickups"))
		return
	}

	utils.WriteJSON(w, CustomerPickupsToJSON(pickups), http.StatusOK)
	done(http.StatusOK)
}

// @Summary      Schedule a pickup
// @Tags         customer
// @Security     BearerAuth
// @Param        request  body  CreatePickupRequest  true  "Pickup details"
// @Success      201  {object}  Pickup
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /customer/pickups [post]
func (h *CustomerHandler) CreatePickup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	done := h.track(entities.RoleCustomer, "create")

	var req CreatePickupRequest
	if !h.decode(w, r, &req) {
		done(http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePickup(ctx, h.actor(r), CreateRequestToLifecycle(req))
	if err != nil {
		done(h.writeError(ctx, w, err, "create pickup"))
		return
	}

	utils.WriteJSON(w, CustomerPickupToJSON(p), http.StatusCreated)
	done(http.StatusCreated)
}

// @Summary      Approve submitted items
// @Description  Completes a pickup that is Pending for Approval
// @Tags         customer
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      200  {object}  Pickup
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /customer/pickups/{id}/approve [post]
func (h *CustomerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	done := h.track(entities.RoleCustomer, "approve")

	id, ok := h.pickupID(w, r)
	if !ok {
		done(http.StatusBadRequest)
		return
	}

	p, err := h.svc.Approve(ctx, h.actor(r), id)
	if err != nil {
		done(h.writeError(ctx, w, err, "approve pickup"))
		return
	}

	utils.WriteJSON(w, CustomerPickupToJSON(p), http.StatusOK)
	done(http.StatusOK)
}

// Refresh is the screen-focus nudge: every open watch polls right away.
// @Summary      Poll now
// @Tags         customer
// @Security     BearerAuth
// @Success      202
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Router       /customer/pickups/refresh [post]
func (h *CustomerHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.sync.Refresh()
	w.WriteHeader(http.StatusAccepted)
}
