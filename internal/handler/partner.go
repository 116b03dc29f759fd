package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/middleware"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PartnerService interface {
	Pickups(ctx context.Context, actor entities.Actor) ([]entities.Pickup, error)
	Pickup(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error)
	Accept(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
	VerifyCode(ctx context.Context, actor entities.Actor, id, code string) (entities.PickupDetail, error)
	AddItem(ctx context.Context, actor entities.Actor, id string, item entities.Item) (entities.PickupDetail, error)
	RemoveItem(ctx context.Context, actor entities.Actor, id string, index int) (entities.PickupDetail, error)
	Submit(ctx context.Context, actor entities.Actor, id string) (entities.Pickup, error)
}

type Syncer interface {
	Refresher
	WatchPickup(ctx context.Context, actor entities.Actor, id string) error
	UnwatchPickup(actor entities.Actor, id string) error
}

type PartnerHandler struct {
	baseHandler
	svc  PartnerService
	sync Syncer
}

func NewPartnerHandler(logger *slog.Logger, svc PartnerService, sync Syncer) *PartnerHandler {
	return &PartnerHandler{
		baseHandler: baseHandler{
			logger:   logger.With(slog.String("handler", "partner")),
			validate: validator.New(),
		},
		svc:  svc,
		sync: sync,
	}
}

func (h *PartnerHandler) Init(r chi.Router) {
	r.Route("/partner/pickups", func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RolePartner))
		r.Get("/", h.Pickups)
		r.Post("/refresh", h.Refresh)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Pickup)
			r.Post("/accept", h.Accept)
			r.Post("/verify", h.VerifyCode)
			r.Post("/items", h.AddItem)
			r.Delete("/items/{index}", h.RemoveItem)
			r.Post("/submit", h.Submit)
			r.Post("/watch", h.Watch)
			r.Delete("/watch", h.Unwatch)
		})
	})
}

// @Summary      List pickups
// @Description  Every pickup, newest first
// @Tags         partner
// @Security     BearerAuth
// @Success      200  {array}   Pickup
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups [get]
func (h *PartnerHandler) Pickups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	done := h.track(entities.RolePartner, "list")

	pickups, err := h.svc.Pickups(ctx, h.actor(r))
	if err != nil {
		done(h.writeError(ctx, w, err, "list pickups"))
		return
	}

	utils.WriteJSON(w, PartnerPickupsToJSON(pickups), http.StatusOK)
	done(http.StatusOK)
}

// @Summary      Get pickup
// @Description  Pickup with the working item list
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      200  {object}  PickupDetail
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id} [get]
func (h *PartnerHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, "get", func(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error) {
		return h.svc.Pickup(ctx, actor, id)
	})
}

// @Summary      Accept a pickup
// @Description  Issues a fresh 6-digit pickup code
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      200  {object}  Pickup
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/accept [post]
func (h *PartnerHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "accept", h.svc.Accept)
}

// @Summary      Submit items
// @Description  Sends the working item list and its total for approval
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      200  {object}  Pickup
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/submit [post]
func (h *PartnerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "submit", h.svc.Submit)
}

// @Summary      Verify pickup code
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Param        request  body  VerifyCodeRequest  true  "Code told by the customer"
// @Success      200  {object}  PickupDetail
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      422  {object}  utils.ErrorResponse "Pickup code does not match"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/verify [post]
func (h *PartnerHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.detail(w, r, "verify", func(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error) {
		return h.svc.VerifyCode(ctx, actor, id, req.Code)
	})
}

// @Summary      Add item
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Param        request  body  ItemRequest  true  "Item"
// @Success      200  {object}  PickupDetail
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/items [post]
func (h *PartnerHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.detail(w, r, "add_item", func(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error) {
		return h.svc.AddItem(ctx, actor, id, ItemRequestToEntity(req))
	})
}

// @Summary      Remove item
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Param        index  path  int  true  "Position in the working list"
// @Success      200  {object}  PickupDetail
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid request"
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or concurrent write"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/items/{index} [delete]
func (h *PartnerHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		utils.WriteValidationError(w, &entities.ValidationError{Field: "index", Reason: "must be a non-negative integer"})
		return
	}
	h.detail(w, r, "remove_item", func(ctx context.Context, actor entities.Actor, id string) (entities.PickupDetail, error) {
		return h.svc.RemoveItem(ctx, actor, id, index)
	})
}

func (h *PartnerHandler) transition(w http.ResponseWriter, r *http.Request, op string, apply func(context.Context, entities.Actor, string) (entities.Pickup, error)) {
	ctx := r.Context()
	done := h.track(entities.RolePartner, op)

	id, ok := h.pickupID(w, r)
	if !ok {
		done(http.StatusBadRequest)
		return
	}

	p, err := apply(ctx, h.actor(r), id)
	if err != nil {
		done(h.writeError(ctx, w, err, op+" pickup"))
		return
	}

	utils.WriteJSON(w, PartnerPickupToJSON(p), http.StatusOK)
	done(http.StatusOK)
}

func (h *PartnerHandler) detail(w http.ResponseWriter, r *http.Request, op string, load func(context.Context, entities.Actor, string) (entities.PickupDetail, error)) {
	ctx := r.Context()
	done := h.track(entities.RolePartner, op)

	id, ok := h.pickupID(w, r)
	if !ok {
		done(http.StatusBadRequest)
		return
	}

	d, err := load(ctx, h.actor(r), id)
	if err != nil {
		done(h.writeError(ctx, w, err, op))
		return
	}

	utils.WriteJSON(w, PartnerDetailToJSON(d), http.StatusOK)
	done(http.StatusOK)
}

// Watch opens the detail watch of the screen showing the pickup.
// @Summary      Watch pickup
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Failure      502  {object}  utils.ErrorResponse "Pickup API unavailable"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /partner/pickups/{id}/watch [post]
func (h *PartnerHandler) Watch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pickupID(w, r)
	if !ok {
		return
	}
	if err := h.sync.WatchPickup(ctx, h.actor(r), id); err != nil {
		h.writeError(ctx, w, err, "watch pickup")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Stop watching pickup
// @Tags         partner
// @Security     BearerAuth
// @Param        id   path      string  true  "Pickup id"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Failure      404  {object}  utils.ErrorResponse "Pickup not found"
// @Router       /partner/pickups/{id}/watch [delete]
func (h *PartnerHandler) Unwatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pickupID(w, r)
	if !ok {
		return
	}
	if err := h.sync.UnwatchPickup(h.actor(r), id); err != nil {
		h.writeError(ctx, w, err, "unwatch pickup")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Poll now
// @Tags         partner
// @Security     BearerAuth
// @Success      202
// @Failure      403  {object}  utils.ErrorResponse "Wrong role or not the owner"
// @Router       /partner/pickups/refresh [post]
func (h *PartnerHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.sync.Refresh()
	w.WriteHeader(http.StatusAccepted)
}
