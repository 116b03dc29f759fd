package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/middleware"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Refresher interface {
	Refresh()
}

// baseHandler holds what both role handlers share: decoding, validation and
// the mapping of lifecycle errors onto status codes.
type baseHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func (h *baseHandler) actor(r *http.Request) entities.Actor {
	actor, _ := middleware.ActorFrom(r.Context())
	return actor
}

func (h *baseHandler) pickupID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,max=64"); err != nil {
		utils.WriteValidationError(w, &entities.ValidationError{Field: "id", Reason: "required"})
		return "", false
	}
	return id, true
}

func (h *baseHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *baseHandler) track(role entities.Role, op string) func(status int) {
	operationsInProgress.Inc()
	return func(status int) {
		operationsInProgress.Dec()
		operationsTotal.WithLabelValues(string(role), op, strconv.Itoa(status)).Inc()
	}
}

// writeError maps lifecycle errors to status codes and returns the code written.
func (h *baseHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, op string) int {
	var code int
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrEmptyItems), errors.Is(err, entities.ErrItemIndex):
		code = http.StatusBadRequest
	case errors.Is(err, entities.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, entities.ErrPickupNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrConcurrentWrite):
		code = http.StatusConflict
	case errors.Is(err, entities.ErrCodeMismatch):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrCollaborator):
		h.logger.WarnContext(ctx, "pickup api unavailable", slog.String("op", op), slog.Any("error", err))
		utils.WriteError(w, "pickup service unavailable", http.StatusBadGateway)
		return http.StatusBadGateway
	default:
		h.logger.ErrorContext(ctx, "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	utils.WriteError(w, rootMessage(err), code)
	return code
}

// rootMessage prefers the typed error's text, which names the status it was found in.
func rootMessage(err error) string {
	var te *entities.TransitionError
	if errors.As(err, &te) {
		return te.Error()
	}
	for _, sentinel := range []error{
		entities.ErrEmptyItems,
		entities.ErrItemIndex,
		entities.ErrForbidden,
		entities.ErrPickupNotFound,
		entities.ErrConcurrentWrite,
		entities.ErrInvalidTransition,
		entities.ErrCodeMismatch,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
