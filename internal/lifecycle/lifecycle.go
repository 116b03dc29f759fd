// Package lifecycle holds the pickup state machine. Functions here never do I/O:
// they check guards against a pickup snapshot and return the patch to persist.
package lifecycle

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/go-playground/validator/v10"
)

// Time slots offered to customers. Any non-empty slot is accepted.
var TimeSlots = []string{"10–11 AM", "12–1 PM", "3–4 PM"}

// allowedTransitions maps a status to the only status it may advance to.
var allowedTransitions = map[entities.Status]entities.Status{
	entities.StatusPending:            entities.StatusAccepted,
	entities.StatusAccepted:           entities.StatusInProcess,
	entities.StatusInProcess:          entities.StatusPendingForApproval,
	entities.StatusPendingForApproval: entities.StatusCompleted,
}

func CanAdvance(from, to entities.Status) bool {
	next, ok := allowedTransitions[from]
	return ok && next == to
}

var validate = validator.New()

type CreateRequest struct {
	Date     string `validate:"required,datetime=2006-01-02"`
	TimeSlot string `validate:"required"`
	Address  string `validate:"required"`
	MapLink  string `validate:"omitempty,url"`
}

// NewPickup builds a Pending pickup for the customer. The id is derived from now in
// milliseconds, so ids of one customer sort by creation time. No pickup code is
// stored at create time; Accept issues it.
func NewPickup(actor entities.Actor, req CreateRequest, now time.Time) (entities.Pickup, error) {
	if err := requireRole(actor, entities.RoleCustomer, "create"); err != nil {
		return entities.Pickup{}, err
	}
	if err := actor.Validate(); err != nil {
		return entities.Pickup{}, err
	}

	req.Date = strings.TrimSpace(req.Date)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.Address = strings.TrimSpace(req.Address)
	req.MapLink = strings.TrimSpace(req.MapLink)
	if err := validate.Struct(req); err != nil {
		return entities.Pickup{}, toValidationError(err)
	}

	return entities.Pickup{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Phone:       actor.Phone,
		Date:        req.Date,
		DisplayDate: req.Date,
		TimeSlot:    req.TimeSlot,
		Address:     req.Address,
		MapLink:     req.MapLink,
		Status:      entities.StatusPending,
	}, nil
}

func Accept(actor entities.Actor, p entities.Pickup, gen CodeGenerator) (entities.PickupPatch, error) {
	if err := requireRole(actor, entities.RolePartner, "accept"); err != nil {
		return entities.PickupPatch{}, err
	}
	if err := requireStatus(p, entities.StatusPending, "accept"); err != nil {
		return entities.PickupPatch{}, err
	}
	if gen == nil {
		gen = GenerateCode
	}
	return entities.PickupPatch{
		Status:     entities.StatusAccepted,
		PickupCode: entities.String(gen()),
	}, nil
}

// VerifyCode moves an Accepted pickup to In-Process when code equals the stored pickup code.
// Surrounding whitespace in code is ignored.
func VerifyCode(actor entities.Actor, p entities.Pickup, code string) (entities.PickupPatch, error) {
	if err := requireRole(actor, entities.RolePartner, "verify"); err != nil {
		return entities.PickupPatch{}, err
	}
	if err := requireStatus(p, entities.StatusAccepted, "verify"); err != nil {
		return entities.PickupPatch{}, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.PickupPatch{}, &entities.ValidationError{Field: "code", Reason: "required"}
	}
	if p.PickupCode == "" || code != p.PickupCode {
		return entities.PickupPatch{}, entities.ErrCodeMismatch
	}
	return entities.PickupPatch{Status: entities.StatusInProcess}, nil
}

// Submit freezes the working item list and its total together with the status change.
func Submit(actor entities.Actor, p entities.Pickup, items []entities.Item) (entities.PickupPatch, error) {
	if err := requireRole(actor, entities.RolePartner, "submit"); err != nil {
		return entities.PickupPatch{}, err
	}
	if err := requireStatus(p, entities.StatusInProcess, "submit"); err != nil {
		return entities.PickupPatch{}, err
	}
	if len(items) == 0 {
		return entities.PickupPatch{}, entities.ErrEmptyItems
	}
	for i, it := range items {
		if err := ValidateItem(it); err != nil {
			return entities.PickupPatch{}, &entities.ValidationError{
				Field:  "items[" + strconv.Itoa(i) + "]",
				Reason: err.Error(),
			}
		}
	}

	frozen := append([]entities.Item(nil), items...)
	return entities.PickupPatch{
		Status:      entities.StatusPendingForApproval,
		Items:       frozen,
		TotalAmount: entities.Float(Total(frozen)),
	}, nil
}

// Approve completes a pickup. Only the customer who placed it may approve.
func Approve(actor entities.Actor, p entities.Pickup) (entities.PickupPatch, error) {
	if err := requireRole(actor, entities.RoleCustomer, "approve"); err != nil {
		return entities.PickupPatch{}, err
	}
	if actor.Phone != p.Phone {
		return entities.PickupPatch{}, entities.ErrForbidden
	}
	if err := requireStatus(p, entities.StatusPendingForApproval, "approve"); err != nil {
		return entities.PickupPatch{}, err
	}
	return entities.PickupPatch{Status: entities.StatusCompleted}, nil
}

func Total(items []entities.Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount()
	}
	return total
}

func ValidateItem(it entities.Item) error {
	switch {
	case strings.TrimSpace(it.Name) == "":
		return &entities.ValidationError{Field: "name", Reason: "required"}
	case it.Qty <= 0:
		return &entities.ValidationError{Field: "qty", Reason: "must be a positive integer"}
	case it.Price <= 0 || math.IsInf(it.Price, 0) || math.IsNaN(it.Price):
		return &entities.ValidationError{Field: "price", Reason: "must be a positive number"}
	}
	return nil
}

func requireRole(actor entities.Actor, role entities.Role, event string) error {
	if actor.Role != role {
		return &forbiddenError{event: event, role: actor.Role}
	}
	return nil
}

func requireStatus(p entities.Pickup, want entities.Status, event string) error {
	if p.Status != want {
		return &entities.TransitionError{Event: event, Status: p.Status}
	}
	return nil
}

type forbiddenError struct {
	event string
	role  entities.Role
}

func (e *forbiddenError) Error() string {
	return "role " + strconv.Quote(string(e.role)) + " may not " + e.event + " a pickup"
}

func (e *forbiddenError) Unwrap() error {
	return entities.ErrForbidden
}

func toValidationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return &entities.ValidationError{Field: fieldName(fe.Field()), Reason: fe.Tag()}
	}
	return err
}

func fieldName(f string) string {
	switch f {
	case "TimeSlot":
		return "timeSlot"
	case "MapLink":
		return "mapLink"
	default:
		return strings.ToLower(f)
	}
}
