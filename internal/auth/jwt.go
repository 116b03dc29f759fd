// Package auth turns bearer tokens into lifecycle actors.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("unauthorized")

type claims struct {
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// FromHeader parses an "Authorization: Bearer <jwt>" value.
func (v *Verifier) FromHeader(header string) (entities.Actor, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return entities.Actor{}, fmt.Errorf("%w: invalid authorization header", ErrUnauthorized)
	}
	return v.Parse(strings.TrimSpace(token))
}

func (v *Verifier) Parse(token string) (entities.Actor, error) {
	if len(v.secret) == 0 {
		return entities.Actor{}, fmt.Errorf("%w: jwt secret is empty", ErrUnauthorized)
	}

	tok, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return entities.Actor{}, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	actor := entities.Actor{
		Role:      entities.Role(strings.ToLower(c.Role)),
		Phone:     c.Phone,
		PartnerID: c.PartnerID,
	}
	if actor.Role == entities.RolePartner && actor.PartnerID == "" {
		actor.PartnerID = c.Subject
	}
	if err := actor.Validate(); err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return actor, nil
}

// Sign mints a token for actor. Tokens are normally issued by the login flow;
// the agent uses this only in tests and dev tooling.
func Sign(secret string, actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role:      string(actor.Role),
		Phone:     actor.Phone,
		PartnerID: actor.PartnerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}
