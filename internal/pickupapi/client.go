// Package pickupapi is the typed client of the external /pickups REST collaborator.
package pickupapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/go-playground/validator/v10"
)

type Client struct {
	logger   *slog.Logger
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func NewClient(logger *slog.Logger, cfg config.PickupAPI) *Client {
	return &Client{
		logger:   logger.With(slog.String("client", "pickup_api")),
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
	}
}

// List returns every pickup the collaborator holds. Records that fail validation are skipped.
func (c *Client) List(ctx context.Context) ([]entities.Pickup, error) {
	var raw []Pickup
	if err := c.do(ctx, "list", http.MethodGet, "/pickups", nil, &raw); err != nil {
		return nil, err
	}

	result := make([]entities.Pickup, 0, len(raw))
	for _, p := range raw {
		if err := c.validate.Struct(p); err != nil {
			recordsDropped.Inc()
			c.logger.WarnContext(ctx, "skipping invalid pickup record", slog.String("id", p.ID), slog.Any("error", err))
			continue
		}
		result = append(result, PickupJSONToEntity(p))
	}
	return result, nil
}

func (c *Client) Get(ctx context.Context, id string) (entities.Pickup, error) {
	var raw Pickup
	if err := c.do(ctx, "get", http.MethodGet, "/pickups/"+url.PathEscape(id), nil, &raw); err != nil {
		return entities.Pickup{}, err
	}
	if err := c.validate.Struct(raw); err != nil {
		return entities.Pickup{}, fmt.Errorf("%w: invalid pickup record %s: %v", entities.ErrCollaborator, id, err)
	}
	return PickupJSONToEntity(raw), nil
}

func (c *Client) Create(ctx context.Context, p entities.Pickup) error {
	return c.do(ctx, "create", http.MethodPost, "/pickups", PickupEntityToJSON(p), nil)
}

func (c *Client) Patch(ctx context.Context, id string, patch entities.PickupPatch) error {
	return c.do(ctx, "patch", http.MethodPatch, "/pickups/"+url.PathEscape(id), PatchEntityToJSON(patch), nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(op, resultLabel(err)).Inc()
	}()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", entities.ErrCollaborator, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.ErrPickupNotFound
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: status %d: %s", entities.ErrCollaborator, method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", entities.ErrCollaborator, op, err)
	}
	return nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrPickupNotFound):
		return "not_found"
	default:
		return "error"
	}
}
