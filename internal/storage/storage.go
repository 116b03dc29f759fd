package storage

import (
	"context"
	"fmt"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS draft_items (
	pickup_id TEXT NOT NULL,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	qty       INTEGER NOT NULL CHECK (qty > 0),
	price     DOUBLE PRECISION NOT NULL CHECK (price > 0),
	PRIMARY KEY (pickup_id, position)
)`

// New opens the draft store and makes sure the schema exists.
func New(ctx context.Context, cfg config.Drafts) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
