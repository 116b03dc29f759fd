package repo

import (
	"context"
	"fmt"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// draftRepo keeps partners' working item lists on the device until they are submitted.
type draftRepo struct {
	db        *sqlx.DB
	qb        sq.StatementBuilderType
	txManager trm.Manager
}

func NewDraftRepo(db *sqlx.DB, txManager trm.Manager) *draftRepo {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.DriverName() == "postgres" {
		placeholder = sq.Dollar
	}
	return &draftRepo{
		db:        db,
		qb:        sq.StatementBuilder.PlaceholderFormat(placeholder),
		txManager: txManager,
	}
}

func (r *draftRepo) Items(ctx context.Context, pickupID string) ([]entities.Item, error) {
	query, args := r.qb.Select("pickup_id", "position", "name", "qty", "price").
		From("draft_items").
		Where(sq.Eq{"pickup_id": pickupID}).
		OrderBy("position").
		MustSql()

	var rows []DraftItem
	if err := trm.QuerierFrom(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select draft items: %w", err)
	}

	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, DraftItemToEntity(row))
	}
	return items, nil
}

// ReplaceItems stores items as the whole working list of the pickup.
func (r *draftRepo) ReplaceItems(ctx context.Context, pickupID string, items []entities.Item) error {
	return r.txManager.Do(ctx, func(ctx context.Context) error {
		if err := r.Clear(ctx, pickupID); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		q := r.qb.Insert("draft_items").
			Columns("pickup_id", "position", "name", "qty", "price")
		for i, it := range items {
			q = q.Values(pickupID, i, it.Name, it.Qty, it.Price)
		}

		query, args := q.MustSql()
		if _, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save draft items: %w", err)
		}
		return nil
	})
}

func (r *draftRepo) Clear(ctx context.Context, pickupID string) error {
	query, args := r.qb.Delete("draft_items").
		Where(sq.Eq{"pickup_id": pickupID}).
		MustSql()

	if _, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear draft items: %w", err)
	}
	return nil
}
