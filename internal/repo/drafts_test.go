package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/storage"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDraftRepoTest(t *testing.T) (*draftRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewDraftRepo(db, trm.NewManager(db)), mock
}

func TestDraftRepo_Items(t *testing.T) {
	r, mock := setupDraftRepoTest(t)

	rows := sqlmock.NewRows([]string{"pickup_id", "position", "name", "qty", "price"}).
		AddRow("1", 0, "Shirt", 2, 150.0).
		AddRow("1", 1, "Pants", 1, 300.0)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT pickup_id, position, name, qty, price FROM draft_items WHERE pickup_id = ? ORDER BY position`,
	)).WithArgs("1").WillReturnRows(rows)

	items, err := r.Items(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []entities.Item{
		{Name: "Shirt", Qty: 2, Price: 150},
		{Name: "Pants", Qty: 1, Price: 300},
	}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_PostgresPlaceholders(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	r := NewDraftRepo(db, trm.NewManager(db))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT pickup_id, position, name, qty, price FROM draft_items WHERE pickup_id = $1 ORDER BY position`,
	)).WithArgs("7").WillReturnRows(sqlmock.NewRows([]string{"pickup_id", "position", "name", "qty", "price"}))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM draft_items WHERE pickup_id = $1`)).
		WithArgs("7").
		WillReturnResult(sqlmock.NewResult(0, 0))

	items, err := r.Items(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, r.Clear(context.Background(), "7"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_ItemsError(t *testing.T) {
	r, mock := setupDraftRepoTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM draft_items`).WillReturnError(errors.New("disk I/O error"))

	_, err := r.Items(context.Background(), "1")
	assert.ErrorContains(t, err, "failed to select draft items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_ReplaceItems(t *testing.T) {
	r, mock := setupDraftRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM draft_items WHERE pickup_id = ?`)).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO draft_items`).
		WithArgs("1", 0, "Shirt", 2, 150.0, "1", 1, "Pants", 1, 300.0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := r.ReplaceItems(context.Background(), "1", []entities.Item{
		{Name: "Shirt", Qty: 2, Price: 150},
		{Name: "Pants", Qty: 1, Price: 300},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_ReplaceItemsRollback(t *testing.T) {
	r, mock := setupDraftRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM draft_items`).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO draft_items`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := r.ReplaceItems(context.Background(), "1", []entities.Item{{Name: "Shirt", Qty: 2, Price: 150}})
	assert.ErrorContains(t, err, "failed to save draft items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_ReplaceWithEmptyClears(t *testing.T) {
	r, mock := setupDraftRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM draft_items`).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, r.ReplaceItems(context.Background(), "1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := storage.New(ctx, config.Drafts{
		Driver:       "sqlite3",
		DSN:          "file:drafts_repo_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	defer db.Close()

	r := NewDraftRepo(db, trm.NewManager(db))

	items, err := r.Items(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, r.ReplaceItems(ctx, "1", []entities.Item{
		{Name: "Shirt", Qty: 2, Price: 150},
		{Name: "Pants", Qty: 1, Price: 300},
	}))
	require.NoError(t, r.ReplaceItems(ctx, "2", []entities.Item{{Name: "Cap", Qty: 1, Price: 50}}))
	require.NoError(t, r.ReplaceItems(ctx, "1", []entities.Item{{Name: "Pants", Qty: 1, Price: 300}}))

	items, err = r.Items(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []entities.Item{{Name: "Pants", Qty: 1, Price: 300}}, items)

	require.NoError(t, r.Clear(ctx, "1"))
	items, err = r.Items(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = r.Items(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
