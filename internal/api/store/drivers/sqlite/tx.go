package sqlite

import (
	"context"
	"database/sql"

	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB
// stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed.
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations are applied before any tx starts.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Clients() store.Clients   { return &clientsRepo{q: t.q} }
func (t *txStore) Topics() store.Topics     { return &topicsRepo{q: t.q} }
func (t *txStore) Sources() store.Sources   { return &sourcesRepo{q: t.q} }
func (t *txStore) Articles() store.Articles { return &articlesRepo{q: t.q} }
