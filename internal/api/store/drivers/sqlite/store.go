package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; funnel everything through one
	// connection so the pragmas below apply to every statement.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is safe to call after a successful commit.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Clients() store.Clients   { return &clientsRepo{q: s.q} }
func (s *Store) Topics() store.Topics     { return &topicsRepo{q: s.q} }
func (s *Store) Sources() store.Sources   { return &sourcesRepo{q: s.q} }
func (s *Store) Articles() store.Articles { return &articlesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates sqlite unique-constraint violations into the
// store sentinel.
func mapConflict(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapClient(row gen.ApiClient) domain.APIClient {
	return domain.APIClient{
		ID:         row.ID,
		Name:       row.Name,
		SecretHash: row.SecretHash,
		IsActive:   row.IsActive,
		UseCount:   row.UseCount,
		LastUsedAt: mapNullTimePtr(row.LastUsedAt),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapTopic(row gen.Topic) domain.Topic {
	return domain.Topic{
		ID:            row.ID,
		Label:         row.Label,
		CoverageScore: row.CoverageScore,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapSource(row gen.Source) domain.Source {
	return domain.Source{
		ID:          row.ID,
		Name:        row.Name,
		HomepageURL: mapNullString(row.HomepageUrl),
		LogoURL:     mapNullString(row.LogoUrl),
		IsEnabled:   row.IsEnabled,
		CreatedAt:   row.CreatedAt,
	}
}

func mapArticle(row gen.Article) domain.Article {
	return domain.Article{
		ID:       row.ID,
		Title:    row.Title,
		URL:      row.Url,
		ImageURL: mapNullString(row.ImageUrl),
		Brief:    mapNullString(row.Brief),
		TopicID:  mapNullString(row.TopicID),
		SourceID: mapNullString(row.SourceID),
		AddedAt:  row.AddedAt,
	}
}
