package store

import (
	"context"
	"errors"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Clients() Clients
	Topics() Topics
	Sources() Sources
	Articles() Articles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Clients is the client directory: durable storage and lookup of API
// clients and their usage stats.
type Clients interface {
	// CreateClient inserts a new client (id is provided by the app via
	// ULID). Returns ErrAlreadyExists when name or secret_hash collide.
	CreateClient(ctx context.Context, c domain.APIClient) error

	// GetClientByName is an exact, case-sensitive lookup regardless of the
	// active flag; the caller decides how to treat inactive matches.
	GetClientByName(ctx context.Context, name string) (domain.APIClient, error)

	// GetClientByID fetches a client by id.
	GetClientByID(ctx context.Context, id string) (domain.APIClient, error)

	// ListClients returns all clients ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.APIClient, error)

	// SetClientActive toggles the active flag.
	SetClientActive(ctx context.Context, id string, active bool) error

	// RecordClientUsage sets last_used_at and increments use_count by one.
	// The increment happens in the database so concurrent calls never lose
	// updates.
	RecordClientUsage(ctx context.Context, id string, at time.Time) error

	// DeleteClient removes a client. No cascades apply to clients.
	DeleteClient(ctx context.Context, id string) error
}

type Topics interface {
	CreateTopic(ctx context.Context, t domain.Topic) error
	GetTopicByID(ctx context.Context, id string) (domain.Topic, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// UpdateTopic persists label and coverage_score and bumps updated_at.
	UpdateTopic(ctx context.Context, t domain.Topic) error

	// DeleteTopic cascades to the topic's articles (per schema).
	DeleteTopic(ctx context.Context, id string) error
}

type Sources interface {
	CreateSource(ctx context.Context, s domain.Source) error
	GetSourceByID(ctx context.Context, id string) (domain.Source, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
	UpdateSource(ctx context.Context, s domain.Source) error

	// DeleteSource cascades to the source's articles (per schema).
	DeleteSource(ctx context.Context, id string) error
}

type Articles interface {
	CreateArticle(ctx context.Context, a domain.Article) error
	GetArticleByID(ctx context.Context, id string) (domain.Article, error)

	// ListArticles returns articles newest first, paged by limit/offset.
	ListArticles(ctx context.Context, limit, offset int64) ([]domain.Article, error)

	// ListArticlesByTopic returns a topic's articles newest first.
	ListArticlesByTopic(ctx context.Context, topicID string) ([]domain.Article, error)

	UpdateArticle(ctx context.Context, a domain.Article) error
	DeleteArticle(ctx context.Context, id string) error
}
