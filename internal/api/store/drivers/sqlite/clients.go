package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.APIClient) error {
	return mapConflict(r.q.CreateClient(ctx, gen.CreateClientParams{
		ID:         c.ID,
		Name:       c.Name,
		SecretHash: c.SecretHash,
		IsActive:   c.IsActive,
	}))
}

func (r *clientsRepo) GetClientByName(ctx context.Context, name string) (domain.APIClient, error) {
	row, err := r.q.GetClientByName(ctx, name)
	if err != nil {
		return domain.APIClient{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.APIClient, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.APIClient{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.APIClient, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.APIClient, len(rows))
	for i, row := range rows {
		clients[i] = mapClient(row)
	}
	return clients, nil
}

func (r *clientsRepo) SetClientActive(ctx context.Context, id string, active bool) error {
	return r.q.SetClientActive(ctx, gen.SetClientActiveParams{
		IsActive: active,
		ID:       id,
	})
}

func (r *clientsRepo) RecordClientUsage(ctx context.Context, id string, at time.Time) error {
	return r.q.RecordClientUsage(ctx, gen.RecordClientUsageParams{
		LastUsedAt: sql.NullTime{Time: at, Valid: true},
		ID:         id,
	})
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	return r.q.DeleteClient(ctx, id)
}
