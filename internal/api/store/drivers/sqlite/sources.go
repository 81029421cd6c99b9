package sqlite

import (
	"context"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"
)

type sourcesRepo struct {
	q *gen.Queries
}

func (r *sourcesRepo) CreateSource(ctx context.Context, s domain.Source) error {
	return mapConflict(r.q.CreateSource(ctx, gen.CreateSourceParams{
		ID:          s.ID,
		Name:        s.Name,
		HomepageUrl: mapStringNull(s.HomepageURL),
		LogoUrl:     mapStringNull(s.LogoURL),
		IsEnabled:   s.IsEnabled,
	}))
}

func (r *sourcesRepo) GetSourceByID(ctx context.Context, id string) (domain.Source, error) {
	row, err := r.q.GetSourceByID(ctx, id)
	if err != nil {
		return domain.Source{}, mapNotFound(err)
	}
	return mapSource(row), nil
}

func (r *sourcesRepo) ListSources(ctx context.Context) ([]domain.Source, error) {
	rows, err := r.q.ListSources(ctx)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.Source, len(rows))
	for i, row := range rows {
		sources[i] = mapSource(row)
	}
	return sources, nil
}

func (r *sourcesRepo) UpdateSource(ctx context.Context, s domain.Source) error {
	return r.q.UpdateSource(ctx, gen.UpdateSourceParams{
		Name:        s.Name,
		HomepageUrl: mapStringNull(s.HomepageURL),
		LogoUrl:     mapStringNull(s.LogoURL),
		IsEnabled:   s.IsEnabled,
		ID:          s.ID,
	})
}

func (r *sourcesRepo) DeleteSource(ctx context.Context, id string) error {
	return r.q.DeleteSource(ctx, id)
}
