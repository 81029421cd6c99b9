package sqlite

import (
	"context"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"
)

type topicsRepo struct {
	q *gen.Queries
}

func (r *topicsRepo) CreateTopic(ctx context.Context, t domain.Topic) error {
	return mapConflict(r.q.CreateTopic(ctx, gen.CreateTopicParams{
		ID:            t.ID,
		Label:         t.Label,
		CoverageScore: t.CoverageScore,
	}))
}

func (r *topicsRepo) GetTopicByID(ctx context.Context, id string) (domain.Topic, error) {
	row, err := r.q.GetTopicByID(ctx, id)
	if err != nil {
		return domain.Topic{}, mapNotFound(err)
	}
	return mapTopic(row), nil
}

func (r *topicsRepo) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := r.q.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	topics := make([]domain.Topic, len(rows))
	for i, row := range rows {
		topics[i] = mapTopic(row)
	}
	return topics, nil
}

func (r *topicsRepo) UpdateTopic(ctx context.Context, t domain.Topic) error {
	return r.q.UpdateTopic(ctx, gen.UpdateTopicParams{
		Label:         t.Label,
		CoverageScore: t.CoverageScore,
		ID:            t.ID,
	})
}

func (r *topicsRepo) DeleteTopic(ctx context.Context, id string) error {
	return r.q.DeleteTopic(ctx, id)
}
