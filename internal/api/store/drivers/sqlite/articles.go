package sqlite

import (
	"context"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite/gen"
)

type articlesRepo struct {
	q *gen.Queries
}

func (r *articlesRepo) CreateArticle(ctx context.Context, a domain.Article) error {
	return mapConflict(r.q.CreateArticle(ctx, gen.CreateArticleParams{
		ID:       a.ID,
		Title:    a.Title,
		Url:      a.URL,
		ImageUrl: mapStringNull(a.ImageURL),
		Brief:    mapStringNull(a.Brief),
		TopicID:  mapStringNull(a.TopicID),
		SourceID: mapStringNull(a.SourceID),
	}))
}

func (r *articlesRepo) GetArticleByID(ctx context.Context, id string) (domain.Article, error) {
	row, err := r.q.GetArticleByID(ctx, id)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return mapArticle(row), nil
}

func (r *articlesRepo) ListArticles(ctx context.Context, limit, offset int64) ([]domain.Article, error) {
	rows, err := r.q.ListArticles(ctx, gen.ListArticlesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = mapArticle(row)
	}
	return articles, nil
}

func (r *articlesRepo) ListArticlesByTopic(ctx context.Context, topicID string) ([]domain.Article, error) {
	rows, err := r.q.ListArticlesByTopic(ctx, mapStringNull(topicID))
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = mapArticle(row)
	}
	return articles, nil
}

func (r *articlesRepo) UpdateArticle(ctx context.Context, a domain.Article) error {
	return r.q.UpdateArticle(ctx, gen.UpdateArticleParams{
		Title:    a.Title,
		Url:      a.URL,
		ImageUrl: mapStringNull(a.ImageURL),
		Brief:    mapStringNull(a.Brief),
		TopicID:  mapStringNull(a.TopicID),
		SourceID: mapStringNull(a.SourceID),
		ID:       a.ID,
	})
}

func (r *articlesRepo) DeleteArticle(ctx context.Context, id string) error {
	return r.q.DeleteArticle(ctx, id)
}
