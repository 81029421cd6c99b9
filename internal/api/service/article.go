package service

import (
	"context"
	"errors"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/idx"
)

var ErrArticleNotFound = errors.New("article not found")

// DefaultArticlePageSize bounds unpaged article listings.
const DefaultArticlePageSize = 50

// ArticleService manages articles and their topic/source relationships.
type ArticleService struct {
	Store store.Store
}

// CreateArticle persists a new article. Referenced topics and sources
// must exist; the check and insert run in one transaction.
func (s *ArticleService) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	a.ID = idx.New().String()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkRelations(ctx, tx, a); err != nil {
			return err
		}
		return tx.Articles().CreateArticle(ctx, a)
	})
	if err != nil {
		return domain.Article{}, err
	}

	return s.GetArticle(ctx, a.ID)
}

func (s *ArticleService) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	article, err := s.Store.Articles().GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Article{}, ErrArticleNotFound
		}
		return domain.Article{}, err
	}
	return article, nil
}

// ListArticles returns a page of articles, newest first. A non-positive
// limit falls back to DefaultArticlePageSize.
func (s *ArticleService) ListArticles(ctx context.Context, limit, offset int64) ([]domain.Article, error) {
	if limit <= 0 {
		limit = DefaultArticlePageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.Store.Articles().ListArticles(ctx, limit, offset)
}

// ListArticlesByTopic returns all of a topic's articles, newest first.
func (s *ArticleService) ListArticlesByTopic(ctx context.Context, topicID string) ([]domain.Article, error) {
	if _, err := s.Store.Topics().GetTopicByID(ctx, topicID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return s.Store.Articles().ListArticlesByTopic(ctx, topicID)
}

// UpdateArticle applies the non-nil patch fields atomically.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) (domain.Article, error) {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		article, err := tx.Articles().GetArticleByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		patch.Apply(&article)
		if err := checkRelations(ctx, tx, article); err != nil {
			return err
		}
		return tx.Articles().UpdateArticle(ctx, article)
	})
	if err != nil {
		return domain.Article{}, err
	}

	return s.GetArticle(ctx, id)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	if _, err := s.GetArticle(ctx, id); err != nil {
		return err
	}
	return s.Store.Articles().DeleteArticle(ctx, id)
}

// checkRelations verifies that the article's optional topic and source
// references resolve.
func checkRelations(ctx context.Context, tx store.Tx, a domain.Article) error {
	if a.TopicID != "" {
		if _, err := tx.Topics().GetTopicByID(ctx, a.TopicID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTopicNotFound
			}
			return err
		}
	}
	if a.SourceID != "" {
		if _, err := tx.Sources().GetSourceByID(ctx, a.SourceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSourceNotFound
			}
			return err
		}
	}
	return nil
}
