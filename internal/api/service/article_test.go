package service

import (
	"context"
	"testing"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestArticleService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	articles := &ArticleService{Store: s}
	topics := &TopicService{Store: s}
	sources := &SourceService{Store: s}

	topic, err := topics.CreateTopic(ctx, "climate")
	require.NoError(t, err)

	source, err := sources.CreateSource(ctx, domain.Source{
		Name:        "The Daily Ledger",
		HomepageURL: "https://ledger.example.com",
		IsEnabled:   true,
	})
	require.NoError(t, err)

	t.Run("create with relations", func(t *testing.T) {
		got, err := articles.CreateArticle(ctx, domain.Article{
			Title:    "Sea levels rise again",
			URL:      "https://ledger.example.com/sea-levels",
			Brief:    "Another record year.",
			TopicID:  topic.ID,
			SourceID: source.ID,
			AddedAt:  time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, topic.ID, got.TopicID)
		assert.Equal(t, source.ID, got.SourceID)
	})

	t.Run("create without relations", func(t *testing.T) {
		got, err := articles.CreateArticle(ctx, domain.Article{
			Title:   "Untagged wire story",
			URL:     "https://example.com/wire",
			AddedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Empty(t, got.TopicID)
		assert.Empty(t, got.SourceID)
	})

	t.Run("create with unknown topic fails", func(t *testing.T) {
		_, err := articles.CreateArticle(ctx, domain.Article{
			Title:   "Dangling reference",
			URL:     "https://example.com/dangling",
			TopicID: "01K0000000000000000000MISS",
			AddedAt: time.Now().UTC(),
		})
		require.ErrorIs(t, err, ErrTopicNotFound)
	})

	t.Run("create with unknown source fails", func(t *testing.T) {
		_, err := articles.CreateArticle(ctx, domain.Article{
			Title:    "Dangling reference",
			URL:      "https://example.com/dangling",
			SourceID: "01K0000000000000000000MISS",
			AddedAt:  time.Now().UTC(),
		})
		require.ErrorIs(t, err, ErrSourceNotFound)
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	articles := &ArticleService{Store: s}
	topics := &TopicService{Store: s}

	topic, err := topics.CreateTopic(ctx, "markets")
	require.NoError(t, err)

	article, err := articles.CreateArticle(ctx, domain.Article{
		Title:   "Opening bell",
		URL:     "https://example.com/bell",
		Brief:   "Stocks opened flat.",
		AddedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("patch touches only the provided fields", func(t *testing.T) {
		got, err := articles.UpdateArticle(ctx, article.ID, domain.ArticlePatch{
			Title:   ptr("Closing bell"),
			TopicID: ptr(topic.ID),
		})
		require.NoError(t, err)
		assert.Equal(t, "Closing bell", got.Title)
		assert.Equal(t, topic.ID, got.TopicID)
		assert.Equal(t, article.URL, got.URL)
		assert.Equal(t, article.Brief, got.Brief)
	})

	t.Run("patch with unknown source rolls back", func(t *testing.T) {
		before, err := articles.GetArticle(ctx, article.ID)
		require.NoError(t, err)

		_, err = articles.UpdateArticle(ctx, article.ID, domain.ArticlePatch{
			Title:    ptr("Should not stick"),
			SourceID: ptr("01K0000000000000000000MISS"),
		})
		require.ErrorIs(t, err, ErrSourceNotFound)

		after, err := articles.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Title, after.Title)
	})

	t.Run("unknown article", func(t *testing.T) {
		_, err := articles.UpdateArticle(ctx, "01K0000000000000000000MISS", domain.ArticlePatch{
			Title: ptr("nope"),
		})
		require.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestArticleService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	articles := &ArticleService{Store: s}
	topics := &TopicService{Store: s}

	topic, err := topics.CreateTopic(ctx, "sport")
	require.NoError(t, err)

	base := time.Now().UTC().Truncate(time.Second)
	var last domain.Article
	for i := range 3 {
		last, err = articles.CreateArticle(ctx, domain.Article{
			Title:   "Match report",
			URL:     "https://example.com/match",
			TopicID: topic.ID,
			AddedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	t.Run("list is newest first", func(t *testing.T) {
		all, err := articles.ListArticles(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, last.ID, all[0].ID)
	})

	t.Run("list by topic checks the topic exists", func(t *testing.T) {
		byTopic, err := articles.ListArticlesByTopic(ctx, topic.ID)
		require.NoError(t, err)
		assert.Len(t, byTopic, 3)

		_, err = articles.ListArticlesByTopic(ctx, "01K0000000000000000000MISS")
		require.ErrorIs(t, err, ErrTopicNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, articles.DeleteArticle(ctx, last.ID))

		_, err := articles.GetArticle(ctx, last.ID)
		require.ErrorIs(t, err, ErrArticleNotFound)

		require.ErrorIs(t, articles.DeleteArticle(ctx, last.ID), ErrArticleNotFound)
	})
}
