package apisdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateArticle publishes a new article.
func (c *SDKClient) CreateArticle(ctx context.Context, req CreateArticleRequest) (*ArticleResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/articles", req)
	if err != nil {
		return nil, err
	}

	var out ArticleResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArticle fetches a single article by id.
func (c *SDKClient) GetArticle(ctx context.Context, id string) (*ArticleResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/articles/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out ArticleResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListArticles returns a page of articles, newest first. A topicID filter
// may be supplied with ListArticlesByTopic instead.
func (c *SDKClient) ListArticles(ctx context.Context, limit, offset int64) ([]ArticleResponse, error) {
	path := fmt.Sprintf("/v1/articles?limit=%d&offset=%d", limit, offset)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out ArticleListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// ListArticlesByTopic returns every article tagged with the given topic,
// newest first.
func (c *SDKClient) ListArticlesByTopic(ctx context.Context, topicID string) ([]ArticleResponse, error) {
	path := "/v1/articles?topic_id=" + url.QueryEscape(topicID)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out ArticleListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// UpdateArticle applies a partial update to an article.
func (c *SDKClient) UpdateArticle(ctx context.Context, id string, req UpdateArticleRequest) (*ArticleResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/v1/articles/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out ArticleResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArticle removes an article permanently.
func (c *SDKClient) DeleteArticle(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/v1/articles/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
