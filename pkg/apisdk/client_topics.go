package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateTopic registers a new topic.
func (c *SDKClient) CreateTopic(ctx context.Context, req CreateTopicRequest) (*TopicResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/topics", req)
	if err != nil {
		return nil, err
	}

	var out TopicResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTopic fetches a single topic by id.
func (c *SDKClient) GetTopic(ctx context.Context, id string) (*TopicResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/topics/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out TopicResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTopics returns every topic.
func (c *SDKClient) ListTopics(ctx context.Context) ([]TopicResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/topics", nil)
	if err != nil {
		return nil, err
	}

	var out TopicListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Topics, nil
}

// UpdateTopic applies a partial update to a topic.
func (c *SDKClient) UpdateTopic(ctx context.Context, id string, req UpdateTopicRequest) (*TopicResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/v1/topics/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out TopicResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTopic removes a topic and, by cascade, its articles.
func (c *SDKClient) DeleteTopic(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/v1/topics/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
