package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateSource registers a new news source.
func (c *SDKClient) CreateSource(ctx context.Context, req CreateSourceRequest) (*SourceResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/sources", req)
	if err != nil {
		return nil, err
	}

	var out SourceResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSource fetches a single source by id.
func (c *SDKClient) GetSource(ctx context.Context, id string) (*SourceResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/sources/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out SourceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSources returns every source.
func (c *SDKClient) ListSources(ctx context.Context) ([]SourceResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/sources", nil)
	if err != nil {
		return nil, err
	}

	var out SourceListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Sources, nil
}

// UpdateSource applies a partial update to a source.
func (c *SDKClient) UpdateSource(ctx context.Context, id string, req UpdateSourceRequest) (*SourceResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/v1/sources/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out SourceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSource removes a source and, by cascade, its articles.
func (c *SDKClient) DeleteSource(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/v1/sources/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
