package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateClient registers a new API client and returns its plaintext
// secret. This is the only time the secret is available; store it.
// Requires AdminToken.
func (c *SDKClient) CreateClient(ctx context.Context, name string) (*CreateClientResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/clients", CreateClientRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out CreateClientResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns every registered API client. Requires AdminToken.
func (c *SDKClient) ListClients(ctx context.Context) ([]ClientResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/clients", nil)
	if err != nil {
		return nil, err
	}

	var out ClientListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

// ActivateClient re-enables a deactivated client. Requires AdminToken.
func (c *SDKClient) ActivateClient(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/clients/"+url.PathEscape(id)+"/activate", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeactivateClient disables a client without deleting it. Its credentials
// stop being accepted immediately. Requires AdminToken.
func (c *SDKClient) DeactivateClient(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/clients/"+url.PathEscape(id)+"/deactivate", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteClient removes a client permanently. Requires AdminToken.
func (c *SDKClient) DeleteClient(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/v1/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
