package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlinehq/newswire/pkg/apisdk"
)

// TestGateTaxonomy exercises the credential rejection table over the wire.
func TestGateTaxonomy(t *testing.T) {
	baseURL, adminToken := setupServer(t)
	ctx := t.Context()

	admin := apisdk.NewAdminClient(baseURL, adminToken)
	created, err := admin.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)

	tests := []struct {
		name       string
		apiKey     string
		wantDetail string
	}{
		{"missing credential", "", "credential is required"},
		{"no delimiter", "justonetoken", "invalid credential format"},
		{"empty secret", "weather-svc.", "malformed credential"},
		{"empty name", ".secret", "malformed credential"},
		{"unknown client", "ghost." + created.Secret, "invalid or inactive credential"},
		{"wrong secret", "weather-svc.nope", "invalid or inactive credential"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/articles", nil)
			require.NoError(t, err)
			if tc.apiKey != "" {
				req.Header.Set(apisdk.HeaderAPIKey, tc.apiKey)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body apisdk.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, apisdk.ErrorCodeAuthRequired, body.Error)
			assert.Equal(t, tc.wantDetail, body.Detail)
		})
	}
}

// TestGateUsageAccounting verifies admissions are counted and visible on
// the admin surface.
func TestGateUsageAccounting(t *testing.T) {
	baseURL, adminToken := setupServer(t)
	ctx := t.Context()

	admin := apisdk.NewAdminClient(baseURL, adminToken)
	created, err := admin.CreateClient(ctx, "crawler")
	require.NoError(t, err)

	sdk := apisdk.NewSDKClient(baseURL, created.Name+"."+created.Secret)

	const calls = 5
	for range calls {
		_, err := sdk.ListTopics(ctx)
		require.NoError(t, err)
	}

	// A failed attempt must not count.
	bad := apisdk.NewSDKClient(baseURL, created.Name+".wrong")
	_, err = bad.ListTopics(ctx)
	require.Error(t, err)

	clients, err := admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, int64(calls), clients[0].UseCount)
	assert.NotNil(t, clients[0].LastUsedAt)
}
