package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlinehq/newswire/pkg/apisdk"
)

func TestClientLifecycle(t *testing.T) {
	baseURL, adminToken := setupServer(t)
	ctx := t.Context()

	admin := apisdk.NewAdminClient(baseURL, adminToken)

	created, err := admin.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)
	require.NotEmpty(t, created.Secret)
	require.True(t, created.IsActive)

	apiKey := created.Name + "." + created.Secret
	sdk := apisdk.NewSDKClient(baseURL, apiKey)

	// The fresh credential works immediately.
	_, err = sdk.ListTopics(ctx)
	require.NoError(t, err)

	t.Run("listing never exposes secret material", func(t *testing.T) {
		clients, err := admin.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "weather-svc", clients[0].Name)
	})

	t.Run("deactivation takes effect immediately", func(t *testing.T) {
		require.NoError(t, admin.DeactivateClient(ctx, created.ID))

		_, err := sdk.ListTopics(ctx)
		var apiErr *apisdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "invalid or inactive credential", apiErr.Detail)
	})

	t.Run("reactivation restores access with the same secret", func(t *testing.T) {
		require.NoError(t, admin.ActivateClient(ctx, created.ID))

		_, err := sdk.ListTopics(ctx)
		require.NoError(t, err)
	})

	t.Run("deletion revokes the credential", func(t *testing.T) {
		require.NoError(t, admin.DeleteClient(ctx, created.ID))

		_, err := sdk.ListTopics(ctx)
		var apiErr *apisdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestClientAdminSurfaceRequiresToken(t *testing.T) {
	baseURL, _ := setupServer(t)
	ctx := t.Context()

	t.Run("no token", func(t *testing.T) {
		anon := apisdk.NewAdminClient(baseURL, "")
		_, err := anon.CreateClient(ctx, "sneaky")

		var apiErr *apisdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, apisdk.ErrorCodeAuthRequired, apiErr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		bogus := apisdk.NewAdminClient(baseURL, "not-a-jwt")
		_, err := bogus.ListClients(ctx)

		var apiErr *apisdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestClientDuplicateName(t *testing.T) {
	baseURL, adminToken := setupServer(t)
	ctx := t.Context()

	admin := apisdk.NewAdminClient(baseURL, adminToken)

	_, err := admin.CreateClient(ctx, "crawler")
	require.NoError(t, err)

	_, err = admin.CreateClient(ctx, "crawler")
	var apiErr *apisdk.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, apisdk.ErrorCodeConflict, apiErr.Code)
}
