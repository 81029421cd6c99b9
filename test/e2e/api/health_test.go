package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlinehq/newswire/pkg/apisdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, _ := setupServer(t)
	ctx := t.Context()

	sdk := apisdk.NewSDKClient(baseURL, "")

	t.Run("livez", func(t *testing.T) {
		health, err := sdk.GetLiveness(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", health.Status)
		assert.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := sdk.GetReadiness(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		assert.Equal(t, "ok", health.Checks.Database)
	})
}
