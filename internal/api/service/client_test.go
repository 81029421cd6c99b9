package service

import (
	"context"
	"testing"

	"github.com/headlinehq/newswire/pkg/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()
	clients := &ClientService{Store: newTestStore(t)}

	t.Run("returns the plaintext secret exactly once", func(t *testing.T) {
		client, secret, err := clients.CreateClient(ctx, "weather-svc")
		require.NoError(t, err)

		assert.NotEmpty(t, client.ID)
		assert.True(t, client.IsActive)
		assert.NotEmpty(t, secret)

		// Only the hash hits the directory.
		assert.NotEqual(t, secret, client.SecretHash)
		assert.NotContains(t, client.SecretHash, secret)
		require.NoError(t, cryptox.VerifySecret(secret, client.SecretHash))
	})

	t.Run("two clients never share a secret", func(t *testing.T) {
		_, s1, err := clients.CreateClient(ctx, "svc-one")
		require.NoError(t, err)
		_, s2, err := clients.CreateClient(ctx, "svc-two")
		require.NoError(t, err)
		assert.NotEqual(t, s1, s2)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, _, err := clients.CreateClient(ctx, "weather-svc")
		require.ErrorIs(t, err, ErrClientExists)
	})
}

func TestClientService_CreateClient_NameValidation(t *testing.T) {
	ctx := context.Background()
	clients := &ClientService{Store: newTestStore(t)}

	tests := []struct {
		name       string
		clientName string
		wantErr    error
	}{
		{"empty", "", ErrInvalidClientName},
		{"whitespace only", "   ", ErrInvalidClientName},
		{"contains delimiter", "weather.svc", ErrInvalidClientName},
		{"leading delimiter", ".weather", ErrInvalidClientName},
		{"trailing delimiter", "weather.", ErrInvalidClientName},
		{"bare delimiter", ".", ErrInvalidClientName},
		{"valid mixed charset", "abc-123_XYZ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := clients.CreateClient(ctx, tc.clientName)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClientService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	clients := &ClientService{Store: newTestStore(t)}

	client, _, err := clients.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		got, err := clients.GetClient(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, client.Name, got.Name)
	})

	t.Run("list includes the client", func(t *testing.T) {
		all, err := clients.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		require.NoError(t, clients.SetActive(ctx, client.ID, false))

		got, err := clients.GetClient(ctx, client.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		require.NoError(t, clients.SetActive(ctx, client.ID, true))
	})

	t.Run("unknown ids surface not found", func(t *testing.T) {
		_, err := clients.GetClient(ctx, "01K0000000000000000000MISS")
		require.ErrorIs(t, err, ErrClientNotFound)

		require.ErrorIs(t, clients.SetActive(ctx, "01K0000000000000000000MISS", false), ErrClientNotFound)
		require.ErrorIs(t, clients.DeleteClient(ctx, "01K0000000000000000000MISS"), ErrClientNotFound)
	})

	t.Run("delete removes the client", func(t *testing.T) {
		require.NoError(t, clients.DeleteClient(ctx, client.ID))

		_, err := clients.GetClient(ctx, client.ID)
		require.ErrorIs(t, err, ErrClientNotFound)
	})
}
