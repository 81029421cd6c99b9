package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *ClientService, store.Store) {
	t.Helper()

	s := newTestStore(t)
	return &AuthService{Store: s}, &ClientService{Store: s}, s
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	auth, clients, s := newAuthFixture(t)

	client, secret, err := clients.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)

	t.Run("valid credential resolves the client", func(t *testing.T) {
		got, err := auth.Authenticate(ctx, client.Name+"."+secret)
		require.NoError(t, err)
		assert.Equal(t, client.ID, got.ID)
		assert.Equal(t, client.Name, got.Name)
	})

	t.Run("successful authentication bumps the usage counter", func(t *testing.T) {
		before, err := s.Clients().GetClientByID(ctx, client.ID)
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, client.Name+"."+secret)
		require.NoError(t, err)

		after, err := s.Clients().GetClientByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, before.UseCount+1, after.UseCount)
		require.NotNil(t, after.LastUsedAt)
	})

	t.Run("wrong secret is rejected without touching usage", func(t *testing.T) {
		before, err := s.Clients().GetClientByID(ctx, client.ID)
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, client.Name+".not-the-secret")
		require.ErrorIs(t, err, ErrCredentialInvalid)

		after, err := s.Clients().GetClientByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, before.UseCount, after.UseCount)
	})

	t.Run("unknown client name is rejected", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "nobody."+secret)
		require.ErrorIs(t, err, ErrCredentialInvalid)
	})

	t.Run("inactive client is rejected even with the right secret", func(t *testing.T) {
		require.NoError(t, s.Clients().SetClientActive(ctx, client.ID, false))
		t.Cleanup(func() {
			require.NoError(t, s.Clients().SetClientActive(ctx, client.ID, true))
		})

		_, err := auth.Authenticate(ctx, client.Name+"."+secret)
		require.ErrorIs(t, err, ErrCredentialInvalid)
	})

	t.Run("rejections are indistinguishable across causes", func(t *testing.T) {
		_, unknownErr := auth.Authenticate(ctx, "nobody."+secret)
		_, wrongErr := auth.Authenticate(ctx, client.Name+".wrong")
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("repeated rejection is stable", func(t *testing.T) {
		for range 3 {
			_, err := auth.Authenticate(ctx, client.Name+".wrong")
			require.ErrorIs(t, err, ErrCredentialInvalid)
		}
	})
}

func TestAuthService_Authenticate_Parsing(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthFixture(t)

	tests := []struct {
		name       string
		credential string
		wantErr    error
	}{
		{"empty credential", "", ErrCredentialRequired},
		{"no delimiter", "justonetoken", ErrCredentialFormat},
		{"empty name", ".secret", ErrCredentialMalformed},
		{"empty secret", "weather-svc.", ErrCredentialMalformed},
		{"only a dot", ".", ErrCredentialMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Authenticate(ctx, tc.credential)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuthService_Authenticate_Concurrent(t *testing.T) {
	ctx := context.Background()
	auth, clients, s := newAuthFixture(t)

	client, secret, err := clients.CreateClient(ctx, "crawler")
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := auth.Authenticate(ctx, client.Name+"."+secret)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Clients().GetClientByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.UseCount)
}

// outageStore simulates an unreachable client directory.
type outageStore struct {
	store.Store
}

func (s outageStore) Clients() store.Clients { return outageClients{s.Store.Clients()} }

type outageClients struct {
	store.Clients
}

func (outageClients) GetClientByName(context.Context, string) (domain.APIClient, error) {
	return domain.APIClient{}, errors.New("connection refused")
}

// usageFailStore accepts lookups but fails usage accounting.
type usageFailStore struct {
	store.Store
}

func (s usageFailStore) Clients() store.Clients { return usageFailClients{s.Store.Clients()} }

type usageFailClients struct {
	store.Clients
}

func (usageFailClients) RecordClientUsage(context.Context, string, time.Time) error {
	return errors.New("disk full")
}

func TestAuthService_Authenticate_DirectoryOutage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	clients := &ClientService{Store: s}
	_, secret, err := clients.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)

	auth := &AuthService{Store: outageStore{s}}
	_, err = auth.Authenticate(ctx, "weather-svc."+secret)
	require.ErrorIs(t, err, ErrDirectoryUnavailable)
	require.NotErrorIs(t, err, ErrCredentialInvalid)
}

func TestAuthService_Authenticate_UsageFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	clients := &ClientService{Store: s}
	client, secret, err := clients.CreateClient(ctx, "weather-svc")
	require.NoError(t, err)

	auth := &AuthService{Store: usageFailStore{s}}
	got, err := auth.Authenticate(ctx, client.Name+"."+secret)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}
