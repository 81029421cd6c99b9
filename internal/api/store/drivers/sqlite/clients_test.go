package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newClient(name string) domain.APIClient {
	return domain.APIClient{
		ID:         idx.New().String(),
		Name:       name,
		SecretHash: "$argon2id$v=19$m=19456,t=2,p=1$" + idx.New().String() + "$aGFzaA",
		IsActive:   true,
	}
}

func TestClientsCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := newClient("crawler")
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	t.Run("lookup by name", func(t *testing.T) {
		got, err := s.Clients().GetClientByName(ctx, "crawler")
		require.NoError(t, err)
		require.Equal(t, c.ID, got.ID)
		require.Equal(t, c.SecretHash, got.SecretHash)
		require.True(t, got.IsActive)
		require.Zero(t, got.UseCount)
		require.Nil(t, got.LastUsedAt)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := s.Clients().GetClientByName(ctx, "Crawler")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := s.Clients().GetClientByName(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, "crawler", got.Name)
	})
}

func TestClientsUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := newClient("svc1")
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	t.Run("duplicate name", func(t *testing.T) {
		dup := newClient("svc1")
		err := s.Clients().CreateClient(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate secret hash", func(t *testing.T) {
		dup := newClient("svc2")
		dup.SecretHash = c.SecretHash
		err := s.Clients().CreateClient(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestClientsSetActive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := newClient("toggler")
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	require.NoError(t, s.Clients().SetClientActive(ctx, c.ID, false))
	got, err := s.Clients().GetClientByName(ctx, "toggler")
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.NoError(t, s.Clients().SetClientActive(ctx, c.ID, true))
	got, err = s.Clients().GetClientByName(ctx, "toggler")
	require.NoError(t, err)
	require.True(t, got.IsActive)
}

func TestClientsRecordUsage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := newClient("busy")
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	t.Run("single increment", func(t *testing.T) {
		at := time.Now().UTC()
		require.NoError(t, s.Clients().RecordClientUsage(ctx, c.ID, at))

		got, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, got.UseCount)
		require.NotNil(t, got.LastUsedAt)
	})

	t.Run("concurrent increments are never lost", func(t *testing.T) {
		const workers = 25

		before, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Clients().RecordClientUsage(ctx, c.ID, time.Now().UTC())
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		after, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, before.UseCount+workers, after.UseCount)
		require.NotNil(t, after.LastUsedAt)
	})
}

func TestClientsListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := newClient("alpha")
	b := newClient("beta")
	require.NoError(t, s.Clients().CreateClient(ctx, a))
	require.NoError(t, s.Clients().CreateClient(ctx, b))

	clients, err := s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	require.NoError(t, s.Clients().DeleteClient(ctx, a.ID))
	_, err = s.Clients().GetClientByID(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	clients, err = s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "beta", clients[0].Name)
}
