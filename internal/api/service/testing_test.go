package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite"
	"github.com/headlinehq/newswire/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "newswire-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a migrated store backed by a temp file database.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "newswire.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}
