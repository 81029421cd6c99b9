package api_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	httpapi "github.com/headlinehq/newswire/internal/api/http"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/internal/api/store/drivers/sqlite"
	"github.com/headlinehq/newswire/pkg/cryptox"
	"github.com/headlinehq/newswire/pkg/slogx"
)

const adminJWTSecret = "e2e-admin-secret"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "newswire-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// setupServer starts an in-process API server backed by a temp database
// and returns its base URL plus a signed admin token.
func setupServer(t *testing.T) (baseURL, adminToken string) {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "newswire.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "newswire-api",
		Version: "test",
		Env:     "dev",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(adminJWTSecret, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.ClientService = &service.ClientService{Store: st}
	router.ArticleService = &service.ArticleService{Store: st}
	router.TopicService = &service.TopicService{Store: st}
	router.SourceService = &service.SourceService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "e2e",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(adminJWTSecret))
	require.NoError(t, err)

	return srv.URL, signed
}
