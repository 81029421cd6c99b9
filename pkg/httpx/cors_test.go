package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSServer(cfg CORSConfig) http.Handler {
	return Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		CORS(cfg),
	)
}

func TestCORSDisabledByDefault(t *testing.T) {
	assert.False(t, CORSConfig{}.Enabled())

	h := newCORSServer(CORSConfig{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/articles", nil)
	req.Header.Set("Origin", "https://reader.example")
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowedOrigin(t *testing.T) {
	h := newCORSServer(CORSConfig{
		AllowedOrigins: []string{"https://reader.example"},
	})

	t.Run("simple request stamped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/articles", nil)
		req.Header.Set("Origin", "https://reader.example")
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://reader.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("unlisted origin passes through bare", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/articles", nil)
		req.Header.Set("Origin", "https://evil.example")
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits with defaults", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/articles", nil)
		req.Header.Set("Origin", "https://reader.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, X-API-Key", rec.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestCORSWildcard(t *testing.T) {
	t.Run("without credentials", func(t *testing.T) {
		h := newCORSServer(CORSConfig{AllowedOrigins: []string{"*"}})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/topics", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		h.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("with credentials echoes the origin", func(t *testing.T) {
		h := newCORSServer(CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
		})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/topics", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		h.ServeHTTP(rec, req)

		assert.Equal(t, "https://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestCORSCustomMethodsAndHeaders(t *testing.T) {
	h := newCORSServer(CORSConfig{
		AllowedOrigins: []string{"https://reader.example"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"X-API-Key"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/articles", nil)
	req.Header.Set("Origin", "https://reader.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "X-API-Key", rec.Header().Get("Access-Control-Allow-Headers"))
}
