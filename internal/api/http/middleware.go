package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/headlinehq/newswire/internal/api/metrics"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/httpx"
	"github.com/headlinehq/newswire/pkg/slogx"
)

// RequireAPIKey verifies the X-API-Key credential on every request and
// stores the resolved client in the request context. Rejections carry a
// stable error envelope; the secret itself is never logged.
func RequireAPIKey(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)
			ip := httpx.ClientIP(r)

			credential := r.Header.Get(apisdk.HeaderAPIKey)

			client, err := auth.Authenticate(ctx, credential)
			if err != nil {
				apiErr, result := mapAuthError(err)
				metrics.AuthDecisionsTotal.WithLabelValues(result).Inc()

				if errors.Is(err, service.ErrDirectoryUnavailable) {
					log.Error("credential check unavailable", "error", err, "ip", ip)
				} else {
					log.Warn("credential rejected", "reason", apiErr.Detail, "ip", ip)
				}

				apiErr.WriteError(w)
				return
			}

			metrics.AuthDecisionsTotal.WithLabelValues("admitted").Inc()
			log.Info("client admitted", "client", client.Name, "ip", ip)

			next.ServeHTTP(w, r.WithContext(WithClient(ctx, client)))
		})
	}
}

// mapAuthError translates gate sentinels into wire errors plus a metric
// label. Unexpected errors collapse to a generic 500.
func mapAuthError(err error) (*apisdk.APIError, string) {
	switch {
	case errors.Is(err, service.ErrCredentialRequired):
		return apisdk.ErrCredentialRequired, "rejected_missing"
	case errors.Is(err, service.ErrCredentialFormat):
		return apisdk.ErrCredentialFormat, "rejected_format"
	case errors.Is(err, service.ErrCredentialMalformed):
		return apisdk.ErrCredentialMalformed, "rejected_malformed"
	case errors.Is(err, service.ErrCredentialInvalid):
		return apisdk.ErrCredentialInvalid, "rejected_invalid"
	case errors.Is(err, service.ErrDirectoryUnavailable):
		return apisdk.ErrServiceUnavailable, "error"
	default:
		return apisdk.ErrServerError, "error"
	}
}

// RequireAdmin validates an HS256 bearer token on the client management
// surface.
func RequireAdmin(jwtSecret string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apisdk.ErrAdminTokenInvalid.WriteError(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				apisdk.ErrAdminTokenInvalid.WriteError(w)
				return
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				log.Warn("admin token rejected", "ip", httpx.ClientIP(r))
				apisdk.ErrAdminTokenInvalid.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// measure records request count and duration under the registered route
// pattern, keeping metric cardinality bounded.
func measure(route string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			metrics.HTTPRequestsTotal.
				WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
