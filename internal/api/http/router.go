package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/httpx"
	"github.com/headlinehq/newswire/pkg/slogx"

	_ "github.com/headlinehq/newswire/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	adminJWTSecret string
	buildVersion   string
	startTime      time.Time
	logger         *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ClientService  *service.ClientService
	ArticleService *service.ArticleService
	TopicService   *service.TopicService
	SourceService  *service.SourceService
}

func NewRouter(
	adminJWTSecret, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		adminJWTSecret: adminJWTSecret,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		store:          st,
		logger:         logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// EnableCORS appends a cross-origin middleware to the global chain. It
// runs after request logging so preflights still show up in the logs.
// A config with no origins is a no-op.
func (r *Router) EnableCORS(cfg httpx.CORSConfig) {
	if !cfg.Enabled() {
		return
	}
	r.middlewares = append(r.middlewares, httpx.CORS(cfg))
}

func (r *Router) ApplyRoutes() {
	r.registerArticles()
	r.registerTopics()
	r.registerSources()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Newswire API
//	@version		0.1.0
//	@description	A news article backend with topic and source management.
//	@description
//	@description				Read/write routes authenticate with an API key credential of the form
//	@description				"<client_name>.<secret>" sent in the X-API-Key header. Client management
//	@description				routes authenticate with an admin bearer token.
//
//	@contact.name				HeadlineHQ Team
//	@contact.url				https://github.com/headlinehq/newswire
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				API client credential. Format: "<client_name>.<secret>".
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerArticles() {
	h := &ArticlesHandler{ArticleService: r.ArticleService}
	gate := RequireAPIKey(r.AuthService)

	// Writes get a moderate per-IP limit, reads a lenient one. The gate
	// runs after the limiter so floods of bad credentials are throttled
	// before hitting the hasher.
	r.Mux.Handle("POST /v1/articles",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			measure("/v1/articles"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/articles",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			measure("/v1/articles"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/articles/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			measure("/v1/articles/{id}"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("PUT /v1/articles/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			measure("/v1/articles/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("DELETE /v1/articles/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			measure("/v1/articles/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
}

func (r *Router) registerTopics() {
	h := &TopicsHandler{TopicService: r.TopicService}
	gate := RequireAPIKey(r.AuthService)

	r.Mux.Handle("POST /v1/topics",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			measure("/v1/topics"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/topics",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			measure("/v1/topics"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/topics/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			measure("/v1/topics/{id}"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("PUT /v1/topics/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			measure("/v1/topics/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("DELETE /v1/topics/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			measure("/v1/topics/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
}

func (r *Router) registerSources() {
	h := &SourcesHandler{SourceService: r.SourceService}
	gate := RequireAPIKey(r.AuthService)

	r.Mux.Handle("POST /v1/sources",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			measure("/v1/sources"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/sources",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			measure("/v1/sources"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("GET /v1/sources/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			measure("/v1/sources/{id}"),
			httpx.RateLimitByIP(httpx.LenientLimit),
			gate,
		),
	)
	r.Mux.Handle("PUT /v1/sources/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			measure("/v1/sources/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
	r.Mux.Handle("DELETE /v1/sources/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			measure("/v1/sources/{id}"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			gate,
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}
	admin := RequireAdmin(r.adminJWTSecret)

	// Admin surface gets a strict per-IP limit; these routes mint and
	// revoke credentials.
	r.Mux.Handle("POST /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			measure("/v1/clients"),
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		),
	)
	r.Mux.Handle("GET /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			measure("/v1/clients"),
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		),
	)
	r.Mux.Handle("POST /v1/clients/{id}/activate",
		httpx.Chain(http.HandlerFunc(h.HandleActivate),
			measure("/v1/clients/{id}/activate"),
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		),
	)
	r.Mux.Handle("POST /v1/clients/{id}/deactivate",
		httpx.Chain(http.HandlerFunc(h.HandleDeactivate),
			measure("/v1/clients/{id}/deactivate"),
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		),
	)
	r.Mux.Handle("DELETE /v1/clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			measure("/v1/clients/{id}"),
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
