package apisdk

import "time"

// HeaderAPIKey is the header carrying the "<client_name>.<secret>"
// credential on gated routes.
const HeaderAPIKey = "X-API-Key"

// ErrorResponse is the JSON envelope every non-2xx response carries.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// ============================================================================
// Clients (admin surface)
// ============================================================================

// CreateClientRequest registers a new API client. The name must be
// non-empty and must not contain ".".
type CreateClientRequest struct {
	Name string `json:"name" validate:"required,excludes=."`
}

// ClientResponse describes a registered API client. The secret hash is
// never exposed.
type ClientResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	UseCount   int64      `json:"use_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateClientResponse is returned once at registration time. Secret is
// the only copy of the plaintext credential material; it cannot be
// retrieved again.
type CreateClientResponse struct {
	ClientResponse
	Secret string `json:"secret"`
}

// ClientListResponse wraps the admin client listing.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ============================================================================
// Topics
// ============================================================================

type CreateTopicRequest struct {
	Label string `json:"label" validate:"required,max=128"`
}

// UpdateTopicRequest is a partial update; nil fields are left unchanged.
type UpdateTopicRequest struct {
	Label         *string `json:"label,omitempty" validate:"omitempty,max=128"`
	CoverageScore *int64  `json:"coverage_score,omitempty" validate:"omitempty,gte=0"`
}

type TopicResponse struct {
	ID            string    `json:"id"`
	Label         string    `json:"label"`
	CoverageScore int64     `json:"coverage_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TopicListResponse struct {
	Topics []TopicResponse `json:"topics"`
}

// ============================================================================
// Sources
// ============================================================================

type CreateSourceRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	HomepageURL string `json:"homepage_url" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	IsEnabled   *bool  `json:"is_enabled,omitempty"`
}

// UpdateSourceRequest is a partial update; nil fields are left unchanged.
type UpdateSourceRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=128"`
	HomepageURL *string `json:"homepage_url,omitempty" validate:"omitempty,url"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	IsEnabled   *bool   `json:"is_enabled,omitempty"`
}

type SourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HomepageURL string    `json:"homepage_url,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// ============================================================================
// Articles
// ============================================================================

type CreateArticleRequest struct {
	Title    string     `json:"title" validate:"required,max=512"`
	URL      string     `json:"url" validate:"required,url"`
	ImageURL string     `json:"image_url" validate:"omitempty,url"`
	Brief    string     `json:"brief" validate:"omitempty,max=4096"`
	TopicID  string     `json:"topic_id,omitempty"`
	SourceID string     `json:"source_id,omitempty"`
	AddedAt  *time.Time `json:"added_at,omitempty"`
}

// UpdateArticleRequest is a partial update; nil fields are left unchanged.
type UpdateArticleRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=512"`
	URL      *string `json:"url,omitempty" validate:"omitempty,url"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Brief    *string `json:"brief,omitempty" validate:"omitempty,max=4096"`
	TopicID  *string `json:"topic_id,omitempty"`
	SourceID *string `json:"source_id,omitempty"`
}

type ArticleResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	ImageURL string    `json:"image_url,omitempty"`
	Brief    string    `json:"brief,omitempty"`
	TopicID  string    `json:"topic_id,omitempty"`
	SourceID string    `json:"source_id,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
