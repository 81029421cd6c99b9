package domain

import "time"

// APIClient is a registered consumer of the API. The plaintext secret is
// never stored; only its Argon2id hash.
type APIClient struct {
	ID         string
	Name       string // unique, never contains "." (credential delimiter)
	SecretHash string
	IsActive   bool
	UseCount   int64
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
