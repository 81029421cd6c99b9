package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/cryptox"
	"github.com/headlinehq/newswire/pkg/slogx"
)

// Credential rejection errors. Lookup failures, inactive clients, and
// wrong secrets all surface as ErrCredentialInvalid so a caller cannot
// probe which client names exist.
var (
	ErrCredentialRequired  = errors.New("credential is required")
	ErrCredentialFormat    = errors.New("invalid credential format")
	ErrCredentialMalformed = errors.New("malformed credential")
	ErrCredentialInvalid   = errors.New("invalid or inactive credential")

	// ErrDirectoryUnavailable reports an infrastructure failure while
	// consulting the client directory, not a credential problem.
	ErrDirectoryUnavailable = errors.New("client directory unavailable")
)

// AuthService verifies presented API credentials of the form
// "<name>.<secret>" against the client directory.
type AuthService struct {
	Store store.Store

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// Authenticate runs the verification pipeline for a presented credential
// and returns the resolved client on success. The pipeline is terminal on
// first failure and never mutates usage stats on a rejection. On success
// the usage accounting is best-effort: a failure to record it is logged
// and swallowed, never unwinding the admission decision.
func (s *AuthService) Authenticate(ctx context.Context, credential string) (domain.APIClient, error) {
	l := slogx.FromContext(ctx)

	if credential == "" {
		return domain.APIClient{}, ErrCredentialRequired
	}

	// Split on the first "." only; client names cannot contain the
	// delimiter so the parse is unambiguous.
	name, secret, found := strings.Cut(credential, ".")
	if !found {
		return domain.APIClient{}, ErrCredentialFormat
	}
	if name == "" || secret == "" {
		return domain.APIClient{}, ErrCredentialMalformed
	}

	client, err := s.Store.Clients().GetClientByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.APIClient{}, ErrCredentialInvalid
		}
		l.Error("client directory lookup failed", "error", err)
		return domain.APIClient{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	if !client.IsActive {
		return domain.APIClient{}, ErrCredentialInvalid
	}

	// Any verification error, including a corrupt stored hash, is treated
	// as a mismatch.
	if err := cryptox.VerifySecret(secret, client.SecretHash); err != nil {
		return domain.APIClient{}, ErrCredentialInvalid
	}

	if err := s.Store.Clients().RecordClientUsage(ctx, client.ID, s.now()); err != nil {
		l.Error("failed to record client usage", "error", err, "client", client.Name)
	}

	return client, nil
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
