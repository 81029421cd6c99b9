package service

import (
	"context"
	"errors"
	"strings"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/cryptox"
	"github.com/headlinehq/newswire/pkg/idx"
	"github.com/headlinehq/newswire/pkg/slogx"
)

var (
	ErrInvalidClientName = errors.New("client name must be non-empty and must not contain '.'")
	ErrClientExists      = errors.New("client already exists")
	ErrClientNotFound    = errors.New("client not found")
)

// ClientService manages API client registration and lifecycle.
type ClientService struct {
	Store store.Store
}

// CreateClient registers a new API client. It generates a fresh secret,
// stores only its hash, and returns the plaintext secret exactly once.
// The plaintext is never logged and cannot be retrieved again.
func (s *ClientService) CreateClient(ctx context.Context, name string) (domain.APIClient, string, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return domain.APIClient{}, "", ErrInvalidClientName
	}

	secret, err := cryptox.GenerateSecret(cryptox.DefaultSecretSize)
	if err != nil {
		l.Error("failed to generate client secret", "error", err)
		return domain.APIClient{}, "", err
	}

	secretHash, err := cryptox.HashSecret(secret)
	if err != nil {
		l.Error("failed to hash client secret", "error", err)
		return domain.APIClient{}, "", err
	}

	client := domain.APIClient{
		ID:         idx.New().String(),
		Name:       name,
		SecretHash: secretHash,
		IsActive:   true,
	}

	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.APIClient{}, "", ErrClientExists
		}
		l.Error("failed to create client", "error", err, "name", name)
		return domain.APIClient{}, "", err
	}

	l.Info("api client created", "client_id", client.ID, "name", name)
	return client, secret, nil
}

// GetClient fetches a client by id.
func (s *ClientService) GetClient(ctx context.Context, id string) (domain.APIClient, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.APIClient{}, ErrClientNotFound
		}
		return domain.APIClient{}, err
	}
	return client, nil
}

// ListClients returns all registered clients.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.APIClient, error) {
	return s.Store.Clients().ListClients(ctx)
}

// SetActive toggles whether a client's credentials are accepted.
func (s *ClientService) SetActive(ctx context.Context, id string, active bool) error {
	l := slogx.FromContext(ctx)

	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}

	if err := s.Store.Clients().SetClientActive(ctx, id, active); err != nil {
		l.Error("failed to toggle client", "error", err, "client_id", id)
		return err
	}

	l.Info("api client toggled", "client_id", id, "active", active)
	return nil
}

// DeleteClient removes a client permanently.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	l := slogx.FromContext(ctx)

	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}

	if err := s.Store.Clients().DeleteClient(ctx, id); err != nil {
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("api client deleted", "client_id", id)
	return nil
}
