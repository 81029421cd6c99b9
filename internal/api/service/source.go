package service

import (
	"context"
	"errors"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/idx"
)

var ErrSourceNotFound = errors.New("source not found")

// SourceService manages news sources.
type SourceService struct {
	Store store.Store
}

func (s *SourceService) CreateSource(ctx context.Context, src domain.Source) (domain.Source, error) {
	src.ID = idx.New().String()
	if err := s.Store.Sources().CreateSource(ctx, src); err != nil {
		return domain.Source{}, err
	}
	return s.GetSource(ctx, src.ID)
}

func (s *SourceService) GetSource(ctx context.Context, id string) (domain.Source, error) {
	src, err := s.Store.Sources().GetSourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Source{}, ErrSourceNotFound
		}
		return domain.Source{}, err
	}
	return src, nil
}

func (s *SourceService) ListSources(ctx context.Context) ([]domain.Source, error) {
	return s.Store.Sources().ListSources(ctx)
}

// UpdateSource applies the non-nil patch fields atomically.
func (s *SourceService) UpdateSource(ctx context.Context, id string, patch domain.SourcePatch) (domain.Source, error) {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		src, err := tx.Sources().GetSourceByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSourceNotFound
			}
			return err
		}

		patch.Apply(&src)
		return tx.Sources().UpdateSource(ctx, src)
	})
	if err != nil {
		return domain.Source{}, err
	}

	return s.GetSource(ctx, id)
}

// DeleteSource removes a source and, per schema, its articles.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	if _, err := s.GetSource(ctx, id); err != nil {
		return err
	}
	return s.Store.Sources().DeleteSource(ctx, id)
}
