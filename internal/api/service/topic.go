package service

import (
	"context"
	"errors"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/store"
	"github.com/headlinehq/newswire/pkg/idx"
)

var ErrTopicNotFound = errors.New("topic not found")

// TopicService manages article topics.
type TopicService struct {
	Store store.Store
}

func (s *TopicService) CreateTopic(ctx context.Context, label string) (domain.Topic, error) {
	topic := domain.Topic{
		ID:    idx.New().String(),
		Label: label,
	}
	if err := s.Store.Topics().CreateTopic(ctx, topic); err != nil {
		return domain.Topic{}, err
	}
	return s.GetTopic(ctx, topic.ID)
}

func (s *TopicService) GetTopic(ctx context.Context, id string) (domain.Topic, error) {
	topic, err := s.Store.Topics().GetTopicByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Topic{}, ErrTopicNotFound
		}
		return domain.Topic{}, err
	}
	return topic, nil
}

func (s *TopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return s.Store.Topics().ListTopics(ctx)
}

// UpdateTopic applies the non-nil patch fields atomically.
func (s *TopicService) UpdateTopic(ctx context.Context, id string, patch domain.TopicPatch) (domain.Topic, error) {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		topic, err := tx.Topics().GetTopicByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTopicNotFound
			}
			return err
		}

		patch.Apply(&topic)
		return tx.Topics().UpdateTopic(ctx, topic)
	})
	if err != nil {
		return domain.Topic{}, err
	}

	return s.GetTopic(ctx, id)
}

// DeleteTopic removes a topic and, per schema, its articles.
func (s *TopicService) DeleteTopic(ctx context.Context, id string) error {
	if _, err := s.GetTopic(ctx, id); err != nil {
		return err
	}
	return s.Store.Topics().DeleteTopic(ctx, id)
}
