//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../mocks/mock_message_store.go -package=mocks
package service

import (
	"context"

	"messagemural/internal/models"
)

type MessageStore interface {
	ListAll(ctx context.Context) ([]models.Message, error)
	Insert(ctx context.Context, message models.Message) error
}

type MessageService struct {
	store   MessageStore
	factory MessageFactory
}

func NewMessageService(store MessageStore, factory MessageFactory) *MessageService {
	return &MessageService{store: store, factory: factory}
}

// ListMessages returns the whole collection, never nil.
func (s *MessageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		return []models.Message{}, nil
	}
	return messages, nil
}

// CreateMessage parses and validates body before writing exactly one message.
func (s *MessageService) CreateMessage(ctx context.Context, body string) (models.Message, error) {
	req, err := ParseCreateMessageRequest(body)
	if err != nil {
		return models.Message{}, err
	}
	candidate, err := req.Validate()
	if err != nil {
		return models.Message{}, err
	}
	message := s.factory.Build(candidate)
	if err := s.store.Insert(ctx, message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}
