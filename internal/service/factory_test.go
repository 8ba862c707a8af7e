package service

import (
	"testing"
	"time"

	"messagemural/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMessageFactory_Build(t *testing.T) {
	t.Run("should stamp id and creation instant", func(t *testing.T) {
		req := require.New(t)
		at := time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
		factory := MessageFactory{
			now:   func() time.Time { return at },
			newID: func() string { return "fixed-id" },
		}

		message := factory.Build(NewMessage{content: "hello", author: "Ann"})

		req.Equal(models.Message{
			ID:        "fixed-id",
			Content:   "hello",
			Author:    "Ann",
			CreatedAt: "2025-03-14T15:09:26.535Z",
			Timestamp: at.UnixMilli(),
		}, message)
	})

	t.Run("should default the author", func(t *testing.T) {
		req := require.New(t)
		message := NewMessageFactory().Build(NewMessage{content: "hello"})
		req.Equal(models.DefaultAuthor, message.Author)
	})

	t.Run("should keep content verbatim", func(t *testing.T) {
		req := require.New(t)
		message := NewMessageFactory().Build(NewMessage{content: "  padded  "})
		req.Equal("  padded  ", message.Content)
	})

	t.Run("should produce distinct well formed messages", func(t *testing.T) {
		req := require.New(t)
		factory := NewMessageFactory()
		seen := make(map[string]struct{})
		for range 100 {
			message := factory.Build(NewMessage{content: "hello"})
			_, err := uuid.Parse(message.ID)
			req.NoError(err)

			createdAt, err := time.Parse(time.RFC3339Nano, message.CreatedAt)
			req.NoError(err)
			req.Equal(createdAt.UnixMilli(), message.Timestamp)

			_, duplicate := seen[message.ID]
			req.False(duplicate)
			seen[message.ID] = struct{}{}
		}
	})
}
