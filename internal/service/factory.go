package service

import (
	"time"

	"messagemural/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type MessageFactory struct {
	now   func() time.Time
	newID func() string
}

func NewMessageFactory() MessageFactory {
	return MessageFactory{now: time.Now, newID: uuid.NewString}
}

// Build stamps a validated candidate with its id and creation instant.
// CreatedAt and Timestamp come from the same clock reading.
func (f MessageFactory) Build(m NewMessage) models.Message {
	at := f.now().UTC()
	return models.Message{
		ID:        f.newID(),
		Content:   m.content,
		Author:    lo.Ternary(m.author != "", m.author, models.DefaultAuthor),
		CreatedAt: models.FormatCreatedAt(at),
		Timestamp: at.UnixMilli(),
	}
}
