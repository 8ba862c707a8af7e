package models

import "time"

const (
	DefaultAuthor    = "Anonymous"
	MaxContentLength = 1000
	MaxAuthorLength  = 100

	// CreatedAtLayout matches the millisecond ISO-8601 form browsers emit.
	CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Message is the only persisted entity. ID, CreatedAt and Timestamp are
// always assigned server side.
type Message struct {
	ID        string `json:"id" dynamodbav:"id"`
	Content   string `json:"content" dynamodbav:"content"`
	Author    string `json:"author" dynamodbav:"author"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
}

// FormatCreatedAt renders t the way CreatedAt is stored.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
