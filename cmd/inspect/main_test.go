package main

import (
	"bytes"
	"strings"
	"testing"

	"messagemural/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	messages := []models.Message{
		{ID: "second", Content: "later", Author: "Bob", CreatedAt: "2025-01-02T03:04:06.000Z", Timestamp: 2},
		{ID: "first", Content: "earlier", Author: "Ann", CreatedAt: "2025-01-02T03:04:05.000Z", Timestamp: 1},
	}

	render(&out, messages)

	text := out.String()
	req.Less(strings.Index(text, "first"), strings.Index(text, "second"))
	req.Contains(text, "2 message(s)")
}

func TestPreview(t *testing.T) {
	req := require.New(t)
	req.Equal("short", preview("short"))

	long := strings.Repeat("é", previewLength+5)
	got := preview(long)
	req.Equal(previewLength+1, len([]rune(got)))
	req.True(strings.HasSuffix(got, "…"))
}
