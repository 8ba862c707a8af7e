package service

import (
	"errors"
	"strings"
	"testing"

	apperrors "messagemural/internal/errors"

	"github.com/stretchr/testify/require"
)

func TestParseCreateMessageRequest(t *testing.T) {
	t.Run("should record presence and type of each field", func(t *testing.T) {
		req := require.New(t)
		parsed, err := ParseCreateMessageRequest(`{"content":"hello","author":42}`)
		req.NoError(err)
		req.Equal(Field{Present: true, IsString: true, Value: "hello"}, parsed.Content)
		req.Equal(Field{Present: true}, parsed.Author)
	})

	t.Run("should treat null as absent", func(t *testing.T) {
		req := require.New(t)
		parsed, err := ParseCreateMessageRequest(`{"content":null,"author":null}`)
		req.NoError(err)
		req.False(parsed.Content.Present)
		req.False(parsed.Author.Present)
	})

	for name, body := range map[string]string{
		"empty":     "",
		"truncated": `{"content":`,
		"null":      "null",
		"array":     `["hello"]`,
		"scalar":    `"hello"`,
	} {
		t.Run("should reject a "+name+" body", func(t *testing.T) {
			_, err := ParseCreateMessageRequest(body)
			require.ErrorIs(t, err, apperrors.ErrMalformedBody)
		})
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected []string
	}{
		{name: "valid with author", body: `{"content":"hello","author":"Ann"}`},
		{name: "valid without author", body: `{"content":"hello"}`},
		{name: "valid with empty author", body: `{"content":"hello","author":""}`},
		{name: "content at limit", body: `{"content":"` + strings.Repeat("x", 1000) + `"}`},
		{name: "author at limit", body: `{"content":"hi","author":"` + strings.Repeat("a", 100) + `"}`},
		{name: "multibyte content at limit", body: `{"content":"` + strings.Repeat("é", 1000) + `"}`},
		{name: "missing content", body: `{}`, expected: []string{MsgContentRequired}},
		{name: "numeric content", body: `{"content":12}`, expected: []string{MsgContentRequired}},
		{name: "object content", body: `{"content":{"text":"hi"}}`, expected: []string{MsgContentRequired}},
		{name: "empty content", body: `{"content":""}`, expected: []string{MsgContentEmpty}},
		{name: "blank content", body: `{"content":"  \n\t "}`, expected: []string{MsgContentEmpty}},
		{name: "content too long", body: `{"content":"` + strings.Repeat("x", 1001) + `"}`, expected: []string{MsgContentTooLong}},
		{
			name:     "blank and too long content",
			body:     `{"content":"` + strings.Repeat(" ", 1001) + `"}`,
			expected: []string{MsgContentEmpty, MsgContentTooLong},
		},
		{name: "numeric author", body: `{"content":"hi","author":7}`, expected: []string{MsgAuthorNotString}},
		{name: "boolean author", body: `{"content":"hi","author":false}`, expected: []string{MsgAuthorNotString}},
		{name: "author too long", body: `{"content":"hi","author":"` + strings.Repeat("a", 101) + `"}`, expected: []string{MsgAuthorTooLong}},
		{
			name:     "every field wrong",
			body:     `{"content":true,"author":"` + strings.Repeat("a", 101) + `"}`,
			expected: []string{MsgContentRequired, MsgAuthorTooLong},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			parsed, err := ParseCreateMessageRequest(tc.body)
			req.NoError(err)

			result := Check(parsed)
			req.Equal(len(tc.expected) == 0, result.Valid)
			req.Equal(tc.expected, result.Errors)
		})
	}
}

func TestCreateMessageRequest_Validate(t *testing.T) {
	t.Run("should return a candidate when valid", func(t *testing.T) {
		req := require.New(t)
		parsed, err := ParseCreateMessageRequest(`{"content":"hello","author":"Ann"}`)
		req.NoError(err)

		candidate, err := parsed.Validate()
		req.NoError(err)
		req.Equal(NewMessage{content: "hello", author: "Ann"}, candidate)
	})

	t.Run("should return a validation error with details", func(t *testing.T) {
		req := require.New(t)
		parsed, err := ParseCreateMessageRequest(`{"content":""}`)
		req.NoError(err)

		_, err = parsed.Validate()
		req.ErrorIs(err, apperrors.ErrInvalidMessage)
		var validationErr *ValidationError
		req.True(errors.As(err, &validationErr))
		req.Equal([]string{MsgContentEmpty}, validationErr.Details)
	})
}
