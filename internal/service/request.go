package service

import (
	"encoding/json"
	"fmt"

	apperrors "messagemural/internal/errors"
)

// Field is one candidate attribute as the caller sent it.
type Field struct {
	Present  bool
	IsString bool
	Value    string
}

// CreateMessageRequest is the decoded, not yet validated, POST body.
type CreateMessageRequest struct {
	Content Field
	Author  Field
}

// NewMessage is a candidate that passed validation. Only Validate builds one.
type NewMessage struct {
	content string
	author  string
}

// ParseCreateMessageRequest decodes body, which must be a JSON object.
// A JSON null attribute is treated as absent.
func ParseCreateMessageRequest(body string) (CreateMessageRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return CreateMessageRequest{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedBody, err)
	}
	if raw == nil {
		return CreateMessageRequest{}, fmt.Errorf("%w: body must be a JSON object", apperrors.ErrMalformedBody)
	}
	return CreateMessageRequest{
		Content: parseField(raw["content"]),
		Author:  parseField(raw["author"]),
	}, nil
}

func parseField(raw json.RawMessage) Field {
	if len(raw) == 0 || string(raw) == "null" {
		return Field{}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return Field{Present: true}
	}
	return Field{Present: true, IsString: true, Value: value}
}
