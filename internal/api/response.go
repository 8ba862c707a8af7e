package api

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/samber/lo"
)

// CORSHeaders go on every response, whichever transport carries it.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Content-Type":                 "application/json",
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// newResponse builds the envelope. Body must be JSON-encodable.
func newResponse(statusCode int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		statusCode = 500
		payload = []byte(`{"error":"Internal server error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    lo.Assign(CORSHeaders),
		Body:       string(payload),
	}
}
