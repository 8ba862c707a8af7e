package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

const MessagesPath = "/api/messages"

// HandlerFunc is the request/response contract shared by the Lambda runtime
// and the local server.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type Router struct {
	service *service.MessageService
	log     *slog.Logger
}

func NewRouter(service *service.MessageService, log *slog.Logger) *Router {
	return &Router{service: service, log: log}
}

// Handle routes one request. Every failure becomes a response; the returned
// error is always nil.
func (r *Router) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	r.log.Info("Request received", "method", req.HTTPMethod, "path", req.Path)
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("Handler panic", "method", req.HTTPMethod, "path", req.Path, "panic", rec)
			resp = internalError(fmt.Sprint(rec))
			err = nil
		}
	}()

	if req.HTTPMethod == http.MethodOptions {
		return newResponse(http.StatusOK, struct{}{}), nil
	}
	if req.Path != MessagesPath {
		return newResponse(http.StatusNotFound, ErrorResponse{Error: "Not found"}), nil
	}

	switch req.HTTPMethod {
	case http.MethodGet:
		return r.listMessages(ctx), nil
	case http.MethodPost:
		return r.createMessage(ctx, req.Body), nil
	default:
		return newResponse(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"}), nil
	}
}

// listMessages godoc
//
//	@Summary	List every message
//	@Tags		messages
//	@Produce	json
//	@Success	200	{array}		models.Message
//	@Failure	500	{object}	ErrorResponse
//	@Router		/messages [get]
func (r *Router) listMessages(ctx context.Context) events.APIGatewayProxyResponse {
	messages, err := r.service.ListMessages(ctx)
	if err != nil {
		return r.failure(err, "Failed to fetch messages")
	}
	return newResponse(http.StatusOK, messages)
}

// createMessage godoc
//
//	@Summary	Post a message on the mural
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		message	body		CreateMessageBody	true	"Message to post"
//	@Success	201		{object}	models.Message
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/messages [post]
func (r *Router) createMessage(ctx context.Context, body string) events.APIGatewayProxyResponse {
	message, err := r.service.CreateMessage(ctx, body)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			r.log.Info("Rejected message", "details", validationErr.Details)
			return newResponse(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid message data",
				Details: validationErr.Details,
			})
		}
		return r.failure(err, "Failed to create message")
	}
	r.log.Info("Message created", "id", message.ID)
	return newResponse(http.StatusCreated, message)
}

// failure logs err and answers 500. Store causes are replaced by storeMessage.
func (r *Router) failure(err error, storeMessage string) events.APIGatewayProxyResponse {
	r.log.Error("Handler error", "error", err)
	if errors.Is(err, apperrors.ErrStoreUnavailable) {
		return internalError(storeMessage)
	}
	return internalError(err.Error())
}

func internalError(message string) events.APIGatewayProxyResponse {
	return newResponse(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal server error",
		Message: message,
	})
}

// CreateMessageBody documents the POST payload.
type CreateMessageBody struct {
	Content string `json:"content" example:"hello"`
	Author  string `json:"author,omitempty" example:"Ann"`
}
