package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	_ "messagemural/docs"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// LocalServer replays HTTP requests into a HandlerFunc so the Lambda handler
// runs unchanged outside AWS. Status, headers and body are written back as is.
type LocalServer struct {
	engine  *gin.Engine
	handler HandlerFunc
	log     *slog.Logger
}

func NewLocalServer(handler HandlerFunc, log *slog.Logger, swaggerEnabled bool) *LocalServer {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &LocalServer{engine: engine, handler: handler, log: log}
	engine.Use(corsHeaders(), requestLogger(log), gin.CustomRecovery(s.recoverPanic))
	if swaggerEnabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	engine.NoRoute(s.delegate)
	return s
}

func (s *LocalServer) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *LocalServer) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Local API server running", "address", addr)
		s.log.Info("Messages API available", "url", fmt.Sprintf("http://localhost%s%s", addr, MessagesPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down local server...")
	case err := <-errChan:
		return fmt.Errorf("local server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *LocalServer) delegate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("Local server error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	resp, err := s.handler(c.Request.Context(), toProxyRequest(c.Request, body))
	if err != nil {
		s.log.Error("Local server error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Status(resp.StatusCode)
	_, _ = c.Writer.WriteString(resp.Body)
}

func (s *LocalServer) recoverPanic(c *gin.Context, rec any) {
	s.log.Error("Local server panic", "panic", rec)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func toProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	query := r.URL.Query()
	return events.APIGatewayProxyRequest{
		HTTPMethod:                      r.Method,
		Path:                            r.URL.Path,
		Body:                            string(body),
		Headers:                         flatten(r.Header),
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           flatten(query),
		MultiValueQueryStringParameters: query,
	}
}

// flatten keeps the last value of each key, as API Gateway does.
func flatten(values map[string][]string) map[string]string {
	return lo.MapValues(values, func(v []string, _ string) string {
		if len(v) == 0 {
			return ""
		}
		return v[len(v)-1]
	})
}

func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range CORSHeaders {
			c.Header(key, value)
		}
		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
