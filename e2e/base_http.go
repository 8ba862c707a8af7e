package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment and skips the suite when no API is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BaseURL == "" {
		s.T().Skip("API_BASE_URL not set")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Step logs a colourised header for one scenario step.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Do sends method path with an optional JSON payload.
func (s *BaseHTTPSuite) Do(method, path string, payload any) Response {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, s.Config.BaseURL+path, body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Failed to reach API at "+s.Config.BaseURL)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.T().Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		s.T().Logf("RESPONSE:\n%s", raw)
	}
	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}
}
