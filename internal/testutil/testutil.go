// Package testutil provides shared test helpers for config files and a fake jpdb service.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file pointing the client at baseURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`jpdb:
  base_url: %s
  read_timeout: 5s
  write_timeout: 5s
`, baseURL)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig writes a config file with invalid YAML.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// Request is a request received by a FakeService.
type Request struct {
	Path          string
	Authorization string
	Body          string
}

// Response is what a FakeService replies for an endpoint.
type Response struct {
	Status int
	Body   string
}

// FakeService answers jpdb endpoints with canned responses and records
// every request it receives.
type FakeService struct {
	Server *httptest.Server

	mu        sync.Mutex
	requests  []Request
	responses map[string]Response
}

// NewFakeService starts a FakeService. responses is keyed by endpoint path
// without the leading slash, such as "deck/create-empty". Endpoints without
// a response reply 200 with an empty object.
func NewFakeService(t *testing.T, responses map[string]Response) *FakeService {
	t.Helper()
	service := &FakeService{responses: responses}
	service.Server = httptest.NewServer(http.HandlerFunc(service.serveHTTP))
	t.Cleanup(service.Server.Close)
	return service
}

// BaseURL returns the URL to configure clients with.
func (s *FakeService) BaseURL() string {
	return s.Server.URL + "/"
}

// Requests returns the requests received so far.
func (s *FakeService) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *FakeService) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:          path,
		Authorization: r.Header.Get("Authorization"),
		Body:          string(body),
	})
	response, ok := s.responses[path]
	s.mu.Unlock()

	if !ok {
		response = Response{Status: http.StatusOK, Body: `{}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Status)
	_, _ = io.WriteString(w, response.Body)
}
