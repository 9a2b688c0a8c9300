package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/roles"
)

type scriptedClient struct {
	response string
	err      error
}

func (c *scriptedClient) GenerateJSON(_ context.Context, _, _ string) (string, error) {
	return c.response, c.err
}

func (c *scriptedClient) Close() error { return nil }

func newTestServer(t *testing.T, response string) *Server {
	t.Helper()
	catalog, err := roles.Load()
	require.NoError(t, err)
	p := pipeline.New(&scriptedClient{response: response}, catalog, nil, pipeline.Options{})
	return New(Config{Port: 0}, p, catalog, nil)
}

func doRequest(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, "{}")

	rec := doRequest(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHandleListRoles(t *testing.T) {
	s := newTestServer(t, "{}")

	rec := doRequest(s, http.MethodGet, "/v1/roles", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Roles []roles.Role `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.GreaterOrEqual(t, len(payload.Roles), 12)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t, "{}")

	rec := doRequest(s, http.MethodPost, "/v1/analyze", []byte("not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_ValidationFailure(t *testing.T) {
	s := newTestServer(t, "{}")

	body, _ := json.Marshal(map[string]string{
		"resume_text": "too short",
		"job_role":    "Software Engineer",
	})
	rec := doRequest(s, http.MethodPost, "/v1/analyze", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 100 characters")
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := newTestServer(t, `{"overall_score": 66, "summary": "Fine."}`)

	resume := strings.Repeat("experienced engineer profile ", 40) +
		"worked managed led developed skills python sql education degree sam@example.com 555-123-4567"
	body, _ := json.Marshal(map[string]string{
		"resume_text": resume,
		"job_role":    "Software Engineer",
	})
	rec := doRequest(s, http.MethodPost, "/v1/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result analysis.ResumeAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 66, result.OverallScore)
	assert.Equal(t, "Fine.", result.Summary)
	assert.NotEmpty(t, result.JobAlignment.Recommendations)
}

func TestHandleExtract_MissingDocument(t *testing.T) {
	s := newTestServer(t, "{}")

	rec := doRequest(s, http.MethodPost, "/v1/extract", []byte(`{"filename": "resume.pdf"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "document is required")
}

func TestHandleExtract_BadBase64(t *testing.T) {
	s := newTestServer(t, "{}")

	body, _ := json.Marshal(map[string]string{"document": "!!! not base64 !!!"})
	rec := doRequest(s, http.MethodPost, "/v1/extract", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtract_NonPDFRejected(t *testing.T) {
	s := newTestServer(t, "{}")

	encoded := base64.StdEncoding.EncodeToString([]byte("plain text file"))
	body, _ := json.Marshal(map[string]string{"document": encoded})
	rec := doRequest(s, http.MethodPost, "/v1/extract", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, "{}")

	rec := doRequest(s, http.MethodOptions, "/v1/analyze", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", &analysis.InvalidInputError{Message: "bad"}, http.StatusBadRequest},
		{"decode failure", &extraction.DecodeError{Cause: errors.New("bad base64")}, http.StatusBadRequest},
		{"too large", &extraction.TooLargeError{Size: 2, Limit: 1}, http.StatusRequestEntityTooLarge},
		{"unsupported", &extraction.UnsupportedError{Reason: "not a pdf"}, http.StatusUnprocessableEntity},
		{"unreadable", &extraction.UnreadableError{PageCount: 3}, http.StatusUnprocessableEntity},
		{"too short", &extraction.TooShortError{Length: 12}, http.StatusUnprocessableEntity},
		{"unavailable", &analysis.ServiceUnavailableError{Message: "down"}, http.StatusServiceUnavailable},
		{"rate limited", &analysis.RateLimitedError{}, http.StatusTooManyRequests},
		{"timeout", &analysis.TimeoutError{}, http.StatusGatewayTimeout},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestUserMessage_ServiceErrorsAreGeneric(t *testing.T) {
	msg := userMessage(&analysis.ServiceUnavailableError{
		Message: "internal detail", Cause: errors.New("api key leaked here"),
	})
	assert.NotContains(t, msg, "api key")
	assert.Contains(t, msg, "temporarily unavailable")

	assert.Contains(t, userMessage(&analysis.RateLimitedError{}), "busy")
	assert.Contains(t, userMessage(&analysis.MalformedResponseError{}), "usable result")
}

func TestUserMessage_InputErrorsAreSpecific(t *testing.T) {
	msg := userMessage(&extraction.TooLargeError{Size: 20 << 20, Limit: 10 << 20})
	assert.Contains(t, msg, "too large")
}
