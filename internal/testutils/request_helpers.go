package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/cloze-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequestOption is a function that configures an HTTP request.
type RequestOption func(*http.Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithContentType sets the Content-Type header.
func WithContentType(contentType string) RequestOption {
	return WithHeader("Content-Type", contentType)
}

// WithTraceID sets the X-Trace-ID header.
func WithTraceID(traceID string) RequestOption {
	return WithHeader(shared.TraceIDHeader, traceID)
}

// ExecuteRequest sends an HTTP request to the given server.
// It automatically registers cleanup for the response body when the test completes.
func ExecuteRequest(
	t *testing.T,
	server *httptest.Server,
	method string,
	path string,
	body io.Reader,
	options ...RequestOption,
) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, option := range options {
		option(req)
	}

	// Set Content-Type to JSON if there's a body and Content-Type isn't set already
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	if err == nil && resp != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Failed to close response body: %v", err)
			}
		})
	}

	return resp, err
}

// ExecuteJSONRequest marshals payload and sends it as the request body.
// A string payload is sent as-is, which allows malformed bodies in tests.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method string,
	path string,
	payload interface{},
	options ...RequestOption,
) (*http.Response, error) {
	t.Helper()

	var bodyReader io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		bodyReader = bytes.NewBufferString(p)
	default:
		data, err := json.Marshal(p)
		require.NoError(t, err, "Failed to marshal request payload")
		bodyReader = bytes.NewBuffer(data)
	}

	options = append(options, WithContentType("application/json"))
	return ExecuteRequest(t, server, method, path, bodyReader, options...)
}

// AssertJSONResponse checks that a response has the expected status code and parses the JSON body.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, result interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "Status code should match expected")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if result == nil {
		return
	}
	err = json.Unmarshal(body, result)
	require.NoError(t, err, "Failed to parse JSON response: %s", string(body))
}

// AssertErrorResponse checks that a response contains an error with the
// expected status code and message, and that the trace id in the body matches
// the response header. It returns the decoded error for further assertions.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	var errResp shared.ErrorResponse
	AssertJSONResponse(t, resp, expectedStatus, &errResp)

	if expectedErrorMsgPart != "" {
		assert.Contains(t, errResp.Error, expectedErrorMsgPart,
			"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
	}
	assert.NotEmpty(t, errResp.TraceID, "Error response should carry a trace id")
	assert.Equal(t, resp.Header.Get(shared.TraceIDHeader), errResp.TraceID)

	return errResp
}
