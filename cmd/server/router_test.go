package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/cloze-api/internal/api"
	"github.com/phrazzld/cloze-api/internal/api/shared"
	"github.com/phrazzld/cloze-api/internal/generation"
	"github.com/phrazzld/cloze-api/internal/mocks"
	"github.com/phrazzld/cloze-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, gen generation.Generator) *httptest.Server {
	t.Helper()
	app, err := newApplicationWithGenerator(testConfig(), testLogger(), gen)
	require.NoError(t, err)

	ts := httptest.NewServer(app.setupRouter())
	t.Cleanup(ts.Close)
	return ts
}

func TestPromptEndpointEndToEnd(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("I ate an _ for breakfast.")
	ts := newTestServer(t, gen)

	for _, path := range []string{"/prompt/", "/prompt"} {
		t.Run(path, func(t *testing.T) {
			resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, path,
				api.PromptRequest{FrontSide: "apple", BackSide: "manzana"})
			require.NoError(t, err)

			var body map[string]interface{}
			testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
			assert.Equal(t, map[string]interface{}{"response": "I ate an _ for breakfast."}, body)

			_, err = uuid.Parse(resp.Header.Get(shared.TraceIDHeader))
			assert.NoError(t, err)
		})
	}

	assert.Equal(t,
		"Please create a sentence using the word apple, but output it with this word "+
			"replaced by _ and output only this sentence",
		gen.LastPrompt())
}

func TestPromptEndpointReusesClientTraceID(t *testing.T) {
	ts := newTestServer(t, mocks.MockGeneratorUnavailable())
	traceID := uuid.NewString()

	resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, "/prompt/",
		api.PromptRequest{FrontSide: "apple"}, testutils.WithTraceID(traceID))
	require.NoError(t, err)

	errResp := testutils.AssertErrorResponse(t, resp, http.StatusBadGateway, "unavailable")
	assert.Equal(t, traceID, errResp.TraceID)
}

func TestPromptEndpointErrors(t *testing.T) {
	tests := []struct {
		name            string
		gen             *mocks.MockGenerator
		payload         interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing front side",
			gen:             mocks.NewMockGeneratorWithText("x"),
			payload:         `{"back_side":"manzana"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "front_side",
		},
		{
			name:            "malformed json",
			gen:             mocks.NewMockGeneratorWithText("x"),
			payload:         `not json`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request format",
		},
		{
			name:            "model unavailable",
			gen:             mocks.MockGeneratorUnavailable(),
			payload:         api.PromptRequest{FrontSide: "apple"},
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "unavailable",
		},
		{
			name:            "model timeout",
			gen:             mocks.MockGeneratorTimeout(),
			payload:         api.PromptRequest{FrontSide: "apple"},
			expectedStatus:  http.StatusGatewayTimeout,
			expectedMessage: "did not respond in time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.gen)

			resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, "/prompt/", tt.payload)
			require.NoError(t, err)

			testutils.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedMessage)
		})
	}
}

func TestPromptEndpointConcurrentRequests(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
			time.Sleep(5 * time.Millisecond)
			return "An _ a day.", nil
		},
	}
	ts := newTestServer(t, gen)

	var wg sync.WaitGroup
	statuses := make([]int, 10)
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, "/prompt/",
				api.PromptRequest{FrontSide: "apple", BackSide: "manzana"})
			if err != nil {
				return
			}
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for _, status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}
	assert.Equal(t, 10, gen.CallCount())
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, mocks.NewMockGeneratorWithText("x"))

	resp, err := testutils.ExecuteRequest(t, ts, http.MethodGet, "/health", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, mocks.NewMockGeneratorWithText("x"))

	resp, err := testutils.ExecuteRequest(t, ts, http.MethodGet, "/missing", nil)
	require.NoError(t, err)
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Not found")

	resp, err = testutils.ExecuteRequest(t, ts, http.MethodGet, "/prompt/", nil)
	require.NoError(t, err)
	testutils.AssertErrorResponse(t, resp, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestPromptEndpointHangingModelReturnsGatewayTimeout(t *testing.T) {
	hangingOllama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	}))
	t.Cleanup(hangingOllama.Close)

	cfg := testConfig()
	cfg.LLM.OllamaURL = hangingOllama.URL
	cfg.LLM.RequestTimeoutSeconds = 1
	cfg.Server.WriteTimeoutSeconds = 2

	app, err := newApplication(context.Background(), cfg, testLogger())
	require.NoError(t, err)

	ts := httptest.NewUnstartedServer(app.setupRouter())
	ts.Config.WriteTimeout = time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second
	ts.Start()
	t.Cleanup(ts.Close)

	start := time.Now()
	resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, "/prompt/",
		api.PromptRequest{FrontSide: "apple"})
	require.NoError(t, err, "the client should get a response, not a dropped connection")

	testutils.AssertErrorResponse(t, resp, http.StatusGatewayTimeout, "did not respond in time")
	assert.Less(t, time.Since(start), ts.Config.WriteTimeout)
}

func TestPromptEndpointQueuedRequestSharesDeadline(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	gen := &mocks.MockGenerator{
		GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
			once.Do(func() { close(started) })
			select {
			case <-release:
				return "ok", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
	}

	cfg := testConfig()
	cfg.LLM.MaxConcurrentRequests = 1
	cfg.LLM.RequestTimeoutSeconds = 1
	cfg.Server.WriteTimeoutSeconds = 2
	app, err := newApplicationWithGenerator(cfg, testLogger(), gen)
	require.NoError(t, err)

	ts := httptest.NewUnstartedServer(app.setupRouter())
	ts.Config.WriteTimeout = time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second
	ts.Start()
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(release) })

	// The first request occupies the only slot until its deadline.
	go func() {
		resp, err := ts.Client().Post(ts.URL+"/prompt/", "application/json",
			strings.NewReader(`{"front_side":"pear"}`))
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	resp, err := testutils.ExecuteJSONRequest(t, ts, http.MethodPost, "/prompt/",
		api.PromptRequest{FrontSide: "apple"})
	require.NoError(t, err)

	testutils.AssertErrorResponse(t, resp, http.StatusGatewayTimeout, "did not respond in time")
}
