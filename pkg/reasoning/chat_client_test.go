package reasoning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/httpclient"
)

func newChatClient(t *testing.T, endpoint string, structured bool, timeout time.Duration) *ChatClient {
	t.Helper()
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	cfg := httpclient.DefaultConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return NewChatClient(ChatClientConfig{
		Endpoint:         endpoint,
		APIKey:           "test-key",
		Deployment:       "o4-mini",
		Model:            "o4-mini",
		APIVersion:       "2024-04-01-preview",
		StructuredOutput: structured,
	}, httpclient.NewClient(cfg, logger), logger)
}

func TestChatClientGenerate(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAPIKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "Reasoning: all good."}}]}`))
	}))
	defer srv.Close()

	client := newChatClient(t, srv.URL, false, 0)

	content, err := client.Generate(context.Background(), "you are an analyst", "what is broken?")
	require.NoError(t, err)
	assert.Equal(t, "Reasoning: all good.", content)

	assert.Equal(t, "/openai/deployments/o4-mini/chat/completions?api-version=2024-04-01-preview", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, 800, gotBody.MaxCompletionTokens)
	assert.Nil(t, gotBody.ResponseFormat)
}

func TestChatClientStructuredOutput(t *testing.T) {
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{}"}}]}`))
	}))
	defer srv.Close()

	client := newChatClient(t, srv.URL, true, 0)

	_, err := client.Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	require.NotNil(t, gotBody.ResponseFormat)
	assert.Equal(t, "json_schema", gotBody.ResponseFormat["type"])
}

func TestChatClientProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer srv.Close()

	client := newChatClient(t, srv.URL, false, 0)

	_, err := client.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httperror.GetStatusCode(err))
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestChatClientEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := newChatClient(t, srv.URL, false, 0)

	_, err := client.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestChatClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "late"}}]}`))
	}))
	defer srv.Close()

	client := newChatClient(t, srv.URL, false, 20*time.Millisecond)

	_, err := client.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, httperror.GetStatusCode(err))
}
