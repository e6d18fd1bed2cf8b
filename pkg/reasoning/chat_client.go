package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/httpclient"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/metrics"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
)

// ChatClientConfig holds the provider connection settings
type ChatClientConfig struct {
	Endpoint            string
	APIKey              string
	Deployment          string
	Model               string
	APIVersion          string
	MaxCompletionTokens int
	// StructuredOutput asks the provider to constrain the reply to the
	// Advice JSON schema. Providers without schema support ignore it and
	// the textual fallback parser takes over.
	StructuredOutput bool
}

// ChatClient calls an Azure-OpenAI-compatible chat completions endpoint
type ChatClient struct {
	cfg    ChatClientConfig
	client *httpclient.Client
	logger ectologger.Logger
}

// NewChatClient creates a chat completions client
func NewChatClient(cfg ChatClientConfig, client *httpclient.Client, logger ectologger.Logger) *ChatClient {
	if cfg.MaxCompletionTokens == 0 {
		cfg.MaxCompletionTokens = 800
	}
	return &ChatClient{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages            []chatMessage  `json:"messages"`
	Model               string         `json:"model,omitempty"`
	MaxCompletionTokens int            `json:"max_completion_tokens"`
	ResponseFormat      map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// adviceSchema is the JSON schema sent with structured-output requests. It
// mirrors the Advice shape exactly.
var adviceSchema = map[string]any{
	"type": "json_schema",
	"json_schema": map[string]any{
		"name":   "supply_chain_advice",
		"strict": true,
		"schema": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"reasoning", "recommendations"},
			"properties": map[string]any{
				"reasoning": map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"required":             []string{"title", "description"},
						"properties": map[string]any{
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

// Generate sends a two-part chat completion request and returns the reply
// content. It errors only on total upstream failure: transport errors,
// timeouts, non-2xx statuses, responses marked as errors, and empty
// content.
func (c *ChatClient) Generate(ctx context.Context, systemMsg, userMsg string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "reasoning.ChatClient.Generate")
	defer span.End()

	payload := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemMsg},
			{Role: "user", Content: userMsg},
		},
		Model:               c.cfg.Model,
		MaxCompletionTokens: c.cfg.MaxCompletionTokens,
	}
	if c.cfg.StructuredOutput {
		payload.ResponseFormat = adviceSchema
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Deployment, c.cfg.APIVersion)

	resp, err := c.client.PostJSON(ctx, url, payload, map[string]string{
		"api-key": c.cfg.APIKey,
	})
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("transport_error").Inc()
		if isTimeout(err) {
			return "", httperror.NewHTTPError(http.StatusGatewayTimeout, "reasoning provider request timed out")
		}
		return "", httperror.NewHTTPErrorf(http.StatusInternalServerError, "reasoning provider request failed: %v", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", httperror.NewHTTPErrorf(http.StatusInternalServerError, "reasoning provider returned unreadable response: %v", err)
	}

	if parsed.Error != nil {
		return "", httperror.NewHTTPErrorf(http.StatusInternalServerError, "reasoning provider error: %s", parsed.Error.Message)
	}

	if !httpclient.IsSuccessStatus(resp.StatusCode) {
		return "", httperror.NewHTTPErrorf(http.StatusInternalServerError, "reasoning provider returned status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", httperror.NewHTTPError(http.StatusInternalServerError, "reasoning provider returned no content")
	}

	return parsed.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
