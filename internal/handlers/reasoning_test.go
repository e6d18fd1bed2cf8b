package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/reasoning"
)

type stubGenerator struct {
	content string
	err     error
	userMsg string
}

func (s *stubGenerator) Generate(ctx context.Context, systemMsg, userMsg string) (string, error) {
	s.userMsg = userMsg
	return s.content, s.err
}

func (h *apiHarness) withReasoning(gen reasoning.Generator) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	svc := reasoning.NewService(gen, nil, logger)
	NewReasoningHandler(h.st, svc, logger).Register(h.e.Group("/api"))
}

func TestReason(t *testing.T) {
	h := newAPIHarness(t)
	gen := &stubGenerator{content: `{"reasoning": "Berlin is short on skuA.", "recommendations": [{"title": "Reroute", "description": "Pull stock from dc3."}]}`}
	h.withReasoning(gen)

	rec := h.request(http.MethodPost, "/api/reason", map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReasonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Berlin is short on skuA.", resp.Data.Reasoning)
	require.Len(t, resp.Data.Recommendations, 1)
	assert.Equal(t, "Reroute", resp.Data.Recommendations[0].Title)
}

func TestReasonIncludesLiveDisruptions(t *testing.T) {
	h := newAPIHarness(t)
	gen := &stubGenerator{content: `{"reasoning": "ok", "recommendations": []}`}
	h.withReasoning(gen)

	h.request(http.MethodPost, "/api/supplychain/disrupt", map[string]string{
		"type":     "bridge_closed",
		"bridgeId": "bridge-7",
	})

	rec := h.request(http.MethodPost, "/api/reason", map[string]string{
		"optimizationPriority": "minimize cost",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, gen.userMsg, "bridge-7")
	assert.Contains(t, gen.userMsg, "optimization priority: minimize cost.")
}

func TestReasonUpstreamFailure(t *testing.T) {
	h := newAPIHarness(t)
	gen := &stubGenerator{err: httperror.NewHTTPError(http.StatusInternalServerError, "reasoning provider request failed")}
	h.withReasoning(gen)

	rec := h.request(http.MethodPost, "/api/reason", map[string]string{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReasonUpstreamTimeout(t *testing.T) {
	h := newAPIHarness(t)
	gen := &stubGenerator{err: httperror.NewHTTPError(http.StatusGatewayTimeout, "reasoning provider timed out")}
	h.withReasoning(gen)

	rec := h.request(http.MethodPost, "/api/reason", map[string]string{})
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
