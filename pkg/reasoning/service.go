package reasoning

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/metrics"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
)

//go:embed prompts/system.txt
var systemPrompt string

//go:embed prompts/user.txt
var userPromptTemplate string

// Service is the reasoning gateway: it snapshots nothing and locks
// nothing; callers pass in the state and disruptions they already hold.
type Service struct {
	generator Generator
	cache     *Cache
	logger    ectologger.Logger
}

// NewService creates the reasoning service. cache may be nil.
func NewService(generator Generator, cache *Cache, logger ectologger.Logger) *Service {
	return &Service{
		generator: generator,
		cache:     cache,
		logger:    logger,
	}
}

// ReasonAboutDisruptions asks the provider for advice about the given
// state and disruptions. An optional optimization priority is appended as
// a weighting instruction. Errors only surface on total upstream failure;
// malformed-but-present output degrades through the textual parser, never
// into an error.
func (s *Service) ReasonAboutDisruptions(ctx context.Context, state *models.SupplyChainState, disruptions []models.Disruption, priority string) (*Advice, error) {
	ctx, span := tracing.StartSpan(ctx, "reasoning.Service.ReasonAboutDisruptions")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.ReasoningDuration.Observe(time.Since(start).Seconds())
	}()

	cacheKey := s.cache.Key(state, disruptions, priority)
	if advice := s.cache.Get(ctx, cacheKey); advice != nil {
		metrics.ReasoningRequestsTotal.WithLabelValues("cache_hit").Inc()
		s.logger.WithContext(ctx).Debug("Returning cached advice")
		return advice, nil
	}

	userMsg := buildUserMessage(state, disruptions, priority)

	content, err := s.generator.Generate(ctx, systemPrompt, userMsg)
	if err != nil {
		metrics.ReasoningRequestsTotal.WithLabelValues("upstream_error").Inc()
		return nil, err
	}

	advice, structured := parseStructured(content)
	if !structured {
		advice = parseText(content)
	}

	s.cache.Set(ctx, cacheKey, advice)
	metrics.ReasoningRequestsTotal.WithLabelValues("ok").Inc()

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"structured":      structured,
		"recommendations": len(advice.Recommendations),
	}).Info("Generated reasoning advice")

	return advice, nil
}

// buildUserMessage fills the prompt template with pretty-printed JSON of
// the state and disruptions.
func buildUserMessage(state *models.SupplyChainState, disruptions []models.Disruption, priority string) string {
	stateJSON, _ := json.MarshalIndent(state, "", "  ")
	disruptionsJSON, _ := json.MarshalIndent(disruptions, "", "  ")

	msg := strings.Replace(userPromptTemplate, "{{currentState}}", string(stateJSON), 1)
	msg = strings.Replace(msg, "{{disruptions}}", string(disruptionsJSON), 1)

	if priority != "" {
		msg += "\n\nWhen ranking the recommendations, give the most weight to this optimization priority: " + priority + "."
	}

	return msg
}
