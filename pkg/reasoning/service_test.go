package reasoning

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/seed"
)

type fakeGenerator struct {
	content   string
	err       error
	systemMsg string
	userMsg   string
	calls     int
}

func (f *fakeGenerator) Generate(ctx context.Context, systemMsg, userMsg string) (string, error) {
	f.calls++
	f.systemMsg = systemMsg
	f.userMsg = userMsg
	return f.content, f.err
}

func testService(gen Generator) *Service {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	return NewService(gen, nil, logger)
}

func TestReasonAboutDisruptionsStructured(t *testing.T) {
	gen := &fakeGenerator{content: `{"reasoning": "Berlin stockout.", "recommendations": [{"title": "Reroute", "description": "Use r-dc3-r1."}]}`}
	svc := testService(gen)

	state := seed.State()
	disruptions := []models.Disruption{{Type: models.DisruptionStockout, NodeID: "r1", SKU: "skuA"}}

	advice, err := svc.ReasonAboutDisruptions(context.Background(), state, disruptions, "")
	require.NoError(t, err)
	assert.Equal(t, "Berlin stockout.", advice.Reasoning)
	require.Len(t, advice.Recommendations, 1)
	assert.Equal(t, "Reroute", advice.Recommendations[0].Title)
}

func TestReasonAboutDisruptionsTextFallback(t *testing.T) {
	gen := &fakeGenerator{content: `Reasoning: demand outstrips supply.

Recommendations (ranked):
1. Raise production at f1.
2. Reroute from dc3.`}
	svc := testService(gen)

	advice, err := svc.ReasonAboutDisruptions(context.Background(), seed.State(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "demand outstrips supply.", advice.Reasoning)
	require.Len(t, advice.Recommendations, 2)
	assert.Equal(t, "Recommendation 1", advice.Recommendations[0].Title)
}

func TestReasonAboutDisruptionsUpstreamError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := testService(gen)

	_, err := svc.ReasonAboutDisruptions(context.Background(), seed.State(), nil, "")
	require.Error(t, err)
}

func TestReasonAboutDisruptionsPromptContents(t *testing.T) {
	gen := &fakeGenerator{content: `{"reasoning": "ok", "recommendations": []}`}
	svc := testService(gen)

	disruptions := []models.Disruption{{Type: models.DisruptionBridgeClosed, BridgeID: "bridge-1"}}
	_, err := svc.ReasonAboutDisruptions(context.Background(), seed.State(), disruptions, "")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.NotEmpty(t, gen.systemMsg)
	assert.NotContains(t, gen.userMsg, "{{currentState}}")
	assert.NotContains(t, gen.userMsg, "{{disruptions}}")
	assert.Contains(t, gen.userMsg, "bridge-1")
	assert.Contains(t, gen.userMsg, "Retail Berlin")
}

func TestReasonAboutDisruptionsPriority(t *testing.T) {
	gen := &fakeGenerator{content: `{"reasoning": "ok", "recommendations": []}`}
	svc := testService(gen)

	_, err := svc.ReasonAboutDisruptions(context.Background(), seed.State(), nil, "minimize cost")
	require.NoError(t, err)
	assert.Contains(t, gen.userMsg, "optimization priority: minimize cost.")

	gen2 := &fakeGenerator{content: `{"reasoning": "ok", "recommendations": []}`}
	svc2 := testService(gen2)
	_, err = svc2.ReasonAboutDisruptions(context.Background(), seed.State(), nil, "")
	require.NoError(t, err)
	assert.NotContains(t, gen2.userMsg, "optimization priority")
}
