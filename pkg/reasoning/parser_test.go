package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructured(t *testing.T) {
	content := `{"reasoning": "Berlin is out of skuA.", "recommendations": [{"title": "Reroute", "description": "Ship from dc3."}]}`

	advice, ok := parseStructured(content)
	require.True(t, ok)
	assert.Equal(t, "Berlin is out of skuA.", advice.Reasoning)
	require.Len(t, advice.Recommendations, 1)
	assert.Equal(t, "Reroute", advice.Recommendations[0].Title)
	assert.Equal(t, "Ship from dc3.", advice.Recommendations[0].Description)
}

func TestParseStructuredCodeFence(t *testing.T) {
	content := "```json\n{\"reasoning\": \"ok\", \"recommendations\": []}\n```"

	advice, ok := parseStructured(content)
	require.True(t, ok)
	assert.Equal(t, "ok", advice.Reasoning)
	assert.Empty(t, advice.Recommendations)
}

func TestParseStructuredRejectsNonJSON(t *testing.T) {
	_, ok := parseStructured("Reasoning: this is prose, not JSON")
	assert.False(t, ok)
}

func TestParseStructuredRejectsEmptyDocument(t *testing.T) {
	_, ok := parseStructured("{}")
	assert.False(t, ok)
}

func TestParseTextSections(t *testing.T) {
	content := `Reasoning: Berlin retail is stocked out of skuA while demand
remains at 30 units.

Recommendations (ranked):
1. Reroute stock from DC Los Angeles to Berlin.
2. Increase production at Factory Shanghai.
3. Place an expedited order.`

	advice := parseText(content)

	assert.Contains(t, advice.Reasoning, "Berlin retail is stocked out")
	assert.NotContains(t, advice.Reasoning, "Recommendations (ranked)")
	require.Len(t, advice.Recommendations, 3)
	assert.Equal(t, "Recommendation 1", advice.Recommendations[0].Title)
	assert.Equal(t, "Reroute stock from DC Los Angeles to Berlin.", advice.Recommendations[0].Description)
	assert.Equal(t, "Recommendation 3", advice.Recommendations[2].Title)
	assert.Equal(t, "Place an expedited order.", advice.Recommendations[2].Description)
}

func TestParseTextContinuationLines(t *testing.T) {
	content := `Reasoning: two findings.

Recommendations (ranked):
1. Reroute stock.
- move 200 units via r-dc3-r1
- expected transit 1.2 days
2. Scale production
to cover the demand gap.`

	advice := parseText(content)

	require.Len(t, advice.Recommendations, 2)
	assert.Equal(t, "Reroute stock.\n- move 200 units via r-dc3-r1\n- expected transit 1.2 days", advice.Recommendations[0].Description)
	// A plain wrapped line folds into the item with a space.
	assert.Equal(t, "Scale production to cover the demand gap.", advice.Recommendations[1].Description)
}

func TestParseTextWholeResponseFallback(t *testing.T) {
	content := "The supply chain looks strained around Berlin; consider rerouting."

	advice := parseText(content)

	assert.Equal(t, content, advice.Reasoning)
	require.Len(t, advice.Recommendations, 1)
	assert.Equal(t, "Recommendation", advice.Recommendations[0].Title)
	assert.Equal(t, content, advice.Recommendations[0].Description)
}

func TestParseTextReasoningOnly(t *testing.T) {
	advice := parseText("Reasoning: nothing actionable right now.")

	assert.Equal(t, "nothing actionable right now.", advice.Reasoning)
	assert.Empty(t, advice.Recommendations)
}

func TestParseTextCaseInsensitiveHeaders(t *testing.T) {
	content := `reasoning: lower case headers still work.

recommendations (ranked):
1. Do the thing.`

	advice := parseText(content)

	assert.Equal(t, "lower case headers still work.", advice.Reasoning)
	require.Len(t, advice.Recommendations, 1)
}
