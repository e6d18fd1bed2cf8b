package reasoning

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Best-effort extraction of the advice shape from free text. The provider
// is asked for a "Reasoning:" section and a "Recommendations (ranked):"
// section with numbered items; this parser tolerates everything it
// actually sends back.
var (
	reasoningRe    = regexp.MustCompile(`(?is)Reasoning:(.*?)(Recommendations \(ranked\):|$)`)
	recsRe         = regexp.MustCompile(`(?is)Recommendations \(ranked\):(.*)$`)
	recItemRe      = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)
	continuationRe = regexp.MustCompile(`^\s*[-•]|^\s{2,}`)
)

// parseStructured attempts to decode the content as a JSON document
// matching the Advice shape (the structured-output path). Markdown code
// fences around the document are tolerated.
func parseStructured(content string) (*Advice, bool) {
	trimmed := strings.TrimSpace(content)
	if fenced := strings.TrimPrefix(trimmed, "```json"); fenced != trimmed {
		trimmed = strings.TrimSuffix(strings.TrimSpace(fenced), "```")
	} else if fenced := strings.TrimPrefix(trimmed, "```"); fenced != trimmed {
		trimmed = strings.TrimSuffix(strings.TrimSpace(fenced), "```")
	}
	trimmed = strings.TrimSpace(trimmed)

	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var advice Advice
	if err := json.Unmarshal([]byte(trimmed), &advice); err != nil {
		return nil, false
	}
	if advice.Reasoning == "" && len(advice.Recommendations) == 0 {
		return nil, false
	}
	if advice.Recommendations == nil {
		advice.Recommendations = []Recommendation{}
	}
	return &advice, true
}

// parseText extracts advice from sectioned free text. Given non-empty
// content it never returns an empty result: when neither section matches,
// the whole reply becomes the reasoning and a single unlabeled
// recommendation.
func parseText(content string) *Advice {
	reasoning := ""
	recommendations := []Recommendation{}

	if m := reasoningRe.FindStringSubmatch(content); m != nil {
		reasoning = strings.TrimSpace(m[1])
	}

	if m := recsRe.FindStringSubmatch(content); m != nil {
		recommendations = parseRecommendationLines(m[1])
	}

	if reasoning == "" && len(recommendations) == 0 && content != "" {
		return &Advice{
			Reasoning:       content,
			Recommendations: []Recommendation{{Title: "Recommendation", Description: content}},
		}
	}

	return &Advice{Reasoning: reasoning, Recommendations: recommendations}
}

// parseRecommendationLines splits the recommendations section into
// numbered items. Indented or bullet-prefixed lines continue the current
// item's description; other non-empty lines are folded in with a space.
func parseRecommendationLines(section string) []Recommendation {
	recommendations := []Recommendation{}
	var current *Recommendation

	for _, line := range strings.FieldsFunc(section, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if m := recItemRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				recommendations = append(recommendations, *current)
			}
			current = &Recommendation{
				Title:       fmt.Sprintf("Recommendation %s", m[1]),
				Description: strings.TrimSpace(m[2]),
			}
			continue
		}

		if current == nil {
			continue
		}

		if continuationRe.MatchString(line) {
			current.Description += "\n" + strings.TrimSpace(line)
		} else if strings.TrimSpace(line) != "" {
			current.Description += " " + strings.TrimSpace(line)
		}
	}

	if current != nil {
		recommendations = append(recommendations, *current)
	}

	return recommendations
}
