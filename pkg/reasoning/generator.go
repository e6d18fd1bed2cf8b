// Package reasoning formats supply chain state and disruptions into a
// request for an external text-generation provider and parses the reply
// into a reasoning statement plus ranked recommendations.
package reasoning

import "context"

// Generator is the provider boundary: system instructions and user content
// in, raw reply text out. Implementations may be schema-constrained (the
// reply is then a JSON document matching Advice) or plain chat completion.
type Generator interface {
	Generate(ctx context.Context, systemMsg, userMsg string) (string, error)
}

// Recommendation is one ranked suggestion
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Advice is the parsed output of a reasoning request
type Advice struct {
	Reasoning       string           `json:"reasoning"`
	Recommendations []Recommendation `json:"recommendations"`
}
