package classifier

import "campus-assistant/internal/agent"

// Alternative is a runner-up agent with its similarity score.
type Alternative struct {
	Kind  agent.Kind
	Score float64
}

// Result is the outcome of classifying one message.
type Result struct {
	// Kind is the winning agent.
	Kind agent.Kind

	// Confidence is the raw cosine similarity of the winner, in [0,1].
	Confidence float64

	// MatchedKeywords are message tokens found in the winner's keyword
	// bag, deduplicated, in message order.
	MatchedKeywords []string

	// Alternatives are up to two runner-up agents in descending score
	// order.
	Alternatives []Alternative
}
