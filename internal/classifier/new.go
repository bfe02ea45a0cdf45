package classifier

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"campus-assistant/internal/agent"
)

// priorityBias is the weight applied per priority level when ranking
// agents: adjusted = similarity * (1 + priorityBias * priority).
const priorityBias = 0.1

// Classifier maps a raw message to the agent best suited to handle it,
// using TF-IDF weighted cosine similarity over hand-curated keyword bags.
// The model is fit once at construction and is read-only afterwards, safe
// for concurrent use.
type Classifier struct {
	profiles []agent.Profile
	vocab    map[string]int // term -> index
	idf      []float64
	vectors  [][]float64 // per-profile unit vector, aligned with profiles
}

// New fits the classifier over the keyword bags of the given profiles.
// Each bag is treated as one document for document-frequency weighting.
func New(profiles []agent.Profile) *Classifier {
	c := &Classifier{
		profiles: profiles,
		vocab:    make(map[string]int),
	}

	// Build the fixed vocabulary and per-document term counts
	docTokens := make([][]string, len(profiles))
	for i, p := range profiles {
		tokens := tokenize(joinKeywords(p.Keywords))
		docTokens[i] = tokens
		for _, tok := range tokens {
			if _, ok := c.vocab[tok]; !ok {
				c.vocab[tok] = len(c.vocab)
			}
		}
	}

	// Smoothed inverse document frequency
	df := make([]float64, len(c.vocab))
	for _, tokens := range docTokens {
		seen := map[string]bool{}
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				df[c.vocab[tok]]++
			}
		}
	}
	n := float64(len(profiles))
	c.idf = make([]float64, len(c.vocab))
	for i, d := range df {
		c.idf[i] = math.Log((1+n)/(1+d)) + 1
	}

	// Precompute a unit vector per agent bag
	c.vectors = make([][]float64, len(profiles))
	for i, tokens := range docTokens {
		c.vectors[i] = c.vectorize(tokens)
	}

	return c
}

// vectorize builds an L2-normalized TF-IDF vector for the given tokens.
// Tokens outside the fitted vocabulary are ignored. A vector with no
// vocabulary overlap stays all-zero.
func (c *Classifier) vectorize(tokens []string) []float64 {
	v := make([]float64, len(c.vocab))
	for _, tok := range tokens {
		if idx, ok := c.vocab[tok]; ok {
			v[idx] += c.idf[idx]
		}
	}
	if norm := floats.Norm(v, 2); norm > 0 {
		floats.Scale(1/norm, v)
	}
	return v
}

func joinKeywords(keywords []string) string {
	var s string
	for i, k := range keywords {
		if i > 0 {
			s += " "
		}
		s += k
	}
	return s
}
