package classifier

import (
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"

	"campus-assistant/internal/agent"
)

type scored struct {
	kind       agent.Kind
	similarity float64
	adjusted   float64
}

// Classify scores the message against every agent's keyword bag and
// returns the best match with up to two alternatives. Ranking uses the
// priority-adjusted score; reported scores are the raw cosine
// similarities. Classify is pure and never fails: degenerate input (empty,
// whitespace, no vocabulary overlap) deterministically routes to the
// general agent with zero confidence.
func (c *Classifier) Classify(message string) Result {
	tokens := tokenize(message)
	msgVec := c.vectorize(tokens)

	entries := make([]scored, len(c.profiles))
	allZero := true
	for i, p := range c.profiles {
		sim := floats.Dot(msgVec, c.vectors[i])
		if sim > 0 {
			allZero = false
		}
		entries[i] = scored{
			kind:       p.Kind,
			similarity: sim,
			adjusted:   sim * (1 + priorityBias*float64(p.Priority)),
		}
	}

	// Stable sort keeps declared profile order on exact ties
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].adjusted > entries[j].adjusted
	})

	// No signal at all: the general agent wins regardless of priority
	if allZero {
		for i, e := range entries {
			if e.kind == agent.KindGeneral && i != 0 {
				copy(entries[1:i+1], entries[:i])
				entries[0] = e
				break
			}
		}
	}

	winner := entries[0]

	var alternatives []Alternative
	for _, e := range entries[1:] {
		if len(alternatives) == 2 {
			break
		}
		alternatives = append(alternatives, Alternative{Kind: e.kind, Score: e.similarity})
	}

	return Result{
		Kind:            winner.kind,
		Confidence:      winner.similarity,
		MatchedKeywords: c.matchedKeywords(tokens, winner.kind),
		Alternatives:    alternatives,
	}
}

// matchedKeywords returns message tokens present in the winner's keyword
// bag, deduplicated, preserving message order.
func (c *Classifier) matchedKeywords(tokens []string, kind agent.Kind) []string {
	var bag map[string]bool
	for _, p := range c.profiles {
		if p.Kind != kind {
			continue
		}
		bag = make(map[string]bool, len(p.Keywords))
		for _, k := range p.Keywords {
			bag[strings.ToLower(k)] = true
		}
		break
	}
	if bag == nil {
		return nil
	}

	var matched []string
	seen := map[string]bool{}
	for _, tok := range tokens {
		if bag[tok] && !seen[tok] {
			seen[tok] = true
			matched = append(matched, tok)
		}
	}
	return matched
}

// tokenize lowercases and splits on any non-letter, non-digit rune.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
