package router

import (
	"context"

	"campus-assistant/internal/agent"
	"campus-assistant/internal/classifier"
	"campus-assistant/pkg/log"
)

// Router decides, per turn, which agent owns the conversation and whether
// the turn asks a slot question or triggers generation. It never fails.
type Router struct {
	classifier *classifier.Classifier
	logger     log.Logger
}

// New creates a session router over a fitted classifier.
func New(c *classifier.Classifier, logger log.Logger) *Router {
	return &Router{
		classifier: c,
		logger:     logger,
	}
}

// Route advances the state machine with one user message. The caller must
// hold the state lock.
//
// If a slot answer is pending, the message is consumed as the slot value
// and no reclassification happens: the user is answering the question, not
// starting a new topic. Otherwise the message is classified, and a
// disagreement with the active agent clears all collected slots before
// switching. The first unfilled required input (declared order) produces
// an AskSlot decision; a fully-filled agent produces Generate.
func (r *Router) Route(ctx context.Context, state *ConversationState, message string) Decision {
	var classification *classifier.Result

	if state.AwaitingInput && state.CurrentInputKey != "" {
		state.Collected[state.CurrentInputKey] = message
		state.AwaitingInput = false
		state.CurrentInputKey = ""
	} else {
		res := r.classifier.Classify(message)
		classification = &res
		if res.Kind != state.ActiveKind {
			state.Collected = make(map[string]string)
			state.AwaitingInput = false
			state.CurrentInputKey = ""
			state.ActiveKind = res.Kind
			r.logger.Info(ctx, "agent hand-off",
				"agent", res.Kind,
				"confidence", res.Confidence,
				"matched_keywords", res.MatchedKeywords,
			)
		}
	}

	profile, ok := agent.ProfileFor(state.ActiveKind)
	if !ok {
		// Unknown active kind cannot happen through normal routing;
		// recover to the general agent rather than failing the turn.
		state.ActiveKind = agent.KindGeneral
		profile, _ = agent.ProfileFor(agent.KindGeneral)
	}

	for _, in := range profile.RequiredInputs {
		if _, filled := state.Collected[in.Key]; !filled {
			state.AwaitingInput = true
			state.CurrentInputKey = in.Key
			return Decision{
				Action:         ActionAskSlot,
				Kind:           state.ActiveKind,
				SlotKey:        in.Key,
				Question:       in.Question,
				Classification: classification,
			}
		}
	}

	return Decision{
		Action:         ActionGenerate,
		Kind:           state.ActiveKind,
		Classification: classification,
	}
}
