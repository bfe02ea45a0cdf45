package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"campus-assistant/internal/agent"
	"campus-assistant/internal/chat"
	"campus-assistant/internal/model"
	"campus-assistant/internal/router"
	"campus-assistant/pkg/llmprovider"
)

// ProcessTurn handles one user message. Per-session turns are strictly
// sequential (the state lock is held for the whole turn); independent
// sessions proceed concurrently.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input chat.TurnInput) (chat.TurnOutput, error) {
	state, ok := uc.store.Get(sc.SessionID)
	if !ok {
		return chat.TurnOutput{}, chat.ErrSessionNotFound
	}

	message := strings.TrimSpace(input.Message)
	if message == "" && len(input.Attachments) == 0 {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	state.Lock()
	defer state.Unlock()

	state.AppendTurn(model.RoleUser, message)

	decision := uc.router.Route(ctx, state, message)
	if decision.Action == router.ActionAskSlot {
		state.AppendTurn(model.RoleSystem, decision.Question)
		return chat.TurnOutput{
			Reply:         decision.Question,
			Agent:         decision.Kind,
			AwaitingInput: true,
			SlotKey:       decision.SlotKey,
		}, nil
	}

	profile, _ := agent.ProfileFor(decision.Kind)
	reply := uc.generate(ctx, profile, state, message, input.Attachments)
	state.AppendTurn(model.RoleAssistant, reply)

	return chat.TurnOutput{
		Reply: reply,
		Agent: decision.Kind,
	}, nil
}

// generate runs the prompt+model pipeline for a ready agent. It always
// returns conversation-continuing text; inference failures degrade to the
// canned apology, under-length replies to the agent's own apology.
func (uc *implUseCase) generate(ctx context.Context, profile agent.Profile, state *router.ConversationState, message string, attachments []chat.Attachment) string {
	systemPrompt := agent.SystemPrompt(profile, state.Collected)

	userText := message
	if uc.retriever != nil {
		if snippets := uc.retriever.Retrieve(ctx, message); len(snippets) > 0 {
			var b strings.Builder
			b.WriteString(userText)
			b.WriteString("\n\n")
			b.WriteString(snippetHeader)
			for _, s := range snippets {
				b.WriteString("\n- ")
				b.WriteString(s)
			}
			userText = b.String()
		}
	}

	parts := []llmprovider.Part{{Text: userText}}
	for i, att := range attachments {
		img, err := decodeAttachment(att)
		if err != nil {
			// A bad attachment annotates the message instead of
			// aborting the turn
			uc.l.Warnf(ctx, "attachment %d rejected: %v", i+1, err)
			parts[0].Text += fmt.Sprintf("\n[Image attachment error: %v]", err)
			continue
		}
		parts = append(parts, llmprovider.Part{InlineImage: img})
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: parts},
		},
		Temperature: uc.genCfg.Temperature,
		MaxTokens:   uc.genCfg.MaxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "llm.GenerateContent: %v", err)
		return connectionApology
	}

	raw := resp.Text()
	validated, ok := agent.ValidateReply(profile, raw)
	if !ok {
		// Soft failure: the apology is surfaced unframed
		return validated
	}

	return agent.FormatResponse(profile, validated)
}

// decodeAttachment validates an inline image. The base64 payload is
// decoded only to verify it; the wire format keeps the encoded string.
func decodeAttachment(att chat.Attachment) (*llmprovider.InlineImage, error) {
	if !strings.HasPrefix(att.MIMEType, "image/") {
		return nil, fmt.Errorf("unsupported attachment type %q", att.MIMEType)
	}
	raw, err := base64.StdEncoding.DecodeString(att.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty image attachment")
	}
	if len(raw) > maxAttachmentBytes {
		return nil, fmt.Errorf("image attachment too large: %d bytes", len(raw))
	}
	return &llmprovider.InlineImage{
		MIMEType: att.MIMEType,
		Data:     att.Data,
	}, nil
}
