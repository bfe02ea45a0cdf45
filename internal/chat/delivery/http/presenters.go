package http

import (
	"time"

	"campus-assistant/internal/chat"
)

// --- Request DTOs ---

type attachmentReq struct {
	MIMEType string `json:"mime_type" binding:"required"`
	Data     string `json:"data"      binding:"required"`
}

type messageReq struct {
	SessionID   string          `json:"-"` // populated from URI param
	Message     string          `json:"message"     binding:"max=8000"`
	Attachments []attachmentReq `json:"attachments" binding:"max=4,dive"`
}

func (r messageReq) validate() error { return nil }

func (r messageReq) toInput() chat.TurnInput {
	attachments := make([]chat.Attachment, len(r.Attachments))
	for i, a := range r.Attachments {
		attachments[i] = chat.Attachment{
			MIMEType: a.MIMEType,
			Data:     a.Data,
		}
	}
	return chat.TurnInput{
		Message:     r.Message,
		Attachments: attachments,
	}
}

// --- Response DTOs ---

type createSessionResp struct {
	SessionID string `json:"session_id"`
}

func (h *handler) newCreateSessionResp(out chat.CreateSessionOutput) createSessionResp {
	return createSessionResp{SessionID: out.SessionID}
}

type turnResp struct {
	Reply         string `json:"reply"`
	Agent         string `json:"agent"`
	AwaitingInput bool   `json:"awaiting_input"`
	SlotKey       string `json:"slot_key,omitempty"`
}

func (h *handler) newTurnResp(out chat.TurnOutput) turnResp {
	return turnResp{
		Reply:         out.Reply,
		Agent:         string(out.Agent),
		AwaitingInput: out.AwaitingInput,
		SlotKey:       out.SlotKey,
	}
}

type turnItemResp struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type transcriptResp struct {
	Agent string         `json:"agent"`
	Turns []turnItemResp `json:"turns"`
}

func (h *handler) newTranscriptResp(out chat.TranscriptOutput) transcriptResp {
	turns := make([]turnItemResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnItemResp{
			Role:    string(t.Role),
			Content: t.Content,
			At:      t.At,
		}
	}
	return transcriptResp{
		Agent: string(out.Agent),
		Turns: turns,
	}
}
