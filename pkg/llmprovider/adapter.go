package llmprovider

import (
	"context"
	"fmt"

	"campus-assistant/pkg/vllm"
)

// VLLMAdapter adapts pkg/vllm to the llmprovider.Provider interface.
// It works against any OpenAI-compatible chat completion endpoint.
type VLLMAdapter struct {
	name   string
	client vllm.IVLLM
}

// NewVLLMAdapter creates a new adapter. The name distinguishes multiple
// OpenAI-compatible backends in logs (e.g., "vllm", "openai").
func NewVLLMAdapter(name string, client vllm.IVLLM) *VLLMAdapter {
	return &VLLMAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *VLLMAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	vllmReq := &vllm.Request{
		Messages:    convertToVLLMMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// Add system instruction as first message if present
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := vllm.NewTextMessage("system", req.SystemInstruction.Parts[0].Text)
		vllmReq.Messages = append([]vllm.Message{systemMsg}, vllmReq.Messages...)
	}

	resp, err := a.client.ChatCompletion(ctx, vllmReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return a.convertResponse(resp), nil
}

// Name returns the provider name
func (a *VLLMAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *VLLMAdapter) Model() string {
	return a.client.Model()
}

// convertToVLLMMessages maps normalized messages to the OpenAI wire shape.
// Messages with only text become plain string content; messages carrying
// inline images become multimodal part lists.
func convertToVLLMMessages(msgs []Message) []vllm.Message {
	messages := make([]vllm.Message, 0, len(msgs))
	for _, msg := range msgs {
		hasImage := false
		for _, p := range msg.Parts {
			if p.InlineImage != nil {
				hasImage = true
				break
			}
		}

		if !hasImage {
			var text string
			for _, p := range msg.Parts {
				text += p.Text
			}
			messages = append(messages, vllm.NewTextMessage(msg.Role, text))
			continue
		}

		parts := make([]vllm.ContentPart, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			if p.InlineImage != nil {
				uri := fmt.Sprintf("data:%s;base64,%s", p.InlineImage.MIMEType, p.InlineImage.Data)
				parts = append(parts, vllm.ImagePart(uri))
				continue
			}
			if p.Text != "" {
				parts = append(parts, vllm.TextPart(p.Text))
			}
		}
		messages = append(messages, vllm.NewMultimodalMessage(msg.Role, parts))
	}
	return messages
}

func (a *VLLMAdapter) convertResponse(resp *vllm.Response) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	if len(resp.Choices) == 0 {
		return &Response{
			Content:      Message{Role: "assistant", Parts: []Part{}},
			ProviderName: a.name,
			ModelName:    resp.Model,
			Usage:        usage,
		}
	}

	choice := resp.Choices[0]
	parts := []Part{}
	if choice.Message.Content != "" {
		parts = append(parts, Part{Text: choice.Message.Content})
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage:        usage,
	}
}
