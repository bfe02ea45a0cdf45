package vllm

import "context"

// IVLLM is the interface for the OpenAI-compatible chat completion client.
type IVLLM interface {
	// ChatCompletion sends a chat completion request and returns the response
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model identifier
	Model() string
}
