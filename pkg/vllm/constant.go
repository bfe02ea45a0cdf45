package vllm

import "time"

const (
	// DefaultBaseURL points at a local vLLM server's OpenAI-compatible API
	DefaultBaseURL = "http://localhost:5000/v1"

	// DefaultAPIKey is a placeholder — vLLM does not require a real key
	DefaultAPIKey = "EMPTY"

	DefaultModel       = "google/gemma-3-27b-it"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second
)

// Content part types for multimodal messages.
const (
	ContentTypeText     = "text"
	ContentTypeImageURL = "image_url"
)
