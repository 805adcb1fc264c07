// Package llm performs single-shot exchanges with an external completion
// service. Each call is exactly one request and one response: no caching,
// no internal retry for completion failures, and no credential
// persistence. Retry policy belongs entirely to the orchestrator.
package llm

import "context"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Request is a fully built exchange. The credential travels with the
// request so no client ever holds it in process-wide state.
type Request struct {
	System     string
	Messages   []Message
	Credential string
	MaxTokens  int
}

// Client performs exactly one request/response exchange with a
// completion service and returns the raw response text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
