package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient implements Client for the Google Gemini API via the genai
// SDK. The SDK client binds the API key at construction, so a fresh SDK
// client is built per call: the credential arrives with the request and
// is released with it.
type GeminiClient struct {
	model string
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	Model string
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		Model: "gemini-2.5-flash",
	}
}

// NewGeminiClient creates a client with custom config. A zero-value
// model falls back to the default.
func NewGeminiClient(config GeminiConfig) *GeminiClient {
	if config.Model == "" {
		config.Model = DefaultGeminiConfig().Model
	}
	return &GeminiClient{model: config.Model}
}

// Complete sends one generate-content request and returns the raw text.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if req.Credential == "" {
		return "", &AuthError{Reason: "no API key provided"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: req.Credential,
	})
	if err != nil {
		return "", &NetworkError{Err: fmt.Errorf("failed to create genai client: %w", err)}
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", &NetworkError{Err: fmt.Errorf("no completion returned")}
	}
	return strings.TrimSpace(text), nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &AuthError{Reason: fmt.Sprintf("completion service rejected the API key (status %d)", apiErr.Code)}
		}
		return &NetworkError{Status: apiErr.Code, Err: err}
	}
	return &NetworkError{Err: err}
}
