package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicComplete_Success(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"content": [{"type": "text", "text": "part one "}, {"type": "text", "text": "part two"}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewAnthropicClient(AnthropicConfig{BaseURL: server.URL})
	text, err := client.Complete(context.Background(), Request{
		System:     "design maps",
		Messages:   []Message{{Role: RoleUser, Content: "a cave"}},
		Credential: "ak-test",
	})
	require.NoError(t, err)
	assert.Equal(t, "part one part two", text, "text blocks are concatenated")
	assert.Equal(t, "ak-test", gotKey)
	assert.NotEmpty(t, gotVersion)
	assert.Equal(t, "design maps", gotBody.System, "system prompt uses the dedicated field")
}

func TestAnthropicComplete_AuthTaxonomy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`, http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := NewAnthropicClient(AnthropicConfig{BaseURL: server.URL})
	_, err := client.Complete(context.Background(), Request{
		Messages:   []Message{{Role: RoleUser, Content: "hi"}},
		Credential: "ak-bad",
	})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestNewClient_Factory(t *testing.T) {
	for _, provider := range []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini} {
		client, err := NewClient(provider, Options{})
		require.NoError(t, err, "provider %s", provider)
		require.NotNil(t, client)
	}

	_, err := NewClient("cohere", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
