package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/config"
)

func TestNewProvider_NoKeys(t *testing.T) {
	_, err := NewProvider(config.LLMConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no LLM provider configured")
}

func TestNewProvider_DetectsAnthropic(t *testing.T) {
	p, err := NewProvider(config.LLMConfig{AnthropicAPIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
}

func TestNewProvider_DetectsOpenAI(t *testing.T) {
	p, err := NewProvider(config.LLMConfig{OpenAIAPIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestNewProvider_AnthropicWinsAutoDetect(t *testing.T) {
	p, err := NewProvider(config.LLMConfig{
		AnthropicAPIKey: "a-key",
		OpenAIAPIKey:    "o-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
}

func TestNewProvider_ExplicitProviderWithoutKey(t *testing.T) {
	_, err := NewProvider(config.LLMConfig{
		DefaultProvider: "openai",
		AnthropicAPIKey: "a-key",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY not set")
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(config.LLMConfig{
		DefaultProvider: "gemini",
		AnthropicAPIKey: "a-key",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNewProvider_DefaultModelPassedThrough(t *testing.T) {
	p, err := NewProvider(config.LLMConfig{
		AnthropicAPIKey: "key",
		DefaultModel:    "claude-3-5-sonnet-20241022",
	})
	require.NoError(t, err)

	ap, ok := p.(*AnthropicProvider)
	require.True(t, ok)
	assert.Equal(t, "claude-3-5-sonnet-20241022", ap.model)
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, IsConfigured(config.LLMConfig{}))
	assert.True(t, IsConfigured(config.LLMConfig{AnthropicAPIKey: "k"}))
	assert.True(t, IsConfigured(config.LLMConfig{OpenAIAPIKey: "k"}))
}

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, Message{Role: "system", Content: "s"}, NewSystemMessage("s"))
	assert.Equal(t, Message{Role: "user", Content: "u"}, NewUserMessage("u"))
	assert.Equal(t, Message{Role: "assistant", Content: "a"}, NewAssistantMessage("a"))
}
