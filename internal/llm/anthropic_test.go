package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAnthropicClient implements AnthropicClientInterface for testing.
type mockAnthropicClient struct {
	messageResponse *anthropic.Message
	messageErr      error
	capturedParams  anthropic.MessageNewParams
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	m.capturedParams = params
	if m.messageErr != nil {
		return nil, m.messageErr
	}
	return m.messageResponse, nil
}

func (m *mockAnthropicClient) CreateMessageStream(ctx context.Context, params anthropic.MessageNewParams) *ssestream.Stream[anthropic.MessageStreamEventUnion] {
	return nil
}

func textResponse(model, text string) *anthropic.Message {
	return &anthropic.Message{
		Model:      anthropic.Model(model),
		StopReason: "end_turn",
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: text},
		},
		Usage: anthropic.Usage{},
	}
}

func TestNewAnthropicProvider_ValidAPIKey(t *testing.T) {
	provider, err := NewAnthropicProvider("test-api-key", "")
	require.NoError(t, err)
	assert.NotNil(t, provider)
	assert.Equal(t, DefaultAnthropicModel, provider.model)
}

func TestNewAnthropicProvider_EmptyAPIKey(t *testing.T) {
	_, err := NewAnthropicProvider("", "")
	require.Error(t, err)
	assert.Equal(t, "API key is required", err.Error())
}

func TestNewAnthropicProvider_CustomModel(t *testing.T) {
	provider, err := NewAnthropicProvider("test-api-key", "claude-3-5-sonnet-20241022")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-sonnet-20241022", provider.model)
}

func TestNewAnthropicProvider_InvalidModel(t *testing.T) {
	_, err := NewAnthropicProvider("test-api-key", "invalid-model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Anthropic model")
}

func TestAnthropicProvider_Name(t *testing.T) {
	provider := NewAnthropicProviderWithClient(&mockAnthropicClient{}, "")
	assert.Equal(t, "anthropic", provider.Name())
}

func TestAnthropicProvider_Models(t *testing.T) {
	provider := NewAnthropicProviderWithClient(&mockAnthropicClient{}, "")
	models := provider.Models()

	assert.Equal(t, AnthropicModels, models)
	assert.Contains(t, models, DefaultAnthropicModel)
}

func TestAnthropicProvider_ConvertMessages(t *testing.T) {
	provider := NewAnthropicProviderWithClient(&mockAnthropicClient{}, "")

	tests := []struct {
		name                 string
		messages             []Message
		expectedCount        int
		expectedSystemPrompt string
	}{
		{
			name: "single user message",
			messages: []Message{
				NewUserMessage("Assalamu alaikum"),
			},
			expectedCount:        1,
			expectedSystemPrompt: "",
		},
		{
			name: "system message is extracted",
			messages: []Message{
				NewSystemMessage("You are a companion."),
				NewUserMessage("Hello!"),
			},
			expectedCount:        1,
			expectedSystemPrompt: "You are a companion.",
		},
		{
			name: "full conversation",
			messages: []Message{
				NewSystemMessage("You are a companion."),
				NewUserMessage("What is Tahajjud?"),
				NewAssistantMessage("Tahajjud is the voluntary night prayer."),
				NewUserMessage("When is it prayed?"),
			},
			expectedCount:        3,
			expectedSystemPrompt: "You are a companion.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anthropicMsgs, systemPrompt := provider.convertMessages(tt.messages)
			assert.Len(t, anthropicMsgs, tt.expectedCount)
			assert.Equal(t, tt.expectedSystemPrompt, systemPrompt)
		})
	}
}

func TestAnthropicProvider_ChatSync_Success(t *testing.T) {
	mockClient := &mockAnthropicClient{
		messageResponse: &anthropic.Message{
			Model:      DefaultAnthropicModel,
			StopReason: "end_turn",
			Content: []anthropic.ContentBlockUnion{
				{Type: "text", Text: "Wa alaikum assalam!"},
			},
			Usage: anthropic.Usage{
				InputTokens:  10,
				OutputTokens: 8,
			},
		},
	}

	provider := NewAnthropicProviderWithClient(mockClient, "")

	resp, err := provider.ChatSync(context.Background(), []Message{
		NewUserMessage("Assalamu alaikum"),
	}, ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Wa alaikum assalam!", resp.Content)
	assert.Equal(t, DefaultAnthropicModel, resp.Model)
	assert.Equal(t, "end_turn", resp.FinishReason)
	assert.Equal(t, 10, resp.Usage.PromptTokens)
	assert.Equal(t, 8, resp.Usage.CompletionTokens)
	assert.Equal(t, 18, resp.Usage.TotalTokens)
}

func TestAnthropicProvider_ChatSync_Error(t *testing.T) {
	mockClient := &mockAnthropicClient{
		messageErr: errors.New("API error"),
	}

	provider := NewAnthropicProviderWithClient(mockClient, "")

	_, err := provider.ChatSync(context.Background(), []Message{
		NewUserMessage("Hello!"),
	}, ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic chat")
}

func TestAnthropicProvider_ChatSync_SystemParam(t *testing.T) {
	mockClient := &mockAnthropicClient{
		messageResponse: textResponse(DefaultAnthropicModel, "Response"),
	}

	provider := NewAnthropicProviderWithClient(mockClient, "")

	_, err := provider.ChatSync(context.Background(), []Message{
		NewSystemMessage("You are a companion."),
		NewUserMessage("Hello!"),
	}, ChatOptions{})
	require.NoError(t, err)

	require.Len(t, mockClient.capturedParams.System, 1)
	assert.Equal(t, "You are a companion.", mockClient.capturedParams.System[0].Text)
}

func TestAnthropicProvider_ChatSync_ModelOverride(t *testing.T) {
	mockClient := &mockAnthropicClient{
		messageResponse: textResponse("claude-3-5-sonnet-20241022", "Response"),
	}

	provider := NewAnthropicProviderWithClient(mockClient, "")

	_, err := provider.ChatSync(context.Background(), []Message{
		NewUserMessage("Hello!"),
	}, ChatOptions{Model: "claude-3-5-sonnet-20241022"})
	require.NoError(t, err)

	assert.Equal(t, anthropic.Model("claude-3-5-sonnet-20241022"), mockClient.capturedParams.Model)
}

func TestAnthropicProvider_ChatSync_MaxTokens(t *testing.T) {
	mockClient := &mockAnthropicClient{
		messageResponse: textResponse(DefaultAnthropicModel, "Response"),
	}

	provider := NewAnthropicProviderWithClient(mockClient, "")

	_, err := provider.ChatSync(context.Background(), []Message{
		NewUserMessage("Hello!"),
	}, ChatOptions{MaxTokens: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), mockClient.capturedParams.MaxTokens)

	_, err = provider.ChatSync(context.Background(), []Message{
		NewUserMessage("Hello!"),
	}, ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(4096), mockClient.capturedParams.MaxTokens)
}

func TestIsValidAnthropicModel(t *testing.T) {
	tests := []struct {
		model string
		valid bool
	}{
		{"claude-3-5-haiku-20241022", true},
		{"claude-3-5-sonnet-20241022", true},
		{"claude-3-haiku-20240307", true},
		{"claude-3-opus-20240229", true},
		{"invalid-model", false},
		{"gpt-4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidAnthropicModel(tt.model), "isValidAnthropicModel(%q)", tt.model)
		})
	}
}

func TestAnthropicProvider_ImplementsInterface(t *testing.T) {
	provider := NewAnthropicProviderWithClient(&mockAnthropicClient{}, "")
	var _ Provider = provider
}
