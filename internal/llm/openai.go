package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI model constants.
const (
	OpenAIModelGPT4oMini   = "gpt-4o-mini"
	OpenAIModelGPT4o       = "gpt-4o"
	OpenAIModelGPT4Turbo   = "gpt-4-turbo"
	OpenAIDefaultModel     = OpenAIModelGPT4oMini
	OpenAIDefaultMaxTokens = 4096
)

var openAIModels = []string{
	OpenAIModelGPT4oMini,
	OpenAIModelGPT4o,
	OpenAIModelGPT4Turbo,
}

// OpenAIClientInterface abstracts the OpenAI client for testing. The
// real *openai.Client satisfies it directly.
type OpenAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateChatCompletionStream(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionStream, error)
}

// OpenAIProvider implements the Provider interface for OpenAI.
type OpenAIProvider struct {
	client OpenAIClientInterface
	model  string
}

// NewOpenAIProvider creates an OpenAI provider with the given API key.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if model == "" {
		model = OpenAIDefaultModel
	}
	if !isValidOpenAIModel(model) {
		return nil, fmt.Errorf("invalid OpenAI model: %s (available: %v)", model, openAIModels)
	}

	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// NewOpenAIProviderWithClient creates a provider with a custom client.
// Useful for testing.
func NewOpenAIProviderWithClient(client OpenAIClientInterface, model string) *OpenAIProvider {
	if model == "" {
		model = OpenAIDefaultModel
	}
	return &OpenAIProvider{
		client: client,
		model:  model,
	}
}

func isValidOpenAIModel(model string) bool {
	for _, m := range openAIModels {
		if m == model {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return string(ProviderOpenAI)
}

// Models returns available model IDs.
func (p *OpenAIProvider) Models() []string {
	return openAIModels
}

// DefaultModel returns the default model.
func (p *OpenAIProvider) DefaultModel() string {
	return OpenAIDefaultModel
}

// Chat sends messages and returns a streaming response.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []Message, opts ChatOptions) (*StreamReader, error) {
	req := p.buildRequest(messages, opts)
	req.Stream = true

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create stream: %w", err)
	}

	reader := NewStreamReader()

	go func() {
		defer reader.Close()
		defer func() {
			_ = stream.Close()
		}()

		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				reader.Send(StreamChunk{Done: true})
				return
			}
			if err != nil {
				reader.Send(StreamChunk{Error: err})
				return
			}

			if len(response.Choices) > 0 {
				delta := response.Choices[0].Delta
				if delta.Content != "" {
					reader.Send(StreamChunk{Text: delta.Content})
				}

				if response.Choices[0].FinishReason != "" {
					reader.Send(StreamChunk{Done: true})
					return
				}
			}
		}
	}()

	return reader, nil
}

// ChatSync sends messages and waits for the complete response.
func (p *OpenAIProvider) ChatSync(ctx context.Context, messages []Message, opts ChatOptions) (*Response, error) {
	resp, err := p.client.CreateChatCompletion(ctx, p.buildRequest(messages, opts))
	if err != nil {
		return nil, fmt.Errorf("create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices in response")
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func (p *OpenAIProvider) buildRequest(messages []Message, opts ChatOptions) openai.ChatCompletionRequest {
	model := opts.Model
	if model == "" {
		model = p.model
	}

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = OpenAIDefaultMaxTokens
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    convertToOpenAIMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: float32(opts.Temperature),
	}
}

func convertToOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		result[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return result
}
