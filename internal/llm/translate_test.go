package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockProvider implements Provider with canned sync responses.
type mockProvider struct {
	response *Response
	err      error
	calls    int
	lastMsgs []Message
}

func (m *mockProvider) Chat(ctx context.Context, messages []Message, opts ChatOptions) (*StreamReader, error) {
	sr := NewStreamReader()
	sr.Close()
	return sr, nil
}

func (m *mockProvider) ChatSync(ctx context.Context, messages []Message, opts ChatOptions) (*Response, error) {
	m.calls++
	m.lastMsgs = messages
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string         { return "mock" }
func (m *mockProvider) Models() []string     { return nil }
func (m *mockProvider) DefaultModel() string { return "mock-model" }

func TestTranslateSuccess(t *testing.T) {
	provider := &mockProvider{response: &Response{Content: "Alhamdulillah (Urdu rendering)"}}
	tr := NewTranslator(provider)

	got := tr.Translate(context.Background(), "All praise is due to Allah.", "Urdu")
	assert.Equal(t, "Alhamdulillah (Urdu rendering)", got)
	assert.Equal(t, 1, provider.calls)
}

func TestTranslateEnglishSkipsModel(t *testing.T) {
	provider := &mockProvider{response: &Response{Content: "should not be used"}}
	tr := NewTranslator(provider)

	got := tr.Translate(context.Background(), "original text", "English")
	assert.Equal(t, "original text", got)
	assert.Zero(t, provider.calls, "English must not hit the model")

	got = tr.Translate(context.Background(), "original text", "  english ")
	assert.Equal(t, "original text", got)
	assert.Zero(t, provider.calls)
}

func TestTranslateErrorFallsBackToOriginal(t *testing.T) {
	provider := &mockProvider{err: errors.New("network down")}
	tr := NewTranslator(provider)

	got := tr.Translate(context.Background(), "original text", "French")
	assert.Equal(t, "original text", got)
}

func TestTranslateEmptyResponseFallsBackToOriginal(t *testing.T) {
	provider := &mockProvider{response: &Response{Content: "   "}}
	tr := NewTranslator(provider)

	got := tr.Translate(context.Background(), "original text", "Turkish")
	assert.Equal(t, "original text", got)
}

func TestTranslateNilProvider(t *testing.T) {
	tr := NewTranslator(nil)
	got := tr.Translate(context.Background(), "original text", "Spanish")
	assert.Equal(t, "original text", got)
}

func TestTranslatePromptNamesLanguage(t *testing.T) {
	provider := &mockProvider{response: &Response{Content: "ok"}}
	tr := NewTranslator(provider)

	tr.Translate(context.Background(), "some text", "Bengali")
	assert.Len(t, provider.lastMsgs, 1)
	assert.Contains(t, provider.lastMsgs[0].Content, "Bengali")
	assert.Contains(t, provider.lastMsgs[0].Content, "some text")
}
