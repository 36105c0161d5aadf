package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/deenlife/deenlife/internal/log"
)

// translatePrompt asks for bare translated text so the result can be
// shown inline without post-processing.
const translatePrompt = `Translate the following Islamic text into %s. Ensure the translation maintains the spiritual and respectful tone appropriate for religious texts. Only return the translated text, no explanations.

Text: "%s"`

// Translator renders hadith and dua text into other languages.
type Translator struct {
	provider Provider
}

// NewTranslator creates a translator backed by the given provider.
func NewTranslator(provider Provider) *Translator {
	return &Translator{provider: provider}
}

// Translate returns text rendered in the target language. English
// returns the input untouched since stored translations are already
// English. Any failure falls back to the original text so the caller
// always has something to display.
func (t *Translator) Translate(ctx context.Context, text, language string) string {
	if strings.EqualFold(strings.TrimSpace(language), "English") {
		return text
	}
	if t.provider == nil {
		return text
	}

	resp, err := t.provider.ChatSync(ctx, []Message{
		NewUserMessage(fmt.Sprintf(translatePrompt, language, text)),
	}, ChatOptions{})
	if err != nil {
		log.Errorf("translate to %s: %v", language, err)
		return text
	}

	translated := strings.TrimSpace(resp.Content)
	if translated == "" {
		return text
	}
	return translated
}
