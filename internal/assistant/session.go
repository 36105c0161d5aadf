// Package assistant runs the conversational spiritual companion on top
// of an LLM provider.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deenlife/deenlife/internal/llm"
	"github.com/deenlife/deenlife/internal/models"
)

// ErrConnectivity is returned when the provider cannot be reached. The
// UI shows a friendlier message than the transport error.
var ErrConnectivity = errors.New("assistant unreachable")

// ErrEmptyMessage is returned when the user sends only whitespace.
var ErrEmptyMessage = errors.New("empty message")

// systemPrompt keeps answers grounded in mainstream teachings and
// steers fiqh questions toward a local scholar.
const systemPrompt = `You are DeenLife AI, a knowledgeable, respectful, and spiritual Islamic companion.
Your goal is to assist users with questions about Islam, the Quran, Sunnah, and general spiritual advice.
- Keep answers concise, clear, and easy to understand.
- Quote relevant Quranic verses or Hadith when appropriate (provide references).
- If a question is about Fiqh (jurisprudence) regarding specific fatwas, advise the user to consult a local scholar for a final ruling, but provide general known views.
- Maintain a polite, warm, and encouraging tone.
- Do not engage in political debates or sectarian controversy; stick to mainstream Islamic teachings.`

// WelcomeText opens every new session.
const WelcomeText = "As-salamu alaykum! I am your AI spiritual companion. How can I assist you with your Deen today?"

// Session holds one conversation with the companion.
type Session struct {
	provider llm.Provider
	messages []models.ChatMessage
	now      func() time.Time
}

// NewSession starts a conversation seeded with the welcome message.
func NewSession(provider llm.Provider) *Session {
	s := &Session{provider: provider, now: time.Now}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        "welcome",
		Role:      models.RoleAssistant,
		Text:      WelcomeText,
		Timestamp: s.now().UnixMilli(),
	})
	return s
}

// Messages returns the conversation so far, welcome message included.
func (s *Session) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send records the user's message and begins streaming the reply. The
// user turn stays in the history even when the provider fails, so a
// retry carries the full conversation.
func (s *Session) Send(ctx context.Context, text string) (*llm.StreamReader, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	})

	stream, err := s.provider.Chat(ctx, s.history(), llm.ChatOptions{})
	if err != nil {
		return nil, errors.Join(ErrConnectivity, err)
	}
	return stream, nil
}

// RecordReply appends a completed assistant reply to the history.
// Callers collect the stream first so a half-delivered answer is never
// replayed as context.
func (s *Session) RecordReply(text string) {
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	})
}

// Ask is the synchronous form of Send + RecordReply.
func (s *Session) Ask(ctx context.Context, text string) (string, error) {
	stream, err := s.Send(ctx, text)
	if err != nil {
		return "", err
	}

	reply, err := stream.Collect()
	if err != nil {
		return "", errors.Join(ErrConnectivity, err)
	}

	s.RecordReply(reply)
	return reply, nil
}

// history converts the conversation to provider messages with the
// system prompt up front. The welcome message is presentation only and
// is not replayed to the model.
func (s *Session) history() []llm.Message {
	msgs := []llm.Message{llm.NewSystemMessage(systemPrompt)}
	for _, m := range s.messages {
		if m.ID == "welcome" {
			continue
		}
		switch m.Role {
		case models.RoleUser:
			msgs = append(msgs, llm.NewUserMessage(m.Text))
		case models.RoleAssistant:
			msgs = append(msgs, llm.NewAssistantMessage(m.Text))
		}
	}
	return msgs
}
