package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/assistant"
	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the spiritual companion a question",
	Long: `Ask the spiritual companion a question.

Requires ANTHROPIC_API_KEY or OPENAI_API_KEY. For a full conversation,
use the assistant tab in the TUI.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}

	session := assistant.NewSession(provider)
	stream, err := session.Send(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		if errors.Is(err, assistant.ErrConnectivity) {
			return errors.New("I'm having trouble connecting right now. Please check your internet or try again later.")
		}
		return err
	}

	reply, err := stream.CollectWithCallback(func(chunk llm.StreamChunk) {
		fmt.Print(chunk.Text)
	})
	if err != nil {
		return fmt.Errorf("stream reply: %w", err)
	}

	session.RecordReply(reply)
	fmt.Println()
	return nil
}
