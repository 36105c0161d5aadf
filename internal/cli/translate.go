package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/llm"
)

var translateCmd = &cobra.Command{
	Use:   "translate <language> <text>",
	Short: "Translate Islamic text into another language",
	Long: `Translate Islamic text into another language.

Requires ANTHROPIC_API_KEY or OPENAI_API_KEY. On failure the original
text is printed unchanged.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	fmt.Println(llm.NewTranslator(provider).Translate(cmd.Context(), text, args[0]))
	return nil
}
