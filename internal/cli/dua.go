package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/dua"
	"github.com/deenlife/deenlife/internal/llm"
)

var duaCmd = &cobra.Command{
	Use:   "dua",
	Short: "Supplications from the Quran and Sunnah",
	Long: `Supplications from the Quran and Sunnah.

Subcommands:
  list            Show the full collection
  search <term>   Filter by category or translation
  translate <index> <language>
                  Show a dua translated into another language`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var duaListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printDuas(dua.All(), true)
		return nil
	},
}

var duaSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Filter by category or translation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches := dua.Search(strings.Join(args, " "))
		if len(matches) == 0 {
			fmt.Println("No duas match.")
			return nil
		}
		printDuas(matches, false)
		return nil
	},
}

var duaTranslateCmd = &cobra.Command{
	Use:   "translate <index> <language>",
	Short: "Show a dua translated into another language",
	Args:  cobra.ExactArgs(2),
	RunE:  runDuaTranslate,
}

func init() {
	duaCmd.AddCommand(duaListCmd)
	duaCmd.AddCommand(duaSearchCmd)
	duaCmd.AddCommand(duaTranslateCmd)
}

// lookupDua resolves a 1-based index into the collection, as printed
// by 'dua list'.
func lookupDua(arg string) (dua.Dua, error) {
	all := dua.All()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(all) {
		return dua.Dua{}, fmt.Errorf("dua index must be 1-%d, got %q", len(all), arg)
	}
	return all[n-1], nil
}

func normalizeDuaLanguage(arg string) (string, error) {
	for _, l := range dua.Languages {
		if strings.EqualFold(l, arg) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (available: %s)",
		arg, strings.Join(dua.Languages, ", "))
}

func runDuaTranslate(cmd *cobra.Command, args []string) error {
	d, err := lookupDua(args[0])
	if err != nil {
		return err
	}
	language, err := normalizeDuaLanguage(args[1])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}

	translated := llm.NewTranslator(provider).Translate(cmd.Context(), d.Translation, language)

	fmt.Printf("%s (%s)\n", d.Category, d.Source)
	fmt.Printf("  %s\n", d.Arabic)
	fmt.Printf("  %s\n", translated)
	return nil
}

func printDuas(duas []dua.Dua, numbered bool) {
	for i, d := range duas {
		if numbered {
			fmt.Printf("%2d. %s (%s)\n", i+1, d.Category, d.Source)
		} else {
			fmt.Printf("%s (%s)\n", d.Category, d.Source)
		}
		fmt.Printf("  %s\n", d.Arabic)
		fmt.Printf("  %s\n", d.Transliteration)
		fmt.Printf("  %s\n\n", d.Translation)
	}
}
