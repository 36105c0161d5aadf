package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/hadith"
	"github.com/deenlife/deenlife/internal/llm"
)

var hadithCmd = &cobra.Command{
	Use:   "hadith",
	Short: "Browse the hadith collection",
	Long: `Browse the hadith collection.

Fifty themed categories, each browsable in pages of ten with full-text
search. Favorites are stored as snapshots and survive any change to the
collection itself.

Subcommands:
  categories              List all categories
  browse <category>       Browse a category (--page, --search)
  favorites               List favorite hadiths
  fav <category> <ref>    Toggle a hadith in favorites
  copy <category> <ref>   Copy a hadith to the clipboard
  translate <category> <ref> <language>
                          Show a hadith translated into another language`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var hadithCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE:  runHadithCategories,
}

var (
	hadithPage   int
	hadithSearch string
)

var hadithBrowseCmd = &cobra.Command{
	Use:   "browse <category>",
	Short: "Browse a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runHadithBrowse,
}

var hadithFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite hadiths",
	Args:  cobra.NoArgs,
	RunE:  runHadithFavorites,
}

var hadithFavCmd = &cobra.Command{
	Use:   "fav <category> <ref>",
	Short: "Toggle a hadith in favorites",
	Args:  cobra.ExactArgs(2),
	RunE:  runHadithFav,
}

var hadithCopyCmd = &cobra.Command{
	Use:   "copy <category> <ref>",
	Short: "Copy a hadith to the clipboard",
	Args:  cobra.ExactArgs(2),
	RunE:  runHadithCopy,
}

var hadithTranslateCmd = &cobra.Command{
	Use:   "translate <category> <ref> <language>",
	Short: "Show a hadith translated into another language",
	Args:  cobra.ExactArgs(3),
	RunE:  runHadithTranslate,
}

func init() {
	hadithBrowseCmd.Flags().IntVar(&hadithPage, "page", 1, "page number")
	hadithBrowseCmd.Flags().StringVar(&hadithSearch, "search", "", "filter by text or source")

	hadithCmd.AddCommand(hadithCategoriesCmd)
	hadithCmd.AddCommand(hadithBrowseCmd)
	hadithCmd.AddCommand(hadithFavoritesCmd)
	hadithCmd.AddCommand(hadithFavCmd)
	hadithCmd.AddCommand(hadithCopyCmd)
	hadithCmd.AddCommand(hadithTranslateCmd)
}

func runHadithCategories(cmd *cobra.Command, args []string) error {
	for _, c := range hadith.Categories {
		fmt.Printf("  %-14s %s\n", c.ID, c.Title)
	}
	return nil
}

// lookupHadith locates one generated hadith by category and reference.
func lookupHadith(categoryID, ref string) (found bool, text, arabic, source string) {
	for _, h := range hadith.Generate(categoryID) {
		if h.RefNumber == ref {
			return true, h.Text, h.Arabic, h.Source
		}
	}
	return false, "", "", ""
}

func runHadithBrowse(cmd *cobra.Command, args []string) error {
	b := hadith.NewBrowser()
	b.SetCategory(args[0])
	if hadithSearch != "" {
		b.SetSearch(hadithSearch)
	}
	b.SetPage(hadithPage)

	page := b.Page()
	if len(page) == 0 {
		fmt.Println("No hadiths match.")
		return nil
	}

	fmt.Printf("%s — page %d of %d (%d hadiths)\n",
		hadith.TitleFor(args[0]), b.CurrentPage(), b.TotalPages(), b.FilteredCount())
	fmt.Println(strings.Repeat("─", 50))
	for _, h := range page {
		fmt.Printf("  [%s] %s\n      — %s\n", h.RefNumber, h.Text, h.Source)
	}
	return nil
}

func runHadithFavorites(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	favs := hadith.NewFavorites(s).List()
	if len(favs) == 0 {
		fmt.Println("No favorites yet.")
		fmt.Println("\nUse 'deenlife hadith fav <category> <ref>' to add one.")
		return nil
	}

	fmt.Printf("FAVORITES (%d hadiths)\n", len(favs))
	fmt.Println(strings.Repeat("─", 50))
	for _, f := range favs {
		added := time.UnixMilli(f.Timestamp).Format("Jan 2 2006")
		fmt.Printf("  [%s] %s\n      %s — %s (added %s)\n", f.RefNumber, f.Text, f.Category, f.Source, added)
	}
	return nil
}

func runHadithFav(cmd *cobra.Command, args []string) error {
	categoryID, ref := args[0], args[1]

	for _, h := range hadith.Generate(categoryID) {
		if h.RefNumber != ref {
			continue
		}

		_, s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		favorites := hadith.NewFavorites(s)
		if err := favorites.Toggle(h); err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		if favorites.IsFavorite(ref) {
			fmt.Printf("Added %s to favorites.\n", ref)
		} else {
			fmt.Printf("Removed %s from favorites.\n", ref)
		}
		return nil
	}

	return fmt.Errorf("hadith %s not found in category %s", ref, categoryID)
}

func runHadithTranslate(cmd *cobra.Command, args []string) error {
	categoryID, ref, language := args[0], args[1], args[2]

	supported := false
	for _, l := range hadith.TranslationLanguages {
		if strings.EqualFold(l, language) {
			language = l
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported language %q (available: %s)",
			language, strings.Join(hadith.TranslationLanguages, ", "))
	}

	found, text, _, source := lookupHadith(categoryID, ref)
	if !found {
		return fmt.Errorf("hadith %s not found in category %s", ref, categoryID)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}

	b := hadith.NewBrowser()
	b.SetCategory(categoryID)
	if _, ok := b.Translation(ref, language); !ok {
		b.SetTranslation(ref, language, llm.NewTranslator(provider).Translate(cmd.Context(), text, language))
	}

	translated, _ := b.Translation(ref, language)
	fmt.Printf("[%s] %s\n    — %s\n", ref, translated, source)
	return nil
}

func runHadithCopy(cmd *cobra.Command, args []string) error {
	found, text, arabic, source := lookupHadith(args[0], args[1])
	if !found {
		return fmt.Errorf("hadith %s not found in category %s", args[1], args[0])
	}

	payload := fmt.Sprintf("%s\n\n%s\n\n— %s", arabic, text, source)
	if err := clipboard.WriteAll(payload); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	fmt.Printf("Copied %s to clipboard.\n", args[1])
	return nil
}
