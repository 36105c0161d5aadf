package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/alquran"
	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/quran"
	"github.com/deenlife/deenlife/internal/store"
)

var quranCmd = &cobra.Command{
	Use:   "quran",
	Short: "Quran reading progress and bookmarks",
	Long: `Quran reading progress and bookmarks.

The surah index is fetched once and cached locally, so everything except
the first 'list' works offline.

Subcommands:
  list [term]            List surahs, optionally filtered
  read <surah>           Read a surah (Arabic and translation)
  progress               Show completion progress
  done <surah>           Toggle a surah's completed mark
  bookmark <surah> <ayah>  Toggle a bookmark on an ayah
  bookmarks              List bookmarked ayahs
  resume                 Show the last-read position
  juz                    List the 30 juz' divisions
  reciters               List available reciters
  audio <surah> [id]     Print the recitation URL for a surah`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var quranListCmd = &cobra.Command{
	Use:   "list [term]",
	Short: "List surahs, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuranList,
}

var quranReadCmd = &cobra.Command{
	Use:   "read <surah>",
	Short: "Read a surah with Arabic text and translation",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuranRead,
}

var quranBookmarkCmd = &cobra.Command{
	Use:   "bookmark <surah> <ayah>",
	Short: "Toggle a bookmark on an ayah",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuranBookmark,
}

var quranJuzCmd = &cobra.Command{
	Use:   "juz",
	Short: "List the 30 juz' divisions",
	Args:  cobra.NoArgs,
	RunE:  runQuranJuz,
}

var quranProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion progress",
	Args:  cobra.NoArgs,
	RunE:  runQuranProgress,
}

var quranDoneCmd = &cobra.Command{
	Use:   "done <surah>",
	Short: "Toggle a surah's completed mark",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuranDone,
}

var quranBookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked ayahs",
	Args:  cobra.NoArgs,
	RunE:  runQuranBookmarks,
}

var quranResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Show the last-read position",
	Args:  cobra.NoArgs,
	RunE:  runQuranResume,
}

var quranRecitersCmd = &cobra.Command{
	Use:   "reciters",
	Short: "List available reciters",
	Args:  cobra.NoArgs,
	RunE:  runQuranReciters,
}

var quranAudioCmd = &cobra.Command{
	Use:   "audio <surah> [reciter-id]",
	Short: "Print the recitation URL for a surah",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runQuranAudio,
}

func init() {
	quranCmd.AddCommand(quranListCmd)
	quranCmd.AddCommand(quranReadCmd)
	quranCmd.AddCommand(quranProgressCmd)
	quranCmd.AddCommand(quranDoneCmd)
	quranCmd.AddCommand(quranBookmarkCmd)
	quranCmd.AddCommand(quranBookmarksCmd)
	quranCmd.AddCommand(quranResumeCmd)
	quranCmd.AddCommand(quranJuzCmd)
	quranCmd.AddCommand(quranRecitersCmd)
	quranCmd.AddCommand(quranAudioCmd)
}

// loadSurahs serves the cached index when present and fetches plus
// caches it otherwise.
func loadSurahs(ctx context.Context, cfg *config.Config, s *store.Store) ([]models.Surah, error) {
	tracker := quran.NewTracker(s)
	if surahs, ok := tracker.CachedSurahs(); ok {
		return surahs, nil
	}

	surahs, err := contentClient(cfg).ListSurahs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch surah list: %w", err)
	}
	if err := tracker.CacheSurahs(surahs); err != nil {
		return nil, fmt.Errorf("cache surah list: %w", err)
	}
	return surahs, nil
}

func contentClient(cfg *config.Config) *alquran.Client {
	ccfg := alquran.DefaultConfig()
	ccfg.BaseURL = cfg.Quran.BaseURL
	ccfg.MaxRetries = cfg.Quran.MaxRetries
	return alquran.NewClient(ccfg)
}

func parseSurahNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > quran.TotalSurahs {
		return 0, fmt.Errorf("surah number must be 1-%d, got %q", quran.TotalSurahs, arg)
	}
	return n, nil
}

func runQuranList(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	surahs, err := loadSurahs(cmd.Context(), cfg, s)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		surahs = quran.SearchSurahs(surahs, args[0])
	}

	tracker := quran.NewTracker(s)
	for _, su := range surahs {
		mark := " "
		if tracker.IsCompleted(su.Number) {
			mark = "x"
		}
		fmt.Printf("  [%s] %3d. %s (%s) — %d ayahs\n",
			mark, su.Number, su.EnglishName, su.EnglishNameTranslation, su.NumberOfAyahs)
	}
	return nil
}

func runQuranRead(cmd *cobra.Command, args []string) error {
	n, err := parseSurahNumber(args[0])
	if err != nil {
		return err
	}

	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	content, err := contentClient(cfg).GetSurah(cmd.Context(), n)
	if err != nil {
		return fmt.Errorf("fetch surah %d: %w", n, err)
	}

	fmt.Printf("%d. %s (%s) — %d ayahs\n\n", content.Number, content.EnglishName, content.Name, content.NumberOfAyahs)
	for i, ayah := range content.Arabic {
		fmt.Printf("%d. %s\n   %s\n\n", ayah.NumberInSurah, ayah.Text, content.Translation[i].Text)
	}

	// Opening a surah moves the resume pointer.
	if err := quran.NewTracker(s).RecordLastRead(content.Number, content.EnglishName); err != nil {
		return fmt.Errorf("record last read: %w", err)
	}
	return nil
}

func runQuranBookmark(cmd *cobra.Command, args []string) error {
	n, err := parseSurahNumber(args[0])
	if err != nil {
		return err
	}
	ayahNum, err := strconv.Atoi(args[1])
	if err != nil || ayahNum < 1 {
		return fmt.Errorf("ayah number must be positive, got %q", args[1])
	}

	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	tracker := quran.NewTracker(s)
	if tracker.IsBookmarked(n, ayahNum) {
		if err := tracker.ToggleBookmark(n, ayahNum, ""); err != nil {
			return fmt.Errorf("remove bookmark: %w", err)
		}
		fmt.Printf("Bookmark %d:%d removed.\n", n, ayahNum)
		return nil
	}

	// Adding needs the ayah text for the preview snippet.
	content, err := contentClient(cfg).GetSurah(cmd.Context(), n)
	if err != nil {
		return fmt.Errorf("fetch surah %d: %w", n, err)
	}
	if ayahNum > len(content.Translation) {
		return fmt.Errorf("surah %d has %d ayahs, got %d", n, len(content.Translation), ayahNum)
	}

	if err := tracker.ToggleBookmark(n, ayahNum, content.Translation[ayahNum-1].Text); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	fmt.Printf("Bookmark %d:%d added.\n", n, ayahNum)
	return nil
}

func runQuranJuz(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	names := map[int]string{}
	if surahs, ok := quran.NewTracker(s).CachedSurahs(); ok {
		for _, su := range surahs {
			names[su.Number] = su.EnglishName
		}
	}

	for _, j := range quran.Juzs {
		name := names[j.StartSurah]
		if name == "" {
			name = fmt.Sprintf("surah %d", j.StartSurah)
		}
		fmt.Printf("  Juz %2d  from %s %d:%d\n", j.Number, name, j.StartSurah, j.StartAyah)
	}
	return nil
}

func runQuranProgress(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	tracker := quran.NewTracker(s)
	completed := tracker.Completed()
	fmt.Printf("Completed %d of %d surahs (%.1f%%)\n",
		len(completed), quran.TotalSurahs, tracker.ProgressPercent())
	return nil
}

func runQuranDone(cmd *cobra.Command, args []string) error {
	n, err := parseSurahNumber(args[0])
	if err != nil {
		return err
	}

	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	tracker := quran.NewTracker(s)
	if err := tracker.ToggleCompleted(n); err != nil {
		return fmt.Errorf("toggle surah: %w", err)
	}

	if tracker.IsCompleted(n) {
		fmt.Printf("Surah %d marked completed.\n", n)
	} else {
		fmt.Printf("Surah %d unmarked.\n", n)
	}
	return nil
}

func runQuranBookmarks(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bookmarks := quran.NewTracker(s).Bookmarks()
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks yet.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Printf("  %d:%d  %s\n", b.SurahNumber, b.AyahNumber, b.Text)
	}
	return nil
}

func runQuranResume(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	last, ok := quran.NewTracker(s).LastRead()
	if !ok {
		fmt.Println("No reading recorded yet.")
		return nil
	}

	when := time.UnixMilli(last.Timestamp).Format("Jan 2 15:04")
	fmt.Printf("Last read: surah %d (%s) on %s\n", last.SurahNumber, last.SurahName, when)
	return nil
}

func runQuranReciters(cmd *cobra.Command, args []string) error {
	for _, r := range quran.Reciters {
		fmt.Printf("  %-22s %s — %s\n", r.ID, r.Name, r.Subtext)
	}
	return nil
}

func runQuranAudio(cmd *cobra.Command, args []string) error {
	n, err := parseSurahNumber(args[0])
	if err != nil {
		return err
	}

	reciter := quran.Reciters[0]
	if len(args) == 2 {
		r, ok := quran.ReciterByID(args[1])
		if !ok {
			ids := make([]string, len(quran.Reciters))
			for i, rec := range quran.Reciters {
				ids[i] = rec.ID
			}
			return fmt.Errorf("unknown reciter %q (available: %s)", args[1], strings.Join(ids, ", "))
		}
		reciter = r
	}

	fmt.Println(quran.AudioURL(reciter, n))
	return nil
}
