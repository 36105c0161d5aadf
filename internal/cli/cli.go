// Package cli provides the command-line interface for DeenLife.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/store"
	"github.com/deenlife/deenlife/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "deenlife",
	Short: "Personal Islamic lifestyle companion",
	Long: `Personal Islamic lifestyle companion

An offline-first tool for daily practice: habit tracking, Quran reading
progress and bookmarks, a browsable hadith collection with favorites,
dua references, prayer times, and Qibla direction. All state lives in
~/.deenlife and never leaves your machine.

Run without arguments to launch the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.AddCommand(habitsCmd)
	rootCmd.AddCommand(quranCmd)
	rootCmd.AddCommand(hadithCmd)
	rootCmd.AddCommand(duaCmd)
	rootCmd.AddCommand(prayerCmd)
	rootCmd.AddCommand(qiblaCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(translateCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// openStore loads configuration and opens the persistent store. The
// caller owns the returned store and must close it.
func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	scfg := store.DefaultConfig(paths.Database)
	scfg.Debug = cfg.Debug
	s, err := store.Open(scfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, s, nil
}
