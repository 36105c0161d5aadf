package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/store"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	Long: `Delete all stored data.

Removes habits, Quran progress, bookmarks, favorites, the cached surah
index, and the saved location. The data cannot be recovered.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deleting all data")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return fmt.Errorf("refusing to delete all data; pass --force to confirm")
	}

	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	for _, key := range store.AllKeys {
		if err := s.Delete(key); err != nil {
			return fmt.Errorf("clear %q: %w", key, err)
		}
	}

	fmt.Println("All data cleared.")
	return nil
}
