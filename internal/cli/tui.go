package cli

import (
	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return tui.Run(cmd.Context(), cfg, s)
}
