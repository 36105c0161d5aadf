// DeenLife - Personal Islamic Lifestyle Companion
//
// An offline-first CLI and TUI for daily practice: habit tracking,
// Quran reading progress, hadith browsing, duas, prayer times, Qibla
// direction, and an optional AI assistant.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deenlife/deenlife/internal/cli"
	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if cfg, err := config.Load(); err == nil {
		// A failed logger is not fatal; errors then go to stderr.
		_ = log.Init(config.GetPaths(cfg).Logs)
	}
	defer func() { _ = log.Close() }()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
