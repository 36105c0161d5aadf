package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/habits"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Track daily spiritual habits",
	Long: `Track daily spiritual habits.

Completions are recorded per local calendar day. Toggling a habit twice
on the same day returns it to not-done.

Subcommands:
  add <name>     Create a habit
  list           List habits with today's status
  done <id>      Toggle today's completion for a habit
  remove <id>    Delete a habit and its history
  week           Show a 7-day completion histogram`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var habitsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitsAdd,
}

var habitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's status",
	Args:  cobra.NoArgs,
	RunE:  runHabitsList,
}

var habitsDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle today's completion for a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsDone,
}

var habitsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a habit and its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsRemove,
}

var habitsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a 7-day completion histogram",
	Args:  cobra.NoArgs,
	RunE:  runHabitsWeek,
}

func init() {
	habitsCmd.AddCommand(habitsAddCmd)
	habitsCmd.AddCommand(habitsListCmd)
	habitsCmd.AddCommand(habitsDoneCmd)
	habitsCmd.AddCommand(habitsRemoveCmd)
	habitsCmd.AddCommand(habitsWeekCmd)
}

func runHabitsAdd(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	habit, err := habits.NewTracker(s).Add(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("add habit: %w", err)
	}

	fmt.Printf("Added habit '%s' (%s)\n", habit.Name, habit.ID)
	return nil
}

func runHabitsList(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	tracker := habits.NewTracker(s)
	list := tracker.List()
	if len(list) == 0 {
		fmt.Println("No habits yet.")
		fmt.Println("\nUse 'deenlife habits add <name>' to create one.")
		return nil
	}

	today := time.Now().Format("2006-01-02")
	done, total := tracker.TodayStats()
	fmt.Printf("HABITS (%d/%d done today)\n", done, total)
	fmt.Println(strings.Repeat("─", 50))
	for _, h := range list {
		mark := " "
		if h.CompletedOn(today) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n      id: %s\n", mark, h.Name, h.ID)
	}
	return nil
}

func runHabitsDone(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := habits.NewTracker(s).Toggle(args[0]); err != nil {
		return fmt.Errorf("toggle habit: %w", err)
	}

	fmt.Println("Toggled.")
	return nil
}

func runHabitsRemove(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := habits.NewTracker(s).Remove(args[0]); err != nil {
		return fmt.Errorf("remove habit: %w", err)
	}

	fmt.Println("Removed.")
	return nil
}

func runHabitsWeek(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	for _, day := range habits.NewTracker(s).WeeklyHistogram(time.Now()) {
		fmt.Printf("  %s  %s %d\n", day.Label, strings.Repeat("█", day.Count), day.Count)
	}
	return nil
}
