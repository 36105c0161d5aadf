package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/prayer"
	"github.com/deenlife/deenlife/internal/store"
)

var prayerCmd = &cobra.Command{
	Use:   "prayer",
	Short: "Today's prayer times",
	Long: `Today's prayer times.

Times use the Muslim World League method with the Shafi madhab. The
location comes from DEENLIFE_LATITUDE/DEENLIFE_LONGITUDE, a saved
location, or falls back to Mecca.

Subcommands:
  set-location <lat> <lon>   Save a location for future runs`,
	RunE: runPrayer,
}

var prayerSetLocationCmd = &cobra.Command{
	Use:   "set-location <lat> <lon>",
	Short: "Save a location for future runs",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrayerSetLocation,
}

func init() {
	prayerCmd.AddCommand(prayerSetLocationCmd)
}

// resolveLocation applies the location priority: environment override,
// then saved location, then the Mecca fallback.
func resolveLocation(cfg *config.Config, s *store.Store) prayer.Location {
	if cfg.Location.Set {
		return prayer.Location{Coords: models.Coordinates{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		}}
	}
	return prayer.ResolveLocation(prayer.StoredResolver{Store: s})
}

func runPrayer(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loc := resolveLocation(cfg, s)
	now := time.Now()

	sched, err := prayer.NewSchedule(loc.Coords, now)
	if err != nil {
		return fmt.Errorf("calculate prayer times: %w", err)
	}

	next, err := sched.NextPrayer(now)
	if err != nil {
		return fmt.Errorf("next prayer: %w", err)
	}

	if loc.UsingDefault {
		fmt.Println("No location set; showing times for Mecca.")
		fmt.Println("Use 'deenlife prayer set-location <lat> <lon>' for your own.")
		fmt.Println()
	}

	fmt.Printf("Prayer times for %s (%.4f, %.4f)\n",
		now.Format("Monday, Jan 2"), loc.Coords.Latitude, loc.Coords.Longitude)
	for _, ev := range sched.Times.Ordered() {
		marker := "  "
		if ev.Name == next.Name && ev.Time.Equal(next.Time) {
			marker = "> "
		}
		fmt.Printf("  %s%-8s %s\n", marker, ev.Name, ev.Time.Format("15:04"))
	}
	fmt.Printf("\nNext: %s at %s\n", next.Name, next.Time.Format("15:04"))
	return nil
}

func runPrayerSetLocation(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be a number in [-90, 90], got %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil || lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be a number in [-180, 180], got %q", args[1])
	}

	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	coords := models.Coordinates{Latitude: lat, Longitude: lon}
	if err := prayer.SaveLocation(s, coords); err != nil {
		return fmt.Errorf("save location: %w", err)
	}

	fmt.Printf("Saved location (%.4f, %.4f).\n", lat, lon)
	return nil
}
