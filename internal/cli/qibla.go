package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deenlife/deenlife/internal/qibla"
)

var qiblaCmd = &cobra.Command{
	Use:   "qibla",
	Short: "Direction of the Kaaba from your location",
	Long: `Direction of the Kaaba from your location.

Prints the great-circle bearing in degrees clockwise from true north.
Location resolution matches the prayer command.`,
	Args: cobra.NoArgs,
	RunE: runQibla,
}

func runQibla(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loc := resolveLocation(cfg, s)
	bearing := qibla.Bearing(loc.Coords)

	if loc.UsingDefault {
		fmt.Println("No location set; bearing from Mecca is meaningless.")
		fmt.Println("Use 'deenlife prayer set-location <lat> <lon>' first.")
		return nil
	}

	fmt.Printf("Qibla from (%.4f, %.4f): %.1f° from true north\n",
		loc.Coords.Latitude, loc.Coords.Longitude, bearing)
	return nil
}
