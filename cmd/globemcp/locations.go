package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globemcp/globemcp/gazetteer"
)

var (
	locationsPrefix string
	locationsTop    int
	locationsMinPop int64
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the known location table",
	RunE: func(cmd *cobra.Command, args []string) error {
		gz, err := loadGazetteer()
		if err != nil {
			return err
		}

		var locs []gazetteer.Location
		switch {
		case locationsTop > 0:
			locs = gz.TopByPopulation(locationsTop, locationsMinPop)
		case locationsPrefix != "":
			locs = gz.SearchPrefix(locationsPrefix, gz.Count())
		default:
			locs = gz.All()
		}

		for _, loc := range locs {
			fmt.Printf("%-30s lon=%10.4f lat=%9.4f", loc.Name, loc.Longitude, loc.Latitude)
			if loc.HasHeading {
				fmt.Printf(" heading=%5.1f", loc.Heading)
			}
			if loc.KnownPopulation() {
				fmt.Printf(" population=%d", loc.Population)
			}
			fmt.Println()
		}
		fmt.Printf("%d locations\n", len(locs))
		return nil
	},
}

func init() {
	locationsCmd.Flags().StringVar(&locationsPrefix, "prefix", "", "only names starting with this prefix")
	locationsCmd.Flags().IntVar(&locationsTop, "top", 0, "show the N largest entries by population")
	locationsCmd.Flags().Int64Var(&locationsMinPop, "min-population", 0, "with --top, require population above this")
	rootCmd.AddCommand(locationsCmd)
}
