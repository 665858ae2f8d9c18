package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resolveMaxDistance int
	resolveAll         bool
	resolveMaxResults  int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a place name to coordinates from the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gz, err := loadGazetteer()
		if err != nil {
			return err
		}

		maxDistance := resolveMaxDistance
		if !cmd.Flags().Changed("max-distance") {
			maxDistance = cfg.Resolver.MaxDistance
		}

		if resolveAll {
			maxResults := resolveMaxResults
			if !cmd.Flags().Changed("max-results") {
				maxResults = cfg.Resolver.MaxResults
			}
			matches := gz.ResolveAll(args[0], maxResults, maxDistance)
			if len(matches) == 0 {
				fmt.Printf("no match for %q\n", args[0])
				return nil
			}
			for _, m := range matches {
				fmt.Printf("%-30s lon=%.6f lat=%.6f distance=%d\n",
					m.Location.Name, m.Location.Longitude, m.Location.Latitude, m.Distance)
			}
			return nil
		}

		m, ok := gz.Resolve(args[0], maxDistance)
		if !ok {
			fmt.Printf("no match for %q\n", args[0])
			return nil
		}
		fmt.Printf("%s: lon=%.6f lat=%.6f", m.Location.Name, m.Location.Longitude, m.Location.Latitude)
		if m.Location.HasHeading {
			fmt.Printf(" heading=%.1f", m.Location.Heading)
		}
		fmt.Printf(" (distance %d, geohash %s)\n", m.Distance, m.Location.Geohash())
		return nil
	},
}

func init() {
	resolveCmd.Flags().IntVar(&resolveMaxDistance, "max-distance", 3, "maximum edit distance for fuzzy matching")
	resolveCmd.Flags().BoolVar(&resolveAll, "all", false, "list every match instead of the best one")
	resolveCmd.Flags().IntVar(&resolveMaxResults, "max-results", 10, "maximum matches with --all")
	rootCmd.AddCommand(resolveCmd)
}
