package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <latitude> <longitude>",
	Short: "Find the known location closest to a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Wrapf(err, "parse latitude %q", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return eris.Wrapf(err, "parse longitude %q", args[1])
		}

		gz, err := loadGazetteer()
		if err != nil {
			return err
		}

		loc, ok := gz.Nearest(lat, lng)
		if !ok {
			fmt.Printf("no known location near %.4f, %.4f\n", lat, lng)
			return nil
		}
		fmt.Printf("%s: lon=%.6f lat=%.6f (geohash %s)\n",
			loc.Name, loc.Longitude, loc.Latitude, loc.Geohash())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nearestCmd)
}
