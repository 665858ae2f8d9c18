package main

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globemcp/globemcp/gazetteer"
	"github.com/globemcp/globemcp/internal/config"
	"github.com/globemcp/globemcp/internal/geocode"
	"github.com/globemcp/globemcp/internal/tools"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "globemcp",
	Short: "Location resolution engine and MCP globe server",
	Long: `globemcp resolves free-form place names to coordinates over a built-in
gazetteer and serves globe commands over the Model Context Protocol.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return config.InitLogger(cfg.Log)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		zap.L().Sync()
	},
}

// loadGazetteer opens the configured table, or the embedded default when no
// path is set.
func loadGazetteer() (*gazetteer.Gazetteer, error) {
	if cfg.Gazetteer.Path == "" {
		return gazetteer.Default()
	}
	f, err := os.Open(cfg.Gazetteer.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "open gazetteer table %s", cfg.Gazetteer.Path)
	}
	defer f.Close()
	return gazetteer.LoadYAML(f)
}

func newService() (*tools.Service, error) {
	gz, err := loadGazetteer()
	if err != nil {
		return nil, err
	}

	opts := []tools.Option{
		tools.WithMaxDistance(cfg.Resolver.MaxDistance),
		tools.WithMaxResults(cfg.Resolver.MaxResults),
	}
	if cfg.Geocoder.Enabled {
		opts = append(opts, tools.WithFallback(geocode.NewClient(
			cfg.Geocoder.BaseURL,
			geocode.WithUserAgent(cfg.Geocoder.UserAgent),
			geocode.WithTimeout(time.Duration(cfg.Geocoder.TimeoutSecs)*time.Second),
		)))
	}

	zap.L().Info("gazetteer loaded",
		zap.Int("locations", gz.Count()),
		zap.Bool("geocoder_fallback", cfg.Geocoder.Enabled))

	return tools.NewService(gz, opts...), nil
}
