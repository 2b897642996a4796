// Package main provides the CLI entrypoint for countrycodes.
//
// countrycodes downloads the country, national and city dialing code
// exports from countrycode.org and generates JavaScript modules from them:
//   - lib/countrycodes/countrycodes.{json,d.ts,js} with every country
//   - lib/countrycodes/countrycodes-<ISO2>.{json,d.ts,js} per country
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"countrycodes-generator/internal/config"
	"countrycodes-generator/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countrycodes",
	Short: "Generate dialing code modules from public datasets",
	Long: `countrycodes fetches country dialing code datasets, caches the raw
downloads under the source directory and writes one JavaScript module per
country (plus an aggregate module) to the library directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log, verbose)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	rootCmd.AddCommand(countrycodeOrgCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
