package main

import (
	"github.com/spf13/cobra"

	"countrycodes-generator/internal/config"
)

const redacted = "********"

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		shown := *cfg
		if shown.Cache.S3.SecretKey != "" {
			shown.Cache.S3.SecretKey = redacted
		}

		data, err := config.Marshal(&shown)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}
