package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"countrycodes-generator/internal/pipeline"
)

// countrycodeOrgCmd downloads from countrycode.org and generates the library.
var countrycodeOrgCmd = &cobra.Command{
	Use:     "countrycode.org",
	Aliases: []string{"countrycode"},
	Short:   "download source from countrycode.org",
	Args:    cobra.NoArgs,
	RunE:    runCountrycodeOrg,
}

func runCountrycodeOrg(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(cmd.OutOrStdout(), "download from countrycode.org...")

	p, err := pipeline.FromConfig(cfg, nil, logger)
	if err != nil {
		return err
	}

	summary, err := p.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("done",
		zap.Int("countries", summary.Countries),
		zap.Int("modules", summary.Modules),
		zap.Int("warnings", summary.Warnings))

	return nil
}
