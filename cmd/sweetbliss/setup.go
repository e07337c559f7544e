package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sweetbliss/internal/bootstrap"
	"github.com/sweetbliss/internal/db"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Seed the Sweet Bliss site content",
	Long: `Setup builds the homepage, the content pages, the product catalogue and
the global SEO settings. It is safe to run repeatedly: existing content is
reused and never duplicated. Problems are reported in the summary; the
command only fails when the database cannot be opened.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	gdb, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	report := bootstrap.New(bootstrap.NewStore(gdb), bootstrap.DefaultSeed(), logger).Run()
	return report.WriteSummary(cmd.OutOrStdout())
}
