package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and the initial page tree",
	Long: `Migrate brings the database schema up to date. On an empty store it also
creates the tree root, a generic Welcome page below it and a default site
serving that page, which is what the setup command expects to find.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	gdb, err := db.Init(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	logger.Info("schema migrated", zap.String("driver", cfg.Database.Driver))

	return initializeContent(gdb)
}

func initializeContent(gdb *gorm.DB) error {
	pages := service.NewPageService(gdb)
	root, created, err := pages.EnsureInitialized()
	if err != nil {
		return fmt.Errorf("initializing page tree: %w", err)
	}
	if created {
		logger.Info("created page tree root", zap.Uint("id", root.ID), zap.String("path", root.Path))
	}

	children, err := pages.Children(root.ID)
	if err != nil {
		return err
	}
	if len(children) == 0 {
		logger.Warn("page tree root has no children, default site not created")
		return nil
	}

	site, created, err := service.NewSiteService(gdb).GetOrCreateDefault(db.Site{
		Hostname:   "localhost",
		Port:       80,
		SiteName:   "localhost",
		RootPageID: children[0].ID,
	})
	if err != nil {
		return fmt.Errorf("creating default site: %w", err)
	}
	if created {
		logger.Info("created default site",
			zap.String("hostname", site.Hostname),
			zap.Uint("root_page_id", site.RootPageID),
		)
	}
	return nil
}
