package main

import (
	"context"
	"database/sql"

	adminportal "github.com/firstlovecenter/fl-admin-portal-sub001"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the run history migrations with goose, then brings
// the River schema to its latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "migrations need a non-transactional handle")
			}

			goose.SetBaseFS(adminportal.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate run history", zap.Error(err))
			}

			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			for _, v := range res.Versions {
				logger.Info(ctx, "applied river migration", zap.Int("version", v.Version))
			}
			logger.Info(ctx, "database migrated")
		},
	}

	return cmd
}
