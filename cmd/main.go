// Package main is the CLI entrypoint of the campus weekly report service.
// It wires the subcommands (serve, report, migrate, jwt), loads configuration
// and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/report"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/weekly"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/graph/neo4j"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/metrics"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/notifier/flnotify"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/spreadsheet/gsheets"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client and returns it with a cleanup
// function that closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getGraph connects the shared Neo4j driver.
func getGraph(ctx context.Context, cfg *config.Config) (*neo4j.Graph, func()) {
	g, err := neo4j.New(ctx, neo4j.Options{
		URI:                   cfg.Graph.URI,
		Username:              cfg.Graph.Username,
		Password:              cfg.Graph.Password,
		Database:              cfg.Graph.Database,
		MaxConnectionPoolSize: cfg.Graph.MaxConnectionPoolSize,
		MaxConnectionLifetime: cfg.Graph.MaxConnectionLifetime,
		AcquisitionTimeout:    cfg.Graph.AcquisitionTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to graph database", zap.Error(err))
	}

	return g, func() {
		logger.Info(ctx, "closing graph driver...")
		if err := g.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not close graph driver", zap.Error(err))
		}
	}
}

func getSheets(ctx context.Context, cfg *config.Config) *gsheets.Sheets {
	opts := gsheets.Options{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CredentialsFile: cfg.Sheets.CredentialsFile,
	}
	if cfg.Sheets.CredentialsJSON != "" {
		opts.CredentialsJSON = []byte(cfg.Sheets.CredentialsJSON)
	}

	sheets, err := gsheets.New(ctx, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create sheets client", zap.Error(err))
	}

	return sheets
}

func getNotifier(cfg *config.Config) *flnotify.Client {
	return flnotify.New(&http.Client{Timeout: cfg.Notifier.Timeout}, cfg.Notifier.BaseURL, cfg.Notifier.SecretKey)
}

// getPipeline builds the weekly pipeline over live collaborators. recorder
// may be nil.
func getPipeline(ctx context.Context, cfg *config.Config, recorder *metrics.Recorder) (*weekly.Pipeline, func()) {
	g, closeGraph := getGraph(ctx, cfg)

	return weekly.New(
		report.NewReader(g, recorder, cfg.Report.QueryTimeout),
		getSheets(ctx, cfg),
		getNotifier(cfg),
		recorder,
		weekly.NewOptions(cfg),
	), closeGraph
}

// main sets up the root command, loads configuration and logging, and
// registers the subcommands.
func main() {
	rootCmd := &cobra.Command{
		Use:   "reports",
		Short: "Campus weekly graph report service",
	}

	// cobra flags are only parsed on Execute, so the config path is read with
	// the flag package first; the cobra flag exists to keep cobra from
	// rejecting -c.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		reportCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// loadConfig reads configPath when it exists and falls back to the
// environment alone otherwise.
func loadConfig(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("config file not found, reading environment ...")

		return config.LoadEnv()
	}

	log.Println("loading config ...")

	return config.Load(configPath)
}
