package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/handler/v1handler"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/worker"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, svc reports.Service) *river.Client[pgx.Tx] {
	opts, err := worker.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not build worker options", zap.Error(err))
	}

	client, err := worker.Start(ctx, pool, svc, opts)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return client
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, scheduler and report workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not set up metrics", zap.Error(err))
			}
			recorder, err := metrics.NewRecorder(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			pipeline, closeGraph := getPipeline(ctx, cfg, recorder)
			defer closeGraph()

			reportsOpts, err := reports.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build reports options", zap.Error(err))
			}
			svc := reports.New(strg, pipeline, reportsOpts)

			riverClient := setupWorkers(ctx, cfg, strg.Pool, svc)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:          v1handler.Deps{Reports: svc},
				River:         riverClient,
				MeterProvider: mp,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Warn(ctx, "workers did not stop in time, cancelling running jobs", zap.Error(err))
				cancelCtx, cancelJobs := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				if err := riverClient.StopAndCancel(cancelCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}
				cancelJobs()
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
