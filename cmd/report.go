package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Weekly report operations",
		SilenceUsage: true,
	}
	cmd.AddCommand(reportRunCommand(cfg), reportEnqueueCommand(cfg))

	return cmd
}

func paramsFromFlags(cmd *cobra.Command) domain.ReportParams {
	campus, _ := cmd.Flags().GetString("campus")
	date, _ := cmd.Flags().GetString("date")

	return domain.ReportParams{CampusName: campus, BussingDate: date}
}

// reportRunCommand runs the pipeline once in-process and prints the
// {statusCode, body} response. With --record the run is kept in run history.
func reportRunCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the weekly report pipeline once and prints its response",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, cfg.Report.RunTimeout)
			defer cancel()

			opts, err := reports.NewOptions(cfg)
			if err != nil {
				return err
			}
			params := opts.Params(paramsFromFlags(cmd))
			if err := params.Validate(); err != nil {
				return fmt.Errorf("invalid report parameters: %w", err)
			}
			ctx = logger.WithFields(ctx,
				zap.String("campusName", params.CampusName),
				zap.String("bussingDate", params.BussingDate))

			pipeline, closeGraph := getPipeline(ctx, cfg, nil)
			defer closeGraph()

			if record, _ := cmd.Flags().GetBool("record"); record {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				run, err := reports.New(strg, pipeline, opts).Generate(ctx, params)
				if run != nil {
					logger.Info(ctx, "run recorded", zap.Stringer("runID", run.ID), zap.String("status", string(run.Status)))
				}

				return err
			}

			res := pipeline.Run(ctx, params)
			fmt.Println(string(res.Response())) //nolint: forbidigo
			if !res.OK() {
				return res.Err
			}

			return nil
		},
	}

	cmd.Flags().String("campus", "", "Campus name (defaults to the configured campus)")
	cmd.Flags().String("date", "", "Bussing date as YYYY-MM-DD (defaults to last Sunday)")
	cmd.Flags().Bool("record", false, "Record the run in run history")

	return cmd
}

// reportEnqueueCommand queues a weekly report job for the workers.
func reportEnqueueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queues a weekly report job for the workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts, err := reports.NewOptions(cfg)
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			params, err := reports.New(strg, nil, opts).Enqueue(ctx, paramsFromFlags(cmd))
			if err != nil {
				return err
			}
			fmt.Printf("queued weekly report for %s on %s\n", params.CampusName, params.BussingDate) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().String("campus", "", "Campus name (defaults to the configured campus)")
	cmd.Flags().String("date", "", "Bussing date as YYYY-MM-DD (defaults to last Sunday)")

	return cmd
}
