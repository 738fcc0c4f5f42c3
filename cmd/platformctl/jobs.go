package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/spf13/cobra"
)

func invitationsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Invitation maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "expire",
		Short: "Mark pending invitations past their expiry as expired",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			n, err := e.services.Invitations.ExpireStale()
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), flags.output, map[string]int64{"expired": n})
		},
	})

	return cmd
}

func webhooksCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Webhook delivery maintenance",
	}

	var (
		status string
		since  time.Duration
		limit  int
	)
	redeliver := &cobra.Command{
		Use:   "redeliver",
		Short: "Re-send deliveries left pending or failed",
		Long: `Re-sends deliveries whose status is --status and that were last touched
more than --since ago. Deliveries run synchronously with the normal retry policy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := e.services.Webhooks.RedeliverStale(ctx, models.DeliveryStatus(status), since, limit)
			if report != nil {
				if perr := printResult(cmd.OutOrStdout(), flags.output, report); perr != nil {
					return perr
				}
			}
			return err
		},
	}
	redeliver.Flags().StringVar(&status, "status", string(models.DeliveryStatusPending), "Delivery status to recover (pending, failed)")
	redeliver.Flags().DurationVar(&since, "since", time.Hour, "Only deliveries not updated within this duration")
	redeliver.Flags().IntVar(&limit, "limit", 100, "Maximum deliveries per run")
	cmd.AddCommand(redeliver)

	return cmd
}

func knowledgeCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Knowledge ingestion maintenance",
	}

	var (
		status string
		since  time.Duration
		limit  int
	)
	reingest := &cobra.Command{
		Use:   "reingest",
		Short: "Ingest sources stuck in pending, processing or failed",
		Long: `Ingests sources whose status is --status and that were last touched
more than --since ago, e.g. sources dropped by a full ingestion queue.
Sources are ingested one at a time in this process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := e.services.Knowledge.ReingestStale(ctx, models.SourceStatus(status), since, limit)
			if report != nil {
				if perr := printResult(cmd.OutOrStdout(), flags.output, report); perr != nil {
					return perr
				}
			}
			return err
		},
	}
	reingest.Flags().StringVar(&status, "status", string(models.SourceStatusPending), "Source status to recover (pending, processing, failed)")
	reingest.Flags().DurationVar(&since, "since", time.Hour, "Only sources not updated within this duration")
	reingest.Flags().IntVar(&limit, "limit", 100, "Maximum sources per run")
	cmd.AddCommand(reingest)

	return cmd
}

func billingCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Billing reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "kpis",
		Short: "Print MRR, ARR, churn and the per-plan breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			kpis, err := e.services.Billing.KPIs()
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), flags.output, kpis)
		},
	})

	return cmd
}
