package cmd

import (
	"context"
	"fmt"

	"github.com/lolikeketon/seller-apis/core/logger"
	"github.com/lolikeketon/seller-apis/core/reconcile"
	"github.com/lolikeketon/seller-apis/core/syncrun"
	"github.com/lolikeketon/seller-apis/feature/feed"
	"github.com/lolikeketon/seller-apis/feature/market"
	"github.com/lolikeketon/seller-apis/feature/ozon"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd is the parent command for all sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize vendor stock and prices to marketplaces",
	Long: `Download the vendor inventory feed, reconcile it against each
marketplace's known offers and submit stock and price update batches.

Examples:
  # Sync both marketplaces
  seller-apis sync all

  # Sync only Ozon
  seller-apis sync ozon

  # Reconcile and report without submitting anything
  seller-apis sync all --dry-run`,
}

// ozonSyncCmd syncs the Ozon seller account.
var ozonSyncCmd = &cobra.Command{
	Use:   "ozon",
	Short: "Sync stocks and prices to Ozon",
	RunE:  runOzonSync,
}

// marketSyncCmd syncs every configured Yandex.Market campaign.
var marketSyncCmd = &cobra.Command{
	Use:   "market",
	Short: "Sync stocks and prices to Yandex.Market (FBS and DBS)",
	RunE:  runMarketSync,
}

// allSyncCmd syncs every marketplace sequentially.
var allSyncCmd = &cobra.Command{
	Use:   "all",
	Short: "Sync stocks and prices to every configured marketplace",
	RunE:  runAllSync,
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&dryRunSync, "dry-run", false, "Reconcile and report without submitting updates")
	syncCmd.AddCommand(ozonSyncCmd, marketSyncCmd, allSyncCmd)
	RootCmd.AddCommand(syncCmd)
}

// setupSync loads configuration, builds the run logger and fetches the feed
// once; every target of the invocation reconciles the same snapshot.
func setupSync(ctx context.Context) (*Config, *zap.Logger, []reconcile.Row, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, nil, nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	src, err := feed.NewSource(cfg.Feed)
	if err != nil {
		return nil, nil, nil, err
	}

	l.Info("loading vendor feed")
	rows, err := feed.Load(ctx, src, cfg.Feed)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load feed: %w", err)
	}
	l.Info("vendor feed loaded", zap.Int("rows", len(rows)))

	return cfg, l, rows, nil
}

func runOzonSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, rows, err := setupSync(ctx)
	if err != nil {
		return err
	}

	report, err := ozon.Sync(ctx, cfg.Ozon, rows, syncrun.Options{DryRun: dryRunSync}, l)
	if err != nil {
		return err
	}
	printSyncReport(l, report)
	return nil
}

func runMarketSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, rows, err := setupSync(ctx)
	if err != nil {
		return err
	}

	reports, err := market.Sync(ctx, cfg.Market, rows, syncrun.Options{DryRun: dryRunSync}, l)
	for _, report := range reports {
		printSyncReport(l, report)
	}
	return err
}

func runAllSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, rows, err := setupSync(ctx)
	if err != nil {
		return err
	}

	opts := syncrun.Options{DryRun: dryRunSync}

	// Marketplaces are independent: an Ozon failure must not prevent the
	// Market campaigns from running. The first error is reported at the end.
	var firstErr error

	report, err := ozon.Sync(ctx, cfg.Ozon, rows, opts, l)
	if err != nil {
		l.Error("ozon sync failed", zap.Error(err))
		firstErr = err
	} else {
		printSyncReport(l, report)
	}

	reports, err := market.Sync(ctx, cfg.Market, rows, opts, l)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	for _, r := range reports {
		printSyncReport(l, r)
	}

	return firstErr
}

// printSyncReport prints a formatted run summary using the logger.
func printSyncReport(l *zap.Logger, report *syncrun.Report) {
	l.Info("sync report",
		zap.String("target", report.Target),
		zap.Int("known_skus", report.KnownSKUs),
		zap.Int("stock_updates", len(report.Stocks)),
		zap.Int("in_stock", len(report.InStock)),
		zap.Int("price_updates", len(report.Prices)),
		zap.Int("stock_batches", report.StockBatches),
		zap.Int("price_batches", report.PriceBatches),
		zap.Bool("dry_run", report.DryRun),
	)
}
