package syncrun

import (
	"context"
	"fmt"

	"github.com/lolikeketon/seller-apis/core/reconcile"

	"go.uber.org/zap"
)

// Catalog fetches the complete set of SKUs a marketplace currently knows
// for the seller account. Implementations page through the provider's
// listing internally; callers always receive the full set.
type Catalog interface {
	KnownSKUs(ctx context.Context) ([]string, error)
}

// Submitter pushes one batch of updates to a marketplace. A batch never
// exceeds the size limits declared by the Target.
type Submitter interface {
	SubmitStocks(ctx context.Context, batch []reconcile.StockUpdate) error
	SubmitPrices(ctx context.Context, batch []reconcile.PriceUpdate) error
}

// Target bundles everything needed to sync one marketplace account.
type Target struct {
	// Name identifies the target in logs and reports, e.g. "ozon",
	// "market-fbs".
	Name string

	// Catalog supplies the known SKU set.
	Catalog Catalog

	// Submitter receives the partitioned updates.
	Submitter Submitter

	// StockBatchSize is the marketplace's per-request limit for stock
	// updates.
	StockBatchSize int

	// PriceBatchSize is the marketplace's per-request limit for price
	// updates.
	PriceBatchSize int
}

// Options control run behavior.
type Options struct {
	// DryRun reconciles and reports without submitting anything.
	DryRun bool
}

// Report summarizes one target's sync run.
type Report struct {
	// Target is the Target.Name this report belongs to.
	Target string

	// KnownSKUs is the size of the fetched known-identifier set.
	KnownSKUs int

	// Stocks is the full stock update set, one entry per known SKU.
	Stocks []reconcile.StockUpdate

	// InStock is the subset of Stocks with non-zero quantity.
	InStock []reconcile.StockUpdate

	// Prices is the price update set for matched feed rows.
	Prices []reconcile.PriceUpdate

	// StockBatches and PriceBatches count the partitioned batches.
	StockBatches int
	PriceBatches int

	// DryRun records whether submission was skipped.
	DryRun bool
}

// Run synchronizes one target against the given feed rows.
//
// On a submission failure the returned error wraps the marketplace error
// taxonomy (marketplace.StatusError / marketplace.TransportError) and the
// remaining batches of this target are not attempted.
func Run(ctx context.Context, target Target, rows []reconcile.Row, opts Options, l *zap.Logger) (*Report, error) {
	l = l.With(zap.String("target", target.Name))

	known, err := target.Catalog.KnownSKUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch known SKUs: %w", err)
	}
	l.Info("fetched known SKUs", zap.Int("count", len(known)))

	stocks, prices, err := reconcile.Reconcile(rows, known)
	if err != nil {
		return nil, fmt.Errorf("reconcile feed: %w", err)
	}

	stockBatches, err := reconcile.Partition(stocks, target.StockBatchSize)
	if err != nil {
		return nil, fmt.Errorf("partition stock updates: %w", err)
	}
	priceBatches, err := reconcile.Partition(prices, target.PriceBatchSize)
	if err != nil {
		return nil, fmt.Errorf("partition price updates: %w", err)
	}

	report := &Report{
		Target:       target.Name,
		KnownSKUs:    len(known),
		Stocks:       stocks,
		InStock:      reconcile.NonZero(stocks),
		Prices:       prices,
		StockBatches: len(stockBatches),
		PriceBatches: len(priceBatches),
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		l.Info("dry run, skipping submission",
			zap.Int("stock_batches", len(stockBatches)),
			zap.Int("price_batches", len(priceBatches)),
		)
		return report, nil
	}

	for i, batch := range stockBatches {
		if err := target.Submitter.SubmitStocks(ctx, batch); err != nil {
			return nil, fmt.Errorf("submit stock batch %d of %d: %w", i+1, len(stockBatches), err)
		}
		l.Debug("submitted stock batch",
			zap.Int("batch", i+1),
			zap.Int("size", len(batch)),
		)
	}

	for i, batch := range priceBatches {
		if err := target.Submitter.SubmitPrices(ctx, batch); err != nil {
			return nil, fmt.Errorf("submit price batch %d of %d: %w", i+1, len(priceBatches), err)
		}
		l.Debug("submitted price batch",
			zap.Int("batch", i+1),
			zap.Int("size", len(batch)),
		)
	}

	l.Info("sync finished",
		zap.Int("stock_updates", len(stocks)),
		zap.Int("in_stock", len(report.InStock)),
		zap.Int("price_updates", len(prices)),
	)
	return report, nil
}
