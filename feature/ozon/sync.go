package ozon

import (
	"context"

	"github.com/lolikeketon/seller-apis/core/reconcile"
	"github.com/lolikeketon/seller-apis/core/syncrun"

	"go.uber.org/zap"
)

// Target returns the sync target for this account.
func (c *Client) Target() syncrun.Target {
	return syncrun.Target{
		Name:           "ozon",
		Catalog:        c,
		Submitter:      c,
		StockBatchSize: c.cfg.StockBatchSize,
		PriceBatchSize: c.cfg.PriceBatchSize,
	}
}

// Sync runs a full stock and price synchronization for the configured
// account against the given feed rows.
func Sync(ctx context.Context, cfg Config, rows []reconcile.Row, opts syncrun.Options, l *zap.Logger) (*syncrun.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := NewClient(cfg, l)
	return syncrun.Run(ctx, client.Target(), rows, opts, l)
}
