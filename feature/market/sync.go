package market

import (
	"context"

	"github.com/lolikeketon/seller-apis/core/reconcile"
	"github.com/lolikeketon/seller-apis/core/syncrun"

	"go.uber.org/zap"
)

// Target returns the sync target for this campaign.
func (c *Client) Target() syncrun.Target {
	return syncrun.Target{
		Name:           "market-" + c.campaign.Model,
		Catalog:        c,
		Submitter:      c,
		StockBatchSize: c.cfg.StockBatchSize,
		PriceBatchSize: c.cfg.PriceBatchSize,
	}
}

// Sync runs a full stock and price synchronization for every configured
// campaign (FBS first, then DBS) against the same feed rows. Campaigns are
// independent: a failed campaign is logged and reported, but does not stop
// the remaining ones. The first failure is returned after all campaigns
// have been attempted.
func Sync(ctx context.Context, cfg Config, rows []reconcile.Row, opts syncrun.Options, l *zap.Logger) ([]*syncrun.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		reports  []*syncrun.Report
		firstErr error
	)
	for _, campaign := range cfg.Campaigns() {
		client := NewClient(cfg, campaign, l)
		report, err := syncrun.Run(ctx, client.Target(), rows, opts, l)
		if err != nil {
			l.Error("campaign sync failed",
				zap.String("campaign", campaign.CampaignID),
				zap.String("model", campaign.Model),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		reports = append(reports, report)
	}
	return reports, firstErr
}
