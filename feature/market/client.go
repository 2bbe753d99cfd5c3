package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lolikeketon/seller-apis/core/marketplace"
	"github.com/lolikeketon/seller-apis/core/reconcile"

	"go.uber.org/zap"
)

// Client talks to the Yandex.Market Partner API for one campaign. It
// implements syncrun.Catalog and syncrun.Submitter.
type Client struct {
	cfg      Config
	campaign Campaign
	http     *marketplace.Client
	log      *zap.Logger

	// now is a hook for stock timestamp generation in tests.
	now func() time.Time
}

// NewClient creates a Partner API client bound to one campaign.
func NewClient(cfg Config, campaign Campaign, l *zap.Logger) *Client {
	return &Client{
		cfg:      cfg,
		campaign: campaign,
		http:     marketplace.NewClient(cfg.TimeoutSeconds),
		log: l.With(
			zap.String("marketplace", "market"),
			zap.String("campaign", campaign.CampaignID),
			zap.String("model", campaign.Model),
		),
		now: time.Now,
	}
}

// KnownSKUs fetches the complete shop SKU set of the campaign, paging
// through offer-mapping-entries by nextPageToken until the API stops
// handing one out.
func (c *Client) KnownSKUs(ctx context.Context) ([]string, error) {
	var (
		skus      []string
		pageToken string
	)

	for {
		query := url.Values{"limit": []string{strconv.Itoa(c.cfg.PageLimit)}}
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var resp offerMappingResponse
		err := c.http.Do(ctx, marketplace.Request{
			Op:     "market: offer mappings",
			Method: http.MethodGet,
			URL:    c.campaignURL("offer-mapping-entries"),
			Header: c.headers(),
			Query:  query,
		}, &resp)
		if err != nil {
			return nil, err
		}

		for _, entry := range resp.Result.OfferMappingEntries {
			skus = append(skus, entry.Offer.ShopSKU)
		}

		next := resp.Result.Paging.NextPageToken
		if next == "" {
			break
		}
		if next == pageToken {
			return nil, fmt.Errorf("market: offer mapping pagination stalled on token %q", next)
		}
		pageToken = next
	}

	c.log.Debug("fetched offer mappings", zap.Int("count", len(skus)))
	return skus, nil
}

// SubmitStocks pushes one batch of stock levels for the campaign's
// warehouse.
func (c *Client) SubmitStocks(ctx context.Context, batch []reconcile.StockUpdate) error {
	return c.http.Do(ctx, marketplace.Request{
		Op:     "market: update stocks",
		Method: http.MethodPut,
		URL:    c.campaignURL("offers/stocks"),
		Header: c.headers(),
		Body:   stockPayload(batch, c.campaign.WarehouseID, c.now()),
	}, nil)
}

// SubmitPrices pushes one batch of prices.
func (c *Client) SubmitPrices(ctx context.Context, batch []reconcile.PriceUpdate) error {
	return c.http.Do(ctx, marketplace.Request{
		Op:     "market: update prices",
		Method: http.MethodPost,
		URL:    c.campaignURL("offer-prices/updates"),
		Header: c.headers(),
		Body:   pricePayload(batch),
	}, nil)
}

func (c *Client) campaignURL(suffix string) string {
	return fmt.Sprintf("%s/campaigns/%s/%s", c.cfg.BaseURL, c.campaign.CampaignID, suffix)
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.cfg.Token,
	}
}
