package ozon

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lolikeketon/seller-apis/core/marketplace"
	"github.com/lolikeketon/seller-apis/core/reconcile"

	"go.uber.org/zap"
)

// Client talks to the Ozon Seller API for one seller account. It implements
// syncrun.Catalog and syncrun.Submitter.
type Client struct {
	cfg  Config
	http *marketplace.Client
	log  *zap.Logger
}

// NewClient creates an Ozon Seller API client.
func NewClient(cfg Config, l *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: marketplace.NewClient(cfg.TimeoutSeconds),
		log:  l.With(zap.String("marketplace", "ozon")),
	}
}

// KnownSKUs fetches the complete offer set of the account, paging through
// /v2/product/list by last_id until the reported total is reached.
func (c *Client) KnownSKUs(ctx context.Context) ([]string, error) {
	var (
		skus   []string
		lastID string
	)

	for {
		var resp productListResponse
		err := c.http.Do(ctx, marketplace.Request{
			Op:     "ozon: product list",
			Method: http.MethodPost,
			URL:    c.cfg.BaseURL + "/v2/product/list",
			Header: c.headers(),
			Body: productListRequest{
				Filter: productListFilter{Visibility: visibilityAll},
				LastID: lastID,
				Limit:  c.cfg.PageLimit,
			},
		}, &resp)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Result.Items {
			skus = append(skus, item.OfferID)
		}

		if len(skus) >= resp.Result.Total {
			break
		}
		if len(resp.Result.Items) == 0 {
			// The API claims more items exist but returned none; bail out
			// instead of looping forever on a stuck cursor.
			return nil, fmt.Errorf("ozon: product list pagination stalled at %d of %d items", len(skus), resp.Result.Total)
		}
		lastID = resp.Result.LastID
	}

	c.log.Debug("fetched offer list", zap.Int("count", len(skus)))
	return skus, nil
}

// SubmitStocks imports one batch of stock levels.
func (c *Client) SubmitStocks(ctx context.Context, batch []reconcile.StockUpdate) error {
	return c.http.Do(ctx, marketplace.Request{
		Op:     "ozon: import stocks",
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/v1/product/import/stocks",
		Header: c.headers(),
		Body:   stockPayload(batch),
	}, nil)
}

// SubmitPrices imports one batch of prices.
func (c *Client) SubmitPrices(ctx context.Context, batch []reconcile.PriceUpdate) error {
	return c.http.Do(ctx, marketplace.Request{
		Op:     "ozon: import prices",
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/v1/product/import/prices",
		Header: c.headers(),
		Body:   pricePayload(batch),
	}, nil)
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Client-Id": c.cfg.ClientID,
		"Api-Key":   c.cfg.APIKey,
	}
}
