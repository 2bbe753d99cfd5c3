package ozon

import "fmt"

// Config holds configuration for the Ozon Seller API integration.
type Config struct {
	// BaseURL is the Seller API root.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`

	// ClientID identifies the seller account.
	ClientID string `mapstructure:"client_id" default:""`

	// APIKey is the seller API key.
	APIKey string `mapstructure:"api_key" default:""`

	// PageLimit caps the items returned per product-list page.
	PageLimit int `mapstructure:"page_limit" default:"1000"`

	// StockBatchSize is the documented per-request limit for stock imports.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"100"`

	// PriceBatchSize is the documented per-request limit for price imports.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"900"`

	// TimeoutSeconds bounds each API request at the transport level.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate checks that the credentials are present.
func (c Config) Validate() error {
	if c.ClientID == "" || c.APIKey == "" {
		return fmt.Errorf("ozon: client_id and api_key are required")
	}
	return nil
}
