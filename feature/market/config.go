package market

import "fmt"

// Placement models of a Yandex.Market campaign.
const (
	ModelFBS = "fbs"
	ModelDBS = "dbs"
)

// Config holds configuration for the Yandex.Market Partner API integration.
type Config struct {
	// BaseURL is the Partner API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`

	// Token is the partner OAuth access token, shared by all campaigns.
	Token string `mapstructure:"token" default:""`

	// FBSCampaignID and FBSWarehouseID identify the FBS campaign.
	FBSCampaignID  string `mapstructure:"fbs_campaign_id" default:""`
	FBSWarehouseID string `mapstructure:"fbs_warehouse_id" default:""`

	// DBSCampaignID and DBSWarehouseID identify the DBS campaign.
	DBSCampaignID  string `mapstructure:"dbs_campaign_id" default:""`
	DBSWarehouseID string `mapstructure:"dbs_warehouse_id" default:""`

	// PageLimit caps the entries returned per offer-mapping page.
	PageLimit int `mapstructure:"page_limit" default:"200"`

	// StockBatchSize is the documented per-request limit for stock updates.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"2000"`

	// PriceBatchSize is the documented per-request limit for price updates.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"500"`

	// TimeoutSeconds bounds each API request at the transport level.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Campaign pairs one campaign with the warehouse its stock is reported for.
type Campaign struct {
	// Model is the placement model (fbs or dbs), used in target names.
	Model string

	// CampaignID identifies the campaign in API paths.
	CampaignID string

	// WarehouseID is the warehouse stock updates are attributed to.
	WarehouseID string
}

// Campaigns returns the configured campaigns in sync order (FBS first).
func (c Config) Campaigns() []Campaign {
	var campaigns []Campaign
	if c.FBSCampaignID != "" {
		campaigns = append(campaigns, Campaign{
			Model:       ModelFBS,
			CampaignID:  c.FBSCampaignID,
			WarehouseID: c.FBSWarehouseID,
		})
	}
	if c.DBSCampaignID != "" {
		campaigns = append(campaigns, Campaign{
			Model:       ModelDBS,
			CampaignID:  c.DBSCampaignID,
			WarehouseID: c.DBSWarehouseID,
		})
	}
	return campaigns
}

// Validate checks that the token and at least one campaign are configured.
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("market: token is required")
	}
	if len(c.Campaigns()) == 0 {
		return fmt.Errorf("market: at least one campaign (fbs_campaign_id or dbs_campaign_id) is required")
	}
	return nil
}
