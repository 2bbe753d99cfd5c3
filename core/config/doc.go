// Package config provides the configuration loading mechanism for the
// synchronizer.
//
// It utilizes Viper for loading values from environment variables and an
// optional .env file into any tagged struct. The package knows nothing
// about the shape of the application's settings: callers define their own
// struct with `mapstructure` and `default` tags and hand it to Load.
//
// Nested keys map onto environment variables with underscores, e.g.
// ozon.client_id is read from OZON_CLIENT_ID and market.fbs_campaign_id
// from MARKET_FBS_CAMPAIGN_ID.
//
// # Usage
//
//	type settings struct {
//	    Level string `mapstructure:"level" default:"info"`
//	}
//
//	var s settings
//	if err := config.Load(".", &s); err != nil {
//	    log.Fatal(err)
//	}
package config
