package cmd

import (
	"fmt"

	"github.com/lolikeketon/seller-apis/core/config"
	"github.com/lolikeketon/seller-apis/core/logger"
	"github.com/lolikeketon/seller-apis/feature/feed"
	"github.com/lolikeketon/seller-apis/feature/market"
	"github.com/lolikeketon/seller-apis/feature/ozon"
)

// Config aggregates the settings of every subsystem the commands wire
// together. Each section lives with the package it configures; only the
// commands know the full shape.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Feed holds configuration for the vendor inventory feed.
	Feed feed.Config `mapstructure:"feed"`
	// Ozon holds configuration for the Ozon Seller API.
	Ozon ozon.Config `mapstructure:"ozon"`
	// Market holds configuration for the Yandex.Market Partner API.
	Market market.Config `mapstructure:"market"`
}

// loadConfig reads the aggregate configuration from environment variables
// and an optional .env file.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
