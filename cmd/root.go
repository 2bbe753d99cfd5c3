package cmd

import (
	"fmt"
	"os"

	"github.com/lolikeketon/seller-apis/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "seller-apis",
	Short: "Marketplace stock and price synchronizer",
	Long: `seller-apis synchronizes stock levels and prices from the vendor
inventory feed into the Ozon and Yandex.Market seller APIs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard structured logger; console format and
		// debug level give readable timestamps for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare).
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
