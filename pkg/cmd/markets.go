package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(marketsCmd)
}

// go run ./cmd/xgate markets --exchange=binance
var marketsCmd = &cobra.Command{
	Use:          "markets",
	Short:        "Show the tradable markets of an exchange",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		session, err := newExchange()
		if err != nil {
			return err
		}

		if err := session.LoadMarkets(ctx); err != nil {
			return err
		}

		for marketString, market := range session.Markets() {
			log.Infof("%s min_volume=%v min_amount=%v volume_digits=%d price_unit=%v",
				marketString,
				market.MinVolume,
				market.MinAmount,
				market.VolumeDigits,
				market.PriceUnit)
		}

		return nil
	},
}
