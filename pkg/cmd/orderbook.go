package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	orderbookCmd.Flags().String("market", "btc/usdt", "the canonical market string, lower case base/quote")
	orderbookCmd.Flags().Int("depth", 5, "number of levels per side")
	RootCmd.AddCommand(orderbookCmd)
}

// go run ./cmd/xgate orderbook --exchange=binance --market=btc/usdt
var orderbookCmd = &cobra.Command{
	Use:          "orderbook --market MARKET",
	Short:        "Show the top of an orderbook",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		marketString, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		session, err := newExchange()
		if err != nil {
			return err
		}

		if err := session.LoadMarkets(ctx); err != nil {
			return err
		}

		book, err := session.QueryOrderbook(ctx, marketString, depth)
		if err != nil {
			return err
		}

		for _, ask := range book.Asks {
			log.Infof("ask %f x %f", ask.Price, ask.Volume)
		}
		for _, bid := range book.Bids {
			log.Infof("bid %f x %f", bid.Price, bid.Volume)
		}

		return nil
	},
}
