package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	ordersCmd.Flags().String("market", "btc/usdt", "the canonical market string")
	RootCmd.AddCommand(ordersCmd)
}

// go run ./cmd/xgate orders --exchange=binance --market=btc/usdt
var ordersCmd = &cobra.Command{
	Use:          "orders --market MARKET",
	Short:        "Show open orders of a market",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		marketString, err := cmd.Flags().GetString("market")
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

		orders, err := session.QueryOpenOrders(ctx, marketString)
		if err != nil {
			return err
		}

		if len(orders) == 0 {
			log.Infof("no open orders on %s", marketString)
			return nil
		}

		for _, order := range orders {
			log.Infof("order %s %s %f x %f remaining=%f status=%s",
				order.OrderID,
				order.Side,
				order.Price,
				order.Volume,
				order.RemainingVolume,
				order.Status)
		}

		return nil
	},
}
