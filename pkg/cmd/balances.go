package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	balancesCmd.Flags().String("market", "", "restrict to the market's base and quote currencies")
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/xgate balances --exchange=binance
var balancesCmd = &cobra.Command{
	Use:          "balances [--market MARKET]",
	Short:        "Show user account balances",
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

		balances, err := session.QueryBalances(ctx, marketString)
		if err != nil {
			return err
		}

		for currency, balance := range balances {
			log.Infof("%s total=%f available=%f", currency, balance.Total, balance.Available)
		}

		return nil
	},
}
