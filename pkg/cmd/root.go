package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/factory"
	"github.com/kumoex/xgate/pkg/types"
)

var RootCmd = &cobra.Command{
	Use:   "xgate",
	Short: "unified exchange gateway",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")

	RootCmd.PersistentFlags().String("exchange", "binance", "exchange name: binance, binancefutures or bitmex")
	RootCmd.PersistentFlags().String("api-key", "", "exchange api key")
	RootCmd.PersistentFlags().String("api-secret", "", "exchange api secret")
}

// newExchange builds the adapter selected by the --exchange flag. Credentials
// come from the flags first, then from {EXCHANGE}_API_KEY / {EXCHANGE}_API_SECRET.
func newExchange() (exchange.Exchange, error) {
	exchangeName, err := types.ValidExchangeName(viper.GetString("exchange"))
	if err != nil {
		return nil, err
	}

	key, secret := viper.GetString("api-key"), viper.GetString("api-secret")
	if len(key) > 0 && len(secret) > 0 {
		return factory.New(exchangeName, exchange.Credentials{Key: key, Secret: secret})
	}

	return factory.NewWithEnvVarPrefix(exchangeName, "")
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
