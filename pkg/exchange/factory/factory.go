package factory

import (
	"fmt"
	"os"
	"strings"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/binance"
	"github.com/kumoex/xgate/pkg/exchange/binancefutures"
	"github.com/kumoex/xgate/pkg/exchange/bitmex"
	"github.com/kumoex/xgate/pkg/types"
)

// Constructor builds one adapter from an immutable credential pair.
type Constructor func(credentials exchange.Credentials) exchange.Exchange

var constructors = map[types.ExchangeName]Constructor{
	types.ExchangeBinance: func(credentials exchange.Credentials) exchange.Exchange {
		return binance.New(credentials)
	},
	types.ExchangeBinanceFutures: func(credentials exchange.Credentials) exchange.Exchange {
		return binancefutures.New(credentials)
	},
	types.ExchangeBitmex: func(credentials exchange.Credentials) exchange.Exchange {
		return bitmex.New(credentials)
	},
}

// New allocates the adapter registered for the given exchange name.
func New(n types.ExchangeName, credentials exchange.Credentials) (exchange.Exchange, error) {
	ctor, ok := constructors[n]
	if !ok {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	return ctor(credentials), nil
}

// NewWithEnvVarPrefix reads {PREFIX}_API_KEY and {PREFIX}_API_SECRET and
// allocates the adapter. An empty prefix defaults to the exchange name.
func NewWithEnvVarPrefix(n types.ExchangeName, varPrefix string) (exchange.Exchange, error) {
	if len(varPrefix) == 0 {
		varPrefix = n.String()
	}

	varPrefix = strings.ToUpper(varPrefix)

	key := os.Getenv(varPrefix + "_API_KEY")
	secret := os.Getenv(varPrefix + "_API_SECRET")
	if len(key) == 0 || len(secret) == 0 {
		return nil, fmt.Errorf("can not initialize exchange %s due to empty key or secret, env var prefix: %s", n, varPrefix)
	}

	return New(n, exchange.Credentials{Key: key, Secret: secret})
}
