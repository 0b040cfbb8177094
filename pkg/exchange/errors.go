package exchange

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/kumoex/xgate/pkg/types"
)

// UnsupportedError reports that an operation is not available on the target
// exchange. It carries the attempted arguments for diagnostics.
type UnsupportedError struct {
	Exchange types.ExchangeName
	Op       string
	Args     map[string]interface{}
}

func (e *UnsupportedError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%s: %s is not supported", e.Exchange, e.Op)
	}

	keys := make([]string, 0, len(e.Args))
	for k := range e.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Args[k])
	}

	return fmt.Sprintf("%s: %s is not supported:%s", e.Exchange, e.Op, b.String())
}

func IsUnsupported(err error) bool {
	var e *UnsupportedError
	return errors.As(err, &e)
}

// MarketNotFoundError reports a market string that is not present in the
// adapter's loaded registry, either because LoadMarkets was never called or
// because the exchange does not list the pair.
type MarketNotFoundError struct {
	Exchange     types.ExchangeName
	MarketString string
}

func (e *MarketNotFoundError) Error() string {
	return fmt.Sprintf("%s: market %q not found, is the market registry loaded?", e.Exchange, e.MarketString)
}

func IsMarketNotFound(err error) bool {
	var e *MarketNotFoundError
	return errors.As(err, &e)
}

// WrapOrderError annotates a remote order submission failure with the
// operation context, so the caller never receives a bare error.
func WrapOrderError(err error, name types.ExchangeName, order types.SubmitOrder) error {
	return errors.Wrapf(err, "%s %s order error: %s %s price=%v volume=%v",
		name, order.Type, order.MarketString, order.Side, order.Price, order.Volume)
}
