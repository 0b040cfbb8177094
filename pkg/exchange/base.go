package exchange

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumoex/xgate/pkg/types"
)

// Base is the shared default-behavior helper adapters compose in. It owns
// the write-once market registry, the quantization rules, and the
// "unsupported unless overridden" capability stubs.
//
// The registry is only written by SetMarkets during LoadMarkets and read
// through deep copies afterwards, so concurrent reads need no locking.
type Base struct {
	name    types.ExchangeName
	markets types.MarketMap
}

func NewBase(name types.ExchangeName) Base {
	return Base{name: name, markets: types.MarketMap{}}
}

func (b *Base) Name() types.ExchangeName {
	return b.name
}

// SetMarkets replaces the market registry. Re-invocation of LoadMarkets is
// idempotent: the previous registry is discarded wholesale.
func (b *Base) SetMarkets(markets types.MarketMap) {
	b.markets = markets
}

// Markets returns an independent snapshot of the registry; callers can
// never mutate internal state through the returned value.
func (b *Base) Markets() types.MarketMap {
	return b.markets.Copy()
}

func (b *Base) Market(marketString string) (types.Market, error) {
	market, ok := b.markets[marketString]
	if !ok {
		return types.Market{}, &MarketNotFoundError{Exchange: b.name, MarketString: marketString}
	}
	return market, nil
}

// PriceUnit returns the market's tick size. The price argument is ignored
// here; adapters for exchanges with price-dependent ticks shadow this
// method.
func (b *Base) PriceUnit(marketString string, _ float64) (float64, error) {
	market, err := b.Market(marketString)
	if err != nil {
		return 0, err
	}
	return market.PriceUnit, nil
}

func (b *Base) MinimumVolume(marketString string, price float64) (float64, error) {
	market, err := b.Market(marketString)
	if err != nil {
		return 0, err
	}
	return market.MinimumVolume(price)
}

func (b *Base) MinimumAmount(marketString string, price float64) (float64, error) {
	market, err := b.Market(marketString)
	if err != nil {
		return 0, err
	}
	return market.MinimumAmount(price), nil
}

// QuantizeOrder floors the order's price and volume to the market's
// precision. Volume is floored to VolumeDigits decimal places. Price is
// floored to a digit count taken from the textual length of the tick size:
// a tick of 0.001 counts as 5 digits, not 3. That mirrors the behavior the
// rest of the system was built against; do not replace it with true
// decimal-place counting without revisiting every caller's expectations.
//
// Flooring never rounds up, so a quantized value can never overshoot an
// exchange minimum or step constraint.
func (b *Base) QuantizeOrder(order types.SubmitOrder) (price, volume float64, err error) {
	market, err := b.Market(order.MarketString)
	if err != nil {
		return 0, 0, err
	}

	volume = floorDigits(order.Volume, market.VolumeDigits)

	price = order.Price
	if order.Type == types.OrderTypeLimit {
		priceDigits := len(strconv.FormatFloat(market.PriceUnit, 'f', -1, 64))
		price = floorDigits(order.Price, priceDigits)
	}

	return price, volume, nil
}

func floorDigits(v float64, digits int) float64 {
	return decimal.NewFromFloat(v).RoundFloor(int32(digits)).InexactFloat64()
}

// unsupported builds the default failure for a capability the exchange does
// not expose.
func (b *Base) unsupported(op string, args map[string]interface{}) *UnsupportedError {
	return &UnsupportedError{Exchange: b.name, Op: op, Args: args}
}

// Default capability stubs. Adapters override only what the underlying
// exchange actually exposes.

func (b *Base) QueryPosition(_ context.Context, marketString string) (*types.Position, error) {
	return nil, b.unsupported("queryPosition", map[string]interface{}{
		"market": marketString,
		"reason": "not a derivatives exchange",
	})
}

func (b *Base) QueryLeverage(_ context.Context, marketString string) (float64, error) {
	return 0, b.unsupported("queryLeverage", map[string]interface{}{"market": marketString})
}

func (b *Base) CancelOrder(_ context.Context, marketString, orderID string) (types.CancelResult, error) {
	return types.CancelResult{}, b.unsupported("cancelOrder", map[string]interface{}{
		"market":  marketString,
		"orderID": orderID,
	})
}

func (b *Base) CancelAllOrders(_ context.Context, marketString string) ([]types.CancelResult, error) {
	return nil, b.unsupported("cancelAllOrders", map[string]interface{}{"market": marketString})
}

func (b *Base) Withdraw(_ context.Context, params types.WithdrawParams) (*types.TransactionResult, error) {
	return nil, b.unsupported("withdraw", map[string]interface{}{
		"currency": params.Currency,
		"amount":   params.Amount,
		"address":  params.ToAddress.Address,
	})
}

func (b *Base) QueryDepositHistory(_ context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error) {
	return nil, b.unsupported("queryDepositHistory", map[string]interface{}{
		"currency": currency,
		"since":    since,
		"limit":    limit,
	})
}

func (b *Base) QueryWithdrawalHistory(_ context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error) {
	return nil, b.unsupported("queryWithdrawalHistory", map[string]interface{}{
		"currency": currency,
		"since":    since,
		"limit":    limit,
	})
}

func (b *Base) QueryTradeHistory(_ context.Context, marketString string, since time.Time, orderID string) ([]types.OrderStatus, error) {
	return nil, b.unsupported("queryTradeHistory", map[string]interface{}{
		"market":  marketString,
		"since":   since,
		"orderID": orderID,
	})
}
