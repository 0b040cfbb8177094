package exchange

import (
	"context"
	"time"

	"github.com/kumoex/xgate/pkg/types"
)

// MarketDataService covers the public, market-scoped operations.
type MarketDataService interface {
	// LoadMarkets populates the adapter's market registry. It must be called
	// once before any market-scoped operation; calling it again replaces the
	// registry.
	LoadMarkets(ctx context.Context) error

	// Markets returns an independent snapshot of the market registry.
	Markets() types.MarketMap

	// Market resolves one market by its canonical market string.
	Market(marketString string) (types.Market, error)

	// QueryOrderbook fetches the top-depth asks and bids of the market.
	QueryOrderbook(ctx context.Context, marketString string, depth int) (*types.Orderbook, error)

	// PriceUnit returns the market's tick size. Some exchanges derive the
	// tick from the current price, hence the price argument.
	PriceUnit(marketString string, price float64) (float64, error)

	MinimumVolume(marketString string, price float64) (float64, error)
	MinimumAmount(marketString string, price float64) (float64, error)
}

// TradeService covers the authenticated trading operations.
type TradeService interface {
	// QueryBalances returns the account balance, optionally scoped to the
	// given market's currencies. An empty market string means the whole
	// account.
	QueryBalances(ctx context.Context, marketString string) (types.BalanceMap, error)

	// SubmitOrder quantizes the order's price and volume to the market's
	// rules, submits it, and returns the normalized result.
	SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderResult, error)

	CancelOrder(ctx context.Context, marketString, orderID string) (types.CancelResult, error)
	CancelAllOrders(ctx context.Context, marketString string) ([]types.CancelResult, error)

	QueryOpenOrders(ctx context.Context, marketString string) ([]types.OrderStatus, error)
	QueryTradeHistory(ctx context.Context, marketString string, since time.Time, orderID string) ([]types.OrderStatus, error)
}

// TransferService covers deposits and withdrawals.
type TransferService interface {
	Withdraw(ctx context.Context, params types.WithdrawParams) (*types.TransactionResult, error)
	QueryDepositHistory(ctx context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error)
	QueryWithdrawalHistory(ctx context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error)
}

// DerivativesService covers the operations only derivatives exchanges have.
// Spot adapters answer these with an UnsupportedError.
type DerivativesService interface {
	QueryPosition(ctx context.Context, marketString string) (*types.Position, error)
	QueryLeverage(ctx context.Context, marketString string) (float64, error)
}

// Exchange is the canonical operation surface every adapter provides.
// Adapters satisfy capabilities the underlying exchange lacks through the
// composed-in Base defaults, which answer with typed UnsupportedError
// values instead of reaching the wire.
type Exchange interface {
	Name() types.ExchangeName

	MarketDataService
	TradeService
	TransferService
	DerivativesService
}
