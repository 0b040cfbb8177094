package binancefutures

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/binancefutures/fapi"
	"github.com/kumoex/xgate/pkg/types"
	"github.com/kumoex/xgate/pkg/util"
)

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binancefutures",
})

func init() {
	_ = exchange.Exchange(&Exchange{})
}

type Exchange struct {
	exchange.Base

	client *fapi.RestClient
}

func New(credentials exchange.Credentials) *Exchange {
	return &Exchange{
		Base:   exchange.NewBase(types.ExchangeBinanceFutures),
		client: fapi.NewRestClient(fapi.ProductionEndpoint).Auth(credentials.Key, credentials.Secret),
	}
}

func (e *Exchange) LoadMarkets(ctx context.Context) error {
	log.Info("querying futures market info...")

	info, err := e.client.ExchangeInfo(ctx)
	if err != nil {
		return err
	}

	var markets []types.Market
	for _, symbol := range info.Symbols {
		if symbol.Status != "TRADING" {
			continue
		}

		markets = append(markets, toGlobalMarket(symbol))
	}

	e.SetMarkets(types.MarketMapFromSlice(markets))
	return nil
}

func (e *Exchange) localSymbol(marketString string) (string, error) {
	market, err := e.Market(marketString)
	if err != nil {
		return "", err
	}
	return toLocalSymbol(market), nil
}

func (e *Exchange) QueryOrderbook(ctx context.Context, marketString string, depth int) (*types.Orderbook, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	response, err := e.client.Depth(ctx, symbol, depth)
	if err != nil {
		return nil, err
	}

	return &types.Orderbook{
		ExchangeName: e.Name(),
		MarketString: marketString,
		Time:         time.Now(),
		Asks:         toGlobalPriceVolumeSlice(response.Asks).Truncate(depth),
		Bids:         toGlobalPriceVolumeSlice(response.Bids).Truncate(depth),
	}, nil
}

func (e *Exchange) QueryBalances(ctx context.Context, marketString string) (types.BalanceMap, error) {
	entries, err := e.client.Balances(ctx)
	if err != nil {
		return nil, err
	}

	var scope map[string]struct{}
	if len(marketString) > 0 {
		base, quote := types.ParseMarketString(marketString)
		scope = map[string]struct{}{base: {}, quote: {}}
	}

	balances := types.BalanceMap{}
	for _, entry := range entries {
		currency := strings.ToLower(entry.Asset)
		if scope != nil {
			if _, ok := scope[currency]; !ok {
				continue
			}
		}

		balances[currency] = types.Balance{
			Currency:  currency,
			Total:     util.MustParseFloat(entry.Balance),
			Available: util.MustParseFloat(entry.MaxWithdrawAmount),
		}
	}

	return balances, nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderResult, error) {
	symbol, err := e.localSymbol(order.MarketString)
	if err != nil {
		return nil, err
	}

	price, volume, err := e.QuantizeOrder(order)
	if err != nil {
		return nil, err
	}

	req := fapi.PlaceOrderRequest{
		Symbol:           symbol,
		Side:             toLocalSide(order.Side),
		Type:             toLocalOrderType(order.Type),
		Quantity:         strconv.FormatFloat(volume, 'f', -1, 64),
		NewClientOrderID: "xgate-" + uuid.NewString(),
	}

	if order.Type == types.OrderTypeLimit {
		req.Price = strconv.FormatFloat(price, 'f', -1, 64)
		req.TimeInForce = "GTC"
	}

	response, err := e.client.PlaceOrder(ctx, req)
	if err != nil {
		return nil, exchange.WrapOrderError(err, e.Name(), order)
	}

	return &types.OrderResult{
		OrderID:      formatOrderID(response.OrderID),
		MarketString: order.MarketString,
		Price:        price,
		Volume:       volume,
		CreatedAt:    time.Unix(0, response.UpdateTime*int64(time.Millisecond)),
	}, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, marketString, orderID string) (types.CancelResult, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return types.CancelResult{}, err
	}

	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return types.CancelResult{}, err
	}

	response, err := e.client.CancelOrder(ctx, symbol, id)
	if err != nil {
		return types.CancelResult{}, err
	}

	return types.CancelResult{Success: response.OrderID > 0}, nil
}

// CancelAllOrders maps the native bulk cancel onto one result per open
// order at call time. The native response carries no per-order outcome, so
// the mapping is all-success or all-failure.
func (e *Exchange) CancelAllOrders(ctx context.Context, marketString string) ([]types.CancelResult, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	openOrders, err := e.QueryOpenOrders(ctx, marketString)
	if err != nil {
		return nil, err
	}

	response, err := e.client.CancelAllOpenOrders(ctx, symbol)
	if err != nil {
		return nil, err
	}

	results := make([]types.CancelResult, len(openOrders))
	for i := range results {
		results[i] = types.CancelResult{Success: response.Code == 200}
	}
	return results, nil
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, marketString string) ([]types.OrderStatus, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	orders, err := e.client.OpenOrders(ctx, symbol)
	if err != nil {
		return nil, err
	}

	statuses := make([]types.OrderStatus, 0, len(orders))
	for _, order := range orders {
		statuses = append(statuses, toGlobalOrderStatus(order))
	}
	return statuses, nil
}

func (e *Exchange) QueryPosition(ctx context.Context, marketString string) (*types.Position, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	positions, err := e.client.PositionRisks(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range positions {
		if p.Symbol == symbol {
			return toGlobalPosition(p)
		}
	}

	return nil, errors.Errorf("binancefutures: no position entry for market %s", marketString)
}

func (e *Exchange) QueryLeverage(ctx context.Context, marketString string) (float64, error) {
	position, err := e.QueryPosition(ctx, marketString)
	if err != nil {
		return 0, err
	}
	return position.Leverage, nil
}

func formatOrderID(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}
