package bitmex

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/bitmex/bitmexapi"
	"github.com/kumoex/xgate/pkg/types"
)

var log = logrus.WithFields(logrus.Fields{
	"exchange": "bitmex",
})

// satoshisPerBTC converts the XBt-denominated wallet amounts.
const satoshisPerBTC = 1e8

func init() {
	_ = exchange.Exchange(&Exchange{})
}

type Exchange struct {
	exchange.Base

	client *bitmexapi.RestClient
}

func New(credentials exchange.Credentials) *Exchange {
	return &Exchange{
		Base:   exchange.NewBase(types.ExchangeBitmex),
		client: bitmexapi.NewRestClient(bitmexapi.ProductionEndpoint).Auth(credentials.Key, credentials.Secret),
	}
}

func (e *Exchange) LoadMarkets(ctx context.Context) error {
	log.Info("querying active instruments...")

	instruments, err := e.client.ActiveInstruments(ctx)
	if err != nil {
		return err
	}

	var markets []types.Market
	for _, instrument := range instruments {
		// leading-dot symbols are indices, not tradable instruments
		if strings.HasPrefix(instrument.Symbol, ".") {
			continue
		}

		markets = append(markets, toGlobalMarket(instrument))
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

	entries, err := e.client.OrderBookL2(ctx, symbol, depth)
	if err != nil {
		return nil, err
	}

	asks, bids := toGlobalOrderbookSides(entries)
	return &types.Orderbook{
		ExchangeName: e.Name(),
		MarketString: marketString,
		Time:         time.Now(),
		Asks:         asks.Truncate(depth),
		Bids:         bids.Truncate(depth),
	}, nil
}

// QueryBalances reports the bitcoin wallet only; BitMEX margins everything
// in XBt.
func (e *Exchange) QueryBalances(ctx context.Context, _ string) (types.BalanceMap, error) {
	margin, err := e.client.UserMargin(ctx, "XBt")
	if err != nil {
		return nil, err
	}

	return types.BalanceMap{
		"btc": {
			Currency:  "btc",
			Total:     margin.MarginBalance / satoshisPerBTC,
			Available: margin.AvailableMargin / satoshisPerBTC,
		},
	}, nil
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

	req := bitmexapi.PlaceOrderRequest{
		Symbol:   symbol,
		Side:     toLocalSide(order.Side),
		OrderQty: volume,
	}

	switch order.Type {
	case types.OrderTypeLimit:
		req.OrdType = "Limit"
		req.Price = price
	default:
		req.OrdType = "Market"
	}

	response, err := e.client.PlaceOrder(ctx, req)
	if err != nil {
		return nil, exchange.WrapOrderError(err, e.Name(), order)
	}

	createdAt := time.Now()
	if t, err := time.Parse(time.RFC3339, response.Timestamp); err == nil {
		createdAt = t
	}

	return &types.OrderResult{
		OrderID:      response.OrderID,
		MarketString: order.MarketString,
		Price:        price,
		Volume:       volume,
		CreatedAt:    createdAt,
	}, nil
}

// CancelOrder ignores the market string; the order id alone identifies a
// BitMEX order.
func (e *Exchange) CancelOrder(ctx context.Context, _ string, orderID string) (types.CancelResult, error) {
	if _, err := e.client.CancelOrder(ctx, orderID); err != nil {
		return types.CancelResult{}, err
	}

	return types.CancelResult{Success: true}, nil
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

	positions, err := e.client.Positions(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range positions {
		if p.Symbol == symbol {
			return toGlobalPosition(p), nil
		}
	}

	return nil, errors.Errorf("bitmex: no position entry for market %s", marketString)
}

func (e *Exchange) QueryLeverage(ctx context.Context, marketString string) (float64, error) {
	position, err := e.QueryPosition(ctx, marketString)
	if err != nil {
		return 0, err
	}
	return position.Leverage, nil
}
