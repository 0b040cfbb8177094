package binance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/sirupsen/logrus"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/binance/binanceapi"
	"github.com/kumoex/xgate/pkg/types"
	"github.com/kumoex/xgate/pkg/util"
)

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binance",
})

const binanceTimeFormat = "2006-01-02 15:04:05"

func init() {
	_ = exchange.Exchange(&Exchange{})
}

type Exchange struct {
	exchange.Base

	client *binance.Client
	sapi   *binanceapi.RestClient

	// requiredBNB is the fee-currency balance target the replenishment hook
	// keeps before each order. Zero disables the hook.
	requiredBNB float64

	replenishObserver ReplenishObserver
}

type Option func(*Exchange)

// WithRequiredBNB enables the pre-trade BNB replenishment hook with the
// given target quantity.
func WithRequiredBNB(quantity float64) Option {
	return func(e *Exchange) {
		e.requiredBNB = quantity
	}
}

// WithReplenishObserver injects the observer the replenishment hook reports
// its outcomes to, replacing the default log-only observer.
func WithReplenishObserver(observer ReplenishObserver) Option {
	return func(e *Exchange) {
		e.replenishObserver = observer
	}
}

func New(credentials exchange.Credentials, options ...Option) *Exchange {
	e := &Exchange{
		Base:   exchange.NewBase(types.ExchangeBinance),
		client: binance.NewClient(credentials.Key, credentials.Secret),
		sapi:   binanceapi.NewRestClient(binanceapi.ProductionEndpoint).Auth(credentials.Key, credentials.Secret),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

func (e *Exchange) LoadMarkets(ctx context.Context) error {
	log.Info("querying market info...")

	exchangeInfo, err := e.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return err
	}

	var markets []types.Market
	for _, symbol := range exchangeInfo.Symbols {
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

	response, err := e.client.NewDepthService().Symbol(symbol).Limit(depth).Do(ctx)
	if err != nil {
		return nil, err
	}

	asks, err := toGlobalPriceVolumeSlice(response.Asks)
	if err != nil {
		return nil, err
	}

	bids, err := toGlobalPriceVolumeSlice(response.Bids)
	if err != nil {
		return nil, err
	}

	return &types.Orderbook{
		ExchangeName: e.Name(),
		MarketString: marketString,
		Time:         time.Now(),
		Asks:         asks.Truncate(depth),
		Bids:         bids.Truncate(depth),
	}, nil
}

func (e *Exchange) QueryBalances(ctx context.Context, marketString string) (types.BalanceMap, error) {
	account, err := e.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return nil, err
	}

	var scope map[string]struct{}
	if len(marketString) > 0 {
		base, quote := types.ParseMarketString(marketString)
		scope = map[string]struct{}{base: {}, quote: {}}
	}

	balances := types.BalanceMap{}
	for _, b := range account.Balances {
		currency := strings.ToLower(b.Asset)
		if scope != nil {
			if _, ok := scope[currency]; !ok {
				continue
			}
		}

		free := util.MustParseFloat(b.Free)
		locked := util.MustParseFloat(b.Locked)
		balances[currency] = types.Balance{
			Currency:  currency,
			Total:     free + locked,
			Available: free,
		}
	}

	return balances, nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderResult, error) {
	if e.requiredBNB > 0 {
		if err := e.replenishBNB(ctx); err != nil {
			return nil, err
		}
	}

	return e.submitOrder(ctx, order)
}

// submitOrder places the order without running the replenishment hook; the
// hook's own top-up order goes through here as well.
func (e *Exchange) submitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderResult, error) {
	symbol, err := e.localSymbol(order.MarketString)
	if err != nil {
		return nil, err
	}

	price, volume, err := e.QuantizeOrder(order)
	if err != nil {
		return nil, err
	}

	req := e.client.NewCreateOrderService().
		Symbol(symbol).
		Side(toLocalSide(order.Side)).
		Quantity(strconv.FormatFloat(volume, 'f', -1, 64))

	switch order.Type {
	case types.OrderTypeLimit:
		req = req.Type(binance.OrderTypeLimit).
			TimeInForce(binance.TimeInForceTypeGTC).
			Price(strconv.FormatFloat(price, 'f', -1, 64))
	default:
		req = req.Type(binance.OrderTypeMarket)
	}

	response, err := req.Do(ctx)
	if err != nil {
		return nil, exchange.WrapOrderError(err, e.Name(), order)
	}

	return &types.OrderResult{
		OrderID:      formatOrderID(response.OrderID),
		MarketString: order.MarketString,
		Price:        price,
		Volume:       volume,
		CreatedAt:    time.Unix(0, response.TransactTime*int64(time.Millisecond)),
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

	if _, err := e.client.NewCancelOrderService().Symbol(symbol).OrderID(id).Do(ctx); err != nil {
		return types.CancelResult{}, err
	}

	return types.CancelResult{Success: true}, nil
}

func (e *Exchange) CancelAllOrders(ctx context.Context, marketString string) ([]types.CancelResult, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	openOrders, err := e.QueryOpenOrders(ctx, marketString)
	if err != nil {
		return nil, err
	}

	results := make([]types.CancelResult, len(openOrders))
	if _, err := e.client.NewCancelOpenOrdersService().Symbol(symbol).Do(ctx); err != nil {
		return nil, err
	}

	for i := range results {
		results[i] = types.CancelResult{Success: true}
	}
	return results, nil
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, marketString string) ([]types.OrderStatus, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	openOrders, err := e.client.NewListOpenOrdersService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]types.OrderStatus, 0, len(openOrders))
	for _, order := range openOrders {
		statuses = append(statuses, toGlobalOrderStatus(order))
	}
	return statuses, nil
}

func (e *Exchange) QueryTradeHistory(ctx context.Context, marketString string, since time.Time, orderID string) ([]types.OrderStatus, error) {
	symbol, err := e.localSymbol(marketString)
	if err != nil {
		return nil, err
	}

	req := e.client.NewListTradesService().Symbol(symbol)
	if !since.IsZero() {
		req = req.StartTime(since.UnixMilli())
	}

	trades, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]types.OrderStatus, 0, len(trades))
	for _, trade := range trades {
		if len(orderID) > 0 && formatOrderID(trade.OrderID) != orderID {
			continue
		}

		side := types.SideTypeSell
		if trade.IsBuyer {
			side = types.SideTypeBuy
		}

		statuses = append(statuses, types.OrderStatus{
			OrderID:         formatOrderID(trade.OrderID),
			Status:          "filled",
			Side:            side,
			Price:           util.MustParseFloat(trade.Price),
			Volume:          util.MustParseFloat(trade.Quantity),
			RemainingVolume: 0,
		})
	}

	return statuses, nil
}

func (e *Exchange) Withdraw(ctx context.Context, params types.WithdrawParams) (*types.TransactionResult, error) {
	req := e.client.NewCreateWithdrawService().
		Coin(strings.ToUpper(params.Currency)).
		Address(params.ToAddress.Address).
		Amount(strconv.FormatFloat(params.Amount, 'f', -1, 64))

	if len(params.ToAddress.OptionalAddress) > 0 {
		req = req.AddressTag(params.ToAddress.OptionalAddress)
	}

	response, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	return &types.TransactionResult{
		Currency:    params.Currency,
		FromAddress: types.TransactionAddress{Exchange: e.Name()},
		ToAddress:   params.ToAddress,
		Amount:      params.Amount,
		TxID:        response.ID,
		Time:        time.Now(),
	}, nil
}

func (e *Exchange) QueryDepositHistory(ctx context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error) {
	req := e.client.NewListDepositsService().Coin(strings.ToUpper(currency))
	if !since.IsZero() {
		req = req.StartTime(since.UnixMilli())
	}
	if limit > 0 {
		req = req.Limit(limit)
	}

	deposits, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]types.TransactionResult, 0, len(deposits))
	for _, d := range deposits {
		// 0: pending, 6: credited but cannot withdraw, 1: success
		if d.Status != 1 {
			continue
		}

		results = append(results, types.TransactionResult{
			Currency: currency,
			ToAddress: types.TransactionAddress{
				Currency:        currency,
				Exchange:        e.Name(),
				Address:         d.Address,
				OptionalAddress: d.AddressTag,
			},
			Amount: util.MustParseFloat(d.Amount),
			TxID:   d.TxID,
			Time:   time.Unix(0, d.InsertTime*int64(time.Millisecond)),
		})
	}

	return results, nil
}

func (e *Exchange) QueryWithdrawalHistory(ctx context.Context, currency string, since time.Time, limit int) ([]types.TransactionResult, error) {
	req := e.client.NewListWithdrawsService().Coin(strings.ToUpper(currency))
	if !since.IsZero() {
		req = req.StartTime(since.UnixMilli())
	}
	if limit > 0 {
		req = req.Limit(limit)
	}

	withdraws, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]types.TransactionResult, 0, len(withdraws))
	for _, w := range withdraws {
		// 6 is the terminal "completed" status
		if w.Status != 6 {
			continue
		}

		applyTime, err := time.Parse(binanceTimeFormat, w.ApplyTime)
		if err != nil {
			applyTime = time.Time{}
		}

		results = append(results, types.TransactionResult{
			Currency:    currency,
			FromAddress: types.TransactionAddress{Exchange: e.Name()},
			ToAddress: types.TransactionAddress{
				Currency: currency,
				Address:  w.Address,
			},
			Amount: util.MustParseFloat(w.Amount),
			Fee:    util.MustParseFloat(w.TransactionFee),
			TxID:   w.TxID,
			Time:   applyTime,
		})
	}

	return results, nil
}
