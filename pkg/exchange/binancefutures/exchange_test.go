package binancefutures

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kumoex/xgate/pkg/exchange"
	"github.com/kumoex/xgate/pkg/exchange/binancefutures/fapi"
	"github.com/kumoex/xgate/pkg/types"
)

func newFakeFutures(t *testing.T, handlers map[string]string) *Exchange {
	t.Helper()

	mux := http.NewServeMux()
	for path, body := range handlers {
		response := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, response)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	e := New(exchange.Credentials{Key: "test-key", Secret: "test-secret"})
	e.client = fapi.NewRestClient(server.URL).Auth("test-key", "test-secret")
	return e
}

func TestLoadMarkets(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v1/exchangeInfo": `{
			"symbols": [
				{
					"symbol": "ETHUSDT", "status": "TRADING",
					"baseAsset": "ETH", "quoteAsset": "USDT",
					"pricePrecision": 2, "quantityPrecision": 3,
					"filters": [
						{"filterType": "PRICE_FILTER", "tickSize": "0.01"},
						{"filterType": "LOT_SIZE", "minQty": "0.001", "stepSize": "0.001"}
					]
				},
				{
					"symbol": "OLDUSDT", "status": "SETTLING",
					"baseAsset": "OLD", "quoteAsset": "USDT",
					"pricePrecision": 2, "quantityPrecision": 0,
					"filters": []
				}
			]
		}`,
	})

	err := e.LoadMarkets(context.Background())
	assert.NoError(t, err)
	assert.Len(t, e.Markets(), 1)

	market, err := e.Market("eth/usdt")
	assert.NoError(t, err)
	assert.Equal(t, 0.001, market.MinVolume)
	assert.NotNil(t, market.Leverage)
}

func TestQueryBalances(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v2/balance": `[
			{"asset": "USDT", "balance": "1000.5", "availableBalance": "900", "maxWithdrawAmount": "800.25"},
			{"asset": "BNB", "balance": "2", "availableBalance": "2", "maxWithdrawAmount": "2"}
		]`,
	})

	balances, err := e.QueryBalances(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Equal(t, 1000.5, balances["usdt"].Total)
	assert.Equal(t, 800.25, balances["usdt"].Available)
}

func TestSubmitOrder(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v1/order": `{
			"orderId": 555,
			"symbol": "ETHUSDT",
			"status": "NEW",
			"side": "BUY",
			"price": "1800.1234",
			"origQty": "0.123",
			"updateTime": 1617000000000
		}`,
	})

	e.SetMarkets(types.MarketMap{
		"eth/usdt": {BaseCurrency: "eth", QuoteCurrency: "usdt", VolumeDigits: 3, PriceUnit: 0.01},
	})

	result, err := e.SubmitOrder(context.Background(), types.SubmitOrder{
		Type:         types.OrderTypeLimit,
		MarketString: "eth/usdt",
		Side:         types.SideTypeBuy,
		Price:        1800.12345,
		Volume:       0.123456,
	})
	assert.NoError(t, err)
	assert.Equal(t, "555", result.OrderID)
	assert.Equal(t, 1800.1234, result.Price)
	assert.Equal(t, 0.123, result.Volume)
}

func TestCancelAllOrders(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v1/openOrders": `[
			{"orderId": 1, "symbol": "ETHUSDT", "status": "NEW", "side": "BUY", "price": "1800", "origQty": "1", "executedQty": "0"},
			{"orderId": 2, "symbol": "ETHUSDT", "status": "NEW", "side": "SELL", "price": "1900", "origQty": "1", "executedQty": "0"},
			{"orderId": 3, "symbol": "ETHUSDT", "status": "NEW", "side": "SELL", "price": "2000", "origQty": "1", "executedQty": "0"}
		]`,
		"/fapi/v1/allOpenOrders": `{"code": 200, "msg": "The operation of cancel all open order is done."}`,
	})

	e.SetMarkets(types.MarketMap{
		"eth/usdt": {BaseCurrency: "eth", QuoteCurrency: "usdt"},
	})

	results, err := e.CancelAllOrders(context.Background(), "eth/usdt")
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	for _, result := range results {
		assert.True(t, result.Success)
	}
}

func TestQueryPosition(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v2/positionRisk": `[
			{"symbol": "BTCUSDT", "positionAmt": "0", "entryPrice": "0", "unRealizedProfit": "0", "liquidationPrice": "0", "leverage": "20", "marginType": "cross"},
			{"symbol": "ETHUSDT", "positionAmt": "-1.5", "entryPrice": "1800.5", "unRealizedProfit": "-12.25", "liquidationPrice": "2400.75", "leverage": "10", "marginType": "isolated"}
		]`,
	})

	e.SetMarkets(types.MarketMap{
		"eth/usdt": {BaseCurrency: "eth", QuoteCurrency: "usdt"},
	})

	position, err := e.QueryPosition(context.Background(), "eth/usdt")
	assert.NoError(t, err)
	assert.Equal(t, -1.5, position.BaseSize)
	assert.Equal(t, types.MarginTypeIsolated, position.MarginType)

	leverage, err := e.QueryLeverage(context.Background(), "eth/usdt")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, leverage)
}

func TestQueryPositionUnknownSymbol(t *testing.T) {
	e := newFakeFutures(t, map[string]string{
		"/fapi/v2/positionRisk": `[]`,
	})

	e.SetMarkets(types.MarketMap{
		"eth/usdt": {BaseCurrency: "eth", QuoteCurrency: "usdt"},
	})

	_, err := e.QueryPosition(context.Background(), "eth/usdt")
	assert.Error(t, err)
}
