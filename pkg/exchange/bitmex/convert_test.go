package bitmex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kumoex/xgate/pkg/exchange/bitmex/bitmexapi"
	"github.com/kumoex/xgate/pkg/types"
)

func TestToGlobalCurrencies(t *testing.T) {
	var tests = []struct {
		instrument bitmexapi.Instrument
		base       string
		quote      string
	}{
		{
			instrument: bitmexapi.Instrument{Symbol: "XBTUSD", Underlying: "XBT", QuoteCurrency: "USD"},
			base:       "btc",
			quote:      "usd",
		},
		{
			// dated contract, the root is the first three characters
			instrument: bitmexapi.Instrument{Symbol: "XBTM20", Underlying: "XBT", QuoteCurrency: "XBT"},
			base:       "btc",
			quote:      "m20",
		},
		{
			instrument: bitmexapi.Instrument{Symbol: "ETHUSD", Underlying: "ETH", QuoteCurrency: "USD"},
			base:       "eth",
			quote:      "usd",
		},
	}

	for _, test := range tests {
		base, quote := toGlobalCurrencies(test.instrument)
		assert.Equal(t, test.base, base, "symbol %s", test.instrument.Symbol)
		assert.Equal(t, test.quote, quote, "symbol %s", test.instrument.Symbol)
	}
}

func TestToLocalSymbol(t *testing.T) {
	assert.Equal(t, "XBTUSD", toLocalSymbol(types.Market{BaseCurrency: "btc", QuoteCurrency: "usd"}))
	assert.Equal(t, "ETHUSD", toLocalSymbol(types.Market{BaseCurrency: "eth", QuoteCurrency: "usd"}))
}

func TestToGlobalMarket(t *testing.T) {
	instrument := bitmexapi.Instrument{
		Symbol:        "XBTUSD",
		Underlying:    "XBT",
		QuoteCurrency: "USD",
		TickSize:      0.5,
		LotSize:       100,
	}

	market := toGlobalMarket(instrument)
	assert.Equal(t, "btc", market.BaseCurrency)
	assert.Equal(t, "usd", market.QuoteCurrency)
	assert.Equal(t, 100.0, market.MinAmount)
	assert.Equal(t, 0, market.VolumeDigits)
	assert.Equal(t, 0.5, market.PriceUnit)
}

func TestSideConversion(t *testing.T) {
	assert.Equal(t, "Buy", toLocalSide(types.SideTypeBuy))
	assert.Equal(t, "Sell", toLocalSide(types.SideTypeSell))
	assert.Equal(t, types.SideTypeBuy, toGlobalSide("Buy"))
	assert.Equal(t, types.SideTypeSell, toGlobalSide("Sell"))
}

func TestToGlobalOrderStatus(t *testing.T) {
	order := bitmexapi.Order{
		OrderID:   "abc-123",
		OrdStatus: "New",
		Side:      "Sell",
		Price:     50000.5,
		OrderQty:  200,
		LeavesQty: 150,
	}

	status := toGlobalOrderStatus(order)
	assert.Equal(t, "abc-123", status.OrderID)
	assert.Equal(t, "New", status.Status)
	assert.Equal(t, types.SideTypeSell, status.Side)
	assert.Equal(t, 50000.5, status.Price)
	assert.Equal(t, 200.0, status.Volume)
	assert.Equal(t, 150.0, status.RemainingVolume)
}

func TestToGlobalPosition(t *testing.T) {
	p := bitmexapi.Position{
		Symbol:           "XBTUSD",
		CurrentQty:       -100,
		AvgEntryPrice:    49000,
		Leverage:         10,
		LiquidationPrice: 54000,
		UnrealisedPnl:    -1200,
		CrossMargin:      true,
	}

	position := toGlobalPosition(p)
	assert.Equal(t, "XBTUSD", position.Symbol)
	assert.Equal(t, -100.0, position.BaseSize)
	assert.Equal(t, types.MarginTypeCross, position.MarginType)

	p.CrossMargin = false
	assert.Equal(t, types.MarginTypeIsolated, toGlobalPosition(p).MarginType)
}

func TestToGlobalOrderbookSides(t *testing.T) {
	entries := []bitmexapi.OrderBookEntry{
		{Symbol: "XBTUSD", Side: "Sell", Price: 50002, Size: 10},
		{Symbol: "XBTUSD", Side: "Buy", Price: 49999, Size: 30},
		{Symbol: "XBTUSD", Side: "Sell", Price: 50001, Size: 20},
		{Symbol: "XBTUSD", Side: "Buy", Price: 50000, Size: 40},
	}

	asks, bids := toGlobalOrderbookSides(entries)

	// asks ascending, best first
	assert.Equal(t, 50001.0, asks[0].Price)
	assert.Equal(t, 50002.0, asks[1].Price)

	// bids descending, best first
	assert.Equal(t, 50000.0, bids[0].Price)
	assert.Equal(t, 49999.0, bids[1].Price)
}
