package binancefutures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kumoex/xgate/pkg/exchange/binancefutures/fapi"
	"github.com/kumoex/xgate/pkg/types"
)

func TestToLocalConversions(t *testing.T) {
	market := types.Market{BaseCurrency: "eth", QuoteCurrency: "usdt"}
	assert.Equal(t, "ETHUSDT", toLocalSymbol(market))
	assert.Equal(t, "SELL", toLocalSide(types.SideTypeSell))
	assert.Equal(t, "LIMIT", toLocalOrderType(types.OrderTypeLimit))
	assert.Equal(t, "MARKET", toLocalOrderType(types.OrderTypeMarket))
}

func TestToGlobalMarket(t *testing.T) {
	symbol := fapi.Symbol{
		Symbol:            "ETHUSDT",
		Status:            "TRADING",
		BaseAsset:         "ETH",
		QuoteAsset:        "USDT",
		PricePrecision:    2,
		QuantityPrecision: 3,
		Filters: []fapi.SymbolFilter{
			{FilterType: fapi.FilterTypePriceFilter, TickSize: "0.01", MinPrice: "39.86", MaxPrice: "306177"},
			{FilterType: fapi.FilterTypeLotSize, MinQty: "0.001", MaxQty: "10000", StepSize: "0.001"},
		},
	}

	market := toGlobalMarket(symbol)
	assert.Equal(t, "eth", market.BaseCurrency)
	assert.Equal(t, "usdt", market.QuoteCurrency)
	assert.Equal(t, 0.01, market.PriceUnit)
	assert.Equal(t, 0.001, market.MinVolume)
	assert.Equal(t, 3, market.VolumeDigits)

	if assert.NotNil(t, market.Leverage) {
		assert.Equal(t, 1.0, market.Leverage.Min)
		assert.Equal(t, 125.0, market.Leverage.Max)
	}
}

func TestToGlobalMarketWithoutFilters(t *testing.T) {
	symbol := fapi.Symbol{
		Symbol:            "BTCUSDT",
		BaseAsset:         "BTC",
		QuoteAsset:        "USDT",
		PricePrecision:    1,
		QuantityPrecision: 3,
	}

	market := toGlobalMarket(symbol)
	assert.InDelta(t, 0.1, market.PriceUnit, 1e-12)
	assert.Equal(t, 3, market.VolumeDigits)
	assert.Equal(t, 0.0, market.MinVolume)
}

func TestToGlobalOrderStatus(t *testing.T) {
	order := fapi.Order{
		OrderID:     987654,
		Symbol:      "ETHUSDT",
		Status:      "NEW",
		Side:        "sell",
		Price:       "1800.12",
		OrigQty:     "2",
		ExecutedQty: "0.5",
	}

	status := toGlobalOrderStatus(order)
	assert.Equal(t, "987654", status.OrderID)
	assert.Equal(t, "NEW", status.Status)
	assert.Equal(t, types.SideTypeSell, status.Side)
	assert.Equal(t, 1800.12, status.Price)
	assert.Equal(t, 1.5, status.RemainingVolume)
}

func TestToGlobalPosition(t *testing.T) {
	p := fapi.PositionRisk{
		Symbol:           "ETHUSDT",
		PositionAmt:      "-1.5",
		EntryPrice:       "1800.5",
		UnRealizedProfit: "-12.25",
		LiquidationPrice: "2400.75",
		Leverage:         "10",
		MarginType:       "cross",
	}

	position, err := toGlobalPosition(p)
	assert.NoError(t, err)
	assert.Equal(t, "ETHUSDT", position.Symbol)
	assert.Equal(t, -1.5, position.BaseSize)
	assert.Equal(t, -12.25, position.UnrealizedPnL)
	assert.Equal(t, 1800.5, position.EntryPrice)
	assert.Equal(t, types.MarginTypeCross, position.MarginType)
	assert.Equal(t, 10.0, position.Leverage)
	assert.Equal(t, 2400.75, position.LiquidationPrice)
}

func TestToGlobalPositionBadMarginType(t *testing.T) {
	_, err := toGlobalPosition(fapi.PositionRisk{Symbol: "ETHUSDT", MarginType: "weird"})
	assert.Error(t, err)
}

func TestToGlobalPriceVolumeSlice(t *testing.T) {
	levels := [][]string{
		{"1800.10", "3"},
		{"1800.20", "1.5"},
		{"malformed"},
	}

	slice := toGlobalPriceVolumeSlice(levels)
	assert.Len(t, slice, 2)
	assert.Equal(t, 1800.1, slice[0].Price)
	assert.Equal(t, 1.5, slice[1].Volume)
}
