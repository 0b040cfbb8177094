package bitmex

import (
	"math"
	"sort"
	"strings"

	"github.com/kumoex/xgate/pkg/exchange/bitmex/bitmexapi"
	"github.com/kumoex/xgate/pkg/types"
)

// toGlobalCurrencies extracts the canonical pair from a native instrument.
// Dated contract symbols like XBTM20 carry no separator and no plain quote
// field, so the root is sliced off the first three characters. BitMEX
// tickers bitcoin as XBT; canonically it is btc.
func toGlobalCurrencies(instrument bitmexapi.Instrument) (base, quote string) {
	if strings.Contains(instrument.Symbol, "20") {
		s := strings.ToLower(instrument.Symbol)
		base, quote = s[:3], s[3:]
	} else {
		base = strings.ToLower(instrument.Underlying)
		quote = strings.ToLower(instrument.QuoteCurrency)
	}

	if base == "xbt" {
		base = "btc"
	}
	return base, quote
}

// toLocalSymbol converts a canonical pair back to the native instrument
// symbol, restoring the XBT alias.
func toLocalSymbol(market types.Market) string {
	base := market.BaseCurrency
	if base == "btc" {
		base = "xbt"
	}
	return strings.ToUpper(base + market.QuoteCurrency)
}

func toGlobalMarket(instrument bitmexapi.Instrument) types.Market {
	base, quote := toGlobalCurrencies(instrument)

	volumeDigits := 0
	if instrument.LotSize > 0 && instrument.LotSize < 1 {
		volumeDigits = int(math.Round(-math.Log10(instrument.LotSize)))
	}

	return types.Market{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		MinAmount:     instrument.LotSize,
		VolumeDigits:  volumeDigits,
		PriceUnit:     instrument.TickSize,
	}
}

func toLocalSide(side types.SideType) string {
	if side == types.SideTypeSell {
		return "Sell"
	}
	return "Buy"
}

func toGlobalSide(side string) types.SideType {
	if strings.EqualFold(side, "Sell") {
		return types.SideTypeSell
	}
	return types.SideTypeBuy
}

func toGlobalOrderStatus(order bitmexapi.Order) types.OrderStatus {
	return types.OrderStatus{
		OrderID:         order.OrderID,
		Status:          order.OrdStatus,
		Side:            toGlobalSide(order.Side),
		Price:           order.Price,
		Volume:          order.OrderQty,
		RemainingVolume: order.LeavesQty,
	}
}

func toGlobalPosition(p bitmexapi.Position) *types.Position {
	marginType := types.MarginTypeIsolated
	if p.CrossMargin {
		marginType = types.MarginTypeCross
	}

	return &types.Position{
		Symbol:           p.Symbol,
		BaseSize:         p.CurrentQty,
		UnrealizedPnL:    p.UnrealisedPnl,
		EntryPrice:       p.AvgEntryPrice,
		MarginType:       marginType,
		Leverage:         p.Leverage,
		LiquidationPrice: p.LiquidationPrice,
	}
}

// toGlobalOrderbookSides splits the merged L2 book into asks ascending and
// bids descending.
func toGlobalOrderbookSides(entries []bitmexapi.OrderBookEntry) (asks, bids types.PriceVolumeSlice) {
	for _, entry := range entries {
		pv := types.PriceVolume{Price: entry.Price, Volume: entry.Size}
		if strings.EqualFold(entry.Side, "Sell") {
			asks = append(asks, pv)
		} else {
			bids = append(bids, pv)
		}
	}

	sort.Slice(asks, func(i, j int) bool { return asks[i].Price < asks[j].Price })
	sort.Slice(bids, func(i, j int) bool { return bids[i].Price > bids[j].Price })
	return asks, bids
}
