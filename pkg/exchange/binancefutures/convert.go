package binancefutures

import (
	"math"
	"strings"

	"github.com/kumoex/xgate/pkg/exchange/binancefutures/fapi"
	"github.com/kumoex/xgate/pkg/types"
	"github.com/kumoex/xgate/pkg/util"
)

func toLocalSymbol(market types.Market) string {
	return strings.ToUpper(market.BaseCurrency + market.QuoteCurrency)
}

func toLocalSide(side types.SideType) string {
	return strings.ToUpper(string(side))
}

func toLocalOrderType(orderType types.OrderType) string {
	return strings.ToUpper(string(orderType))
}

func toGlobalMarket(symbol fapi.Symbol) types.Market {
	market := types.Market{
		BaseCurrency:  strings.ToLower(symbol.BaseAsset),
		QuoteCurrency: strings.ToLower(symbol.QuoteAsset),
		VolumeDigits:  symbol.QuantityPrecision,
		PriceUnit:     1 / math.Pow10(symbol.PricePrecision),
		Leverage:      &types.LeverageRange{Min: 1, Max: 125, StepSize: 1},
	}

	if f := symbol.Filter(fapi.FilterTypePriceFilter); f != nil {
		if tick := util.MustParseFloat(f.TickSize); tick > 0 {
			market.PriceUnit = tick
		}
	}

	if f := symbol.Filter(fapi.FilterTypeLotSize); f != nil {
		market.MinVolume = util.MustParseFloat(f.MinQty)
		if step := util.MustParseFloat(f.StepSize); step > 0 {
			if d := -math.Log10(step); d > 0 {
				market.VolumeDigits = int(math.Round(d))
			} else {
				market.VolumeDigits = 0
			}
		}
	}

	return market
}

func toGlobalOrderStatus(order fapi.Order) types.OrderStatus {
	volume := util.MustParseFloat(order.OrigQty)
	executed := util.MustParseFloat(order.ExecutedQty)

	side := types.SideTypeBuy
	if strings.EqualFold(order.Side, "SELL") {
		side = types.SideTypeSell
	}

	return types.OrderStatus{
		OrderID:         formatOrderID(order.OrderID),
		Status:          order.Status,
		Side:            side,
		Price:           util.MustParseFloat(order.Price),
		Volume:          volume,
		RemainingVolume: volume - executed,
	}
}

// toGlobalPosition coerces the string-typed numeric fields of a position
// risk entry into the canonical position.
func toGlobalPosition(p fapi.PositionRisk) (*types.Position, error) {
	marginType, err := types.ParseMarginType(p.MarginType)
	if err != nil {
		return nil, err
	}

	return &types.Position{
		Symbol:           p.Symbol,
		BaseSize:         util.MustParseFloat(p.PositionAmt),
		UnrealizedPnL:    util.MustParseFloat(p.UnRealizedProfit),
		EntryPrice:       util.MustParseFloat(p.EntryPrice),
		MarginType:       marginType,
		Leverage:         util.MustParseFloat(p.Leverage),
		LiquidationPrice: util.MustParseFloat(p.LiquidationPrice),
	}, nil
}

func toGlobalPriceVolumeSlice(levels [][]string) types.PriceVolumeSlice {
	slice := make(types.PriceVolumeSlice, 0, len(levels))
	for _, level := range levels {
		if len(level) < 2 {
			continue
		}
		slice = append(slice, types.PriceVolume{
			Price:  util.MustParseFloat(level[0]),
			Volume: util.MustParseFloat(level[1]),
		})
	}
	return slice
}
