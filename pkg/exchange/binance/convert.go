package binance

import (
	"math"
	"strconv"
	"strings"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"

	"github.com/kumoex/xgate/pkg/types"
	"github.com/kumoex/xgate/pkg/util"
)

// toLocalSymbol converts a canonical pair to binance's native symbol, upper
// case and unseparated: "eth/usdt" -> "ETHUSDT".
func toLocalSymbol(market types.Market) string {
	return strings.ToUpper(market.BaseCurrency + market.QuoteCurrency)
}

func toLocalSide(side types.SideType) binance.SideType {
	if side == types.SideTypeSell {
		return binance.SideTypeSell
	}
	return binance.SideTypeBuy
}

func toGlobalSide(side binance.SideType) types.SideType {
	if side == binance.SideTypeSell {
		return types.SideTypeSell
	}
	return types.SideTypeBuy
}

func toGlobalMarket(symbol binance.Symbol) types.Market {
	market := types.Market{
		BaseCurrency:  strings.ToLower(symbol.BaseAsset),
		QuoteCurrency: strings.ToLower(symbol.QuoteAsset),
		VolumeDigits:  symbol.BaseAssetPrecision,
		PriceUnit:     1 / math.Pow10(symbol.QuotePrecision),
	}

	if f := symbol.MinNotionalFilter(); f != nil {
		market.MinAmount = util.MustParseFloat(f.MinNotional)
	}

	if f := symbol.LotSizeFilter(); f != nil {
		if step := util.MustParseFloat(f.StepSize); step > 0 {
			market.VolumeDigits = digitsFromStep(step)
		}
	}

	if f := symbol.PriceFilter(); f != nil {
		if tick := util.MustParseFloat(f.TickSize); tick > 0 {
			market.PriceUnit = tick
		}
	}

	return market
}

// digitsFromStep converts a step size like 0.001 into its decimal digit
// count, 3.
func digitsFromStep(step float64) int {
	d := -math.Log10(step)
	if d < 0 {
		return 0
	}
	return int(math.Round(d))
}

func formatOrderID(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func toGlobalOrderStatus(order *binance.Order) types.OrderStatus {
	volume := util.MustParseFloat(order.OrigQuantity)
	executed := util.MustParseFloat(order.ExecutedQuantity)

	return types.OrderStatus{
		OrderID:         formatOrderID(order.OrderID),
		Status:          string(order.Status),
		Side:            toGlobalSide(order.Side),
		Price:           util.MustParseFloat(order.Price),
		Volume:          volume,
		RemainingVolume: volume - executed,
	}
}

func toGlobalPriceVolumeSlice(levels []common.PriceLevel) (types.PriceVolumeSlice, error) {
	slice := make(types.PriceVolumeSlice, 0, len(levels))
	for _, level := range levels {
		price, volume, err := level.Parse()
		if err != nil {
			return nil, err
		}
		slice = append(slice, types.PriceVolume{Price: price, Volume: volume})
	}
	return slice, nil
}
