package binance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/kumoex/xgate/pkg/exchange/binance/binanceapi"
	"github.com/kumoex/xgate/pkg/util"
)

// MarginResult reports whether a margin mutation was accepted.
type MarginResult struct {
	Success bool `json:"success"`
}

// MarginAsset is the normalized per-currency view of the cross margin
// account. Leverage is borrowed over net, zero when nothing is borrowed.
type MarginAsset struct {
	Borrowed float64 `json:"borrowed"`
	Free     float64 `json:"free"`
	NetAsset float64 `json:"netAsset"`
	Leverage float64 `json:"leverage"`
}

type MarginTransferType = binanceapi.MarginTransferType

const (
	MarginTransferIn  = binanceapi.MarginTransferSpotToMargin
	MarginTransferOut = binanceapi.MarginTransferMarginToSpot
)

func (e *Exchange) MarginTransfer(ctx context.Context, asset string, amount float64, transferType MarginTransferType) (MarginResult, error) {
	response, err := e.sapi.MarginTransfer(ctx, asset, amount, transferType)
	if err != nil {
		return MarginResult{}, errors.Wrapf(err, "margin transfer error: %s %v type=%d", asset, amount, transferType)
	}

	return MarginResult{Success: response.Success()}, nil
}

func (e *Exchange) MarginBorrow(ctx context.Context, asset string, amount float64) (MarginResult, error) {
	response, err := e.sapi.MarginBorrow(ctx, asset, amount)
	if err != nil {
		return MarginResult{}, errors.Wrapf(err, "margin borrow error: %s %v", asset, amount)
	}

	return MarginResult{Success: response.Success()}, nil
}

func (e *Exchange) MarginRepay(ctx context.Context, asset string, amount float64) (MarginResult, error) {
	response, err := e.sapi.MarginRepay(ctx, asset, amount)
	if err != nil {
		return MarginResult{}, errors.Wrapf(err, "margin repay error: %s %v", asset, amount)
	}

	return MarginResult{Success: response.Success()}, nil
}

// MarginAccountDetails queries the cross margin account and keys its assets
// by currency.
func (e *Exchange) MarginAccountDetails(ctx context.Context) (map[string]MarginAsset, error) {
	account, err := e.sapi.MarginAccountDetails(ctx)
	if err != nil {
		return nil, err
	}

	assets := map[string]MarginAsset{}
	for _, userAsset := range account.UserAssets {
		borrowed := util.MustParseFloat(userAsset.Borrowed)
		netAsset := util.MustParseFloat(userAsset.NetAsset)

		leverage := 0.0
		if borrowed != 0 && netAsset != 0 {
			leverage = borrowed / netAsset
		}

		assets[userAsset.Asset] = MarginAsset{
			Borrowed: borrowed,
			Free:     util.MustParseFloat(userAsset.Free),
			NetAsset: netAsset,
			Leverage: leverage,
		}
	}

	return assets, nil
}
