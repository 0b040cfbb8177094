package binance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kumoex/xgate/pkg/types"
)

const feeMarketString = "bnb/usdt"

// ReplenishEvent reports one outcome of the fee-currency replenishment
// hook: the top-up buy, the follow-up cancel, or a skip.
type ReplenishEvent struct {
	MarketString string
	Reason       string
	OrderID      string
	Price        float64
	Volume       float64
	Err          error
}

// ReplenishObserver receives replenishment outcomes. The hook never
// escalates cancel failures through it; the top-up may already have filled.
type ReplenishObserver func(event ReplenishEvent)

func logObserver(event ReplenishEvent) {
	entry := log.WithFields(map[string]interface{}{
		"market":  event.MarketString,
		"reason":  event.Reason,
		"orderID": event.OrderID,
		"price":   event.Price,
		"volume":  event.Volume,
	})

	if event.Err != nil {
		entry.WithError(event.Err).Warn("bnb replenishment")
		return
	}

	entry.Info("bnb replenishment")
}

func (e *Exchange) notifyReplenish(event ReplenishEvent) {
	observer := e.replenishObserver
	if observer == nil {
		observer = logObserver
	}
	observer(event)
}

// replenishBNB tops the BNB balance up to the configured target before an
// order, so trading fees keep their BNB discount. Balance and the bnb/usdt
// book are fetched concurrently; when the balance has fallen to half the
// target or below and enough USDT is available, the shortfall is bought at
// the best ask with a limit order which is cancelled right away to avoid
// resting exposure.
func (e *Exchange) replenishBNB(ctx context.Context) error {
	var balances types.BalanceMap
	var book *types.Orderbook

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		balances, err = e.QueryBalances(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		book, err = e.QueryOrderbook(gctx, feeMarketString, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	bnb := balances["bnb"].Total
	if bnb > e.requiredBNB/2 {
		return nil
	}

	bestAsk, ok := book.BestAsk()
	if !ok {
		e.notifyReplenish(ReplenishEvent{MarketString: feeMarketString, Reason: "empty ask side"})
		return nil
	}

	shortfall := e.requiredBNB - bnb
	if balances["usdt"].Total <= shortfall*bestAsk.Price {
		e.notifyReplenish(ReplenishEvent{
			MarketString: feeMarketString,
			Reason:       "insufficient usdt balance",
			Price:        bestAsk.Price,
			Volume:       shortfall,
		})
		return nil
	}

	result, err := e.submitOrder(ctx, types.SubmitOrder{
		Type:         types.OrderTypeLimit,
		MarketString: feeMarketString,
		Side:         types.SideTypeBuy,
		Price:        bestAsk.Price,
		Volume:       shortfall,
	})
	if err != nil {
		return err
	}

	e.notifyReplenish(ReplenishEvent{
		MarketString: feeMarketString,
		Reason:       "top-up submitted",
		OrderID:      result.OrderID,
		Price:        result.Price,
		Volume:       result.Volume,
	})

	// The top-up may fill before the cancel lands; a cancel failure is an
	// outcome, not an error.
	if _, err := e.CancelOrder(ctx, feeMarketString, result.OrderID); err != nil {
		e.notifyReplenish(ReplenishEvent{
			MarketString: feeMarketString,
			Reason:       "top-up cancel failed",
			OrderID:      result.OrderID,
			Err:          err,
		})
	}

	return nil
}
