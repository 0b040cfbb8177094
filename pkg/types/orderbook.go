package types

import (
	"time"
)

type PriceVolume struct {
	Price  float64 `json:"p"`
	Volume float64 `json:"v"`
}

type PriceVolumeSlice []PriceVolume

// First returns the top-of-book entry, ok = false on an empty side.
func (s PriceVolumeSlice) First() (PriceVolume, bool) {
	if len(s) == 0 {
		return PriceVolume{}, false
	}
	return s[0], true
}

// Truncate returns at most the first depth entries.
func (s PriceVolumeSlice) Truncate(depth int) PriceVolumeSlice {
	if depth <= 0 || depth >= len(s) {
		return s
	}
	return s[:depth]
}

// Orderbook is a request/response style snapshot of one market's book. Asks
// are sorted ascending, bids descending, both truncated to the requested
// depth.
type Orderbook struct {
	ExchangeName ExchangeName     `json:"exchangeName"`
	MarketString string           `json:"marketString"`
	Time         time.Time        `json:"timestamp"`
	Asks         PriceVolumeSlice `json:"asks"`
	Bids         PriceVolumeSlice `json:"bids"`
}

func (b *Orderbook) BestAsk() (PriceVolume, bool) {
	return b.Asks.First()
}

func (b *Orderbook) BestBid() (PriceVolume, bool) {
	return b.Bids.First()
}
