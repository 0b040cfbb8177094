package types

import (
	"strings"

	"github.com/pkg/errors"
)

// LeverageRange describes the leverage bounds an exchange allows on a market.
type LeverageRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StepSize float64 `json:"stepSize"`
}

// Market describes one tradable pair on a specific exchange, together with
// the quantization and limit metadata needed to build acceptable orders.
// Market values are never mutated after construction.
type Market struct {
	BaseCurrency  string `json:"baseCurrency"`
	QuoteCurrency string `json:"quoteCurrency"`

	// MinVolume and MinAmount are the exchange's lower bounds for an order.
	// Only one of them needs to be set; the other one is derivable from the
	// current price.
	MinVolume float64 `json:"minVolume,omitempty"`
	MinAmount float64 `json:"minAmount,omitempty"`

	// VolumeDigits is the number of decimal places the exchange accepts on
	// an order quantity.
	VolumeDigits int `json:"volumeDigits,omitempty"`

	// PriceUnit is the tick size, the minimum price increment of the market.
	PriceUnit float64 `json:"priceUnit,omitempty"`

	Leverage *LeverageRange `json:"leverage,omitempty"`
}

// BuildMarketString builds the canonical market identity "{base}/{quote}".
func BuildMarketString(base, quote string) string {
	return base + "/" + quote
}

// ParseMarketString splits a canonical market string into its base and quote
// currencies. Input is case-insensitive, output is always lowercase, so
// ParseMarketString(BuildMarketString(b, q)) round-trips for any lowercase
// pair.
func ParseMarketString(marketString string) (base, quote string) {
	parts := strings.SplitN(strings.ToLower(marketString), "/", 2)
	base = parts[0]
	if len(parts) > 1 {
		quote = parts[1]
	}
	return base, quote
}

func (m Market) String() string {
	return BuildMarketString(m.BaseCurrency, m.QuoteCurrency)
}

// ErrZeroPrice is returned when a bound has to be derived from a price of
// zero, which would otherwise propagate an infinity to the caller.
var ErrZeroPrice = errors.New("cannot derive minimum volume from a zero price")

// MinimumVolume returns the market's minimum order volume, deriving it from
// the minimum amount at the given price when only the amount bound is set.
func (m Market) MinimumVolume(price float64) (float64, error) {
	if m.MinVolume > 0 {
		return m.MinVolume, nil
	}

	if price == 0 {
		return 0, errors.Wrapf(ErrZeroPrice, "market %s", m.String())
	}

	return m.MinAmount / price, nil
}

// MinimumAmount returns the market's minimum order notional, deriving it
// from the minimum volume at the given price when only the volume bound is
// set.
func (m Market) MinimumAmount(price float64) float64 {
	if m.MinAmount > 0 {
		return m.MinAmount
	}

	return m.MinVolume * price
}

type MarketMap map[string]Market

// MarketMapFromSlice keys the given markets by their canonical market
// string. When two markets collide on the same key, the later one wins.
func MarketMapFromSlice(markets []Market) MarketMap {
	m := MarketMap{}
	for _, market := range markets {
		m[market.String()] = market
	}
	return m
}

// Copy returns an independent snapshot of the market map. Mutating the
// returned value never affects the source.
func (m MarketMap) Copy() MarketMap {
	c := make(MarketMap, len(m))
	for k, market := range m {
		if market.Leverage != nil {
			leverage := *market.Leverage
			market.Leverage = &leverage
		}
		c[k] = market
	}
	return c
}
