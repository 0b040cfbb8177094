package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseMarketString(t *testing.T) {
	var tests = []struct {
		input string
		base  string
		quote string
	}{
		{input: "btc/usdt", base: "btc", quote: "usdt"},
		{input: "ETH/BTC", base: "eth", quote: "btc"},
		{input: "bnb", base: "bnb", quote: ""},
		{input: "", base: "", quote: ""},
	}

	for _, test := range tests {
		base, quote := ParseMarketString(test.input)
		assert.Equal(t, test.base, base, "base of %q", test.input)
		assert.Equal(t, test.quote, quote, "quote of %q", test.input)
	}
}

func TestBuildMarketStringRoundTrip(t *testing.T) {
	s := BuildMarketString("eth", "usdt")
	assert.Equal(t, "eth/usdt", s)

	base, quote := ParseMarketString(s)
	assert.Equal(t, "eth", base)
	assert.Equal(t, "usdt", quote)
}

func TestMarketMinimumVolume(t *testing.T) {
	t.Run("direct bound", func(t *testing.T) {
		market := Market{BaseCurrency: "btc", QuoteCurrency: "usdt", MinVolume: 0.001}
		v, err := market.MinimumVolume(50000)
		assert.NoError(t, err)
		assert.Equal(t, 0.001, v)
	})

	t.Run("derived from amount", func(t *testing.T) {
		market := Market{BaseCurrency: "eth", QuoteCurrency: "usdt", MinAmount: 10}
		v, err := market.MinimumVolume(1800)
		assert.NoError(t, err)
		assert.InDelta(t, 10.0/1800.0, v, 1e-12)
	})

	t.Run("zero price", func(t *testing.T) {
		market := Market{BaseCurrency: "eth", QuoteCurrency: "usdt", MinAmount: 10}
		_, err := market.MinimumVolume(0)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrZeroPrice))
	})
}

func TestMarketMinimumAmount(t *testing.T) {
	market := Market{BaseCurrency: "btc", QuoteCurrency: "usdt", MinAmount: 10}
	assert.Equal(t, 10.0, market.MinimumAmount(50000))

	market = Market{BaseCurrency: "btc", QuoteCurrency: "usdt", MinVolume: 0.001}
	assert.InDelta(t, 50.0, market.MinimumAmount(50000), 1e-9)
}

func TestMarketMapFromSlice(t *testing.T) {
	markets := []Market{
		{BaseCurrency: "btc", QuoteCurrency: "usdt", MinVolume: 0.001},
		{BaseCurrency: "eth", QuoteCurrency: "usdt", MinVolume: 0.01},
		{BaseCurrency: "btc", QuoteCurrency: "usdt", MinVolume: 0.002},
	}

	m := MarketMapFromSlice(markets)
	assert.Len(t, m, 2)

	// the later duplicate wins
	assert.Equal(t, 0.002, m["btc/usdt"].MinVolume)
}

func TestMarketMapCopy(t *testing.T) {
	m := MarketMap{
		"btc/usd": {
			BaseCurrency:  "btc",
			QuoteCurrency: "usd",
			Leverage:      &LeverageRange{Min: 1, Max: 100, StepSize: 1},
		},
	}

	c := m.Copy()
	c["eth/usd"] = Market{BaseCurrency: "eth", QuoteCurrency: "usd"}
	c["btc/usd"].Leverage.Max = 25

	assert.Len(t, m, 1)
	assert.Equal(t, 100.0, m["btc/usd"].Leverage.Max)
}
