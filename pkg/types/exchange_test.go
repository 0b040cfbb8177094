package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidExchangeName(t *testing.T) {
	var tests = []struct {
		input    string
		expected ExchangeName
		err      bool
	}{
		{input: "binance", expected: ExchangeBinance},
		{input: "BINANCE", expected: ExchangeBinance},
		{input: "bn", expected: ExchangeBinance},
		{input: "binancefutures", expected: ExchangeBinanceFutures},
		{input: "binance-futures", expected: ExchangeBinanceFutures},
		{input: "bitmex", expected: ExchangeBitmex},
		{input: "kraken", err: true},
	}

	for _, test := range tests {
		name, err := ValidExchangeName(test.input)
		if test.err {
			assert.Error(t, err, "input %q", test.input)
			continue
		}

		assert.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.expected, name, "input %q", test.input)
	}
}

func TestParseMarginType(t *testing.T) {
	mt, err := ParseMarginType("cross")
	assert.NoError(t, err)
	assert.Equal(t, MarginTypeCross, mt)

	// binance futures reports "crossed"
	mt, err = ParseMarginType("crossed")
	assert.NoError(t, err)
	assert.Equal(t, MarginTypeCross, mt)

	mt, err = ParseMarginType("ISOLATED")
	assert.NoError(t, err)
	assert.Equal(t, MarginTypeIsolated, mt)

	_, err = ParseMarginType("partial")
	assert.Error(t, err)
}
