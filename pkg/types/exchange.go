package types

import (
	"fmt"
	"strings"
)

type ExchangeName string

const (
	ExchangeBinance        = ExchangeName("binance")
	ExchangeBinanceFutures = ExchangeName("binancefutures")
	ExchangeBitmex         = ExchangeName("bitmex")
)

var SupportedExchanges = []ExchangeName{ExchangeBinance, ExchangeBinanceFutures, ExchangeBitmex}

func (n ExchangeName) String() string {
	return string(n)
}

func ValidExchangeName(a string) (ExchangeName, error) {
	switch strings.ToLower(a) {
	case "binance", "bn":
		return ExchangeBinance, nil
	case "binancefutures", "binance-futures":
		return ExchangeBinanceFutures, nil
	case "bitmex":
		return ExchangeBitmex, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}
