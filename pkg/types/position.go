package types

import (
	"fmt"
	"strings"
)

// MarginType tells whether a derivatives position's collateral is shared
// across the account or isolated to the position.
type MarginType string

const (
	MarginTypeCross    = MarginType("cross")
	MarginTypeIsolated = MarginType("isolated")
)

func ParseMarginType(s string) (MarginType, error) {
	switch strings.ToLower(s) {
	case "cross", "crossed":
		return MarginTypeCross, nil
	case "isolated":
		return MarginTypeIsolated, nil
	}

	return "", fmt.Errorf("invalid margin type: %s", s)
}

// Position is a derivatives position snapshot. Exchanges report most of
// these fields as strings on the wire; adapters coerce them to numbers.
type Position struct {
	Symbol           string     `json:"symbol"`
	BaseSize         float64    `json:"baseSize"`
	UnrealizedPnL    float64    `json:"unrealizedPnl"`
	EntryPrice       float64    `json:"entryPrice"`
	MarginType       MarginType `json:"marginType"`
	Leverage         float64    `json:"leverage"`
	LiquidationPrice float64    `json:"liquidationPrice"`
}
