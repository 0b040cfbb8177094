package types

import (
	"fmt"
	"strings"
	"time"
)

// SideType defines the order side.
type SideType string

const (
	SideTypeBuy  = SideType("buy")
	SideTypeSell = SideType("sell")
)

func ParseSideType(s string) (SideType, error) {
	switch strings.ToLower(s) {
	case "buy", "bid":
		return SideTypeBuy, nil
	case "sell", "ask":
		return SideTypeSell, nil
	}

	return "", fmt.Errorf("invalid side type: %s", s)
}

// OrderType defines the order execution type.
type OrderType string

const (
	OrderTypeLimit  = OrderType("limit")
	OrderTypeMarket = OrderType("market")
)

// SubmitOrder is the canonical order placement request. Price and Volume are
// caller-supplied and possibly carry more precision than the target exchange
// accepts; adapters quantize them before submission.
type SubmitOrder struct {
	Type         OrderType `json:"orderType"`
	MarketString string    `json:"marketString"`
	Side         SideType  `json:"side"`
	Price        float64   `json:"price,omitempty"`
	Volume       float64   `json:"volume"`
}

func (o SubmitOrder) String() string {
	return fmt.Sprintf("%s %s %s price=%v volume=%v", o.MarketString, o.Side, o.Type, o.Price, o.Volume)
}

// OrderResult is the accepted order state at submission time. It echoes the
// quantized price and volume actually sent to the exchange, not the live
// fill status.
type OrderResult struct {
	OrderID      string    `json:"orderId"`
	MarketString string    `json:"marketString"`
	Price        float64   `json:"price"`
	Volume       float64   `json:"volume"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// OrderStatus is one entry of an open-order or trade-history listing. Status
// keeps the exchange's free-form status string.
type OrderStatus struct {
	OrderID         string   `json:"orderId"`
	Status          string   `json:"orderStatus"`
	Side            SideType `json:"side"`
	Price           float64  `json:"price"`
	Volume          float64  `json:"volume"`
	RemainingVolume float64  `json:"remainingVolume"`
}

type CancelResult struct {
	Success bool `json:"success"`
}
