package bitmexapi

import (
	"context"
	"net/url"
	"strconv"
)

type Instrument struct {
	Symbol         string  `json:"symbol"`
	RootSymbol     string  `json:"rootSymbol"`
	State          string  `json:"state"`
	Underlying     string  `json:"underlying"`
	QuoteCurrency  string  `json:"quoteCurrency"`
	TickSize       float64 `json:"tickSize"`
	LotSize        float64 `json:"lotSize"`
	MaxOrderQty    float64 `json:"maxOrderQty"`
	MaxPrice       float64 `json:"maxPrice"`
	MakerFee       float64 `json:"makerFee"`
	TakerFee       float64 `json:"takerFee"`
	InitMargin     float64 `json:"initMargin"`
	MaintMargin    float64 `json:"maintMargin"`
	ExpiryDatetime string  `json:"expiry"`
}

// ActiveInstruments lists all currently tradable instruments, indices
// included.
func (c *RestClient) ActiveInstruments(ctx context.Context) ([]Instrument, error) {
	var instruments []Instrument
	if err := c.Call(ctx, "GET", "/api/v1/instrument/active", nil, nil, &instruments); err != nil {
		return nil, err
	}
	return instruments, nil
}

type OrderBookEntry struct {
	Symbol string  `json:"symbol"`
	Side   string  `json:"side"`
	Price  float64 `json:"price"`
	Size   float64 `json:"size"`
}

// OrderBookL2 returns the merged level-2 book; asks and bids arrive in a
// single list keyed by side.
func (c *RestClient) OrderBookL2(ctx context.Context, symbol string, depth int) ([]OrderBookEntry, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}

	var entries []OrderBookEntry
	if err := c.Call(ctx, "GET", "/api/v1/orderBook/L2", params, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UserMargin is the XBt-denominated wallet state. Amounts are satoshis.
type UserMargin struct {
	Currency        string  `json:"currency"`
	WalletBalance   float64 `json:"walletBalance"`
	MarginBalance   float64 `json:"marginBalance"`
	AvailableMargin float64 `json:"availableMargin"`
}

func (c *RestClient) UserMargin(ctx context.Context, currency string) (*UserMargin, error) {
	params := url.Values{}
	params.Set("currency", currency)

	var margin UserMargin
	if err := c.Call(ctx, "GET", "/api/v1/user/margin", params, nil, &margin); err != nil {
		return nil, err
	}
	return &margin, nil
}

type Position struct {
	Symbol           string  `json:"symbol"`
	CurrentQty       float64 `json:"currentQty"`
	AvgEntryPrice    float64 `json:"avgEntryPrice"`
	Leverage         float64 `json:"leverage"`
	LiquidationPrice float64 `json:"liquidationPrice"`
	UnrealisedPnl    float64 `json:"unrealisedPnl"`
	CrossMargin      bool    `json:"crossMargin"`
}

func (c *RestClient) Positions(ctx context.Context) ([]Position, error) {
	var positions []Position
	if err := c.Call(ctx, "GET", "/api/v1/position", nil, nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

type Order struct {
	OrderID   string  `json:"orderID"`
	Symbol    string  `json:"symbol"`
	Side      string  `json:"side"`
	OrderQty  float64 `json:"orderQty"`
	Price     float64 `json:"price"`
	OrdType   string  `json:"ordType"`
	OrdStatus string  `json:"ordStatus"`
	LeavesQty float64 `json:"leavesQty"`
	Timestamp string  `json:"timestamp"`
}

type PlaceOrderRequest struct {
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	OrderQty float64 `json:"orderQty"`
	Price    float64 `json:"price,omitempty"`
	OrdType  string  `json:"ordType"`
}

func (c *RestClient) PlaceOrder(ctx context.Context, r PlaceOrderRequest) (*Order, error) {
	var order Order
	if err := c.Call(ctx, "POST", "/api/v1/order", nil, r, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *RestClient) CancelOrder(ctx context.Context, orderID string) ([]Order, error) {
	params := url.Values{}
	params.Set("orderID", orderID)

	var orders []Order
	if err := c.Call(ctx, "DELETE", "/api/v1/order", params, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *RestClient) OpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("filter", `{"open":true}`)

	var orders []Order
	if err := c.Call(ctx, "GET", "/api/v1/order", params, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
