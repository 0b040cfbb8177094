package fapi

import (
	"context"
	"net/url"
	"strconv"
)

const (
	FilterTypeLotSize     = "LOT_SIZE"
	FilterTypePriceFilter = "PRICE_FILTER"
)

type SymbolFilter struct {
	FilterType string `json:"filterType"`

	MinPrice string `json:"minPrice,omitempty"`
	MaxPrice string `json:"maxPrice,omitempty"`
	TickSize string `json:"tickSize,omitempty"`

	MinQty   string `json:"minQty,omitempty"`
	MaxQty   string `json:"maxQty,omitempty"`
	StepSize string `json:"stepSize,omitempty"`
}

type Symbol struct {
	Symbol            string `json:"symbol"`
	Status            string `json:"status"`
	BaseAsset         string `json:"baseAsset"`
	QuoteAsset        string `json:"quoteAsset"`
	PricePrecision    int    `json:"pricePrecision"`
	QuantityPrecision int    `json:"quantityPrecision"`

	Filters []SymbolFilter `json:"filters"`
}

// Filter looks the symbol's filter list up by filter type.
func (s Symbol) Filter(filterType string) *SymbolFilter {
	for i := range s.Filters {
		if s.Filters[i].FilterType == filterType {
			return &s.Filters[i]
		}
	}
	return nil
}

type ExchangeInfo struct {
	Symbols []Symbol `json:"symbols"`
}

func (c *RestClient) ExchangeInfo(ctx context.Context) (*ExchangeInfo, error) {
	var info ExchangeInfo
	if err := c.sendPublicRequest(ctx, "GET", "/fapi/v1/exchangeInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Depth levels arrive as ["price", "qty"] string pairs.
type Depth struct {
	LastUpdateID int64      `json:"lastUpdateId"`
	Asks         [][]string `json:"asks"`
	Bids         [][]string `json:"bids"`
}

func (c *RestClient) Depth(ctx context.Context, symbol string, limit int) (*Depth, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var depth Depth
	if err := c.sendPublicRequest(ctx, "GET", "/fapi/v1/depth", params, &depth); err != nil {
		return nil, err
	}
	return &depth, nil
}

type AccountBalance struct {
	Asset             string `json:"asset"`
	Balance           string `json:"balance"`
	AvailableBalance  string `json:"availableBalance"`
	MaxWithdrawAmount string `json:"maxWithdrawAmount"`
}

func (c *RestClient) Balances(ctx context.Context) ([]AccountBalance, error) {
	var balances []AccountBalance
	if err := c.sendSignedRequest(ctx, "GET", "/fapi/v2/balance", nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

type Order struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`
	Side          string `json:"side"`
	Price         string `json:"price"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	UpdateTime    int64  `json:"updateTime"`
}

type PlaceOrderRequest struct {
	Symbol           string
	Side             string
	Type             string
	Quantity         string
	Price            string
	TimeInForce      string
	NewClientOrderID string
}

func (c *RestClient) PlaceOrder(ctx context.Context, r PlaceOrderRequest) (*Order, error) {
	params := url.Values{}
	params.Set("symbol", r.Symbol)
	params.Set("side", r.Side)
	params.Set("type", r.Type)
	params.Set("quantity", r.Quantity)
	if len(r.Price) > 0 {
		params.Set("price", r.Price)
	}
	if len(r.TimeInForce) > 0 {
		params.Set("timeInForce", r.TimeInForce)
	}
	if len(r.NewClientOrderID) > 0 {
		params.Set("newClientOrderId", r.NewClientOrderID)
	}

	var order Order
	if err := c.sendSignedRequest(ctx, "POST", "/fapi/v1/order", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *RestClient) CancelOrder(ctx context.Context, symbol string, orderID int64) (*Order, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	var order Order
	if err := c.sendSignedRequest(ctx, "DELETE", "/fapi/v1/order", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type CancelAllResponse struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

func (c *RestClient) CancelAllOpenOrders(ctx context.Context, symbol string) (*CancelAllResponse, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var response CancelAllResponse
	if err := c.sendSignedRequest(ctx, "DELETE", "/fapi/v1/allOpenOrders", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *RestClient) OpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var orders []Order
	if err := c.sendSignedRequest(ctx, "GET", "/fapi/v1/openOrders", params, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type PositionRisk struct {
	Symbol           string `json:"symbol"`
	PositionAmt      string `json:"positionAmt"`
	EntryPrice       string `json:"entryPrice"`
	MarkPrice        string `json:"markPrice"`
	UnRealizedProfit string `json:"unRealizedProfit"`
	LiquidationPrice string `json:"liquidationPrice"`
	Leverage         string `json:"leverage"`
	MarginType       string `json:"marginType"`
	IsolatedMargin   string `json:"isolatedMargin"`
}

func (c *RestClient) PositionRisks(ctx context.Context) ([]PositionRisk, error) {
	var positions []PositionRisk
	if err := c.sendSignedRequest(ctx, "GET", "/fapi/v2/positionRisk", nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
