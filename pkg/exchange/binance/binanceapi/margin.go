package binanceapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MarginTransferType selects the transfer direction between the spot and
// the cross margin account.
type MarginTransferType int

const (
	MarginTransferSpotToMargin MarginTransferType = 1
	MarginTransferMarginToSpot MarginTransferType = 2
)

// TransactionResponse is the common response of the margin mutation routes.
// A missing tranId means the call was not accepted.
type TransactionResponse struct {
	TranID int64 `json:"tranId"`
}

func (r *TransactionResponse) Success() bool {
	return r.TranID > 0
}

type MarginUserAsset struct {
	Asset    string `json:"asset"`
	Borrowed string `json:"borrowed"`
	Free     string `json:"free"`
	Interest string `json:"interest"`
	Locked   string `json:"locked"`
	NetAsset string `json:"netAsset"`
}

type MarginAccount struct {
	MarginLevel     string            `json:"marginLevel"`
	TotalAssetOfBTC string            `json:"totalAssetOfBtc"`
	UserAssets      []MarginUserAsset `json:"userAssets"`
}

func marginParams(asset string, amount float64) url.Values {
	params := url.Values{}
	params.Set("asset", strings.ToUpper(asset))
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	return params
}

func (c *RestClient) MarginTransfer(ctx context.Context, asset string, amount float64, transferType MarginTransferType) (*TransactionResponse, error) {
	params := marginParams(asset, amount)
	params.Set("type", strconv.Itoa(int(transferType)))

	response, err := c.SendSignedRequest(ctx, "POST", "/sapi/v1/margin/transfer", params)
	if err != nil {
		return nil, err
	}

	var result TransactionResponse
	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RestClient) MarginBorrow(ctx context.Context, asset string, amount float64) (*TransactionResponse, error) {
	response, err := c.SendSignedRequest(ctx, "POST", "/sapi/v1/margin/loan", marginParams(asset, amount))
	if err != nil {
		return nil, err
	}

	var result TransactionResponse
	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RestClient) MarginRepay(ctx context.Context, asset string, amount float64) (*TransactionResponse, error) {
	response, err := c.SendSignedRequest(ctx, "POST", "/sapi/v1/margin/repay", marginParams(asset, amount))
	if err != nil {
		return nil, err
	}

	var result TransactionResponse
	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RestClient) MarginAccountDetails(ctx context.Context) (*MarginAccount, error) {
	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	response, err := c.SendSignedRequest(ctx, "GET", "/sapi/v1/margin/account", params)
	if err != nil {
		return nil, err
	}

	var account MarginAccount
	if err := response.DecodeJSON(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
