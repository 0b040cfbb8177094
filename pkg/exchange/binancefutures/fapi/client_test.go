package fapi

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	payload := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"

	assert.Equal(t, "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71", Sign(payload, secret))
}

func TestNewSignedRequestAddsTimestamp(t *testing.T) {
	client := NewRestClient(ProductionEndpoint).Auth("test-key", "test-secret")

	params := url.Values{}
	params.Add("symbol", "ETHUSDT")

	req, err := client.NewSignedRequest(context.Background(), "GET", "/fapi/v1/openOrders", params)
	assert.NoError(t, err)

	assert.Equal(t, "test-key", req.Header.Get("X-MBX-APIKEY"))
	assert.Equal(t, "fapi.binance.com", req.URL.Host)
	assert.Contains(t, req.URL.RawQuery, "timestamp=")
	assert.Contains(t, req.URL.RawQuery, "&signature=")
}

func TestNewPublicRequestIsUnsigned(t *testing.T) {
	client := NewRestClient(ProductionEndpoint)

	params := url.Values{}
	params.Add("symbol", "BTCUSDT")
	params.Add("limit", "5")

	req, err := client.NewPublicRequest(context.Background(), "GET", "/fapi/v1/depth", params)
	assert.NoError(t, err)

	assert.Empty(t, req.Header.Get("X-MBX-APIKEY"))
	assert.False(t, strings.Contains(req.URL.RawQuery, "signature="))
}
