package binanceapi

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	// the vector from the binance signed endpoint documentation
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	payload := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"

	assert.Equal(t, "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71", Sign(payload, secret))

	// pure function, repeat calls agree
	assert.Equal(t, Sign(payload, secret), Sign(payload, secret))
}

func TestNewSignedRequest(t *testing.T) {
	client := NewRestClient(ProductionEndpoint).Auth("test-key", "test-secret")

	params := url.Values{}
	params.Add("asset", "BNB")
	params.Add("timestamp", "1499827319559")

	req, err := client.NewSignedRequest(context.Background(), "POST", "/sapi/v1/margin/loan", params)
	assert.NoError(t, err)

	assert.Equal(t, "test-key", req.Header.Get("X-MBX-APIKEY"))
	assert.Equal(t, UserAgent, req.Header.Get("User-Agent"))
	assert.Equal(t, "api.binance.com", req.URL.Host)
	assert.Equal(t, "/sapi/v1/margin/loan", req.URL.Path)

	queryString := params.Encode()
	assert.Equal(t, queryString+"&signature="+Sign(queryString, "test-secret"), req.URL.RawQuery)
}

func TestNewSignedRequestRequiresCredentials(t *testing.T) {
	client := NewRestClient(ProductionEndpoint)

	_, err := client.NewSignedRequest(context.Background(), "GET", "/sapi/v1/margin/account", nil)
	assert.Error(t, err)
}
