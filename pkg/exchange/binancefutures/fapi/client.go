package fapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	// ProductionEndpoint is the official USDT-margined futures endpoint.
	ProductionEndpoint = "https://fapi.binance.com"

	UserAgent = "xgate/1.0"

	defaultHTTPTimeout = 3 * time.Second
)

// Sign returns the lowercase hex HMAC-SHA256 signature of the encoded query
// string. Same inputs always produce the same signature.
func Sign(payload, secret string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	if _, err := sig.Write([]byte(payload)); err != nil {
		return ""
	}
	return hex.EncodeToString(sig.Sum(nil))
}

type APIError struct {
	StatusCode int

	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance futures api error: status=%d code=%d msg=%s", e.StatusCode, e.Code, e.Message)
}

type RestClient struct {
	client *http.Client

	baseURL *url.URL

	apiKey    string
	apiSecret string

	limiter *rate.Limiter
}

func NewRestClient(endpoint string) *RestClient {
	u, err := url.Parse(endpoint)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		baseURL: u,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

func (c *RestClient) Auth(key, secret string) *RestClient {
	c.apiKey = key
	c.apiSecret = secret
	return c
}

// NewPublicRequest builds an unsigned request for the public market data
// routes.
func (c *RestClient) NewPublicRequest(ctx context.Context, method, refPath string, params url.Values) (*http.Request, error) {
	rel, err := url.Parse(refPath)
	if err != nil {
		return nil, err
	}

	u := c.baseURL.ResolveReference(rel)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", UserAgent)
	return req, nil
}

// NewSignedRequest serializes params plus a fresh timestamp to a query
// string, appends the HMAC signature, and attaches the X-MBX-APIKEY header.
func (c *RestClient) NewSignedRequest(ctx context.Context, method, refPath string, params url.Values) (*http.Request, error) {
	if len(c.apiKey) == 0 {
		return nil, errors.New("empty api key")
	}

	if len(c.apiSecret) == 0 {
		return nil, errors.New("empty api secret")
	}

	rel, err := url.Parse(refPath)
	if err != nil {
		return nil, err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	queryString := params.Encode()
	signature := Sign(queryString, c.apiSecret)

	u := c.baseURL.ResolveReference(rel)
	u.RawQuery = queryString + "&signature=" + signature

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", UserAgent)
	req.Header.Add("X-MBX-APIKEY", c.apiKey)
	return req, nil
}

func (c *RestClient) sendRequest(req *http.Request, result interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return errors.Wrapf(err, "unexpected binance futures error response: %s", string(body))
		}
		return &apiErr
	}

	if result == nil {
		return nil
	}

	return json.Unmarshal(body, result)
}

func (c *RestClient) sendPublicRequest(ctx context.Context, method, refPath string, params url.Values, result interface{}) error {
	req, err := c.NewPublicRequest(ctx, method, refPath, params)
	if err != nil {
		return err
	}
	return c.sendRequest(req, result)
}

func (c *RestClient) sendSignedRequest(ctx context.Context, method, refPath string, params url.Values, result interface{}) error {
	req, err := c.NewSignedRequest(ctx, method, refPath, params)
	if err != nil {
		return err
	}
	return c.sendRequest(req, result)
}
