package binanceapi

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
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	// ProductionEndpoint is the official Binance REST endpoint.
	ProductionEndpoint = "https://api.binance.com"

	UserAgent = "xgate/1.0"

	// Binance rejects slow signed requests via recvWindow anyway, keep the
	// client deadline short.
	defaultHTTPTimeout = 3 * time.Second
)

// Sign returns the lowercase hex HMAC-SHA256 signature of the encoded query
// string. It is pure: same payload and secret always produce the same
// signature.
func Sign(payload, secret string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}
	return hex.EncodeToString(sig.Sum(nil))
}

// Response wraps the standard http.Response with a pre-read body.
type Response struct {
	*http.Response

	Body []byte
}

func newResponse(r *http.Response) (*Response, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	err = r.Body.Close()
	return &Response{Response: r, Body: body}, err
}

func (r *Response) String() string {
	return string(r.Body)
}

func (r *Response) DecodeJSON(o interface{}) error {
	return json.Unmarshal(r.Body, o)
}

// APIError is the error document binance returns on a non-2xx response.
type APIError struct {
	StatusCode int

	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance api error: status=%d code=%d msg=%s", e.StatusCode, e.Code, e.Message)
}

// RestClient performs signed REST calls against endpoints not covered by the
// transport library, the sapi margin routes in particular.
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
		// 1200 request weight per minute, stay well below it
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// Auth sets the api key and secret used by signed requests.
func (c *RestClient) Auth(key, secret string) *RestClient {
	c.apiKey = key
	c.apiSecret = secret
	return c
}

// NewSignedRequest serializes params to a query string, appends the HMAC
// signature and the X-MBX-APIKEY header. The timestamp parameter must
// already be present in params.
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

// SendRequest sends the request and decodes error documents into APIError.
func (c *RestClient) SendRequest(req *http.Request) (*Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	response, err := newResponse(resp)
	if err != nil {
		return response, err
	}

	if response.StatusCode >= 400 {
		apiErr := APIError{StatusCode: response.StatusCode}
		if err := response.DecodeJSON(&apiErr); err != nil {
			return response, errors.Wrapf(err, "unexpected binance error response: %s", response.String())
		}
		return response, &apiErr
	}

	return response, nil
}

func (c *RestClient) SendSignedRequest(ctx context.Context, method, refPath string, params url.Values) (*Response, error) {
	req, err := c.NewSignedRequest(ctx, method, refPath, params)
	if err != nil {
		return nil, err
	}

	return c.SendRequest(req)
}
