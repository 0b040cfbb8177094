package bitmexapi

import (
	"bytes"
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
	// ProductionEndpoint is the official BitMEX REST endpoint.
	ProductionEndpoint = "https://www.bitmex.com"

	UserAgent = "xgate/1.0"

	defaultHTTPTimeout = 3 * time.Second

	// expiresWindow is how far in the future a request's api-expires is
	// stamped.
	expiresWindow = 30 * time.Second
)

// Sign returns the lowercase hex HMAC-SHA256 over verb + path + expires +
// body, BitMEX's signing contract. Pure and deterministic.
func Sign(secret, verb, path string, expires int64, body string) string {
	sig := hmac.New(sha256.New, []byte(secret))
	if _, err := io.WriteString(sig, verb+path+strconv.FormatInt(expires, 10)+body); err != nil {
		return ""
	}
	return hex.EncodeToString(sig.Sum(nil))
}

type APIError struct {
	StatusCode int

	Err struct {
		Message string `json:"message"`
		Name    string `json:"name"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitmex api error: status=%d name=%s msg=%s", e.StatusCode, e.Err.Name, e.Err.Message)
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
		// 60 requests per minute for authenticated accounts
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

func (c *RestClient) Auth(key, secret string) *RestClient {
	c.apiKey = key
	c.apiSecret = secret
	return c
}

// NewRequest builds a request, signed when credentials are present. The
// signed path includes the encoded query string, as BitMEX requires.
func (c *RestClient) NewRequest(ctx context.Context, method, refPath string, params url.Values, payload interface{}) (*http.Request, error) {
	rel, err := url.Parse(refPath)
	if err != nil {
		return nil, err
	}

	u := c.baseURL.ResolveReference(rel)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", UserAgent)
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	if len(c.apiKey) > 0 {
		if len(c.apiSecret) == 0 {
			return nil, errors.New("empty api secret")
		}

		signaturePath := u.Path
		if len(u.RawQuery) > 0 {
			signaturePath += "?" + u.RawQuery
		}

		expires := time.Now().Add(expiresWindow).Unix()
		req.Header.Add("api-key", c.apiKey)
		req.Header.Add("api-expires", strconv.FormatInt(expires, 10))
		req.Header.Add("api-signature", Sign(c.apiSecret, method, signaturePath, expires, string(body)))
	}

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
			return errors.Wrapf(err, "unexpected bitmex error response: %s", string(body))
		}
		return &apiErr
	}

	if result == nil {
		return nil
	}

	return json.Unmarshal(body, result)
}

func (c *RestClient) Call(ctx context.Context, method, refPath string, params url.Values, payload, result interface{}) error {
	req, err := c.NewRequest(ctx, method, refPath, params, payload)
	if err != nil {
		return err
	}
	return c.sendRequest(req, result)
}
