// Package gateway implements the HTTP collaborator that carries
// validated requests to the Cielo e-commerce API and classifies its
// failures into the façade's error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paybr/cielo_facade/internal/bin"
	"github.com/paybr/cielo_facade/internal/creditcard"
	"github.com/paybr/cielo_facade/internal/result"
	"github.com/paybr/cielo_facade/internal/zeroauth"
)

const (
	salesEndpoint    = "/1/sales/"
	zeroAuthEndpoint = "/1/zeroauth/"
	cardBinEndpoint  = "/1/cardBin/%s"

	defaultTimeout = 30 * time.Second
)

// Options configure the Cielo client.
type Options struct {
	// APIURL receives the transactional calls (sales, zero-auth).
	APIURL string
	// QueryAPIURL receives the read-only calls (cardBin).
	QueryAPIURL string
	MerchantId  string
	MerchantKey string
	Timeout     time.Duration
}

// Client talks to the Cielo API. It implements the gateway collaborator
// interfaces of the creditcard, zeroauth and bin packages.
type Client struct {
	http   *http.Client
	opts   Options
	logger *slog.Logger
}

// NewClient builds a Cielo client with the configured credentials.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		http:   &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		logger: logger,
	}
}

// CreateSale posts a charge to the sales endpoint.
func (c *Client) CreateSale(ctx context.Context, payload creditcard.CompletePayload) result.Result[creditcard.SaleResponse] {
	return post[creditcard.SaleResponse](ctx, c, c.opts.APIURL+salesEndpoint, payload)
}

// VerifyCard posts a zero-auth verification.
func (c *Client) VerifyCard(ctx context.Context, payload zeroauth.Payload) result.Result[zeroauth.Response] {
	return post[zeroauth.Response](ctx, c, c.opts.APIURL+zeroAuthEndpoint, payload)
}

// FetchBin reads BIN metadata from the query endpoint.
func (c *Client) FetchBin(ctx context.Context, binValue string) result.Result[bin.Record] {
	return get[bin.Record](ctx, c, c.opts.QueryAPIURL+fmt.Sprintf(cardBinEndpoint, binValue))
}

func post[T any](ctx context.Context, c *Client, url string, payload any) result.Result[T] {
	body, err := json.Marshal(payload)
	if err != nil {
		return result.Fail[T]("An unexpected error occurred while communicating with Cielo API.", result.KindUnknownError, http.StatusInternalServerError)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return result.Fail[T]("An unexpected error occurred while communicating with Cielo API.", result.KindUnknownError, http.StatusInternalServerError)
	}
	return do[T](c, req)
}

func get[T any](ctx context.Context, c *Client, url string) result.Result[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result.Fail[T]("An unexpected error occurred while communicating with Cielo API.", result.KindUnknownError, http.StatusInternalServerError)
	}
	return do[T](c, req)
}

func do[T any](c *Client, req *http.Request) result.Result[T] {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("MerchantId", c.opts.MerchantId)
	req.Header.Set("MerchantKey", c.opts.MerchantKey)
	req.Header.Set("RequestId", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError[T](c, req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, code, retry := result.FromStatus(resp.StatusCode)
		if c.logger != nil {
			c.logger.Warn("gateway returned error status",
				"url", req.URL.Path, "status", resp.StatusCode, "code", string(code))
		}
		return result.Result[T]{
			Success:     false,
			Error:       msg,
			Code:        code,
			StatusCode:  resp.StatusCode,
			ShouldRetry: retry,
		}
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return result.Result[T]{
			Success:     false,
			Error:       "An unexpected error occurred while communicating with Cielo API.",
			Code:        result.KindUnknownError,
			StatusCode:  http.StatusBadGateway,
			ShouldRetry: true,
		}
	}
	return result.OKStatus(data, resp.StatusCode)
}

func classifyTransportError[T any](c *Client, req *http.Request, err error) result.Result[T] {
	if c.logger != nil {
		c.logger.Warn("gateway request failed", "url", req.URL.Path, "error", err)
	}

	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	if timedOut {
		return result.Result[T]{
			Success:     false,
			Error:       "The payment service did not respond in time. Please try again.",
			Code:        result.KindTimeoutError,
			StatusCode:  http.StatusRequestTimeout,
			ShouldRetry: true,
		}
	}

	return result.Result[T]{
		Success:     false,
		Error:       "Could not reach the payment service. Please try again later.",
		Code:        result.KindNetworkError,
		StatusCode:  http.StatusServiceUnavailable,
		ShouldRetry: true,
	}
}
