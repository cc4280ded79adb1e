package eld

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fleetflow/internal/ifta"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const dependencyName = "eld"

// RetryConfig controls the bounded exponential backoff around each fetch.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

var retryableStatusCodes = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// StatusError is a non-2xx answer from the vendor API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type mileageResponse struct {
	Records []ifta.MileageInput `json:"records"`
}

// Client fetches mileage from a vendor REST API:
//
//	GET {baseURL}/tenants/{tenant}/mileage?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// with the API key as a bearer token. `to` is exclusive.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      RetryConfig
	log        *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, retry RetryConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		retry:      retry,
		log:        log.Named("eld"),
	}
}

// FetchMileage implements MileageSource. Transport failures and retryable
// statuses are retried; anything still failing is a *ifta.DependencyError.
func (c *Client) FetchMileage(ctx context.Context, tenantID string, from, to time.Time) ([]ifta.MileageInput, error) {
	endpoint := fmt.Sprintf("%s/tenants/%s/mileage?%s", c.baseURL, url.PathEscape(tenantID), url.Values{
		"from": {from.Format("2006-01-02")},
		"to":   {to.Format("2006-01-02")},
	}.Encode())

	var body mileageResponse
	attempt := 0
	operation := func() error {
		attempt++
		err := c.get(ctx, endpoint, &body)
		if err != nil {
			c.log.Warn("mileage fetch failed",
				zap.String("tenant_id", tenantID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retry.InitialInterval
	policy.MaxInterval = c.retry.MaxInterval
	policy.MaxElapsedTime = 0

	var retries uint64
	if c.retry.MaxRetries > 0 {
		retries = uint64(c.retry.MaxRetries)
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx)); err != nil {
		return nil, &ifta.DependencyError{Dependency: dependencyName, Err: err}
	}

	if body.Records == nil {
		body.Records = []ifta.MileageInput{}
	}
	c.log.Debug("mileage fetched", zap.String("tenant_id", tenantID), zap.Int("records", len(body.Records)))
	return body.Records, nil
}

func (c *Client) get(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
		if retryableStatusCodes[resp.StatusCode] {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return backoff.Permanent(fmt.Errorf("decode mileage response: %w", err))
	}
	return nil
}
