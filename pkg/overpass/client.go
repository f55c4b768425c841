package overpass

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/cenkalti/backoff/v4"
	"github.com/mirinda123/MetroDrifter/pkg/config"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoEndpoints     = errors.New("no Overpass endpoints configured")
	ErrNonJSONResponse = errors.New("server returned non-JSON (XML/HTML), try again later")
)

// StatusError is returned when an endpoint answers with a non 2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: Overpass %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client sends queries to a list of Overpass endpoints, falling through to the next
// endpoint whenever one fails
type Client struct {
	Endpoints []string
	Timeout   time.Duration
	UserAgent string

	RetriesPerEndpoint uint64
	RetryInterval      time.Duration

	HTTPClient *http.Client
}

func NewClient(overpassConfig config.OverpassConfig) *Client {
	return &Client{
		Endpoints:          overpassConfig.Endpoints,
		Timeout:            overpassConfig.Timeout,
		UserAgent:          overpassConfig.UserAgent,
		RetriesPerEndpoint: overpassConfig.RetriesPerEndpoint,
		RetryInterval:      overpassConfig.RetryInterval,
		HTTPClient:         &http.Client{},
	}
}

// Query runs the query against each endpoint in order and returns the first well formed
// JSON answer. When every endpoint fails the error of the last one is returned.
func (c *Client) Query(ctx context.Context, query string) (*Response, error) {
	if len(c.Endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	var lastErr error
	for _, endpoint := range c.Endpoints {
		response, err := c.queryWithRetry(ctx, endpoint, query)
		if err == nil {
			return response, nil
		}

		lastErr = err
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("Overpass endpoint failed")

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

func (c *Client) queryWithRetry(ctx context.Context, endpoint string, query string) (*Response, error) {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.RetryInterval

	var response *Response
	operation := func() error {
		var err error
		response, err = c.queryEndpoint(ctx, endpoint, query)

		// A rejected query will be rejected again
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
			return backoff.Permanent(err)
		}

		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(retryBackoff, c.RetriesPerEndpoint), ctx))
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (c *Client) queryEndpoint(ctx context.Context, endpoint string, query string) (*Response, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	body := url.Values{"data": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.UserAgent)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       util.TrimString(string(data), 200),
		}
	}

	if bytes.HasPrefix(bytes.TrimLeftFunc(data, unicode.IsSpace), []byte("<")) {
		return nil, fmt.Errorf("%s: %w: %s", endpoint, ErrNonJSONResponse, util.TrimString(string(data), 150))
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", endpoint, err)
	}

	return &response, nil
}
