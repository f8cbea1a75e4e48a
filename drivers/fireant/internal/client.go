package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const defaultBaseURL = "https://api.fireant.vn"

// ErrAuth marks credential failures; they are fatal to the whole run, not
// just the current stream+context unit.
var ErrAuth = errors.New("authentication failed")

// Client is a thin bearer-authenticated GET client. Transient failures
// (network errors, 5xx) are retried with exponential backoff; everything
// else surfaces to the caller unretried.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
	retries   uint64
}

func NewClient(config *Config) *Client {
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(config.RequestTimeout) * time.Second,
		},
		baseURL:   defaultBaseURL,
		token:     config.AccessToken,
		userAgent: config.UserAgent,
		retries:   uint64(config.RetryCount),
	}
}

// Get issues one GET against path with params and returns the body along
// with the resolved request URL (the response mapper re-derives the symbol
// from it).
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, string, error) {
	requestURL := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), strings.TrimLeft(path, "/"))
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, params.Encode())
	}

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to build request: %s", err))
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, fmt.Errorf("request to %s failed: %s", requestURL, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response from %s: %s", requestURL, err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, backoff.Permanent(fmt.Errorf("%w: status %d from %s", ErrAuth, resp.StatusCode, requestURL))
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, fmt.Errorf("status %d from %s", resp.StatusCode, requestURL)
		case resp.StatusCode >= http.StatusMultipleChoices:
			return nil, backoff.Permanent(fmt.Errorf("status %d from %s", resp.StatusCode, requestURL))
		}

		return body, nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	body, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return nil, requestURL, err
	}
	return body, requestURL, nil
}
