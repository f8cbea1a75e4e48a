package driver

import (
	"fmt"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/utils"
)

// Config holds the FireAnt source configuration.
type Config struct {
	// Bearer token used on every request
	AccessToken string `json:"access_token" validate:"required"`
	// Global initial window start (YYYY-MM-DD); bookmarks take precedence
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	// Optional User-Agent override
	UserAgent string `json:"user_agent,omitempty"`
	// Per-request timeout in seconds
	RequestTimeout int `json:"request_timeout,omitempty"`
	// Transport-level retries on transient failures
	RetryCount int `json:"retry_count,omitempty"`
}

func (c *Config) Validate() error {
	if err := utils.Validate(c); err != nil {
		return fmt.Errorf("invalid config: %s", err)
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.DefaultTimeoutSecond
	}
	if c.RetryCount <= 0 {
		c.RetryCount = constants.DefaultRetryCount
	}

	return nil
}
