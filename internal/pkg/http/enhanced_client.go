package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/ledger/internal/pkg/circuitbreaker"
	"github.com/piresc/ledger/internal/pkg/logger"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/internal/pkg/retry"
)

// HTTPError is returned for 5xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// EnhancedClient wraps http.Client with retry and per-host circuit breaking
type EnhancedClient struct {
	client   *http.Client
	retrier  *retry.Retrier
	breakers *circuitbreaker.Manager
	logger   *logger.ZapLogger
}

// NewEnhancedClient builds a client whose timeout bounds each attempt
func NewEnhancedClient(l *logger.ZapLogger, timeout time.Duration, retryCfg retry.Config, breakerCfg circuitbreaker.Config) *EnhancedClient {
	return &EnhancedClient{
		client:   &http.Client{Timeout: timeout},
		retrier:  retry.New(retryCfg, l),
		breakers: circuitbreaker.NewManager(breakerCfg, l),
		logger:   l,
	}
}

// Do sends the request built by newReq. newReq is called once per attempt
// so that request bodies can be replayed.
func (c *EnhancedClient) Do(ctx context.Context, host string, newReq func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if host == "" {
		host = "unknown"
	}

	var resp *http.Response
	err := c.breakers.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := newReq(ctx)
			if err != nil {
				return err
			}
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return err
			}
			if r.StatusCode >= http.StatusInternalServerError {
				io.Copy(io.Discard, r.Body)
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: "server error"}
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PostJSON marshals payload and posts it to url with the given headers
func (c *EnhancedClient) PostJSON(ctx context.Context, url string, payload interface{}, headers map[string]string) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	probe, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	return c.Do(ctx, probe.URL.Host, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}

// BreakerStates exposes breaker states for health reporting
func (c *EnhancedClient) BreakerStates() map[string]string {
	return c.breakers.States()
}
