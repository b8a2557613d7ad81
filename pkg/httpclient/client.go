// Package httpclient provides the HTTP client used for every outbound API call:
// a fixed per-attempt timeout plus a bounded retry policy with exponential
// backoff, expressed as an explicit Policy value.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	"revwhois/pkg/serrors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single attempt, including reading the body.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3
	// DefaultBackoffBase is the delay before the first retry; it doubles on each subsequent one.
	DefaultBackoffBase = 500 * time.Millisecond

	// maxErrorBody caps how much of an error response is kept in StatusError.
	maxErrorBody = 512
)

// Policy describes when and how often a request is retried.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint64
	// BackoffBase is the wait before the first retry; each retry doubles it.
	BackoffBase time.Duration
	// RetryableStatuses lists the HTTP status codes that trigger a retry.
	// Transport-level errors are always retried.
	RetryableStatuses []int
}

// DefaultPolicy returns the policy used unless configured otherwise: three
// retries, 0.5s doubling backoff, retrying 429 and the transient 5xx codes.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:  DefaultMaxRetries,
		BackoffBase: DefaultBackoffBase,
		RetryableStatuses: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// Retryable reports whether the status code is in the retryable set.
func (p Policy) Retryable(code int) bool {
	for _, c := range p.RetryableStatuses {
		if c == code {
			return true
		}
	}

	return false
}

// Backoff returns a fresh backoff sequence for one logical request.
func (p Policy) Backoff() retry.Backoff {
	base := p.BackoffBase
	if base <= 0 {
		base = DefaultBackoffBase
	}

	return retry.WithMaxRetries(p.MaxRetries, retry.NewExponential(base))
}

// StatusError is returned when the server answered with a non-2xx status that
// was either not retryable or still failing after the last retry.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Options configure a Client.
type Options struct {
	// Timeout bounds each individual attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// Policy controls retries.
	Policy Policy
	// Transport is the underlying round tripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
	// Metrics, when set, records every attempt.
	Metrics *metrics.Recorder
}

// Client issues requests with retries. It is safe for concurrent use although
// the pipeline only ever uses it sequentially.
type Client struct {
	httpClient *http.Client
	policy     Policy
}

// New constructs a Client from opts. The transport is wrapped so that every
// attempt is logged and measured.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		httpClient: &http.Client{
			Transport: NewInstrumentedTransport(base, opts.Metrics),
			Timeout:   timeout,
		},
		policy: opts.Policy,
	}
}

// Post sends a POST without a body and returns the response body of the first
// successful attempt.
func (c *Client) Post(ctx context.Context, URL string) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, URL, nil)
}

// Do sends the request, retrying transport errors and retryable statuses
// according to the policy. Non-retryable statuses fail immediately. The
// returned error carries an serrors kind describing the final failure.
func (c *Client) Do(ctx context.Context, method, URL string, body []byte) ([]byte, error) {
	var (
		out     []byte
		attempt int
	)

	err := retry.Do(ctx, c.policy.Backoff(), func(ctx context.Context) error {
		attempt++
		b, err := c.attempt(ctx, method, URL, body)
		if err == nil {
			out = b

			return nil
		}

		if ctx.Err() != nil {
			return err
		}

		var se *StatusError
		if errors.As(err, &se) && !c.policy.Retryable(se.StatusCode) {
			return err
		}

		logger.Debug(ctx, "retryable request failure",
			zap.Int("attempt", attempt),
			zap.String("method", method),
			zap.Error(err))

		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, classify(err, attempt)
	}

	return out, nil
}

func (c *Client) attempt(ctx context.Context, method, URL string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(b))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}

		return nil, &StatusError{StatusCode: resp.StatusCode, Body: msg}
	}

	return b, nil
}

// classify attaches the semantic kind of the final failure.
func classify(err error, attempts int) error {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return serrors.Wrap(serrors.KindForStatus(se.StatusCode), err, "request failed after %d attempt(s)", attempts)
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "request failed after %d attempt(s)", attempts)
	default:
		return serrors.Wrap(serrors.ErrUnavailable, err, "request failed after %d attempt(s)", attempts)
	}
}
