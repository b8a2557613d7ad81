package httpclient

import (
	"net/http"
	"net/url"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries a per-attempt identifier so provider-side logs can be
// correlated with ours.
const RequestIDHeader = "X-Request-Id"

// redactedParams are query parameters whose values never reach the logs.
var redactedParams = []string{"key", "apikey", "api_key", "token"} //nolint: gochecknoglobals

// RedactURL renders u with credential-bearing query parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}

	c := *u
	c.RawQuery = q.Encode()

	return c.String()
}

// instrumentedTransport logs and measures every attempt that goes through it.
type instrumentedTransport struct {
	next    http.RoundTripper
	metrics *metrics.Recorder
}

// NewInstrumentedTransport wraps next so that each round trip gets a request ID,
// a structured log line and, when rec is non-nil, a metrics observation.
func NewInstrumentedTransport(next http.RoundTripper, rec *metrics.Recorder) http.RoundTripper {
	return &instrumentedTransport{next: next, metrics: rec}
}

// RoundTrip implements http.RoundTripper.
func (t *instrumentedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
		r = r.Clone(r.Context())
		r.Header.Set(RequestIDHeader, requestID)
	}
	ctx := logger.WithFields(r.Context(), zap.String("requestID", requestID))

	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	took := time.Since(start)

	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	t.metrics.ObserveRequest(r.Method, code, took)
	if !logger.IsDebug(ctx) {
		return resp, err //nolint: wrapcheck
	}

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("url", RedactURL(r.URL)),
		zap.Int("status_code", code),
		zap.Float64("latency", took.Seconds()),
	}
	if err != nil {
		logger.Debug(ctx, "outbound request failed", append(fields, zap.Error(err))...)

		return nil, err //nolint: wrapcheck
	}
	logger.Debug(ctx, "outbound request", fields...)

	return resp, nil
}
