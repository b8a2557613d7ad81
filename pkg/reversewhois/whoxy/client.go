// Package whoxy provides a reversewhois.Client implementation backed by the
// Whoxy reverse-WHOIS API.
package whoxy

import (
	"context"
	"fmt"
	"net/url"
	"revwhois/pkg/domain"
	"revwhois/pkg/httpclient"
	"revwhois/pkg/logger"
	"revwhois/pkg/reversewhois"
	"revwhois/pkg/serrors"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Whoxy API endpoint.
const DefaultBaseURL = "https://api.whoxy.com/"

// Envelope is the status header Whoxy puts on its responses.
type Envelope struct {
	// HasStatus is set when the document carried a status field at all.
	HasStatus    bool
	Status       int
	StatusReason string
	TotalResults int
	TotalPages   int
}

// OK reports whether the API accepted the query.
func (e Envelope) OK() bool { return e.Status == 1 }

// Rejected reports whether the API explicitly refused the query. A document
// without a status field is not a rejection.
func (e Envelope) Rejected() bool { return e.HasStatus && !e.OK() }

// ParseEnvelope reads the status fields of a Whoxy response and ignores the
// rest of the document.
func ParseEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	d := jx.DecodeBytes(b)
	if d.Next() != jx.Object {
		return env, errors.New("response is not a JSON object")
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "status":
			env.HasStatus = true
			env.Status, err = decodeInt(d)
		case "status_reason":
			env.StatusReason, err = d.Str()
		case "total_results":
			env.TotalResults, err = decodeInt(d)
		case "total_pages":
			env.TotalPages, err = decodeInt(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	})
	if err != nil {
		return env, errors.Wrap(err, "decode envelope")
	}

	return env, nil
}

// decodeInt accepts both 1 and "1"; Whoxy is not consistent about it.
func decodeInt(d *jx.Decoder) (int, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}

		return strconv.Atoi(s)
	case jx.Null:
		return 0, d.Null()
	default:
		return d.Int()
	}
}

// Options configure a Client.
type Options struct {
	// APIKey is sent as the key query parameter.
	APIKey string
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
}

// Client talks to the Whoxy API and fulfills the reversewhois.Client
// interface.
type Client struct {
	http    *httpclient.Client
	apiKey  string
	baseURL string
}

// URL builds the reverse-WHOIS URL for target. Parameters keep the order the
// API documents them in; values are query-escaped.
func (c *Client) URL(target domain.QueryTarget) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("could not parse base url: %w", err)
	}

	var q strings.Builder
	q.WriteString("key=")
	q.WriteString(url.QueryEscape(c.apiKey))
	q.WriteString("&reverse=whois&mode=micro&")
	q.WriteString(string(target.Kind))
	q.WriteByte('=')
	q.WriteString(url.QueryEscape(target.Value))
	u.RawQuery = q.String()

	return u.String(), nil
}

// Query runs one reverse-WHOIS search and returns the body verbatim whenever
// the HTTP call succeeded. Only a body whose status field is present and not 1
// is turned into an error; anything the envelope decoder cannot read is still
// returned and left for the aggregator to skip.
func (c *Client) Query(ctx context.Context, target domain.QueryTarget) ([]byte, error) {
	if target.Value == "" {
		return nil, serrors.With(serrors.ErrInvalidInput, "empty %s query", target.Kind)
	}
	URL, err := c.URL(target)
	if err != nil {
		return nil, err
	}

	b, err := c.http.Post(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("could not query %s: %w", target, err)
	}

	env, err := ParseEnvelope(b)
	if err != nil {
		logger.Warn(ctx, "response has no readable status envelope",
			zap.Stringer("target", target),
			zap.Error(serrors.Wrap(serrors.ErrMalformed, err, "decode response")))

		return b, nil
	}
	if env.Rejected() {
		reason := env.StatusReason
		if reason == "" {
			reason = "no reason given"
		}

		return nil, serrors.With(serrors.ErrRejected, "query %s rejected: %s", target, reason)
	}
	if env.TotalPages > 1 {
		logger.Info(ctx, "only the first page of results is kept",
			zap.Stringer("target", target),
			zap.Int("total_results", env.TotalResults),
			zap.Int("total_pages", env.TotalPages))
	}

	return b, nil
}

// Ensure Client conforms to the reversewhois.Client interface at compile time.
var _ reversewhois.Client = (*Client)(nil)

// New constructs a Client that sends its requests through httpClient.
func New(httpClient *httpclient.Client, opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return &Client{
		http:    httpClient,
		apiKey:  opts.APIKey,
		baseURL: base,
	}
}
