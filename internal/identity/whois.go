package identity

import (
	"context"
	"errors"
	"revwhois/pkg/domain"
	"revwhois/pkg/logger"
	"revwhois/pkg/serrors"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout bounds a single WHOIS lookup, referrals included.
const DefaultTimeout = 30 * time.Second

// FetchFunc returns the raw WHOIS text for name.
type FetchFunc func(ctx context.Context, name string) (string, error)

// Options configure a WhoisResolver.
type Options struct {
	// Timeout bounds each lookup. Zero means DefaultTimeout.
	Timeout time.Duration
	// Fetch replaces the network lookup, mainly for tests.
	Fetch FetchFunc
}

// WhoisResolver implements Resolver on top of the public WHOIS system.
type WhoisResolver struct {
	fetch FetchFunc
}

// Ensure WhoisResolver conforms to the Resolver interface at compile time.
var _ Resolver = (*WhoisResolver)(nil)

// New constructs a WhoisResolver.
func New(opts Options) *WhoisResolver {
	fetch := opts.Fetch
	if fetch == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		fetch = whoisFetch(whois.NewClient().SetTimeout(timeout))
	}

	return &WhoisResolver{fetch: fetch}
}

func whoisFetch(c *whois.Client) FetchFunc {
	return func(ctx context.Context, name string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err //nolint: wrapcheck
		}

		return c.Whois(name) //nolint: wrapcheck
	}
}

// RegistrableDomain reduces name to its eTLD+1 (www.example.co.uk becomes
// example.co.uk). Names that cannot be reduced are returned unchanged.
func RegistrableDomain(name string) string {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}

	return etld1
}

// Resolve implements Resolver.
func (r *WhoisResolver) Resolve(ctx context.Context, name string) (domain.OwnerIdentity, error) {
	target := RegistrableDomain(name)
	ctx = logger.WithFields(ctx, zap.String("whois_domain", target))
	if target != name {
		logger.Debug(ctx, "querying registrable domain", zap.String("input", name))
	}

	start := time.Now()
	raw, err := r.fetch(ctx, target)
	if err != nil {
		return domain.OwnerIdentity{}, classifyFetch(err, target)
	}
	logger.Debug(ctx, "whois record fetched", zap.Int("bytes", len(raw)), zap.Duration("took", time.Since(start)))

	id, err := ParseIdentity(target, raw)
	if err != nil {
		return domain.OwnerIdentity{}, err
	}
	if !id.HasOwner() {
		logger.Warn(ctx, "whois record exposes no owner name")
	}

	return id, nil
}

func classifyFetch(err error, target string) error {
	switch {
	case errors.Is(err, whois.ErrWhoisServerNotFound):
		return serrors.Wrap(serrors.ErrNotFound, err, "no whois server for %s", target)
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "whois lookup for %s timed out", target)
	default:
		return serrors.Wrap(serrors.ErrUnavailable, err, "whois lookup for %s failed", target)
	}
}

// ParseIdentity builds the owner identity from a raw WHOIS record. The
// structured registrant is preferred; a bare "Name:" line is the fallback.
// Emails are taken from the whole text, not only from the contact sections.
func ParseIdentity(name, raw string) (domain.OwnerIdentity, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.OwnerIdentity{}, serrors.With(serrors.ErrMalformed, "empty whois record for %s", name)
	}

	id := domain.OwnerIdentity{Domain: name, Emails: ExtractEmails(raw)}

	info, err := whoisparser.Parse(raw)
	switch {
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return domain.OwnerIdentity{}, serrors.Wrap(serrors.ErrNotFound, err, "domain %s is not registered", name)
	case errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return domain.OwnerIdentity{}, serrors.Wrap(serrors.ErrRateLimited, err, "whois query limit exceeded for %s", name)
	case err != nil:
		// Unusual registry formats still carry usable text.
		info = whoisparser.WhoisInfo{}
	}

	if info.Registrant != nil {
		id.Name = strings.TrimSpace(info.Registrant.Name)
		id.Organization = strings.TrimSpace(info.Registrant.Organization)
	}
	if id.Name == "" {
		id.Name = GenericName(raw)
	}

	return id, nil
}
