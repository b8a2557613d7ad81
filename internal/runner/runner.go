// Package runner wires the lookup pipeline: validate, resolve, dispatch,
// aggregate and report, strictly in that order.
package runner

import (
	"context"
	"fmt"
	"revwhois/internal/aggregate"
	"revwhois/internal/dispatch"
	"revwhois/internal/identity"
	"revwhois/internal/report"
	"revwhois/internal/validate"
	"revwhois/pkg/domain"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	"revwhois/pkg/reversewhois"
	"revwhois/pkg/storage"

	"go.uber.org/zap"
)

// Options describe one lookup run.
type Options struct {
	// Domain is the domain to look up.
	Domain string
	// Emails are manually supplied addresses to query in addition to WHOIS ones.
	Emails []string
	// SearchEmails enables email queries.
	SearchEmails bool
	// SearchOwner enables name, company and keyword queries for the owner name.
	SearchOwner bool
	// CSV additionally writes the domain list as CSV.
	CSV bool
}

// Deps are the collaborators of a Runner.
type Deps struct {
	Resolver identity.Resolver
	// Client may be nil, in which case no reverse-WHOIS query is issued.
	Client   reversewhois.Client
	Store    storage.Store
	Reporter *report.Reporter
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// Outcome is everything a run produced.
type Outcome struct {
	Identity  domain.OwnerIdentity
	Targets   []domain.QueryTarget
	Dispatch  dispatch.Summary
	Aggregate aggregate.Result
	// Outputs are the written domain list files.
	Outputs []string
}

// Runner executes lookup runs.
type Runner struct {
	deps Deps
}

// New constructs a Runner.
func New(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run performs a full lookup. Only an invalid domain or a failed WHOIS lookup
// stop it; every other failure is logged and leaves a smaller result.
func (r *Runner) Run(ctx context.Context, opts Options) (Outcome, error) {
	ctx, _ = logger.WithRunID(ctx)

	name := validate.NormalizeDomain(opts.Domain)
	if err := validate.Domain(name); err != nil {
		return Outcome{}, err //nolint: wrapcheck
	}
	ctx = logger.WithFields(ctx, zap.String("domain", name))

	manual, checks := validate.ManualEmails(opts.Emails)
	for _, c := range checks {
		if !c.Valid {
			logger.Warn(ctx, "ignoring invalid email", zap.String("email", c.Email))
		}
	}

	logger.Info(ctx, "resolving whois identity")
	id, err := r.deps.Resolver.Resolve(ctx, name)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not resolve identity of %s: %w", name, err)
	}
	r.deps.Reporter.Identity(name, id)
	r.deps.Reporter.ManualEmails(checks)

	out := Outcome{Identity: id}
	if r.deps.Client == nil {
		logger.Warn(ctx, "no API key configured, reverse queries skipped")
		r.deps.Reporter.Notice("API_KEY_WHOXY is not set: reverse WHOIS queries skipped")
	} else {
		out.Targets = dispatch.Targets(id, manual, dispatch.Options{
			SearchEmails: opts.SearchEmails,
			SearchOwner:  opts.SearchOwner,
		})
		logger.Info(ctx, "dispatching reverse queries", zap.Int("targets", len(out.Targets)))
		out.Dispatch = dispatch.New(r.deps.Client, r.deps.Store, r.deps.Metrics).Run(ctx, out.Targets)
		r.deps.Reporter.Dispatch(out.Dispatch)
	}

	res, outputs, err := r.aggregate(ctx, opts.CSV)
	if err != nil {
		return out, err
	}
	out.Aggregate = res
	out.Outputs = outputs

	return out, nil
}

// Aggregate rebuilds the domain lists from the result files already on disk,
// without any network access.
func (r *Runner) Aggregate(ctx context.Context, csv bool) (aggregate.Result, []string, error) {
	ctx, _ = logger.WithRunID(ctx)

	return r.aggregate(ctx, csv)
}

func (r *Runner) aggregate(ctx context.Context, csv bool) (aggregate.Result, []string, error) {
	res, err := aggregate.New(r.deps.Store).Collect(ctx)
	if err != nil {
		return aggregate.Result{}, nil, fmt.Errorf("could not aggregate results: %w", err)
	}
	r.deps.Metrics.SetDomains(len(res.Domains))

	p, err := r.deps.Store.WriteDomains(ctx, res.Domains)
	if err != nil {
		return res, nil, fmt.Errorf("could not write domain list: %w", err)
	}
	outputs := []string{p}
	if csv {
		p, err := r.deps.Store.WriteDomainsCSV(ctx, res.Domains)
		if err != nil {
			return res, outputs, fmt.Errorf("could not write domain csv: %w", err)
		}
		outputs = append(outputs, p)
	}
	logger.Info(ctx, "domain list written",
		zap.Int("domains", len(res.Domains)),
		zap.Int("files", len(res.Files)),
		zap.Int("skipped", len(res.Skipped)))
	r.deps.Reporter.Domains(res, outputs...)

	return res, outputs, nil
}
