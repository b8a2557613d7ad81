package main

import (
	"fmt"
	"revwhois/internal/identity"
	"revwhois/internal/runner"
	"revwhois/pkg/httpclient"
	"revwhois/pkg/reversewhois/whoxy"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// seconds is a duration flag that also accepts a bare integer number of
// seconds, so both --timeout 30 and --timeout 30s work.
type seconds time.Duration

func (s *seconds) String() string { return time.Duration(*s).String() }

func (s *seconds) Set(v string) error {
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		*s = seconds(time.Duration(n) * time.Second)

		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("expected seconds or a duration: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	*s = seconds(d)

	return nil
}

func (s *seconds) Type() string { return "seconds" }

type lookupFlags struct {
	domain        string
	emails        []string
	timeout       seconds
	retries       int
	noOwnerSearch bool
	noEmailSearch bool
}

// httpOptions builds the client options from the configuration and any explicitly
// set flags.
func (f *lookupFlags) httpOptions(cmd *cobra.Command, a *app) httpclient.Options {
	timeout := a.cfg.HTTP.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = time.Duration(f.timeout)
	}
	retries := a.cfg.HTTP.MaxRetries
	if cmd.Flags().Changed("retries") {
		retries = f.retries
	}
	if retries < 0 {
		retries = 0
	}

	policy := httpclient.DefaultPolicy()
	policy.MaxRetries = uint64(retries)
	policy.BackoffBase = a.cfg.HTTP.BackoffBase

	return httpclient.Options{Timeout: timeout, Policy: policy}
}

func lookupCommand(a *app) *cobra.Command {
	return (&lookupFlags{}).command(a)
}

func (f *lookupFlags) command(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revwhois",
		Short: "Finds domains sharing a WHOIS owner through reverse-WHOIS searches",
		Long: "Resolves the WHOIS registrant of a domain, queries the Whoxy reverse-WHOIS API\n" +
			"for the owner name and every contact email, and aggregates all stored responses\n" +
			"into a deduplicated domain list.",
		Example:      "  revwhois -d example.com -e owner@example.com --csv",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rec := a.recorder()
			defer a.flushMetrics(ctx, rec)

			deps := runner.Deps{
				Resolver: identity.New(identity.Options{Timeout: a.cfg.WhoisTimeout}),
				Store:    a.store(),
				Reporter: a.reporter(cmd),
				Metrics:  rec,
			}
			if a.cfg.HasAPIKey() {
				opts := f.httpOptions(cmd, a)
				opts.Metrics = rec
				deps.Client = whoxy.New(httpclient.New(opts), whoxy.Options{
					APIKey:  a.cfg.Whoxy.APIKey,
					BaseURL: a.cfg.Whoxy.BaseURL,
				})
			}

			_, err := runner.New(deps).Run(ctx, runner.Options{
				Domain:       f.domain,
				Emails:       f.emails,
				SearchEmails: !f.noEmailSearch,
				SearchOwner:  !f.noOwnerSearch,
				CSV:          a.csv,
			})

			return err //nolint: wrapcheck
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.domain, "domain", "d", "", "Domain to look up (required)")
	fl.StringArrayVarP(&f.emails, "email", "e", nil, "Additional email to search (repeatable)")
	f.timeout = seconds(httpclient.DefaultTimeout)
	fl.Var(&f.timeout, "timeout", "Per-request HTTP timeout in seconds (or a duration such as 1m)")
	fl.IntVar(&f.retries, "retries", httpclient.DefaultMaxRetries, "HTTP retries after the first attempt")
	fl.BoolVar(&f.noOwnerSearch, "no-owner-search", false, "Skip name, company and keyword searches")
	fl.BoolVar(&f.noEmailSearch, "no-email-search", false, "Skip email searches")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}
