// Package dispatch turns an owner identity into reverse-WHOIS queries and
// persists every successful response.
package dispatch

import (
	"context"
	"revwhois/pkg/domain"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	"revwhois/pkg/reversewhois"
	"revwhois/pkg/serrors"
	"revwhois/pkg/storage"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Query outcomes as reported in Result and in metrics.
const (
	OutcomeSaved  = "saved"
	OutcomeFailed = "failed"
)

// Options select which kinds of targets are built.
type Options struct {
	SearchEmails bool
	SearchOwner  bool
}

// Targets builds the ordered list of queries for a run. Emails come first: the
// union of WHOIS and manually supplied addresses, deduplicated and sorted.
// They are followed by one name, company and keyword search for the owner
// name, when it is known.
func Targets(id domain.OwnerIdentity, manual []string, opts Options) []domain.QueryTarget {
	var targets []domain.QueryTarget

	if opts.SearchEmails {
		seen := make(map[string]struct{}, len(id.Emails)+len(manual))
		emails := make([]string, 0, len(id.Emails)+len(manual))
		for _, list := range [][]string{id.Emails, manual} {
			for _, e := range list {
				if _, ok := seen[e]; ok || e == "" {
					continue
				}
				seen[e] = struct{}{}
				emails = append(emails, e)
			}
		}
		sort.Strings(emails)
		for _, e := range emails {
			targets = append(targets, domain.QueryTarget{Kind: domain.KindEmail, Value: e})
		}
	}

	if opts.SearchOwner && id.HasOwner() {
		for _, k := range domain.OwnerKinds {
			targets = append(targets, domain.QueryTarget{Kind: k, Value: id.Name})
		}
	}

	return targets
}

// Result is the outcome of one query.
type Result struct {
	Target domain.QueryTarget
	// Path is where the response was saved; empty on failure.
	Path string
	Err  error
}

// OK reports whether the response was saved.
func (r Result) OK() bool { return r.Err == nil }

// Summary collects the results of a Run in target order.
type Summary struct {
	Results []Result
	Saved   int
	Failed  int
	// Pending counts targets never attempted because the run was cancelled.
	Pending int
}

// Dispatcher issues queries one at a time.
type Dispatcher struct {
	client  reversewhois.Client
	store   storage.ResultStore
	metrics *metrics.Recorder
}

// New constructs a Dispatcher. rec may be nil.
func New(client reversewhois.Client, store storage.ResultStore, rec *metrics.Recorder) *Dispatcher {
	return &Dispatcher{client: client, store: store, metrics: rec}
}

// Run queries every target in order. A failed query is logged and recorded in
// the summary; it never stops the run. Only a cancelled context does.
func (d *Dispatcher) Run(ctx context.Context, targets []domain.QueryTarget) Summary {
	sum := Summary{Results: make([]Result, 0, len(targets))}

	for i, t := range targets {
		if ctx.Err() != nil {
			sum.Pending = len(targets) - i
			logger.Warn(ctx, "dispatch cancelled", zap.Int("pending", sum.Pending))

			break
		}

		res := d.one(ctx, t)
		sum.Results = append(sum.Results, res)
		if res.OK() {
			sum.Saved++
			d.metrics.ObserveQuery(string(t.Kind), OutcomeSaved)
		} else {
			sum.Failed++
			d.metrics.ObserveQuery(string(t.Kind), OutcomeFailed)
		}
	}

	return sum
}

func (d *Dispatcher) one(ctx context.Context, t domain.QueryTarget) Result {
	ctx = logger.WithFields(ctx, zap.Stringer("target", t))
	start := time.Now()

	body, err := d.client.Query(ctx, t)
	if err != nil {
		logger.Warn(ctx, "query failed, skipping", kindField(err), zap.Error(err))

		return Result{Target: t, Err: err}
	}

	p, err := d.store.SaveResult(ctx, t.Filename(), body)
	if err != nil {
		logger.Warn(ctx, "could not save result, skipping", zap.Error(err))

		return Result{Target: t, Err: err}
	}
	logger.Info(ctx, "query saved", zap.String("path", p), zap.Duration("took", time.Since(start)))

	return Result{Target: t, Path: p}
}

func kindField(err error) zap.Field {
	k := serrors.KindOf(err)
	if k == nil {
		return zap.Skip()
	}

	return zap.String("kind", k.Error())
}
