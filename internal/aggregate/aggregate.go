// Package aggregate rebuilds the discovered domain set from every stored
// reverse-WHOIS response.
package aggregate

import (
	"context"
	"fmt"
	"revwhois/pkg/logger"
	"revwhois/pkg/serrors"
	"revwhois/pkg/storage"
	"sort"

	"go.uber.org/zap"
)

// Skipped is a result file that could not be used.
type Skipped struct {
	File string
	Err  error
}

// Result is the outcome of a Collect.
type Result struct {
	// Domains is the deduplicated, sorted domain set.
	Domains []string
	// Files lists the result files that contributed, in scan order.
	Files []string
	// Skipped lists unreadable or malformed files.
	Skipped []Skipped
}

// Aggregator scans a result store.
type Aggregator struct {
	store storage.ResultStore
}

// New constructs an Aggregator over store.
func New(store storage.ResultStore) *Aggregator {
	return &Aggregator{store: store}
}

// Collect reads every result currently in the store. The domain set depends
// only on the store contents, not on the order files are listed in. A file
// that cannot be read or parsed is logged and skipped; only failing to list
// the store is an error.
func (a *Aggregator) Collect(ctx context.Context) (Result, error) {
	names, err := a.store.ResultFiles(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("could not list result files: %w", err)
	}

	var (
		res  Result
		seen = make(map[string]struct{})
	)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Result{}, err //nolint: wrapcheck
		}

		domains, err := a.read(ctx, name)
		if err != nil {
			logger.Warn(ctx, "skipping result file", zap.String("file", name), zap.Error(err))
			res.Skipped = append(res.Skipped, Skipped{File: name, Err: err})

			continue
		}
		res.Files = append(res.Files, name)
		for _, d := range domains {
			seen[d] = struct{}{}
		}
		logger.Debug(ctx, "result file parsed", zap.String("file", name), zap.Int("domains", len(domains)))
	}

	res.Domains = make([]string, 0, len(seen))
	for d := range seen {
		res.Domains = append(res.Domains, d)
	}
	sort.Strings(res.Domains)

	return res, nil
}

func (a *Aggregator) read(ctx context.Context, name string) ([]string, error) {
	b, err := a.store.ReadResult(ctx, name)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not read %s", name)
	}
	domains, err := ParseDomains(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformed, err, "could not parse %s", name)
	}

	return domains, nil
}
