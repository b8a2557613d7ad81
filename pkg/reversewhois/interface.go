// Package reversewhois defines the capability used to search a reverse-WHOIS
// provider for domains registered under a given identity attribute.
package reversewhois

import (
	"context"
	"revwhois/pkg/domain"
)

// Client is the abstraction for reverse-WHOIS providers.
//
//go:generate mockgen -package mockreversewhois -source=interface.go -destination=mock/mockreversewhois.go *
type Client interface {
	// Query runs a single search for target and returns the provider's raw
	// response body. The body is returned verbatim so it can be persisted
	// as-is; an error means the query produced no usable result.
	Query(ctx context.Context, target domain.QueryTarget) ([]byte, error)
}
