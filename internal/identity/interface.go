// Package identity resolves the registrant identity of a domain from its
// WHOIS record.
package identity

import (
	"context"
	"revwhois/pkg/domain"
)

// Resolver looks up the owner of a domain.
//
//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Resolver interface {
	// Resolve returns the registrant name, organization and every email found
	// in the WHOIS record of name. Failures are not retried.
	Resolve(ctx context.Context, name string) (domain.OwnerIdentity, error)
}
