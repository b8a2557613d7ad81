// Package validate checks the syntactic shape of user input before any
// network activity happens.
package validate

import (
	"regexp"
	"revwhois/pkg/serrors"
	"strings"
)

// EmailPattern matches an email address anywhere in a text. It is shared with
// the WHOIS email extraction so that what is extracted and what is accepted
// from the command line follow the same grammar.
const EmailPattern = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

// maxDomainLength is the maximum length of a textual host name.
const maxDomainLength = 253

var (
	// Labels are 1-63 alphanumeric/hyphen characters that do not start or end
	// with a hyphen; the last label starts with a letter and has at least two
	// characters.
	domainRe = regexp.MustCompile(`^(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z][A-Za-z0-9-]{0,61}[A-Za-z0-9]$`) //nolint: gochecknoglobals,lll
	emailRe  = regexp.MustCompile(`^` + EmailPattern + `$`)                                                                       //nolint: gochecknoglobals
)

// NormalizeDomain trims surrounding whitespace and a trailing root dot and
// lowercases the result. It does not validate.
func NormalizeDomain(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")

	return strings.ToLower(s)
}

// Domain returns an ErrInvalidInput error unless s is a syntactically valid
// host name.
func Domain(s string) error {
	if s == "" {
		return serrors.With(serrors.ErrInvalidInput, "domain is required")
	}
	if len(s) > maxDomainLength {
		return serrors.With(serrors.ErrInvalidInput, "domain %q is longer than %d characters", s, maxDomainLength)
	}
	if !domainRe.MatchString(s) {
		return serrors.With(serrors.ErrInvalidInput, "invalid domain %q", s)
	}

	return nil
}

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// EmailCheck is the verdict for one manually supplied email.
type EmailCheck struct {
	Email string
	Valid bool
}

// ManualEmails checks every entry of in. It returns the accepted addresses in
// input order together with one verdict per entry. Entries are trimmed first.
func ManualEmails(in []string) ([]string, []EmailCheck) {
	var (
		valid  []string
		checks = make([]EmailCheck, 0, len(in))
	)
	for _, e := range in {
		e = strings.TrimSpace(e)
		ok := Email(e)
		checks = append(checks, EmailCheck{Email: e, Valid: ok})
		if ok {
			valid = append(valid, e)
		}
	}

	return valid, checks
}
