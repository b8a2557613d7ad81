package domain

import "strings"

// ResultSuffix terminates the name of every persisted reverse-WHOIS response.
const ResultSuffix = "_result.json"

// QueryKind is the search mode of a reverse-WHOIS query. Its value is also the
// query parameter name understood by the provider.
type QueryKind string

const (
	// KindEmail searches domains registered with a contact email.
	KindEmail QueryKind = "email"
	// KindName searches domains by registrant name.
	KindName QueryKind = "name"
	// KindCompany searches domains by registrant company.
	KindCompany QueryKind = "company"
	// KindKeyword searches domains by a free-text keyword.
	KindKeyword QueryKind = "keyword"
)

// OwnerKinds lists the attribute searches issued for a resolved owner name, in
// dispatch order.
var OwnerKinds = []QueryKind{KindName, KindCompany, KindKeyword} //nolint: gochecknoglobals

// QueryTarget is a single reverse-WHOIS search. Each target produces exactly one
// outbound request and at most one result file.
type QueryTarget struct {
	Kind  QueryKind
	Value string
}

// String renders the target as "kind=value" for logs.
func (t QueryTarget) String() string {
	return string(t.Kind) + "=" + t.Value
}

// Filename returns the deterministic result file name for the target. Email
// targets are named after the address; attribute targets are prefixed with the
// kind so that name, company and keyword searches for the same owner do not
// overwrite each other.
func (t QueryTarget) Filename() string {
	base := t.Value
	if t.Kind != KindEmail {
		base = string(t.Kind) + "_" + t.Value
	}

	return SanitizeFilename(base) + ResultSuffix
}

// SanitizeFilename replaces every character outside [A-Za-z0-9._-] with an
// underscore.
func SanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		}

		return '_'
	}, s)
}
