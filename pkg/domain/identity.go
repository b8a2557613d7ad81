package domain

// OwnerIdentity is the registrant identity extracted from a domain's WHOIS
// record. It is built once per run and not modified afterwards.
type OwnerIdentity struct {
	// Domain is the name that was actually queried (the registrable domain).
	Domain string
	// Name is the registrant name, or empty when the record does not expose one.
	Name string
	// Organization is the registrant organization, shown in the report only.
	Organization string
	// Emails holds every address found in the raw record, deduplicated and sorted.
	Emails []string
}

// HasOwner reports whether a registrant name is known.
func (o OwnerIdentity) HasOwner() bool { return o.Name != "" }
