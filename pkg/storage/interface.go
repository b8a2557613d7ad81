// Package storage defines the persistence interfaces the pipeline relies on.
// Raw provider responses are stored as result files and the aggregated domain
// set is written as plain text and CSV, so that different backends can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

const (
	// DomainsFile is the name of the aggregated plain text domain list.
	DomainsFile = "domains.txt"
	// DomainsCSVFile is the name of the optional CSV rendition of DomainsFile.
	DomainsCSVFile = "domains.csv"
)

// ResultStore persists raw provider responses. Result files are created once
// and never modified afterwards; saving under an existing name replaces the
// previous response for the same query.
type ResultStore interface {
	// SaveResult stores body verbatim under name and returns its location.
	SaveResult(ctx context.Context, name string, body []byte) (string, error)
	// ResultFiles lists the names of every stored result, sorted. A store that
	// does not exist yet has no results.
	ResultFiles(ctx context.Context) ([]string, error)
	// ReadResult returns the content of a stored result.
	ReadResult(ctx context.Context, name string) ([]byte, error)
}

// DomainWriter writes the aggregated domain set. Each call rewrites the output
// from scratch.
type DomainWriter interface {
	// WriteDomains writes one domain per line and returns the file location.
	WriteDomains(ctx context.Context, domains []string) (string, error)
	// WriteDomainsCSV writes a single "domain" column and returns the file location.
	WriteDomainsCSV(ctx context.Context, domains []string) (string, error)
}

// Store is the full output directory handle.
type Store interface {
	ResultStore
	DomainWriter

	// Location describes where the store keeps its files.
	Location() string
}
