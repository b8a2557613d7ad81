// Package domain contains the core types of the reverse-WHOIS pipeline: the
// owner identity resolved from WHOIS and the query targets derived from it.
// They are free of infrastructure concerns so they can be shared across packages.
package domain
