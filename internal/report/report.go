// Package report prints the human-readable run summary. It only writes to
// its output and holds no state besides colours.
package report

import (
	"fmt"
	"io"
	"revwhois/internal/aggregate"
	"revwhois/internal/dispatch"
	"revwhois/internal/validate"
	"revwhois/pkg/domain"
	"strings"

	"github.com/fatih/color"
)

// Reporter writes sections of the report to w.
type Reporter struct {
	w io.Writer

	title *color.Color
	good  *color.Color
	warn  *color.Color
	bad   *color.Color
	faint *color.Color
}

// New returns a Reporter writing to w. With noColor set, no escape sequences
// are emitted regardless of the terminal.
func New(w io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		w:     w,
		title: color.New(color.FgCyan, color.Bold),
		good:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		bad:   color.New(color.FgRed, color.Bold),
		faint: color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{r.title, r.good, r.warn, r.bad, r.faint} {
			c.DisableColor()
		}
	}

	return r
}

func (r *Reporter) section(name string) {
	fmt.Fprintln(r.w)
	r.title.Fprintf(r.w, "== %s ==\n", name)
}

func (r *Reporter) list(items []string) {
	if len(items) == 0 {
		r.faint.Fprintln(r.w, "  (none)")

		return
	}
	for _, it := range items {
		fmt.Fprintf(r.w, "  - %s\n", it)
	}
}

// Identity prints the resolved owner and the WHOIS emails.
func (r *Reporter) Identity(input string, id domain.OwnerIdentity) {
	r.section("WHOIS")
	fmt.Fprintf(r.w, "Domain:       %s\n", input)
	if id.Domain != "" && id.Domain != input {
		fmt.Fprintf(r.w, "Queried as:   %s\n", id.Domain)
	}

	owner := id.Name
	if owner == "" {
		owner = r.warn.Sprint("(unknown)")
	}
	fmt.Fprintf(r.w, "Owner:        %s\n", owner)
	if id.Organization != "" {
		fmt.Fprintf(r.w, "Organization: %s\n", id.Organization)
	}
	fmt.Fprintf(r.w, "Emails (%d):\n", len(id.Emails))
	r.list(id.Emails)
}

// ManualEmails prints each manually supplied email with its verdict.
func (r *Reporter) ManualEmails(checks []validate.EmailCheck) {
	if len(checks) == 0 {
		return
	}
	r.section("Manual emails")
	for _, c := range checks {
		if c.Valid {
			fmt.Fprintf(r.w, "  - %s %s\n", c.Email, r.good.Sprint("[valid]"))
		} else {
			fmt.Fprintf(r.w, "  - %s %s\n", c.Email, r.bad.Sprint("[invalid, skipped]"))
		}
	}
}

// Notice prints a highlighted one-line message, e.g. why queries were skipped.
func (r *Reporter) Notice(msg string) {
	fmt.Fprintln(r.w)
	r.warn.Fprintf(r.w, "! %s\n", msg)
}

// Dispatch prints one line per attempted query and the totals.
func (r *Reporter) Dispatch(sum dispatch.Summary) {
	r.section("Reverse WHOIS")
	if len(sum.Results) == 0 && sum.Pending == 0 {
		r.faint.Fprintln(r.w, "  (no queries)")

		return
	}
	for _, res := range sum.Results {
		if res.OK() {
			fmt.Fprintf(r.w, "  %s %s -> %s\n", r.good.Sprint("ok  "), res.Target, res.Path)
		} else {
			fmt.Fprintf(r.w, "  %s %s: %v\n", r.bad.Sprint("fail"), res.Target, res.Err)
		}
	}
	fmt.Fprintf(r.w, "Queries: %d saved, %d failed", sum.Saved, sum.Failed)
	if sum.Pending > 0 {
		fmt.Fprintf(r.w, ", %d not attempted", sum.Pending)
	}
	fmt.Fprintln(r.w)
}

// Domains prints the aggregated domain list and where it was written.
func (r *Reporter) Domains(res aggregate.Result, outputs ...string) {
	r.section("Domains")
	fmt.Fprintf(r.w, "Result files: %d parsed", len(res.Files))
	if len(res.Skipped) > 0 {
		r.warn.Fprintf(r.w, ", %d skipped", len(res.Skipped))
	}
	fmt.Fprintln(r.w)
	for _, s := range res.Skipped {
		r.warn.Fprintf(r.w, "  skipped %s: %v\n", s.File, s.Err)
	}

	fmt.Fprintf(r.w, "Total domains: %d\n", len(res.Domains))
	width := len(fmt.Sprint(len(res.Domains)))
	for i, d := range res.Domains {
		fmt.Fprintf(r.w, "  %*d. %s\n", width, i+1, d)
	}
	if len(outputs) > 0 {
		fmt.Fprintf(r.w, "Written to: %s\n", strings.Join(outputs, ", "))
	}
}
