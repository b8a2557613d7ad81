package identity

import (
	"regexp"
	"revwhois/internal/validate"
	"sort"
	"strings"
)

var (
	emailRe = regexp.MustCompile(validate.EmailPattern) //nolint: gochecknoglobals
	// genericNameRe matches a bare "Name:" line, as served by registries that
	// do not label contacts.
	genericNameRe = regexp.MustCompile(`(?im)^[ \t]*name:[ \t]*(\S[^\r\n]*)$`) //nolint: gochecknoglobals
)

// ExtractEmails returns every email address found anywhere in text,
// deduplicated and sorted. Unrelated addresses (registrar abuse contacts and
// the like) are kept as well.
func ExtractEmails(text string) []string {
	matches := emailRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// GenericName returns the value of the first bare "Name:" line in text, or an
// empty string.
func GenericName(text string) string {
	m := genericNameRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	return strings.TrimSpace(m[1])
}
