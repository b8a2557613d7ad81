package aggregate

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ParseDomains extracts search_result[].domain_name from one reverse-WHOIS
// response. Entries that are not objects or carry no string domain_name are
// ignored; a null or missing search_result yields no domains. Names are
// trimmed and lowercased.
func ParseDomains(b []byte) ([]string, error) {
	if !jx.Valid(b) {
		return nil, errors.New("invalid JSON")
	}

	d := jx.DecodeBytes(b)
	if tt := d.Next(); tt != jx.Object {
		return nil, errors.Errorf("top-level value is %s, want object", tt)
	}

	var out []string
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "search_result" {
			return d.Skip()
		}

		switch tt := d.Next(); tt {
		case jx.Null:
			return d.Null()
		case jx.Array:
		default:
			return errors.Errorf("search_result is %s, want array", tt)
		}

		return d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "domain_name" || d.Next() != jx.String {
					return d.Skip()
				}
				name, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "domain_name")
				}
				if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
					out = append(out, name)
				}

				return nil
			})
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode result")
	}

	return out, nil
}
