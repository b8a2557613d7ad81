package identity_test

import (
	"context"
	"errors"
	"revwhois/internal/identity"
	"revwhois/pkg/serrors"
	"testing"

	"github.com/likexian/whois"
	"github.com/stretchr/testify/require"
)

const icannRecord = `Domain Name: EXAMPLE.COM
Registry Domain ID: 2336799_DOMAIN_COM-VRSN
Registrar WHOIS Server: whois.registrar.test
Registrar URL: http://www.registrar.test
Updated Date: 2024-08-14T07:01:34Z
Creation Date: 1995-08-14T04:00:00Z
Registry Expiry Date: 2030-08-13T04:00:00Z
Registrar: Registrar Test, Inc.
Registrar IANA ID: 376
Registrar Abuse Contact Email: abuse@registrar.test
Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
Registrant Name: Alice Smith
Registrant Organization: Acme Corp
Registrant Email: alice@example.com
Admin Email: admin@example.com
Tech Email: alice@example.com
Name Server: A.IANA-SERVERS.NET
Name Server: B.IANA-SERVERS.NET
DNSSEC: signedDelegation
`

func TestExtractEmails(t *testing.T) {
	text := "contact: Bob@Co.io, bob@co.io\nabuse@registrar.test; bob@co.io\nnot-an-email @ nothing"

	got := identity.ExtractEmails(text)
	require.Equal(t, []string{"Bob@Co.io", "abuse@registrar.test", "bob@co.io"}, got)
	require.Equal(t, got, identity.ExtractEmails(text), "extraction is idempotent")

	require.Nil(t, identity.ExtractEmails("no addresses here"))
}

func TestGenericName(t *testing.T) {
	require.Equal(t, "Bob Jones", identity.GenericName("domain: co.io\nname:   Bob Jones  \nemail: bob@co.io"))
	require.Equal(t, "", identity.GenericName("Registrant Name: Alice"))
	require.Equal(t, "", identity.GenericName("name:\n"))
}

func TestParseIdentity_registrant(t *testing.T) {
	id, err := identity.ParseIdentity("example.com", icannRecord)
	require.NoError(t, err)
	require.Equal(t, "example.com", id.Domain)
	require.Equal(t, "Alice Smith", id.Name)
	require.Equal(t, "Acme Corp", id.Organization)
	require.Equal(t, []string{"abuse@registrar.test", "admin@example.com", "alice@example.com"}, id.Emails)
}

func TestParseIdentity_genericNameFallback(t *testing.T) {
	raw := "% registry output\n\nname: Bob Jones\ne-mail: bob@co.io\n"

	id, err := identity.ParseIdentity("co.io", raw)
	require.NoError(t, err)
	require.Equal(t, "Bob Jones", id.Name)
	require.Equal(t, []string{"bob@co.io"}, id.Emails)
}

func TestParseIdentity_empty(t *testing.T) {
	_, err := identity.ParseIdentity("example.com", "  \n")
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestParseIdentity_notFound(t *testing.T) {
	_, err := identity.ParseIdentity("nope-nope.com", `No match for "NOPE-NOPE.COM".`)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistrableDomain(t *testing.T) {
	require.Equal(t, "example.co.uk", identity.RegistrableDomain("www.example.co.uk"))
	require.Equal(t, "example.com", identity.RegistrableDomain("example.com"))
	require.Equal(t, "com", identity.RegistrableDomain("com"))
}

func TestWhoisResolver_Resolve(t *testing.T) {
	var asked string
	r := identity.New(identity.Options{Fetch: func(_ context.Context, name string) (string, error) {
		asked = name

		return icannRecord, nil
	}})

	id, err := r.Resolve(context.Background(), "www.example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", asked)
	require.Equal(t, "Alice Smith", id.Name)
	require.True(t, id.HasOwner())
}

func TestWhoisResolver_Resolve_errors(t *testing.T) {
	cases := []struct {
		err  error
		kind serrors.Kind
	}{
		{err: errors.New("dial tcp: connection refused"), kind: serrors.ErrUnavailable},
		{err: whois.ErrWhoisServerNotFound, kind: serrors.ErrNotFound},
		{err: context.DeadlineExceeded, kind: serrors.ErrTimeout},
	}
	for _, tc := range cases {
		r := identity.New(identity.Options{Fetch: func(context.Context, string) (string, error) {
			return "", tc.err
		}})

		_, err := r.Resolve(context.Background(), "example.com")
		require.ErrorIs(t, err, tc.kind)
		require.ErrorIs(t, err, tc.err)
	}
}
