package domain_test

import (
	"revwhois/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "alice@example.com", out: "alice_example.com"},
		{in: "John Doe", out: "John_Doe"},
		{in: "a/b\\c:d", out: "a_b_c_d"},
		{in: "keep.these_chars-ok", out: "keep.these_chars-ok"},
		{in: "Müller GmbH", out: "M_ller_GmbH"},
		{in: "", out: ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.out, domain.SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestQueryTarget_Filename(t *testing.T) {
	email := domain.QueryTarget{Kind: domain.KindEmail, Value: "bob@co.io"}
	require.Equal(t, "bob_co.io_result.json", email.Filename())

	names := map[string]struct{}{}
	for _, k := range domain.OwnerKinds {
		tgt := domain.QueryTarget{Kind: k, Value: "Jane Roe"}
		names[tgt.Filename()] = struct{}{}
	}
	require.Len(t, names, len(domain.OwnerKinds), "owner searches must not share a result file")
	require.Contains(t, names, "name_Jane_Roe_result.json")
	require.Contains(t, names, "company_Jane_Roe_result.json")
	require.Contains(t, names, "keyword_Jane_Roe_result.json")
}

func TestQueryTarget_String(t *testing.T) {
	require.Equal(t, "email=bob@co.io", domain.QueryTarget{Kind: domain.KindEmail, Value: "bob@co.io"}.String())
}

func TestOwnerIdentity_HasOwner(t *testing.T) {
	require.False(t, domain.OwnerIdentity{}.HasOwner())
	require.True(t, domain.OwnerIdentity{Name: "Jane Roe"}.HasOwner())
}
