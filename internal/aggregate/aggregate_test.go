package aggregate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"revwhois/internal/aggregate"
	"revwhois/pkg/serrors"
	"revwhois/pkg/storage/fsstore"
	mockstorage "revwhois/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestParseDomains(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  []string
		ok   bool
	}{
		{
			name: "micro mode response",
			in:   `{"status":1,"search_result":[{"num":1,"domain_name":"foo.com"},{"num":2,"domain_name":"bar.com"}]}`,
			out:  []string{"foo.com", "bar.com"},
			ok:   true,
		},
		{
			name: "trimmed and lowercased",
			in:   `{"search_result":[{"domain_name":"  Foo.COM "}]}`,
			out:  []string{"foo.com"},
			ok:   true,
		},
		{
			name: "entries without a usable domain_name are ignored",
			in:   `{"search_result":[{"domain_name":""},{"domain_name":null},{"domain_name":7},{},"x",1,{"domain_name":"a.io"}]}`,
			out:  []string{"a.io"},
			ok:   true,
		},
		{
			name: "missing search_result",
			in:   `{"status":0,"status_reason":"Incorrect API Key"}`,
			ok:   true,
		},
		{
			name: "null search_result",
			in:   `{"search_result":null}`,
			ok:   true,
		},
		{name: "not json", in: `{"search_result":[`, ok: false},
		{name: "empty", in: ``, ok: false},
		{name: "top-level array", in: `[{"domain_name":"foo.com"}]`, ok: false},
		{name: "search_result not an array", in: `{"search_result":{"domain_name":"foo.com"}}`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := aggregate.ParseDomains([]byte(tc.in))
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestAggregator_Collect_scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alice_example_com_result.json",
		`{"search_result":[{"domain_name":"foo.com"},{"domain_name":"bar.com"}]}`)

	res, err := aggregate.New(fsstore.New(dir)).Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"bar.com", "foo.com"}, res.Domains)
	require.Equal(t, []string{"alice_example_com_result.json"}, res.Files)
	require.Empty(t, res.Skipped)
}

func TestAggregator_Collect_growsAndIgnoresMalformed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	agg := aggregate.New(fsstore.New(dir))

	writeFile(t, dir, "a_result.json", `{"search_result":[{"domain_name":"foo.com"},{"domain_name":"bar.com"}]}`)
	before, err := agg.Collect(ctx)
	require.NoError(t, err)

	// malformed file: list unchanged, file reported as skipped
	writeFile(t, dir, "broken_result.json", `{"search_result":[{"domain_name":`)
	res, err := agg.Collect(ctx)
	require.NoError(t, err)
	require.Equal(t, before.Domains, res.Domains)
	require.Len(t, res.Skipped, 1)
	require.Equal(t, "broken_result.json", res.Skipped[0].File)
	require.ErrorIs(t, res.Skipped[0].Err, serrors.ErrMalformed)

	// new domains strictly grow the list
	writeFile(t, dir, "b_result.json", `{"search_result":[{"domain_name":"bar.com"},{"domain_name":"zed.org"}]}`)
	res, err = agg.Collect(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"bar.com", "foo.com", "zed.org"}, res.Domains)

	// non-result files are never scanned
	writeFile(t, dir, "domains.txt", "evil.com\n")
	writeFile(t, dir, "other.json", `{"search_result":[{"domain_name":"evil.com"}]}`)
	res, err = agg.Collect(ctx)
	require.NoError(t, err)
	require.NotContains(t, res.Domains, "evil.com")
}

func TestAggregator_Collect_emptyStore(t *testing.T) {
	res, err := aggregate.New(fsstore.New(filepath.Join(t.TempDir(), "missing"))).Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Domains)
	require.Empty(t, res.Files)
}

func TestAggregator_Collect_orderIndependent(t *testing.T) {
	files := map[string]string{
		"a_result.json": `{"search_result":[{"domain_name":"foo.com"},{"domain_name":"bar.com"}]}`,
		"b_result.json": `{"search_result":[{"domain_name":"bar.com"},{"domain_name":"qux.net"}]}`,
		"c_result.json": `not json`,
		"d_result.json": `{"search_result":[{"domain_name":"Alpha.io"}]}`,
	}
	permutations := [][]string{
		{"a_result.json", "b_result.json", "c_result.json", "d_result.json"},
		{"d_result.json", "c_result.json", "b_result.json", "a_result.json"},
		{"c_result.json", "a_result.json", "d_result.json", "b_result.json"},
	}
	want := []string{"alpha.io", "bar.com", "foo.com", "qux.net"}

	for _, order := range permutations {
		ctrl := gomock.NewController(t)
		store := mockstorage.NewMockResultStore(ctrl)
		store.EXPECT().ResultFiles(gomock.Any()).Return(order, nil)
		for name, content := range files {
			store.EXPECT().ReadResult(gomock.Any(), name).Return([]byte(content), nil)
		}

		res, err := aggregate.New(store).Collect(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, res.Domains, "order %v", order)
		require.Len(t, res.Skipped, 1)
		ctrl.Finish()
	}
}

func TestAggregator_Collect_errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockstorage.NewMockResultStore(ctrl)
	store.EXPECT().ResultFiles(gomock.Any()).Return(nil, errors.New("permission denied"))

	_, err := aggregate.New(store).Collect(context.Background())
	require.Error(t, err)

	store.EXPECT().ResultFiles(gomock.Any()).Return([]string{"x_result.json", "y_result.json"}, nil)
	store.EXPECT().ReadResult(gomock.Any(), "x_result.json").Return(nil, errors.New("gone"))
	store.EXPECT().ReadResult(gomock.Any(), "y_result.json").
		Return([]byte(`{"search_result":[{"domain_name":"y.com"}]}`), nil)

	res, err := aggregate.New(store).Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"y.com"}, res.Domains)
	require.Len(t, res.Skipped, 1)
}
