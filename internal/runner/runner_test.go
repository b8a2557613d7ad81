package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	mockidentity "revwhois/internal/identity/mock"
	"revwhois/internal/report"
	"revwhois/internal/runner"
	"revwhois/pkg/domain"
	"revwhois/pkg/logger"
	"revwhois/pkg/metrics"
	mockreversewhois "revwhois/pkg/reversewhois/mock"
	"revwhois/pkg/serrors"
	"revwhois/pkg/storage/fsstore"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, false)
	m.Run()
}

type fixture struct {
	dir      string
	out      *bytes.Buffer
	resolver *mockidentity.MockResolver
	client   *mockreversewhois.MockClient
	metrics  *metrics.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &fixture{
		dir:      filepath.Join(t.TempDir(), "results"),
		out:      &bytes.Buffer{},
		resolver: mockidentity.NewMockResolver(ctrl),
		client:   mockreversewhois.NewMockClient(ctrl),
		metrics:  metrics.New(),
	}
}

func (f *fixture) runner(withClient bool) *runner.Runner {
	deps := runner.Deps{
		Resolver: f.resolver,
		Store:    fsstore.New(f.dir),
		Reporter: report.New(f.out, true),
		Metrics:  f.metrics,
	}
	if withClient {
		deps.Client = f.client
	}

	return runner.New(deps)
}

func (f *fixture) read(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.dir, name))
	require.NoError(t, err)

	return string(b)
}

func body(domains ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"status":1,"search_result":[`)
	for i, d := range domains {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"domain_name":"` + d + `"}`)
	}
	buf.WriteString(`]}`)

	return buf.Bytes()
}

func TestRunner_Run_invalidDomainStopsBeforeNetwork(t *testing.T) {
	f := newFixture(t)

	for _, in := range []string{"", "not a domain", "-bad.com", "example"} {
		_, err := f.runner(true).Run(context.Background(), runner.Options{Domain: in, SearchEmails: true, SearchOwner: true})
		require.ErrorIs(t, err, serrors.ErrInvalidInput, in)
	}

	_, err := os.Stat(f.dir)
	require.True(t, os.IsNotExist(err), "nothing is written")
}

func TestRunner_Run_noAPIKey(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "example.com").Return(domain.OwnerIdentity{
		Domain: "example.com",
		Name:   "Alice Smith",
		Emails: []string{"alice@example.com"},
	}, nil)

	out, err := f.runner(false).Run(context.Background(), runner.Options{
		Domain:       "Example.com",
		SearchEmails: true,
		SearchOwner:  true,
	})
	require.NoError(t, err)
	require.Empty(t, out.Targets)
	require.Empty(t, out.Aggregate.Domains)
	require.Equal(t, "", f.read(t, "domains.txt"))
	require.Contains(t, f.out.String(), "Owner:        Alice Smith")
	require.Contains(t, f.out.String(), "alice@example.com")
	require.Contains(t, f.out.String(), "reverse WHOIS queries skipped")
}

func TestRunner_Run_noAPIKeyKeepsExistingResults(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "old_result.json"), body("old.com"), 0o600))
	f.resolver.EXPECT().Resolve(gomock.Any(), "example.com").Return(domain.OwnerIdentity{Domain: "example.com"}, nil)

	out, err := f.runner(false).Run(context.Background(), runner.Options{Domain: "example.com", SearchEmails: true})
	require.NoError(t, err)
	require.Equal(t, []string{"old.com"}, out.Aggregate.Domains)
	require.Equal(t, "old.com\n", f.read(t, "domains.txt"))
}

func TestRunner_Run_manualEmails(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "example.com").Return(domain.OwnerIdentity{Domain: "example.com"}, nil)
	f.client.EXPECT().Query(gomock.Any(), domain.QueryTarget{Kind: domain.KindEmail, Value: "bob@co.io"}).
		Return(body("bob.net"), nil)

	out, err := f.runner(true).Run(context.Background(), runner.Options{
		Domain:       "example.com",
		Emails:       []string{"not-an-email", "bob@co.io"},
		SearchEmails: true,
		SearchOwner:  true,
	})
	require.NoError(t, err)
	require.Equal(t, []domain.QueryTarget{{Kind: domain.KindEmail, Value: "bob@co.io"}}, out.Targets)
	require.Equal(t, []string{"bob.net"}, out.Aggregate.Domains)
	require.FileExists(t, filepath.Join(f.dir, "bob_co.io_result.json"))
	require.Contains(t, f.out.String(), "not-an-email [invalid, skipped]")
}

func TestRunner_Run_full(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "example.com").Return(domain.OwnerIdentity{
		Domain: "example.com",
		Name:   "Alice Smith",
		Emails: []string{"alice@example.com"},
	}, nil)
	gomock.InOrder(
		f.client.EXPECT().Query(gomock.Any(), domain.QueryTarget{Kind: domain.KindEmail, Value: "alice@example.com"}).
			Return(body("foo.com", "bar.com"), nil),
		f.client.EXPECT().Query(gomock.Any(), domain.QueryTarget{Kind: domain.KindName, Value: "Alice Smith"}).
			Return(body("Baz.org"), nil),
		f.client.EXPECT().Query(gomock.Any(), domain.QueryTarget{Kind: domain.KindCompany, Value: "Alice Smith"}).
			Return(nil, serrors.With(serrors.ErrUnavailable, "down")),
		f.client.EXPECT().Query(gomock.Any(), domain.QueryTarget{Kind: domain.KindKeyword, Value: "Alice Smith"}).
			Return(body("foo.com"), nil),
	)

	out, err := f.runner(true).Run(context.Background(), runner.Options{
		Domain:       "example.com",
		SearchEmails: true,
		SearchOwner:  true,
		CSV:          true,
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Dispatch.Saved)
	require.Equal(t, 1, out.Dispatch.Failed)
	require.Equal(t, []string{"bar.com", "baz.org", "foo.com"}, out.Aggregate.Domains)
	require.Len(t, out.Outputs, 2)
	require.Equal(t, "bar.com\nbaz.org\nfoo.com\n", f.read(t, "domains.txt"))
	require.Equal(t, "domain\nbar.com\nbaz.org\nfoo.com\n", f.read(t, "domains.csv"))
	require.FileExists(t, filepath.Join(f.dir, "alice_example.com_result.json"))
	require.FileExists(t, filepath.Join(f.dir, "name_Alice_Smith_result.json"))
	require.NoFileExists(t, filepath.Join(f.dir, "company_Alice_Smith_result.json"))
	require.FileExists(t, filepath.Join(f.dir, "keyword_Alice_Smith_result.json"))
	require.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(`
# HELP revwhois_discovered_domains Size of the aggregated domain set.
# TYPE revwhois_discovered_domains gauge
revwhois_discovered_domains 3
`), "revwhois_discovered_domains"))
}

func TestRunner_Run_whoisFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "example.com").
		Return(domain.OwnerIdentity{}, serrors.With(serrors.ErrUnavailable, "whois down"))

	_, err := f.runner(true).Run(context.Background(), runner.Options{Domain: "example.com", SearchEmails: true})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.NoFileExists(t, filepath.Join(f.dir, "domains.txt"))
}

func TestRunner_Aggregate_scenario(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "alice_example_com_result.json"),
		[]byte(`{"search_result":[{"domain_name":"foo.com"},{"domain_name":"bar.com"}]}`), 0o600))

	res, outputs, err := f.runner(false).Aggregate(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, []string{"bar.com", "foo.com"}, res.Domains)
	require.Equal(t, []string{filepath.Join(f.dir, "domains.txt")}, outputs)
	require.Equal(t, "bar.com\nfoo.com\n", f.read(t, "domains.txt"))
	require.NoFileExists(t, filepath.Join(f.dir, "domains.csv"))
	require.Contains(t, f.out.String(), "1. bar.com")
	require.Contains(t, f.out.String(), "2. foo.com")
}
