package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"revwhois/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidInput,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrRateLimited,
		serrors.ErrUnavailable,
		serrors.ErrTimeout,
		serrors.ErrMalformed,
		serrors.ErrRejected,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrInvalidInput, "invalid domain %q", "-bad.com")
	require.Equal(t, `invalid domain "-bad.com"`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "whois lookup for %s", "example.com")
	require.Equal(t, "whois lookup for example.com: connection reset", e2.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "querying")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrRateLimited)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrMalformed, base, "decoding")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrMalformed, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrRateLimited, "slow down"))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(wrapped))
}

func TestKindForStatus(t *testing.T) {
	cases := map[int]serrors.Kind{
		http.StatusOK:                  nil,
		http.StatusNoContent:           nil,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusUnauthorized:        serrors.ErrUnauthorized,
		http.StatusForbidden:           serrors.ErrUnauthorized,
		http.StatusNotFound:            serrors.ErrNotFound,
		http.StatusGatewayTimeout:      serrors.ErrTimeout,
		http.StatusInternalServerError: serrors.ErrUnavailable,
		http.StatusBadGateway:          serrors.ErrUnavailable,
		http.StatusBadRequest:          serrors.ErrRejected,
	}
	for code, want := range cases {
		require.Equal(t, want, serrors.KindForStatus(code), "status %d", code)
	}
}
