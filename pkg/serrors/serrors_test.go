package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrInvalidQuery,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	require.Equal(t, "report councilList failed", serrors.With(serrors.ErrUnavailable, "report %s failed", "councilList").Error())
	require.Equal(t, "clearing sheet: connection refused", serrors.Wrap(serrors.ErrUnavailable, base, "clearing sheet").Error())
	require.Equal(t, "INVALID_QUERY", serrors.KindOnly(serrors.ErrInvalidQuery).Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading run")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)

	// still matches once wrapped by fmt
	wrapped := fmt.Errorf("could not get run: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrNotFound)
}

func TestAsMatchesKindAndCause(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrRateLimited, base, "sending sms")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrRateLimited, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "bad secret")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "bad secret", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "bad date")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(fmt.Errorf("wrapped: %w", serrors.KindOnly(serrors.ErrNotFound))))
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(serrors.ErrTimeout))
}

func TestMessageOf(t *testing.T) {
	require.Empty(t, serrors.MessageOf(errors.New("plain")))
	require.Equal(t, "bad date", serrors.MessageOf(fmt.Errorf("x: %w", serrors.With(serrors.ErrBadRequest, "bad date"))))
}
