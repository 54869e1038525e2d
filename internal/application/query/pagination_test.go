package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultsZeroValues(t *testing.T) {
	limit, offset := ListParams{}.Normalize()
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)
}

func TestNormalizeClampsLimitToHundred(t *testing.T) {
	limit, _ := ListParams{Limit: 5000}.Normalize()
	require.Equal(t, 100, limit)
}

func TestNormalizeRejectsNegativePage(t *testing.T) {
	limit, offset := ListParams{Page: -3, Limit: 20}.Normalize()
	require.Equal(t, 20, limit)
	require.Equal(t, 0, offset)
}

func TestNormalizeComputesOffsetFromPage(t *testing.T) {
	limit, offset := ListParams{Page: 3, Limit: 25}.Normalize()
	require.Equal(t, 25, limit)
	require.Equal(t, 50, offset)
}
