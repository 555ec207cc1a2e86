package generics

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{-3, 5, 1, 5},
		{2, 500, 2, MaxPageSize},
		{4, 10, 4, 10},
		{math.MaxInt, MaxPageSize, MaxPage, MaxPageSize},
	}

	for _, c := range cases {
		page, size := NormalizePage(c.page, c.size)
		require.Equal(t, c.wantPage, page)
		require.Equal(t, c.wantSize, size)
	}
}

func TestNewPage(t *testing.T) {
	t.Run("Counts pages and maps content", func(t *testing.T) {
		page := NewPage([]int{1, 2}, 2, 2, 5, strconv.Itoa)

		require.Equal(t, 3, page.TotalPages)
		require.Equal(t, 5, page.TotalResults)
		require.Equal(t, []string{"1", "2"}, page.Content)
	})

	t.Run("Empty result has one page and non-nil content", func(t *testing.T) {
		page := NewPage([]int{}, 1, 20, 0, strconv.Itoa)

		require.Equal(t, 1, page.TotalPages)
		require.NotNil(t, page.Content)
		require.Empty(t, page.Content)
	})
}

func TestStringToInt(t *testing.T) {
	require.Equal(t, 12, StringToInt("12"))
	require.Equal(t, 0, StringToInt("twelve"))
	require.Equal(t, 0, StringToInt(""))
}
