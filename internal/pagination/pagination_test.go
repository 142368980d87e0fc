package pagination_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listpager/internal/pagination"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		pageSize  int
		want      int
	}{
		{name: "empty dataset", itemCount: 0, pageSize: 10, want: 1},
		{name: "single item", itemCount: 1, pageSize: 10, want: 1},
		{name: "exact multiple", itemCount: 100, pageSize: 10, want: 10},
		{name: "partial last page", itemCount: 55, pageSize: 10, want: 6},
		{name: "one past multiple", itemCount: 101, pageSize: 10, want: 11},
		{name: "page size one", itemCount: 7, pageSize: 1, want: 7},
		{name: "page size larger than dataset", itemCount: 3, pageSize: 50, want: 1},
		{name: "negative count treated as empty", itemCount: -4, pageSize: 10, want: 1},
		{name: "zero page size treated as one", itemCount: 5, pageSize: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.itemCount, tt.pageSize))
		})
	}
}

func TestTotalPages_MatchesCeilingFormula(t *testing.T) {
	for itemCount := 0; itemCount <= 250; itemCount++ {
		for pageSize := 1; pageSize <= 25; pageSize++ {
			want := (itemCount + pageSize - 1) / pageSize
			if want < 1 {
				want = 1
			}
			require.Equal(t, want, pagination.TotalPages(itemCount, pageSize),
				"itemCount=%d pageSize=%d", itemCount, pageSize)
		}
	}
}

func TestResolve(t *testing.T) {
	// 200 items at 10 per page gives 20 pages.
	tests := []struct {
		name  string
		query pagination.Query
		want  int
	}{
		{name: "absent", query: pagination.NoPage(), want: 1},
		{name: "valid", query: pagination.PageString("7"), want: 7},
		{name: "first", query: pagination.PageString("1"), want: 1},
		{name: "last", query: pagination.PageString("20"), want: 20},
		{name: "non-numeric", query: pagination.PageString("abc"), want: 1},
		{name: "empty value", query: pagination.PageString(""), want: 1},
		{name: "negative", query: pagination.PageString("-5"), want: 1},
		{name: "zero", query: pagination.PageString("0"), want: 1},
		{name: "fraction truncated", query: pagination.PageString("3.7"), want: 3},
		{name: "fraction below one", query: pagination.PageString("0.5"), want: 1},
		{name: "past the end", query: pagination.PageString("999999"), want: 20},
		{name: "huge literal", query: pagination.PageString("9" + strings.Repeat("0", 400)), want: 20},
		{name: "past int range", query: pagination.PageString("99999999999999999999"), want: 20},
		{name: "explicit plus sign", query: pagination.PageString("+4"), want: 4},
		{name: "leading dot", query: pagination.PageString(".5"), want: 1},
		{name: "exponent", query: pagination.PageString("1e1"), want: 1},
		{name: "hex float", query: pagination.PageString("0x1p2"), want: 1},
		{name: "digit separator", query: pagination.PageString("1_0"), want: 1},
		{name: "infinity", query: pagination.PageString("Infinity"), want: 1},
		{name: "negative infinity", query: pagination.PageString("-Inf"), want: 1},
		{name: "NaN", query: pagination.PageString("NaN"), want: 1},
		{name: "surrounding spaces", query: pagination.PageString(" 4 "), want: 4},
		{name: "trailing garbage", query: pagination.PageString("12abc"), want: 1},
		{name: "numeric constructor", query: pagination.PageNumber(12), want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := pagination.Resolve(tt.query, 200, 10)
			assert.Equal(t, tt.want, state.CurrentPage)
			assert.Equal(t, 20, state.TotalPages)
			assert.GreaterOrEqual(t, state.CurrentPage, 1)
			assert.LessOrEqual(t, state.CurrentPage, state.TotalPages)
		})
	}
}

func TestResolve_StateFields(t *testing.T) {
	tests := []struct {
		name  string
		query pagination.Query
		want  pagination.State
	}{
		{
			name:  "first page",
			query: pagination.PageNumber(1),
			want: pagination.State{
				CurrentPage: 1,
				TotalPages:  3,
				PageSize:    10,
				TotalItems:  25,
				HasPrevious: false,
				HasNext:     true,
			},
		},
		{
			name:  "middle page",
			query: pagination.PageNumber(2),
			want: pagination.State{
				CurrentPage: 2,
				TotalPages:  3,
				PageSize:    10,
				TotalItems:  25,
				HasPrevious: true,
				HasNext:     true,
			},
		},
		{
			name:  "last page",
			query: pagination.PageNumber(3),
			want: pagination.State{
				CurrentPage: 3,
				TotalPages:  3,
				PageSize:    10,
				TotalItems:  25,
				HasPrevious: true,
				HasNext:     false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.Resolve(tt.query, 25, 10))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	first := pagination.Resolve(pagination.PageString("4"), 55, 10)
	second := pagination.Resolve(pagination.PageString("4"), 55, 10)
	assert.Equal(t, first, second)

	// Feeding the resolved page back in is a fixed point.
	again := pagination.Resolve(pagination.PageNumber(first.CurrentPage), 55, 10)
	assert.Equal(t, first, again)
}

func TestQueryFromValues(t *testing.T) {
	t.Run("missing parameter", func(t *testing.T) {
		q := pagination.QueryFromValues(url.Values{"sort": {"name"}})
		assert.False(t, q.Present())
	})

	t.Run("present parameter", func(t *testing.T) {
		q := pagination.QueryFromValues(url.Values{"page": {"3"}})
		assert.True(t, q.Present())
		assert.Equal(t, "3", q.Raw())
	})

	t.Run("present but empty", func(t *testing.T) {
		values, err := url.ParseQuery("page=")
		require.NoError(t, err)
		q := pagination.QueryFromValues(values)
		assert.True(t, q.Present())
		assert.Equal(t, 1, pagination.Resolve(q, 100, 10).CurrentPage)
	})

	t.Run("from URL", func(t *testing.T) {
		u, err := url.Parse("https://example.test/list?page=5&q=x")
		require.NoError(t, err)
		assert.Equal(t, 5, pagination.Resolve(pagination.QueryFromURL(u), 100, 10).CurrentPage)
		assert.False(t, pagination.QueryFromURL(nil).Present())
	})
}

func TestState_Offset(t *testing.T) {
	state := pagination.Resolve(pagination.PageNumber(6), 55, 10)
	assert.Equal(t, 50, state.Offset())

	state = pagination.Resolve(pagination.NoPage(), 0, 10)
	assert.Equal(t, 0, state.Offset())
}
