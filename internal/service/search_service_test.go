package service

import (
	"context"
	"strings"
	"testing"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func symbols(companies []model.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.Symbol)
	}
	return out
}

func newTestSearchService(t *testing.T) *SearchService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	catalog := repository.NewMockCatalog(logger)
	idx, err := search.NewDiscoverIndex(repository.MockData().Companies, logger)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return NewSearchService(catalog, idx, logger)
}

func TestSearch(t *testing.T) {
	svc := newTestSearchService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{}},
		{name: "whitespace", query: "   \t", want: []string{}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "symbol prefix", query: "goo", want: []string{"GOOGL"}},
		{name: "case insensitive symbol", query: "aapl", want: []string{"AAPL"}},
		{name: "name substring", query: "corporation", want: []string{"MSFT", "NVDA"}},
		{name: "mixed case name", query: "TeSlA", want: []string{"TSLA"}},
		{name: "catalog order", query: "a", want: []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN", "NVDA"}},
		{name: "symbol middle", query: "vd", want: []string{"NVDA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, symbols(got))
		})
	}
}

func TestSearchSoundAndComplete(t *testing.T) {
	svc := newTestSearchService(t)
	ctx := context.Background()
	catalog := repository.MockData().Companies

	for _, q := range []string{"a", "in", "Inc", "o", "ms", ".", "com", "x"} {
		got, err := svc.Search(ctx, q)
		require.NoError(t, err)

		lq := strings.ToLower(q)
		var want []string
		for _, c := range catalog {
			if strings.Contains(strings.ToLower(c.Symbol), lq) || strings.Contains(strings.ToLower(c.Name), lq) {
				want = append(want, c.Symbol)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, symbols(got), "query %q", q)

		again, err := svc.Search(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, got, again, "search must be idempotent for %q", q)
	}
}

func TestTrendingKeepsCatalogOrder(t *testing.T) {
	svc := newTestSearchService(t)

	got, err := svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN", "NVDA"}, symbols(got))
}

func TestCompanyLookup(t *testing.T) {
	svc := newTestSearchService(t)
	ctx := context.Background()

	c, err := svc.Company(ctx, "MSFT")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Microsoft Corporation", c.Name)

	c, err = svc.Company(ctx, "msft")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDiscover(t *testing.T) {
	svc := newTestSearchService(t)

	got, err := svc.Discover(context.Background(), "semiconductors", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA"}, symbols(got))

	noIndex := NewSearchService(newTestCatalog(t), nil, zaptest.NewLogger(t))
	got, err = noIndex.Discover(context.Background(), "semiconductors", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
