package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryRepo(t *testing.T) *XLSXRouteHistoryRepository {
	t.Helper()
	return NewXLSXRouteHistoryRepository(filepath.Join(t.TempDir(), "routes_history.xlsx"))
}

func TestXLSXRouteHistory_AppendAndRecent(t *testing.T) {
	repo := newHistoryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Karachi", "Kabul", "Karachi → Chaman → Kabul", []string{"Chaman"}))
	require.NoError(t, repo.Append(ctx, "Karachi", "Tashkent", "Karachi → Hairatan → Tashkent", nil))

	rows, err := repo.Recent(ctx, "Karachi", "Kabul", 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Karachi → Chaman → Kabul", rows[0].RouteText)
	assert.Equal(t, []string{"Chaman"}, []string(rows[0].Borders))
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestXLSXRouteHistory_RecentMatchesNormalizedPair(t *testing.T) {
	repo := newHistoryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Karachi  Port", "KABUL", "Karachi → Chaman → Kabul", nil))

	rows, err := repo.Recent(ctx, "karachi port", "kabul", 5)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.Recent(ctx, "Karachi", "Kabul", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXLSXRouteHistory_AppendDeduplicates(t *testing.T) {
	repo := newHistoryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Karachi", "Kabul", "Karachi → Chaman → Kabul", nil))
	// Whitespace and case variants of the same triple collapse.
	require.NoError(t, repo.Append(ctx, " karachi ", "KABUL", "karachi  →  chaman  →  kabul", nil))

	rows, err := repo.Recent(ctx, "Karachi", "Kabul", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestXLSXRouteHistory_RecentOrderAndLimit(t *testing.T) {
	repo := newHistoryRepo(t)
	ctx := context.Background()

	for _, text := range []string{"route a", "route b", "route c"} {
		require.NoError(t, repo.Append(ctx, "Karachi", "Kabul", text, nil))
	}

	rows, err := repo.Recent(ctx, "Karachi", "Kabul", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "route c", rows[0].RouteText)
	assert.Equal(t, "route b", rows[1].RouteText)
}

func TestXLSXRouteHistory_EmptyStore(t *testing.T) {
	repo := newHistoryRepo(t)

	rows, err := repo.Recent(context.Background(), "Karachi", "Kabul", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Blank route text is ignored rather than stored.
	require.NoError(t, repo.Append(context.Background(), "Karachi", "Kabul", "   ", nil))
	rows, err = repo.Recent(context.Background(), "Karachi", "Kabul", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
