package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/settings"
	"github.com/readmio/bookshelf-service/migrations"
	"github.com/readmio/bookshelf-service/pkg/sqlitedb"
)

func newTestStore(t *testing.T) *settings.Store {
	t.Helper()
	db, err := sqlitedb.NewSqliteDB(context.Background(), &sqlitedb.Config{Path: ":memory:"}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() }) //nolint:errcheck
	return settings.NewStore(db, zap.NewExample().Named("test"))
}

func TestStore_Defaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dark, err := s.DarkMode(ctx)
	require.NoError(t, err)
	require.False(t, dark)

	lang, err := s.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", lang)

	history, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetDarkMode(ctx, true))
	dark, err := s.DarkMode(ctx)
	require.NoError(t, err)
	require.True(t, dark)

	require.NoError(t, s.SetLanguage(ctx, "de"))
	lang, err := s.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "de", lang)
}

func TestStore_SearchHistoryMostRecentFirstDeduplicated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"dune", "foundation", "dune", "hyperion"} {
		require.NoError(t, s.AppendSearchHistory(ctx, q))
	}

	history, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"hyperion", "dune", "foundation"}, history)
}

func TestStore_SearchHistoryCapped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		require.NoError(t, s.AppendSearchHistory(ctx, q))
	}

	history, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"g", "f", "e", "d", "c"}, history)
}
