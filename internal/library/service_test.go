package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/library"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/state"
	"github.com/readmio/bookshelf-service/migrations"
	"github.com/readmio/bookshelf-service/pkg/sqlitedb"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlitedb.NewSqliteDB(context.Background(), &sqlitedb.Config{Path: ":memory:"}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() }) //nolint:errcheck
	return db
}

func newTestService(t *testing.T) *library.Service {
	t.Helper()
	repo, err := library.NewRepository(newTestDB(t), zap.NewExample().Named("test"))
	require.NoError(t, err)
	return library.NewService(repo, nil, zap.NewExample().Named("test"))
}

func summary(id string) model.BookSummary {
	return model.BookSummary{
		ExternalID: id,
		Title:      "Dune",
		Authors:    []string{"Frank Herbert"},
		PageCount:  412,
	}
}

func TestService_ToggleFavoriteImplicitAdd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := svc.ToggleFavorite(ctx, summary("X"), true)
	require.Equal(t, state.StatusSuccess, res.Status)
	require.Equal(t, "X", res.Data.ExternalBookID)
	require.True(t, res.Data.IsFavorite)
	require.Equal(t, model.StatusFavoritesOnly, res.Data.ReadingStatus)

	fav, err := svc.IsFavorited(ctx, "X")
	require.NoError(t, err)
	require.True(t, fav)

	// the second toggle updates the same row, no duplicate
	res = svc.ToggleFavorite(ctx, summary("X"), false)
	require.Equal(t, state.StatusSuccess, res.Status)
	require.False(t, res.Data.IsFavorite)

	entries, err := svc.SearchLocal(ctx, "Dune")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestService_ToggleFavoriteOffAbsentBookIsNoop(t *testing.T) {
	svc := newTestService(t)

	res := svc.ToggleFavorite(context.Background(), summary("ghost"), false)
	require.Equal(t, state.StatusEmpty, res.Status, "no-op must not read as a hard failure")
}

func TestService_AddToLibraryUpserts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := svc.AddToLibrary(ctx, summary("X"), model.StatusWantToRead)
	require.Equal(t, state.StatusSuccess, first.Status)

	second := svc.AddToLibrary(ctx, summary("X"), model.StatusCurrentlyReading)
	require.Equal(t, state.StatusSuccess, second.Status)
	require.Equal(t, first.Data.ID, second.Data.ID, "same external id must stay one row")
	require.Equal(t, model.StatusCurrentlyReading, second.Data.ReadingStatus)

	entries, err := svc.ListByStatus(ctx, model.StatusCurrentlyReading)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = svc.ListByStatus(ctx, model.StatusWantToRead)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestService_AddToLibraryDefaultsMissingFields(t *testing.T) {
	svc := newTestService(t)

	res := svc.AddToLibrary(context.Background(), model.BookSummary{ExternalID: "bare"}, model.StatusWantToRead)
	require.Equal(t, state.StatusSuccess, res.Status)
	require.Equal(t, model.UnknownTitle, res.Data.Title)
	require.Equal(t, model.UnknownAuthor, res.Data.Authors)
}

func TestService_UpdateReadingStatusStampsDates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added := svc.AddToLibrary(ctx, summary("X"), model.StatusWantToRead)
	require.Equal(t, state.StatusSuccess, added.Status)
	id := added.Data.ID

	res := svc.UpdateReadingStatus(ctx, id, model.StatusCurrentlyReading, true)
	require.Equal(t, state.StatusSuccess, res.Status)
	e, err := svc.GetEntry(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, e.DateStarted)
	require.Nil(t, e.DateFinished)

	res = svc.UpdateReadingStatus(ctx, id, model.StatusFinished, true)
	require.Equal(t, state.StatusSuccess, res.Status)
	e, err = svc.GetEntry(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, e.DateFinished)
	finishedAt := *e.DateFinished

	// moving back to WANT_TO_READ leaves the stamp alone
	res = svc.UpdateReadingStatus(ctx, id, model.StatusWantToRead, true)
	require.Equal(t, state.StatusSuccess, res.Status)
	e, err = svc.GetEntry(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, e.DateFinished)
	require.True(t, e.DateFinished.Equal(finishedAt))
}

func TestService_UpdateReadingStatusOptOutSkipsStamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added := svc.AddToLibrary(ctx, summary("X"), model.StatusWantToRead)
	id := added.Data.ID

	res := svc.UpdateReadingStatus(ctx, id, model.StatusFinished, false)
	require.Equal(t, state.StatusSuccess, res.Status)
	e, err := svc.GetEntry(ctx, id)
	require.NoError(t, err)
	require.Nil(t, e.DateFinished)
}

func TestService_UpdateReadingStatusMissingRowIsEmpty(t *testing.T) {
	svc := newTestService(t)

	res := svc.UpdateReadingStatus(context.Background(), 9999, model.StatusFinished, true)
	require.Equal(t, state.StatusEmpty, res.Status)
}

func TestService_UpdateProgress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added := svc.AddToLibrary(ctx, summary("X"), model.StatusCurrentlyReading)
	id := added.Data.ID

	res := svc.UpdateProgress(ctx, id, 120)
	require.Equal(t, state.StatusSuccess, res.Status)
	e, err := svc.GetEntry(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 120, e.CurrentPage)
}

func TestService_RemoveCascadesNotes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added := svc.AddToLibrary(ctx, summary("X"), model.StatusWantToRead)
	id := added.Data.ID

	n1 := svc.AddNote(ctx, id, "first impressions")
	require.Equal(t, state.StatusSuccess, n1.Status)
	n2 := svc.AddNote(ctx, id, "chapter two notes")
	require.Equal(t, state.StatusSuccess, n2.Status)

	// deleting one note leaves the entry alone
	res := svc.DeleteNote(ctx, n1.Data.ID)
	require.Equal(t, state.StatusSuccess, res.Status)
	in, err := svc.IsInLibrary(ctx, "X")
	require.NoError(t, err)
	require.True(t, in)

	res = svc.RemoveFromLibrary(ctx, "X")
	require.Equal(t, state.StatusSuccess, res.Status)

	notes, err := svc.ListNotes(ctx, id)
	require.NoError(t, err)
	require.Empty(t, notes, "cascade must remove the entry's notes")
}

func TestService_RemoveAbsentIsEmpty(t *testing.T) {
	svc := newTestService(t)

	res := svc.RemoveFromLibrary(context.Background(), "ghost")
	require.Equal(t, state.StatusEmpty, res.Status)
}

func TestService_AddNoteForMissingEntryFails(t *testing.T) {
	svc := newTestService(t)

	res := svc.AddNote(context.Background(), 4242, "orphan")
	require.Equal(t, state.StatusFailed, res.Status)
	require.Equal(t, "not found", res.Err)
}

func TestService_Annotate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.AddToLibrary(ctx, summary("in-lib"), model.StatusWantToRead)
	svc.ToggleFavorite(ctx, summary("fav"), true)

	items := []model.BookSummary{
		{ExternalID: "in-lib", Title: "Dune"},
		{ExternalID: "fav", Title: "Dune Messiah"},
		{ExternalID: "unknown", Title: "Children of Dune"},
	}
	annotated, err := svc.Annotate(ctx, items)
	require.NoError(t, err)
	require.Len(t, annotated, 3)

	require.True(t, annotated[0].InLibrary)
	require.False(t, annotated[0].IsFavorite)
	require.True(t, annotated[1].InLibrary)
	require.True(t, annotated[1].IsFavorite)
	require.False(t, annotated[2].InLibrary)
	require.False(t, annotated[2].IsFavorite)
}

func TestService_ObserveByStatusEmitsOnMutation(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := svc.ObserveByStatus(ctx, model.StatusWantToRead)

	first := <-ch
	require.Equal(t, state.StatusSuccess, first.Status)
	require.Empty(t, first.Data)

	svc.AddToLibrary(ctx, summary("X"), model.StatusWantToRead)

	require.Eventually(t, func() bool {
		select {
		case v, ok := <-ch:
			return ok && v.Status == state.StatusSuccess && len(v.Data) == 1
		default:
			return false
		}
	}, 3*time.Second, 5*time.Millisecond)
}
