package handler

import (
	"context"

	"github.com/readmio/bookshelf-service/internal/gateway"
	"github.com/readmio/bookshelf-service/internal/gateway/openlibrary"
	"github.com/readmio/bookshelf-service/internal/library"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/settings"
	"github.com/readmio/bookshelf-service/internal/state"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	IsInLibrary(ctx context.Context, externalID string) (bool, error)
	IsFavorited(ctx context.Context, externalID string) (bool, error)
	ToggleFavorite(ctx context.Context, summary model.BookSummary, newValue bool) state.Value[model.LibraryEntry]
	AddToLibrary(ctx context.Context, summary model.BookSummary, status model.ReadingStatus) state.Value[model.LibraryEntry]
	UpdateReadingStatus(ctx context.Context, entryID int64, status model.ReadingStatus, stampDates bool) state.Value[bool]
	UpdateProgress(ctx context.Context, entryID int64, page int) state.Value[bool]
	RemoveFromLibrary(ctx context.Context, externalID string) state.Value[bool]
	SearchLocal(ctx context.Context, query string) ([]model.LibraryEntry, error)
	ListByStatus(ctx context.Context, status model.ReadingStatus) ([]model.LibraryEntry, error)
	ListFavorites(ctx context.Context) ([]model.LibraryEntry, error)
	Annotate(ctx context.Context, items []model.BookSummary) ([]model.BookSummary, error)
	AddNote(ctx context.Context, entryID int64, text string) state.Value[model.Note]
	UpdateNote(ctx context.Context, noteID int64, text string) state.Value[bool]
	DeleteNote(ctx context.Context, noteID int64) state.Value[bool]
	ListNotes(ctx context.Context, entryID int64) ([]model.Note, error)
}

var _ LibraryService = (*library.Service)(nil)

type SettingsStore interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, on bool) error
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
	SearchHistory(ctx context.Context) ([]string, error)
}

var _ SettingsStore = (*settings.Store)(nil)

type MetadataClient interface {
	LookupISBN(ctx context.Context, isbns []string) (map[string]openlibrary.Metadata, error)
}

var _ MetadataClient = (*openlibrary.Client)(nil)

type SearchGateway interface {
	Search(ctx context.Context, query string, f gateway.Filters, startIndex int) (gateway.Page, error)
}
