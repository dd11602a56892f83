package library

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/errs"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/state"
)

// Producer receives library mutation events. A nil Producer disables the feed.
type Producer interface {
	Publish(ctx context.Context, ev model.LibraryEvent) error
}

// Service reconciles ephemeral remote search results with the persisted
// library: membership lookups, snapshot upserts, favorite toggles, status and
// progress updates, and live queries backing the library screens.
type Service struct {
	log      *zap.Logger
	repo     Repository
	producer Producer
	now      func() time.Time

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewService(repo Repository, producer Producer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("library"),
		repo:     repo,
		producer: producer,
		now:      time.Now,
		subs:     make(map[chan struct{}]struct{}),
	}
}

func (s *Service) IsInLibrary(ctx context.Context, externalID string) (bool, error) {
	_, err := s.repo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) IsFavorited(ctx context.Context, externalID string) (bool, error) {
	e, err := s.repo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return e.IsFavorite, nil
}

// ToggleFavorite flips the favorite flag. A favorite set on a book absent from
// the library performs an implicit add from the supplied snapshot with status
// FAVORITES_ONLY. Check-then-act: two screens toggling the same book can
// interleave; the unique index on external_book_id keeps it to one row and the
// last write wins.
func (s *Service) ToggleFavorite(ctx context.Context, summary model.BookSummary, newValue bool) state.Value[model.LibraryEntry] {
	_, err := s.repo.GetByExternalID(ctx, summary.ExternalID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		if !newValue {
			return state.Empty[model.LibraryEntry]()
		}
		entry := model.EntryFromSummary(summary, model.StatusFavoritesOnly, s.now())
		entry.IsFavorite = true
		id, err := s.repo.Insert(ctx, entry)
		if err != nil {
			return state.Fail[model.LibraryEntry](err.Error())
		}
		entry.ID = id
		s.published(ctx, model.EventFavoriteToggled, entry.ExternalBookID, entry.ReadingStatus, true)
		return state.Success(entry)
	case err != nil:
		return state.Fail[model.LibraryEntry](err.Error())
	}

	n, err := s.repo.SetFavorite(ctx, summary.ExternalID, newValue)
	if err != nil {
		return state.Fail[model.LibraryEntry](err.Error())
	}
	if n == 0 {
		return state.Empty[model.LibraryEntry]()
	}
	entry, err := s.repo.GetByExternalID(ctx, summary.ExternalID)
	if err != nil {
		return state.Fail[model.LibraryEntry](err.Error())
	}
	s.published(ctx, model.EventFavoriteToggled, entry.ExternalBookID, entry.ReadingStatus, newValue)
	return state.Success(entry)
}

// AddToLibrary upserts a snapshot of the remote summary. An already-present
// external id makes this a status-changing update, never a second row.
func (s *Service) AddToLibrary(ctx context.Context, summary model.BookSummary, status model.ReadingStatus) state.Value[model.LibraryEntry] {
	if !status.Valid() {
		return state.Fail[model.LibraryEntry](errs.ErrBadStatus.Error())
	}
	existing, err := s.repo.GetByExternalID(ctx, summary.ExternalID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		entry := model.EntryFromSummary(summary, status, s.now())
		id, err := s.repo.Insert(ctx, entry)
		if err != nil {
			return state.Fail[model.LibraryEntry](err.Error())
		}
		entry.ID = id
		s.published(ctx, model.EventAdded, entry.ExternalBookID, status, entry.IsFavorite)
		return state.Success(entry)
	case err != nil:
		return state.Fail[model.LibraryEntry](err.Error())
	}

	if _, err := s.repo.SetStatusByExternalID(ctx, summary.ExternalID, status); err != nil {
		return state.Fail[model.LibraryEntry](err.Error())
	}
	existing.ReadingStatus = status
	s.published(ctx, model.EventStatusChanged, existing.ExternalBookID, status, existing.IsFavorite)
	return state.Success(existing)
}

// UpdateReadingStatus sets the shelf. Unless stampDates is false it records
// date_started on the transition to CURRENTLY_READING and date_finished on the
// transition to FINISHED. Previously stamped dates are never cleared.
func (s *Service) UpdateReadingStatus(ctx context.Context, entryID int64, status model.ReadingStatus, stampDates bool) state.Value[bool] {
	if !status.Valid() {
		return state.Fail[bool](errs.ErrBadStatus.Error())
	}
	var started, finished *time.Time
	if stampDates {
		now := s.now()
		switch status {
		case model.StatusCurrentlyReading:
			started = &now
		case model.StatusFinished:
			finished = &now
		}
	}
	n, err := s.repo.SetStatus(ctx, entryID, status, started, finished)
	if err != nil {
		return state.Fail[bool](err.Error())
	}
	if n == 0 {
		return state.Empty[bool]()
	}
	if e, err := s.repo.GetByID(ctx, entryID); err == nil {
		s.published(ctx, model.EventStatusChanged, e.ExternalBookID, status, e.IsFavorite)
	}
	return state.Success(true)
}

// UpdateProgress sets the page cursor. Bounds against the total page count are
// the caller's concern.
func (s *Service) UpdateProgress(ctx context.Context, entryID int64, page int) state.Value[bool] {
	n, err := s.repo.SetProgress(ctx, entryID, page)
	if err != nil {
		return state.Fail[bool](err.Error())
	}
	if n == 0 {
		return state.Empty[bool]()
	}
	return state.Success(true)
}

// RemoveFromLibrary deletes the entry; its notes go with it (cascade).
// Screens already rendering the entry must re-query.
func (s *Service) RemoveFromLibrary(ctx context.Context, externalID string) state.Value[bool] {
	n, err := s.repo.DeleteByExternalID(ctx, externalID)
	if err != nil {
		return state.Fail[bool](err.Error())
	}
	if n == 0 {
		return state.Empty[bool]()
	}
	s.published(ctx, model.EventRemoved, externalID, "", false)
	return state.Success(true)
}

func (s *Service) SearchLocal(ctx context.Context, query string) ([]model.LibraryEntry, error) {
	return s.repo.SearchLocal(ctx, query)
}

func (s *Service) ListByStatus(ctx context.Context, status model.ReadingStatus) ([]model.LibraryEntry, error) {
	if !status.Valid() {
		return nil, errs.ErrBadStatus
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListFavorites(ctx context.Context) ([]model.LibraryEntry, error) {
	return s.repo.ListFavorites(ctx)
}

func (s *Service) GetEntry(ctx context.Context, entryID int64) (model.LibraryEntry, error) {
	return s.repo.GetByID(ctx, entryID)
}

// Annotate stamps library membership and favorite state onto remote search
// results in one batched lookup.
func (s *Service) Annotate(ctx context.Context, items []model.BookSummary) ([]model.BookSummary, error) {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.ExternalID != "" {
			ids = append(ids, it.ExternalID)
		}
	}
	entries, err := s.repo.ListExternalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.LibraryEntry, len(entries))
	for _, e := range entries {
		byID[e.ExternalBookID] = e
	}
	out := make([]model.BookSummary, len(items))
	for i, it := range items {
		if e, ok := byID[it.ExternalID]; ok {
			it.InLibrary = true
			it.IsFavorite = e.IsFavorite
		}
		out[i] = it
	}
	return out, nil
}

func (s *Service) AddNote(ctx context.Context, entryID int64, text string) state.Value[model.Note] {
	if _, err := s.repo.GetByID(ctx, entryID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return state.Fail[model.Note](errs.ErrNotFound.Error())
		}
		return state.Fail[model.Note](err.Error())
	}
	now := s.now()
	n := model.Note{EntryID: entryID, Text: text, CreatedAt: now, UpdatedAt: now}
	id, err := s.repo.InsertNote(ctx, n)
	if err != nil {
		return state.Fail[model.Note](err.Error())
	}
	n.ID = id
	s.notify()
	return state.Success(n)
}

func (s *Service) UpdateNote(ctx context.Context, noteID int64, text string) state.Value[bool] {
	n, err := s.repo.UpdateNote(ctx, noteID, text, s.now())
	if err != nil {
		return state.Fail[bool](err.Error())
	}
	if n == 0 {
		return state.Empty[bool]()
	}
	s.notify()
	return state.Success(true)
}

func (s *Service) DeleteNote(ctx context.Context, noteID int64) state.Value[bool] {
	n, err := s.repo.DeleteNote(ctx, noteID)
	if err != nil {
		return state.Fail[bool](err.Error())
	}
	if n == 0 {
		return state.Empty[bool]()
	}
	s.notify()
	return state.Success(true)
}

func (s *Service) ListNotes(ctx context.Context, entryID int64) ([]model.Note, error) {
	return s.repo.ListNotes(ctx, entryID)
}

// ObserveByStatus emits a fresh snapshot for status immediately and again
// after every library mutation, until ctx is done.
func (s *Service) ObserveByStatus(ctx context.Context, status model.ReadingStatus) <-chan state.Value[[]model.LibraryEntry] {
	return s.observe(ctx, func(ctx context.Context) ([]model.LibraryEntry, error) {
		return s.repo.ListByStatus(ctx, status)
	})
}

// ObserveFavorites is ObserveByStatus for the favorites shelf.
func (s *Service) ObserveFavorites(ctx context.Context) <-chan state.Value[[]model.LibraryEntry] {
	return s.observe(ctx, s.repo.ListFavorites)
}

func (s *Service) observe(ctx context.Context, query func(context.Context) ([]model.LibraryEntry, error)) <-chan state.Value[[]model.LibraryEntry] {
	out := make(chan state.Value[[]model.LibraryEntry], 1)
	changed := make(chan struct{}, 1)

	s.mu.Lock()
	s.subs[changed] = struct{}{}
	s.mu.Unlock()

	emit := func() {
		var v state.Value[[]model.LibraryEntry]
		entries, err := query(ctx)
		if err != nil {
			v = state.Fail[[]model.LibraryEntry](err.Error())
		} else {
			v = state.Success(entries)
		}
		select {
		case <-out:
		default:
		}
		select {
		case out <- v:
		default:
		}
	}

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.subs, changed)
			s.mu.Unlock()
			close(out)
		}()
		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changed:
				emit()
			}
		}
	}()
	return out
}

func (s *Service) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Service) published(ctx context.Context, typ model.LibraryEventType, externalID string, status model.ReadingStatus, favorite bool) {
	s.notify()
	if s.producer == nil {
		return
	}
	ev := model.LibraryEvent{
		ID:             uuid.NewString(),
		Type:           typ,
		ExternalBookID: externalID,
		Status:         status,
		Favorite:       favorite,
		At:             s.now(),
	}
	if err := s.producer.Publish(ctx, ev); err != nil {
		s.log.Error("publish event",
			zap.String("type", string(typ)),
			zap.String("externalBookId", externalID),
			zap.Error(err))
	}
}
