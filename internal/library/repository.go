package library

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/errs"
	"github.com/readmio/bookshelf-service/internal/model"
)

type Repository interface {
	GetByExternalID(ctx context.Context, externalID string) (model.LibraryEntry, error)
	GetByID(ctx context.Context, id int64) (model.LibraryEntry, error)
	Insert(ctx context.Context, e model.LibraryEntry) (int64, error)
	SetFavorite(ctx context.Context, externalID string, favorite bool) (int64, error)
	SetStatusByExternalID(ctx context.Context, externalID string, status model.ReadingStatus) (int64, error)
	SetStatus(ctx context.Context, id int64, status model.ReadingStatus, started, finished *time.Time) (int64, error)
	SetProgress(ctx context.Context, id int64, page int) (int64, error)
	DeleteByExternalID(ctx context.Context, externalID string) (int64, error)
	SearchLocal(ctx context.Context, query string) ([]model.LibraryEntry, error)
	ListByStatus(ctx context.Context, status model.ReadingStatus) ([]model.LibraryEntry, error)
	ListFavorites(ctx context.Context) ([]model.LibraryEntry, error)
	ListExternalIDs(ctx context.Context, externalIDs []string) ([]model.LibraryEntry, error)

	InsertNote(ctx context.Context, n model.Note) (int64, error)
	UpdateNote(ctx context.Context, id int64, text string, updatedAt time.Time) (int64, error)
	DeleteNote(ctx context.Context, id int64) (int64, error)
	ListNotes(ctx context.Context, entryID int64) ([]model.Note, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	entriesTableName = `library_entries`
	notesTableName   = `notes`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var entryColumns = []string{
	"id", "external_book_id", "title", "authors", "thumbnail", "description",
	"publisher", "published_date", "page_count", "categories", "average_rating",
	"ratings_count", "reading_status", "is_favorite", "current_page",
	"date_added", "date_started", "date_finished", "user_id",
}

func (r *repository) getOne(ctx context.Context, pred sq.Eq) (model.LibraryEntry, error) {
	query, args, err := qb.Select(entryColumns...).
		From(entriesTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.LibraryEntry{}, err
	}
	var e model.LibraryEntry
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LibraryEntry{}, errs.ErrNotFound
		}
		r.log.Error("getOne", zap.Any("pred", pred), zap.Error(err))
		return model.LibraryEntry{}, err
	}
	return e, nil
}

func (r *repository) GetByExternalID(ctx context.Context, externalID string) (model.LibraryEntry, error) {
	return r.getOne(ctx, sq.Eq{"external_book_id": externalID})
}

func (r *repository) GetByID(ctx context.Context, id int64) (model.LibraryEntry, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *repository) Insert(ctx context.Context, e model.LibraryEntry) (int64, error) {
	query, args, err := qb.Insert(entriesTableName).
		Columns("external_book_id", "title", "authors", "thumbnail", "description",
			"publisher", "published_date", "page_count", "categories", "average_rating",
			"ratings_count", "reading_status", "is_favorite", "current_page",
			"date_added", "date_started", "date_finished", "user_id").
		Values(e.ExternalBookID, e.Title, e.Authors, e.Thumbnail, e.Description,
			e.Publisher, e.PublishedDate, e.PageCount, e.Categories, e.AverageRating,
			e.RatingsCount, e.ReadingStatus, e.IsFavorite, e.CurrentPage,
			e.DateAdded, e.DateStarted, e.DateFinished, e.UserID).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Insert", zap.String("externalBookId", e.ExternalBookID), zap.Error(err))
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repository) exec(ctx context.Context, op string, b sq.UpdateBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SetFavorite(ctx context.Context, externalID string, favorite bool) (int64, error) {
	return r.exec(ctx, "SetFavorite", qb.Update(entriesTableName).
		Set("is_favorite", favorite).
		Where(sq.Eq{"external_book_id": externalID}))
}

func (r *repository) SetStatusByExternalID(ctx context.Context, externalID string, status model.ReadingStatus) (int64, error) {
	return r.exec(ctx, "SetStatusByExternalID", qb.Update(entriesTableName).
		Set("reading_status", status).
		Where(sq.Eq{"external_book_id": externalID}))
}

func (r *repository) SetStatus(ctx context.Context, id int64, status model.ReadingStatus, started, finished *time.Time) (int64, error) {
	b := qb.Update(entriesTableName).
		Set("reading_status", status).
		Where(sq.Eq{"id": id})
	if started != nil {
		b = b.Set("date_started", *started)
	}
	if finished != nil {
		b = b.Set("date_finished", *finished)
	}
	return r.exec(ctx, "SetStatus", b)
}

func (r *repository) SetProgress(ctx context.Context, id int64, page int) (int64, error) {
	return r.exec(ctx, "SetProgress", qb.Update(entriesTableName).
		Set("current_page", page).
		Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteByExternalID(ctx context.Context, externalID string) (int64, error) {
	query, args, err := qb.Delete(entriesTableName).
		Where(sq.Eq{"external_book_id": externalID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("DeleteByExternalID", zap.String("externalBookId", externalID), zap.Error(err))
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) list(ctx context.Context, b sq.SelectBuilder) ([]model.LibraryEntry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	entries := make([]model.LibraryEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		r.log.Error("list", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (r *repository) SearchLocal(ctx context.Context, query string) ([]model.LibraryEntry, error) {
	pattern := "%" + query + "%"
	return r.list(ctx, qb.Select(entryColumns...).
		From(entriesTableName).
		Where(sq.Or{sq.Like{"title": pattern}, sq.Like{"authors": pattern}}).
		OrderBy("date_added desc"))
}

func (r *repository) ListByStatus(ctx context.Context, status model.ReadingStatus) ([]model.LibraryEntry, error) {
	return r.list(ctx, qb.Select(entryColumns...).
		From(entriesTableName).
		Where(sq.Eq{"reading_status": status}).
		OrderBy("date_added desc"))
}

func (r *repository) ListFavorites(ctx context.Context) ([]model.LibraryEntry, error) {
	return r.list(ctx, qb.Select(entryColumns...).
		From(entriesTableName).
		Where(sq.Eq{"is_favorite": true}).
		OrderBy("date_added desc"))
}

func (r *repository) ListExternalIDs(ctx context.Context, externalIDs []string) ([]model.LibraryEntry, error) {
	if len(externalIDs) == 0 {
		return []model.LibraryEntry{}, nil
	}
	return r.list(ctx, qb.Select(entryColumns...).
		From(entriesTableName).
		Where(sq.Eq{"external_book_id": externalIDs}))
}

func (r *repository) InsertNote(ctx context.Context, n model.Note) (int64, error) {
	query, args, err := qb.Insert(notesTableName).
		Columns("entry_id", "text", "created_at", "updated_at").
		Values(n.EntryID, n.Text, n.CreatedAt, n.UpdatedAt).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("InsertNote", zap.Int64("entryId", n.EntryID), zap.Error(err))
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repository) UpdateNote(ctx context.Context, id int64, text string, updatedAt time.Time) (int64, error) {
	return r.exec(ctx, "UpdateNote", qb.Update(notesTableName).
		Set("text", text).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteNote(ctx context.Context, id int64) (int64, error) {
	query, args, err := qb.Delete(notesTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("DeleteNote", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) ListNotes(ctx context.Context, entryID int64) ([]model.Note, error) {
	query, args, err := qb.Select("id", "entry_id", "text", "created_at", "updated_at").
		From(notesTableName).
		Where(sq.Eq{"entry_id": entryID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0)
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		r.log.Error("ListNotes", zap.Int64("entryId", entryID), zap.Error(err))
		return nil, err
	}
	return notes, nil
}
