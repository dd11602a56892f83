package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	keyDarkMode      = "dark_mode"
	keyLanguage      = "language"
	keySearchHistory = "search_history"

	// HistoryCap bounds the recent-search list.
	HistoryCap = 5
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type Store struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewStore(db *sqlx.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log.Named("settings")}
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := qb.Select("value").From("settings").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}
	var value string
	if err := s.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	q := `
insert into settings (key, value) values (?, ?)
on conflict(key) do update set value = excluded.value`
	_, err := s.db.ExecContext(ctx, q, key, value)
	if err != nil {
		s.log.Error("set", zap.String("key", key), zap.Error(err))
	}
	return err
}

func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	v, ok, err := s.get(ctx, keyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	return strconv.ParseBool(v)
}

func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	return s.set(ctx, keyDarkMode, strconv.FormatBool(on))
}

func (s *Store) Language(ctx context.Context) (string, error) {
	v, ok, err := s.get(ctx, keyLanguage)
	if err != nil || !ok {
		return "en", err
	}
	return v, nil
}

func (s *Store) SetLanguage(ctx context.Context, code string) error {
	return s.set(ctx, keyLanguage, code)
}

func (s *Store) SearchHistory(ctx context.Context) ([]string, error) {
	v, ok, err := s.get(ctx, keySearchHistory)
	if err != nil || !ok {
		return []string{}, err
	}
	var history []string
	if err := json.Unmarshal([]byte(v), &history); err != nil {
		return nil, errors.Wrap(err, "decode search history")
	}
	return history, nil
}

// AppendSearchHistory puts query at the head of the recent-search list,
// removing any earlier occurrence and trimming to HistoryCap.
func (s *Store) AppendSearchHistory(ctx context.Context, query string) error {
	if query == "" {
		return nil
	}
	history, err := s.SearchHistory(ctx)
	if err != nil {
		return err
	}
	next := make([]string, 0, HistoryCap)
	next = append(next, query)
	for _, h := range history {
		if h == query {
			continue
		}
		next = append(next, h)
		if len(next) == HistoryCap {
			break
		}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	return s.set(ctx, keySearchHistory, string(data))
}
