package model

import (
	"strings"
	"time"
)

type ReadingStatus string

const (
	StatusWantToRead       ReadingStatus = "WANT_TO_READ"
	StatusCurrentlyReading ReadingStatus = "CURRENTLY_READING"
	StatusFinished         ReadingStatus = "FINISHED"
	StatusFavoritesOnly    ReadingStatus = "FAVORITES_ONLY"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusFinished, StatusFavoritesOnly:
		return true
	}
	return false
}

const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// BookSummary is one remote catalog item. Instances are transient: they live
// in accumulated search-result lists and are snapshotted into a LibraryEntry
// when the user adds the book.
type BookSummary struct {
	ExternalID    string   `json:"externalId"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Description   string   `json:"description,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	PageCount     int      `json:"pageCount,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	AverageRating float64  `json:"averageRating,omitempty"`
	RatingsCount  int      `json:"ratingsCount,omitempty"`

	// annotation fields, stamped by the reconciliation service
	InLibrary  bool `json:"inLibrary"`
	IsFavorite bool `json:"isFavorite"`
}

type LibraryEntry struct {
	ID             int64         `json:"id" db:"id"`
	ExternalBookID string        `json:"externalBookId" db:"external_book_id"`
	Title          string        `json:"title" db:"title"`
	Authors        string        `json:"authors" db:"authors"`
	Thumbnail      string        `json:"thumbnail" db:"thumbnail"`
	Description    string        `json:"description" db:"description"`
	Publisher      string        `json:"publisher" db:"publisher"`
	PublishedDate  string        `json:"publishedDate" db:"published_date"`
	PageCount      int           `json:"pageCount" db:"page_count"`
	Categories     string        `json:"categories" db:"categories"`
	AverageRating  float64       `json:"averageRating" db:"average_rating"`
	RatingsCount   int           `json:"ratingsCount" db:"ratings_count"`
	ReadingStatus  ReadingStatus `json:"readingStatus" db:"reading_status"`
	IsFavorite     bool          `json:"isFavorite" db:"is_favorite"`
	CurrentPage    int           `json:"currentPage" db:"current_page"`
	DateAdded      time.Time     `json:"dateAdded" db:"date_added"`
	DateStarted    *time.Time    `json:"dateStarted,omitempty" db:"date_started"`
	DateFinished   *time.Time    `json:"dateFinished,omitempty" db:"date_finished"`
	UserID         *string       `json:"userId,omitempty" db:"user_id"`
}

type Note struct {
	ID        int64     `json:"id" db:"id"`
	EntryID   int64     `json:"entryId" db:"entry_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// EntryFromSummary snapshots a remote summary into a library entry, filling
// defaults for fields the provider left blank.
func EntryFromSummary(s BookSummary, status ReadingStatus, now time.Time) LibraryEntry {
	title := s.Title
	if title == "" {
		title = UnknownTitle
	}
	authors := strings.Join(s.Authors, ", ")
	if authors == "" {
		authors = UnknownAuthor
	}
	return LibraryEntry{
		ExternalBookID: s.ExternalID,
		Title:          title,
		Authors:        authors,
		Thumbnail:      s.Thumbnail,
		Description:    s.Description,
		Publisher:      s.Publisher,
		PublishedDate:  s.PublishedDate,
		PageCount:      s.PageCount,
		Categories:     strings.Join(s.Categories, ", "),
		AverageRating:  s.AverageRating,
		RatingsCount:   s.RatingsCount,
		ReadingStatus:  status,
		IsFavorite:     status == StatusFavoritesOnly,
		DateAdded:      now,
	}
}
