package model

import "time"

type LibraryEventType string

const (
	EventAdded           LibraryEventType = "ADDED"
	EventRemoved         LibraryEventType = "REMOVED"
	EventStatusChanged   LibraryEventType = "STATUS_CHANGED"
	EventFavoriteToggled LibraryEventType = "FAVORITE_TOGGLED"
	EventProgressUpdated LibraryEventType = "PROGRESS_UPDATED"
)

// LibraryEvent is published after a successful library mutation.
type LibraryEvent struct {
	ID             string           `json:"id"`
	Type           LibraryEventType `json:"type"`
	ExternalBookID string           `json:"externalBookId"`
	Status         ReadingStatus    `json:"status,omitempty"`
	Favorite       bool             `json:"favorite,omitempty"`
	At             time.Time        `json:"at"`
}
