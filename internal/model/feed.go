package model

import "time"

type Feed struct {
	ID          int64
	Title       string
	URL         string // subscription URL
	Link        string // site link, base for relative URL resolution
	FaviconPath *string
	LastSynced  time.Time
	UnreadCount int
	CreatedAt   time.Time
}
