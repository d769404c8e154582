package service

import (
	"errors"
	"fmt"

	"kindlyrss/internal/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalid        = errors.New("invalid")
	ErrFeedFetch      = errors.New("feed fetch failed")
	ErrFeedFormat     = errors.New("feed format error")
	ErrArticleContent = errors.New("article content unavailable")
	ErrInconsistent   = errors.New("inconsistent state")
	ErrAlreadySyncing = errors.New("sync already in progress")
)

// FeedConflictError is returned when a feed URL already exists.
type FeedConflictError struct {
	ExistingFeed model.Feed
}

func (e *FeedConflictError) Error() string {
	return "feed already exists"
}

func (e *FeedConflictError) Is(target error) bool {
	return target == ErrConflict
}

// FeedFetchError is returned when the feed document itself cannot be downloaded.
type FeedFetchError struct {
	URL string
	Err error
}

func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FeedFetchError) Unwrap() error {
	return e.Err
}

func (e *FeedFetchError) Is(target error) bool {
	return target == ErrFeedFetch
}
