package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/model"
	"kindlyrss/internal/network"
	"kindlyrss/internal/repository"
	"kindlyrss/internal/service/content"
	"kindlyrss/internal/service/feedparser"
	"kindlyrss/internal/service/imagestore"
)

type FeedService interface {
	Add(ctx context.Context, feedURL string) (model.Feed, error)
	List(ctx context.Context) ([]model.Feed, error)
	Get(ctx context.Context, id int64) (model.Feed, error)
	// Delete removes the feed, its articles, stored content and images.
	Delete(ctx context.Context, id int64) error
}

type feedService struct {
	feeds    repository.FeedRepository
	contents repository.ContentRepository
	images   imagestore.Fetcher
	fetcher  network.Fetcher
}

func NewFeedService(feeds repository.FeedRepository, contents repository.ContentRepository, images imagestore.Fetcher, fetcher network.Fetcher) FeedService {
	return &feedService{feeds: feeds, contents: contents, images: images, fetcher: fetcher}
}

func (s *feedService) Add(ctx context.Context, feedURL string) (model.Feed, error) {
	trimmedURL := strings.TrimSpace(feedURL)
	if !isValidURL(trimmedURL) {
		return model.Feed{}, ErrInvalid
	}
	if existing, err := s.feeds.FindByURL(ctx, trimmedURL); err != nil {
		return model.Feed{}, fmt.Errorf("check feed url: %w", err)
	} else if existing != nil {
		return model.Feed{}, &FeedConflictError{ExistingFeed: *existing}
	}

	raw, err := s.fetcher.Get(ctx, trimmedURL)
	if err != nil {
		return model.Feed{}, &FeedFetchError{URL: trimmedURL, Err: err}
	}
	parsed, err := feedparser.Parse(raw)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrFeedFormat, err)
	}

	title := parsed.Title
	if title == "" {
		title = trimmedURL
	}

	// A zero LastSynced makes the first article list sync the feed.
	created, err := s.feeds.Create(ctx, model.Feed{
		Title: title,
		URL:   trimmedURL,
		Link:  parsed.Link,
	})
	if err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}

	logger.Info("feed added",
		"module", "service",
		"action", "create",
		"resource", "feed",
		"result", "ok",
		"feed_id", created.ID,
		"url", trimmedURL,
	)

	if faviconPath, ok := s.storeFavicon(ctx, created); ok {
		created.FaviconPath = &faviconPath
	}
	return created, nil
}

// storeFavicon looks for the icon declared by the feed's site, falling back
// to /favicon.ico. Failures only cost the feed its icon.
func (s *feedService) storeFavicon(ctx context.Context, feed model.Feed) (string, bool) {
	iconURL, ok := "", false
	if page, err := s.fetcher.Get(ctx, feed.Link); err == nil {
		iconURL, ok = content.FindFavicon(string(page), feed.Link)
	}
	if !ok {
		iconURL, ok = content.DefaultFaviconURL(feed.Link)
	}
	if !ok {
		return "", false
	}

	stored, err := s.images.Fetch(ctx, iconURL, imagestore.Scope{FeedID: feed.ID})
	if err != nil {
		logger.Warn("favicon fetch failed",
			"module", "service",
			"action", "fetch",
			"resource", "favicon",
			"result", "failed",
			"feed_id", feed.ID,
			"url", iconURL,
			"error", err,
		)
		return "", false
	}
	if err := s.feeds.UpdateFavicon(ctx, feed.ID, stored.PublicPath); err != nil {
		logger.Warn("favicon save failed",
			"module", "service",
			"action", "update",
			"resource", "favicon",
			"result", "failed",
			"feed_id", feed.ID,
			"error", err,
		)
		return "", false
	}
	return stored.PublicPath, true
}

func (s *feedService) List(ctx context.Context) ([]model.Feed, error) {
	feeds, err := s.feeds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return feeds, nil
}

func (s *feedService) Get(ctx context.Context, id int64) (model.Feed, error) {
	feed, err := s.feeds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feed{}, ErrNotFound
		}
		return model.Feed{}, fmt.Errorf("get feed: %w", err)
	}
	return feed, nil
}

func (s *feedService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.feeds.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	if err := s.contents.DeleteFeed(ctx, id); err != nil {
		logger.Warn("feed content cleanup failed",
			"module", "service",
			"action", "delete",
			"resource", "content",
			"result", "failed",
			"feed_id", id,
			"error", err,
		)
	}
	if err := s.images.DeleteFeed(ctx, id); err != nil {
		logger.Warn("feed image cleanup failed",
			"module", "service",
			"action", "delete",
			"resource", "image",
			"result", "failed",
			"feed_id", id,
			"error", err,
		)
	}

	logger.Info("feed deleted",
		"module", "service",
		"action", "delete",
		"resource", "feed",
		"result", "ok",
		"feed_id", id,
	)
	return nil
}

func isValidURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
