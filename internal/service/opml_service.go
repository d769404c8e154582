package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/model"
	"kindlyrss/internal/opml"
	"kindlyrss/internal/repository"
)

const importConcurrency = 4

type OPMLService interface {
	// Import subscribes to every feed in the document. Folders are flattened.
	// A feed that cannot be added is counted and skipped.
	Import(ctx context.Context, reader io.Reader) (ImportResult, error)
	Export(ctx context.Context) ([]byte, error)
}

type ImportResult struct {
	FeedsCreated int
	FeedsSkipped int
	FeedsFailed  int
	// Conflicts lists the already subscribed URLs, sorted.
	Conflicts []string
	// Failures is sorted by URL.
	Failures []ImportFailure
}

type ImportFailure struct {
	URL    string
	Reason string
}

type opmlService struct {
	feedService FeedService
	feeds       repository.FeedRepository
}

func NewOPMLService(feedService FeedService, feeds repository.FeedRepository) OPMLService {
	return &opmlService{feedService: feedService, feeds: feeds}
}

func (s *opmlService) Import(ctx context.Context, reader io.Reader) (ImportResult, error) {
	doc, err := opml.Parse(reader)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	outlines := doc.Feeds()
	logger.Info("opml import parsed", "module", "service", "action", "import", "resource", "opml", "result", "ok", "count", len(outlines))

	var (
		mu     sync.Mutex
		result ImportResult
	)
	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}
	conflict := func(feedURL string) {
		mu.Lock()
		result.FeedsSkipped++
		result.Conflicts = append(result.Conflicts, feedURL)
		mu.Unlock()
	}
	fail := func(feedURL string, err error) {
		mu.Lock()
		result.FeedsFailed++
		result.Failures = append(result.Failures, ImportFailure{URL: feedURL, Reason: err.Error()})
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(importConcurrency)
	for _, outline := range outlines {
		if ctx.Err() != nil {
			break
		}
		feedURL := strings.TrimSpace(outline.XMLURL)
		if feedURL == "" {
			count(&result.FeedsSkipped)
			continue
		}
		g.Go(func() error {
			_, err := s.feedService.Add(ctx, feedURL)
			switch {
			case err == nil:
				count(&result.FeedsCreated)
			case errors.Is(err, ErrConflict):
				conflict(feedURL)
			default:
				fail(feedURL, err)
				logger.Warn("opml feed import failed", "module", "service", "action", "import", "resource", "feed", "result", "failed", "url", feedURL, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
	sort.Strings(result.Conflicts)
	sort.Slice(result.Failures, func(i, j int) bool { return result.Failures[i].URL < result.Failures[j].URL })

	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger.Info("opml import completed", "module", "service", "action", "import", "resource", "opml", "result", "ok", "feeds_created", result.FeedsCreated, "feeds_skipped", result.FeedsSkipped, "feeds_failed", result.FeedsFailed)
	return result, nil
}

func (s *opmlService) Export(ctx context.Context) ([]byte, error) {
	feeds, err := s.feeds.List(ctx)
	if err != nil {
		logger.Error("opml export list feeds failed", "module", "service", "action", "export", "resource", "opml", "result", "failed", "error", err)
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	date := time.Now().UTC().Format(time.RFC1123Z)
	doc := opml.Document{
		Version: "2.0",
		Head: opml.Head{
			Title:        "KindlyRSS Subscriptions",
			DateCreated:  date,
			DateModified: date,
		},
	}
	for _, feed := range feeds {
		doc.Body.Outlines = append(doc.Body.Outlines, feedOutline(feed))
	}

	payload, err := opml.Encode(doc)
	if err != nil {
		logger.Error("opml export encode failed", "module", "service", "action", "export", "resource", "opml", "result", "failed", "error", err)
		return nil, fmt.Errorf("encode opml: %w", err)
	}
	logger.Info("opml export completed", "module", "service", "action", "export", "resource", "opml", "result", "ok", "feeds", len(feeds))
	return payload, nil
}

func feedOutline(feed model.Feed) opml.Outline {
	return opml.Outline{
		Text:    feed.Title,
		Title:   feed.Title,
		Type:    "rss",
		XMLURL:  feed.URL,
		HTMLURL: feed.Link,
	}
}
