package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"kindlyrss/internal/config"
	"kindlyrss/internal/logger"
	"kindlyrss/internal/metrics"
	"kindlyrss/internal/model"
	"kindlyrss/internal/network"
	"kindlyrss/internal/repository"
	"kindlyrss/internal/service/content"
	"kindlyrss/internal/service/feedparser"
	"kindlyrss/internal/service/imagestore"
	"kindlyrss/internal/snowflake"
)

// SyncService keeps stored articles in step with upstream feeds.
type SyncService interface {
	// FeedArticles returns the feed and its articles newest first, syncing
	// the feed first when it is stale.
	FeedArticles(ctx context.Context, feedID int64) (model.Feed, []model.Article, error)
	// SyncFeed syncs one feed unless it is fresh and force is false, and
	// returns all of its articles newest first.
	SyncFeed(ctx context.Context, feed model.Feed, force bool) ([]model.Article, error)
	// SyncAll syncs every stale feed one after another. Feed failures are
	// logged and skipped.
	SyncAll(ctx context.Context) error
	// ArticleContent returns the stored content of an article, fetching and
	// storing it first when the article was saved without content.
	ArticleContent(ctx context.Context, feedID, articleID int64) (model.Article, string, error)
	IsSyncing() bool
}

// ImageRewriter localizes the images referenced by article HTML.
type ImageRewriter interface {
	Rewrite(ctx context.Context, html, feedLink string, scope imagestore.Scope) string
}

type SyncOptions struct {
	RefreshInterval time.Duration

	// MaxArticlesToDownload bounds how many link-only items of one sync get
	// their page downloaded. config.UnlimitedDownloads removes the bound.
	MaxArticlesToDownload int

	Now func() time.Time
}

type processMode int

const (
	modeInline processMode = iota
	modeDownload
	modeDeferred
)

func (m processMode) String() string {
	switch m {
	case modeInline:
		return "inline"
	case modeDownload:
		return "download"
	default:
		return "deferred"
	}
}

type plannedItem struct {
	article model.Article
	item    feedparser.ParsedItem
	mode    processMode
}

type syncService struct {
	feeds      repository.FeedRepository
	articles   repository.ArticleRepository
	contents   repository.ContentRepository
	feedGetter network.Fetcher
	pageGetter network.Fetcher
	parser     *feedparser.Parser
	extractor  content.Extractor
	rewriter   ImageRewriter
	opts       SyncOptions

	inflight  singleflight.Group
	mu        sync.Mutex
	isSyncing bool
}

func NewSyncService(
	feeds repository.FeedRepository,
	articles repository.ArticleRepository,
	contents repository.ContentRepository,
	feedGetter network.Fetcher,
	pageGetter network.Fetcher,
	extractor content.Extractor,
	rewriter ImageRewriter,
	opts SyncOptions,
) SyncService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if pageGetter == nil {
		pageGetter = feedGetter
	}
	return &syncService{
		feeds:      feeds,
		articles:   articles,
		contents:   contents,
		feedGetter: feedGetter,
		pageGetter: pageGetter,
		parser:     &feedparser.Parser{Now: opts.Now},
		extractor:  extractor,
		rewriter:   rewriter,
		opts:       opts,
	}
}

func (s *syncService) FeedArticles(ctx context.Context, feedID int64) (model.Feed, []model.Article, error) {
	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feed{}, nil, ErrNotFound
		}
		return model.Feed{}, nil, fmt.Errorf("get feed: %w", err)
	}

	articles, err := s.SyncFeed(ctx, feed, false)
	if err != nil {
		return model.Feed{}, nil, err
	}
	return feed, articles, nil
}

func (s *syncService) SyncFeed(ctx context.Context, feed model.Feed, force bool) ([]model.Article, error) {
	if !force && s.isFresh(feed) {
		metrics.RecordSync("fresh", 0)
		articles, err := s.articles.ListByFeed(ctx, feed.ID)
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		return articles, nil
	}

	// Concurrent requests for one feed share a single sync.
	result, err, _ := s.inflight.Do(strconv.FormatInt(feed.ID, 10), func() (any, error) {
		return s.syncStale(context.WithoutCancel(ctx), feed)
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.Article), nil
}

func (s *syncService) isFresh(feed model.Feed) bool {
	return s.opts.Now().Sub(feed.LastSynced) <= s.opts.RefreshInterval
}

func (s *syncService) syncStale(ctx context.Context, feed model.Feed) ([]model.Article, error) {
	start := time.Now()
	articles, err := s.syncStaleInner(ctx, feed)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordSync("failed", duration.Seconds())
		logger.Error("feed sync failed",
			"module", "service",
			"action", "sync",
			"resource", "feed",
			"result", "failed",
			"feed_id", feed.ID,
			"url", feed.URL,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	metrics.RecordSync("synced", duration.Seconds())
	return articles, nil
}

func (s *syncService) syncStaleInner(ctx context.Context, feed model.Feed) ([]model.Article, error) {
	raw, err := s.feedGetter.Get(ctx, feed.URL)
	if err != nil {
		return nil, &FeedFetchError{URL: feed.URL, Err: err}
	}

	parsed, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedFormat, err)
	}

	stored, err := s.articles.ListByFeed(ctx, feed.ID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	candidates := newKnownArticles(stored).newItems(feed.ID, parsed.Items)
	if len(candidates) == 0 {
		if err := s.feeds.UpdateLastSynced(ctx, feed.ID, s.opts.Now()); err != nil {
			return nil, fmt.Errorf("update last synced: %w", err)
		}
		logger.Info("feed up to date",
			"module", "service",
			"action", "sync",
			"resource", "feed",
			"result", "ok",
			"feed_id", feed.ID,
			"new", 0,
		)
		return stored, nil
	}

	plan := s.plan(feed, candidates)
	processed := s.process(ctx, feed, plan)
	fresh := lo.Map(processed, func(item model.ArticleContent, _ int) model.Article {
		return item.Article
	})

	if err := s.articles.Upsert(ctx, feed.ID, fresh); err != nil {
		return nil, fmt.Errorf("save articles: %w", err)
	}
	if err := s.contents.Save(ctx, processed); err != nil {
		logger.Warn("article content save failed",
			"module", "service",
			"action", "sync",
			"resource", "content",
			"result", "failed",
			"feed_id", feed.ID,
			"error", err,
		)
	}
	if err := s.feeds.UpdateLastSynced(ctx, feed.ID, s.opts.Now()); err != nil {
		return nil, fmt.Errorf("update last synced: %w", err)
	}

	logger.Info("feed synced",
		"module", "service",
		"action", "sync",
		"resource", "feed",
		"result", "ok",
		"feed_id", feed.ID,
		"new", len(candidates),
		"saved", len(fresh),
	)

	return mergeArticles(stored, fresh), nil
}

// plan assigns article identities and decides, in feed order, which items
// download their page. Items with inline content never count against the
// download quota.
func (s *syncService) plan(feed model.Feed, items []feedparser.ParsedItem) []plannedItem {
	plan := make([]plannedItem, 0, len(items))
	downloads := 0
	counts := map[processMode]int{}
	for _, item := range items {
		mode := modeDeferred
		switch {
		case item.Content != "":
			mode = modeInline
		case item.Link != "" && s.downloadAllowed(downloads):
			mode = modeDownload
			downloads++
		}
		counts[mode]++

		plan = append(plan, plannedItem{
			article: model.Article{
				ID:          snowflake.NextID(),
				FeedID:      feed.ID,
				Title:       item.Title,
				Author:      optionalString(item.Author),
				GUID:        item.GUID,
				Link:        optionalString(item.Link),
				LastUpdated: item.PubDate,
			},
			item: item,
			mode: mode,
		})
	}
	for mode, count := range counts {
		metrics.RecordDiscovered(mode.String(), count)
	}
	return plan
}

func (s *syncService) downloadAllowed(used int) bool {
	limit := s.opts.MaxArticlesToDownload
	return limit == config.UnlimitedDownloads || used < limit
}

// process runs one goroutine per item and waits for all of them. Failed
// items are logged and left out; the result keeps feed order.
func (s *syncService) process(ctx context.Context, feed model.Feed, plan []plannedItem) []model.ArticleContent {
	results := make([]*model.ArticleContent, len(plan))

	var g errgroup.Group
	for i, planned := range plan {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v", r)
				}
				if err != nil {
					metrics.RecordProcessFailure(planned.mode.String())
					logger.Warn("article processing failed",
						"module", "service",
						"action", "sync",
						"resource", "article",
						"result", "failed",
						"feed_id", feed.ID,
						"article_id", planned.article.ID,
						"url", planned.item.Link,
						"mode", planned.mode.String(),
						"error", err,
					)
				}
				// A failed item never fails the batch.
				err = nil
			}()

			result, err := s.processItem(ctx, feed, planned)
			if err != nil {
				return err
			}
			results[i] = &result
			return nil
		})
	}
	_ = g.Wait()

	processed := make([]model.ArticleContent, 0, len(results))
	for _, result := range results {
		if result != nil {
			processed = append(processed, *result)
		}
	}
	return processed
}

func (s *syncService) processItem(ctx context.Context, feed model.Feed, planned plannedItem) (model.ArticleContent, error) {
	article := planned.article
	scope := imagestore.Scope{FeedID: feed.ID, ArticleID: article.ID}

	switch planned.mode {
	case modeInline:
		html := s.rewriter.Rewrite(ctx, planned.item.Content, feed.Link, scope)
		html = content.Sanitize(html)
		article.HasContent = true
		return model.ArticleContent{Article: article, Content: &html}, nil
	case modeDownload:
		html, err := s.renderPage(ctx, feed, planned.item.Link, scope)
		if err != nil {
			return model.ArticleContent{}, err
		}
		article.HTMLParsed = true
		article.HasContent = true
		return model.ArticleContent{Article: article, Content: &html}, nil
	default:
		return model.ArticleContent{Article: article}, nil
	}
}

// renderPage downloads an article page and runs it through extraction,
// image rewriting and sanitizing.
func (s *syncService) renderPage(ctx context.Context, feed model.Feed, link string, scope imagestore.Scope) (string, error) {
	page, err := s.pageGetter.Get(ctx, link)
	if err != nil {
		return "", fmt.Errorf("download page: %w", err)
	}
	extracted, err := s.extractor.Extract(string(page), link)
	if err != nil {
		return "", fmt.Errorf("extract page: %w", err)
	}
	html := s.rewriter.Rewrite(ctx, extracted, feed.Link, scope)
	return content.Sanitize(html), nil
}

func (s *syncService) SyncAll(ctx context.Context) error {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		return ErrAlreadySyncing
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	feeds, err := s.feeds.List(ctx)
	if err != nil {
		return fmt.Errorf("list feeds: %w", err)
	}

	synced, failed := 0, 0
	for _, feed := range feeds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.isFresh(feed) {
			continue
		}
		if _, err := s.SyncFeed(ctx, feed, false); err != nil {
			failed++
			continue
		}
		synced++
	}

	logger.Info("sync all completed",
		"module", "service",
		"action", "sync",
		"resource", "feeds",
		"result", "ok",
		"total", len(feeds),
		"synced", synced,
		"failed", failed,
	)
	return nil
}

func (s *syncService) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSyncing
}

func (s *syncService) ArticleContent(ctx context.Context, feedID, articleID int64) (model.Article, string, error) {
	article, err := s.articles.Get(ctx, feedID, articleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, "", ErrNotFound
		}
		return model.Article{}, "", fmt.Errorf("get article: %w", err)
	}

	cached, err := s.contents.Get(ctx, feedID, articleID)
	if err != nil {
		return model.Article{}, "", fmt.Errorf("get content: %w", err)
	}
	if cached != nil {
		metrics.RecordLazyFetch("cached")
		return article, *cached, nil
	}

	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, "", fmt.Errorf("%w: feed %d of article %d missing", ErrInconsistent, feedID, articleID)
		}
		return model.Article{}, "", fmt.Errorf("get feed: %w", err)
	}

	link := lo.FromPtr(article.Link)
	if link == "" {
		metrics.RecordLazyFetch("failed")
		return model.Article{}, "", fmt.Errorf("%w: article %d has no link", ErrArticleContent, articleID)
	}

	html, err := s.renderPage(ctx, feed, link, imagestore.Scope{FeedID: feedID, ArticleID: articleID})
	if err != nil {
		metrics.RecordLazyFetch("failed")
		return model.Article{}, "", fmt.Errorf("%w: %w", ErrArticleContent, err)
	}

	article.HTMLParsed = true
	article.HasContent = true
	if err := s.contents.Save(ctx, []model.ArticleContent{{Article: article, Content: &html}}); err != nil {
		logger.Warn("article content save failed",
			"module", "service",
			"action", "fetch",
			"resource", "content",
			"result", "failed",
			"feed_id", feedID,
			"article_id", articleID,
			"error", err,
		)
	}
	metrics.RecordLazyFetch("fetched")
	return article, html, nil
}

// mergeArticles orders stored and new articles newest first. Ties keep
// stored articles ahead of new ones.
func mergeArticles(stored, fresh []model.Article) []model.Article {
	merged := make([]model.Article, 0, len(stored)+len(fresh))
	merged = append(merged, stored...)
	merged = append(merged, fresh...)
	slices.SortStableFunc(merged, func(a, b model.Article) int {
		return b.LastUpdated.Compare(a.LastUpdated)
	})
	return merged
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
