package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/service"
)

type SyncHandler struct {
	syncer service.SyncService
	feeds  service.FeedService

	// background runs derive from runCtx so Shutdown can cancel them.
	mu      sync.Mutex
	runCtx  context.Context
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func NewSyncHandler(syncer service.SyncService, feeds service.FeedService) *SyncHandler {
	runCtx, cancel := context.WithCancel(context.Background())
	return &SyncHandler{syncer: syncer, feeds: feeds, runCtx: runCtx, cancel: cancel}
}

// Shutdown cancels background syncs started by SyncAll and waits for them to
// return, or for ctx to expire.
func (h *SyncHandler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.cancel()
	h.mu.Unlock()
	done := make(chan struct{})
	go func() {
		h.running.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync", h.SyncAll)
	g.GET("/sync", h.Status)
	g.POST("/feeds/:id/sync", h.SyncFeed)
}

// SyncAll starts a background sync of every stale feed.
// @Summary Sync all feeds
// @Tags sync
// @Produce json
// @Success 202 {object} syncStatusResponse
// @Failure 409 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /sync [post]
func (h *SyncHandler) SyncAll(c echo.Context) error {
	if h.syncer.IsSyncing() {
		return writeServiceError(c, service.ErrAlreadySyncing)
	}
	h.mu.Lock()
	if h.runCtx.Err() != nil {
		h.mu.Unlock()
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "shutting down"})
	}
	h.running.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.running.Done()
		err := h.syncer.SyncAll(h.runCtx)
		if err != nil && !errors.Is(err, service.ErrAlreadySyncing) && !errors.Is(err, context.Canceled) {
			logger.Error("background sync failed", "module", "handler", "action", "sync", "resource", "feed", "result", "failed", "error", err)
		}
	}()
	return c.JSON(http.StatusAccepted, syncStatusResponse{Status: "started", Syncing: true})
}

// Status reports whether a full sync is running.
// @Summary Sync status
// @Tags sync
// @Produce json
// @Success 200 {object} syncStatusResponse
// @Router /sync [get]
func (h *SyncHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, syncStatusResponse{Syncing: h.syncer.IsSyncing()})
}

// SyncFeed syncs one feed now, ignoring the refresh interval.
// @Summary Sync a feed
// @Tags sync
// @Produce json
// @Param id path int true "Feed ID"
// @Success 200 {object} articleListResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /feeds/{id}/sync [post]
func (h *SyncHandler) SyncFeed(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ctx := c.Request().Context()
	feed, err := h.feeds.Get(ctx, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	articles, err := h.syncer.SyncFeed(ctx, feed, true)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := articleListResponse{
		Feed:     toFeedResponse(feed),
		Articles: make([]articleResponse, 0, len(articles)),
	}
	for _, article := range articles {
		response.Articles = append(response.Articles, toArticleResponse(article))
	}
	return c.JSON(http.StatusOK, response)
}
