package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/model"
	"kindlyrss/internal/service"
)

type FeedHandler struct {
	service service.FeedService
}

type createFeedRequest struct {
	URL string `json:"url"`
}

type feedResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Link        string  `json:"link"`
	FaviconPath *string `json:"faviconPath,omitempty"`
	UnreadCount int     `json:"unreadCount"`
	LastSynced  *string `json:"lastSynced,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/feeds", h.Create)
	g.GET("/feeds", h.List)
	g.DELETE("/feeds/:id", h.Delete)
}

// Create subscribes to a feed.
// @Summary Create a feed
// @Description Subscribe to a new RSS/Atom feed
// @Tags feeds
// @Accept json
// @Produce json
// @Param feed body createFeedRequest true "Feed creation request"
// @Success 201 {object} feedResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /feeds [post]
func (h *FeedHandler) Create(c echo.Context) error {
	var req createFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Add(c.Request().Context(), req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedResponse(feed))
}

// List returns all feeds with their unread counts.
// @Summary List feeds
// @Tags feeds
// @Produce json
// @Success 200 {array} feedResponse
// @Router /feeds [get]
func (h *FeedHandler) List(c echo.Context) error {
	feeds, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]feedResponse, 0, len(feeds))
	for _, feed := range feeds {
		response = append(response, toFeedResponse(feed))
	}
	return c.JSON(http.StatusOK, response)
}

// Delete unsubscribes from a feed.
// @Summary Delete a feed
// @Description Unsubscribe from a feed and remove its articles, content and images
// @Tags feeds
// @Param id path int true "Feed ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /feeds/{id} [delete]
func (h *FeedHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toFeedResponse(feed model.Feed) feedResponse {
	return feedResponse{
		ID:          idToString(feed.ID),
		Title:       feed.Title,
		URL:         feed.URL,
		Link:        feed.Link,
		FaviconPath: feed.FaviconPath,
		UnreadCount: feed.UnreadCount,
		LastSynced:  optionalTimestamp(feed.LastSynced),
		CreatedAt:   formatTimestamp(feed.CreatedAt),
	}
}
