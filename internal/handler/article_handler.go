package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/model"
	"kindlyrss/internal/service"
)

type ArticleHandler struct {
	service service.ArticleService
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

type articleResponse struct {
	ID          string  `json:"id"`
	FeedID      string  `json:"feedId"`
	Title       string  `json:"title"`
	Author      *string `json:"author,omitempty"`
	GUID        string  `json:"guid"`
	Link        *string `json:"link,omitempty"`
	HasContent  bool    `json:"hasContent"`
	HTMLParsed  bool    `json:"htmlParsed"`
	Read        bool    `json:"read"`
	LastUpdated string  `json:"lastUpdated"`
}

type articleListResponse struct {
	Feed     feedResponse      `json:"feed"`
	Articles []articleResponse `json:"articles"`
}

type articleDetailResponse struct {
	Article articleResponse `json:"article"`
	Content string          `json:"content"`
}

func NewArticleHandler(service service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feeds/:id/articles", h.List)
	g.GET("/feeds/:id/articles/:articleId", h.Get)
	g.POST("/feeds/:id/articles/:articleId/read", h.MarkRead)
}

// List returns a feed with its articles, newest first. A stale feed is
// synced before the response is written.
// @Summary List articles of a feed
// @Tags articles
// @Produce json
// @Param id path int true "Feed ID"
// @Success 200 {object} articleListResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /feeds/{id}/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	feedID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, articles, err := h.service.List(c.Request().Context(), feedID)
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

// Get returns an article with its content and marks it read.
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param id path int true "Feed ID"
// @Param articleId path int true "Article ID"
// @Success 200 {object} articleDetailResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /feeds/{id}/articles/{articleId} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	feedID, articleID, ok := parseArticleParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	article, content, err := h.service.Get(c.Request().Context(), feedID, articleID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, articleDetailResponse{
		Article: toArticleResponse(article),
		Content: content,
	})
}

// MarkRead sets the read flag of an article. An empty body marks it read.
// @Summary Mark an article read or unread
// @Tags articles
// @Accept json
// @Param id path int true "Feed ID"
// @Param articleId path int true "Article ID"
// @Param body body markReadRequest false "Read state"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /feeds/{id}/articles/{articleId}/read [post]
func (h *ArticleHandler) MarkRead(c echo.Context) error {
	feedID, articleID, ok := parseArticleParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	read := req.Read == nil || *req.Read
	if err := h.service.MarkRead(c.Request().Context(), feedID, articleID, read); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseArticleParams(c echo.Context) (int64, int64, bool) {
	feedID, err := parseIDParam(c, "id")
	if err != nil {
		return 0, 0, false
	}
	articleID, err := parseIDParam(c, "articleId")
	if err != nil {
		return 0, 0, false
	}
	return feedID, articleID, true
}

func toArticleResponse(article model.Article) articleResponse {
	return articleResponse{
		ID:          idToString(article.ID),
		FeedID:      idToString(article.FeedID),
		Title:       article.Title,
		Author:      article.Author,
		GUID:        article.GUID,
		Link:        article.Link,
		HasContent:  article.HasContent,
		HTMLParsed:  article.HTMLParsed,
		Read:        article.Read,
		LastUpdated: formatTimestamp(article.LastUpdated),
	}
}
