package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type syncStatusResponse struct {
	Status  string `json:"status,omitempty"`
	Syncing bool   `json:"syncing"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrAlreadySyncing):
		return c.JSON(http.StatusConflict, errorResponse{Error: "sync already in progress"})
	case errors.Is(err, service.ErrFeedFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "feed fetch failed"})
	case errors.Is(err, service.ErrFeedFormat):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "feed format not supported"})
	case errors.Is(err, service.ErrArticleContent):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "article content unavailable"})
	default:
		logger.Error("request failed",
			"module", "handler",
			"action", "request",
			"resource", "http",
			"result", "failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
