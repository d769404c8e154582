package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "kindlyrss/docs"
	"kindlyrss/internal/handler"
)

// Dirs are the on-disk locations served next to the API.
type Dirs struct {
	Static       string
	Images       string
	ImagesPrefix string
}

func NewRouter(
	feedHandler *handler.FeedHandler,
	articleHandler *handler.ArticleHandler,
	syncHandler *handler.SyncHandler,
	opmlHandler *handler.OPMLHandler,
	dirs Dirs,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	feedHandler.RegisterRoutes(api)
	articleHandler.RegisterRoutes(api)
	syncHandler.RegisterRoutes(api)
	opmlHandler.RegisterRoutes(api)

	registerFiles(e, "/static", dirs.Static)
	registerFiles(e, dirs.ImagesPrefix, dirs.Images)

	return e
}
