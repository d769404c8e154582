package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/logger"
)

// registerFiles serves regular files of dir under prefix. Directories and
// missing files answer 404.
func registerFiles(e *echo.Echo, prefix, dir string) {
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("file directory missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "prefix", prefix, "dir", dir)
	}

	prefix = "/" + strings.Trim(prefix, "/")
	fileServer := nethttp.StripPrefix(prefix, nethttp.FileServer(nethttp.Dir(dir)))

	e.GET(prefix+"/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		cleanPath := strings.TrimPrefix(path.Clean(strings.TrimPrefix(requestPath, prefix)), "/")
		if cleanPath == "." || cleanPath == "" {
			return echo.ErrNotFound
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err != nil || fileInfo.IsDir() {
			logger.Debug("file not found", "module", "http", "action", "fetch", "resource", "http", "result", "failed", "path", requestPath)
			return echo.ErrNotFound
		}

		logger.Debug("file served", "module", "http", "action", "fetch", "resource", "http", "result", "ok", "path", requestPath)
		fileServer.ServeHTTP(c.Response(), c.Request())
		return nil
	})
}
