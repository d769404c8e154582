package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/service"
)

const maxOPMLSize = 5 << 20

var (
	errOPMLEmpty    = errors.New("empty document")
	errOPMLTooLarge = errors.New("document too large")
)

type OPMLHandler struct {
	service service.OPMLService
}

type importFailureResponse struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Created   int                     `json:"created"`
	Skipped   int                     `json:"skipped"`
	Failed    int                     `json:"failed"`
	Conflicts []string                `json:"conflicts"`
	Failures  []importFailureResponse `json:"failures"`
}

func NewOPMLHandler(service service.OPMLService) *OPMLHandler {
	return &OPMLHandler{service: service}
}

func (h *OPMLHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/opml/import", h.Import)
	g.GET("/opml/export", h.Export)
}

// Import subscribes to the feeds of an OPML document, sent either as the
// multipart field "file" or as the raw request body.
// @Summary Import OPML
// @Tags opml
// @Accept multipart/form-data
// @Accept xml
// @Produce json
// @Param file formData file false "OPML document"
// @Success 200 {object} importResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Router /opml/import [post]
func (h *OPMLHandler) Import(c echo.Context) error {
	payload, err := readOPMLPayload(c)
	switch {
	case errors.Is(err, errOPMLTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Import(c.Request().Context(), bytes.NewReader(payload))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toImportResponse(result))
}

// Export downloads every subscription as an OPML attachment.
// @Summary Export OPML
// @Tags opml
// @Produce xml
// @Success 200 {string} string "OPML document"
// @Router /opml/export [get]
func (h *OPMLHandler) Export(c echo.Context) error {
	payload, err := h.service.Export(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="kindlyrss.opml"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, payload)
}

func readOPMLPayload(c echo.Context) ([]byte, error) {
	var src io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, errors.New("missing file")
		}
		if header.Size > maxOPMLSize {
			return nil, errOPMLTooLarge
		}
		file, err := header.Open()
		if err != nil {
			return nil, errors.New("unreadable file")
		}
		defer file.Close()
		src = file
	}

	payload, err := io.ReadAll(io.LimitReader(src, maxOPMLSize+1))
	if err != nil {
		return nil, errors.New("unreadable body")
	}
	if len(payload) > maxOPMLSize {
		return nil, errOPMLTooLarge
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, errOPMLEmpty
	}
	return payload, nil
}

func toImportResponse(result service.ImportResult) importResponse {
	response := importResponse{
		Created:   result.FeedsCreated,
		Skipped:   result.FeedsSkipped,
		Failed:    result.FeedsFailed,
		Conflicts: make([]string, 0, len(result.Conflicts)),
		Failures:  make([]importFailureResponse, 0, len(result.Failures)),
	}
	response.Conflicts = append(response.Conflicts, result.Conflicts...)
	for _, failure := range result.Failures {
		response.Failures = append(response.Failures, importFailureResponse{URL: failure.URL, Reason: failure.Reason})
	}
	return response
}
