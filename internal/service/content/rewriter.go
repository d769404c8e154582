package content

import (
	"context"
	"html"
	"regexp"
	"strings"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/metrics"
	"kindlyrss/internal/service/imagestore"
)

// DefaultPlaceholder replaces images that could not be stored.
const DefaultPlaceholder = "/static/error_processing_image.png"

// The src attribute must follow whitespace so data-src and similar lazy
// loading attributes are left alone.
var imgSrcPattern = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*['"]([^'"]+)['"][^>]*>`)

// Rewriter stores every image referenced by article HTML locally and points
// the img tags at the stored copies.
type Rewriter struct {
	images      imagestore.Fetcher
	placeholder string
}

func NewRewriter(images imagestore.Fetcher, placeholder string) *Rewriter {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Rewriter{images: images, placeholder: placeholder}
}

// Rewrite replaces the src of each img tag with the public path of the stored
// image. Relative sources are resolved against feedLink. An image that cannot
// be fetched or stored gets the placeholder; Rewrite itself never fails.
// Images are fetched one after another.
func (r *Rewriter) Rewrite(ctx context.Context, html, feedLink string, scope imagestore.Scope) string {
	matches := imgSrcPattern.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return html
	}

	var out strings.Builder
	out.Grow(len(html))
	last := 0
	for _, match := range matches {
		srcStart, srcEnd := match[2], match[3]
		src := html[srcStart:srcEnd]

		out.WriteString(html[last:srcStart])
		out.WriteString(r.replacement(ctx, src, feedLink, scope))
		last = srcEnd
	}
	out.WriteString(html[last:])
	return out.String()
}

func (r *Rewriter) replacement(ctx context.Context, rawSrc, feedLink string, scope imagestore.Scope) string {
	src := html.UnescapeString(strings.TrimSpace(rawSrc))
	if isDataURI(src) {
		metrics.RecordImage("passthrough")
		return rawSrc
	}

	imageURL := ResolveImageURL(src, feedLink)
	stored, err := r.images.Fetch(ctx, imageURL, scope)
	if err != nil {
		metrics.RecordImage("placeholder")
		logger.Warn("image processing failed",
			"module", "content",
			"action", "rewrite",
			"resource", "image",
			"result", "failed",
			"feed_id", scope.FeedID,
			"article_id", scope.ArticleID,
			"url", imageURL,
			"error", err,
		)
		return r.placeholder
	}
	metrics.RecordImage("stored")
	return stored.PublicPath
}

func isDataURI(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "/data:")
}

// ResolveImageURL turns an img src into a fetchable URL. Absolute http(s)
// sources are returned unchanged and protocol-relative ones take the scheme
// of feedLink. Anything else is joined to feedLink with exactly one slash
// between them.
func ResolveImageURL(src, feedLink string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if strings.HasPrefix(src, "//") {
		scheme := "https"
		if strings.HasPrefix(feedLink, "http://") {
			scheme = "http"
		}
		return scheme + ":" + src
	}

	srcRooted := strings.HasPrefix(src, "/")
	linkSlashed := strings.HasSuffix(feedLink, "/")
	switch {
	case srcRooted && linkSlashed:
		return feedLink + src[1:]
	case srcRooted, linkSlashed:
		return feedLink + src
	default:
		return feedLink + "/" + src
	}
}
