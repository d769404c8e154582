// Package content turns fetched HTML into stored article content: it extracts
// the main region of a page, localizes images and strips active content.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"

	"kindlyrss/internal/config"
)

var ErrUnableToParse = errors.New("unable to parse html")

// Extractor pulls the article body out of a full HTML page. pageURL is the
// address the page was fetched from.
type Extractor interface {
	Extract(html, pageURL string) (string, error)
}

// NewExtractor builds the extractor selected by config.Extractor.
func NewExtractor(kind string) (Extractor, error) {
	switch kind {
	case config.ExtractorTags, "":
		return NewTagExtractor(), nil
	case config.ExtractorReadability:
		return NewReadabilityExtractor(), nil
	case config.ExtractorTagsReadability:
		return NewChainExtractor(NewTagExtractor(), NewReadabilityExtractor()), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", kind)
	}
}

// TagExtractor returns the inner HTML of the first <main> element, or of the
// first <article> element when the page has no <main>. It scans tags with
// regular expressions and does not build a DOM.
type TagExtractor struct {
	tags []tagPattern
}

type tagPattern struct {
	open  *regexp.Regexp
	close *regexp.Regexp
}

func NewTagExtractor() *TagExtractor {
	extractor := &TagExtractor{}
	for _, tag := range []string{"main", "article"} {
		extractor.tags = append(extractor.tags, tagPattern{
			open:  regexp.MustCompile(`(?i)<\s*` + tag + `\b[^>]*>`),
			close: regexp.MustCompile(`(?i)</\s*` + tag + `\s*>`),
		})
	}
	return extractor
}

func (e *TagExtractor) Extract(html, _ string) (string, error) {
	for _, tag := range e.tags {
		open := tag.open.FindStringIndex(html)
		if open == nil {
			continue
		}
		rest := html[open[1]:]
		closing := tag.close.FindStringIndex(rest)
		if closing == nil {
			continue
		}
		return rest[:closing[0]], nil
	}
	return "", ErrUnableToParse
}

// ReadabilityExtractor runs the readability algorithm over a pre-cleaned page.
type ReadabilityExtractor struct {
	policy *bluemonday.Policy
}

func NewReadabilityExtractor() *ReadabilityExtractor {
	// Scripts and similar elements confuse the readability scorer.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()
	return &ReadabilityExtractor{policy: p}
}

func (e *ReadabilityExtractor) Extract(html, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil || parsedURL.Host == "" {
		return "", fmt.Errorf("%w: invalid page url %q", ErrUnableToParse, pageURL)
	}

	cleaned := e.policy.Sanitize(html)

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(cleaned), parsedURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnableToParse, err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("%w: render: %v", ErrUnableToParse, err)
	}

	result := strings.TrimSpace(buf.String())
	if result == "" {
		return "", ErrUnableToParse
	}
	return result, nil
}

// ChainExtractor tries each extractor in order and returns the first success.
type ChainExtractor struct {
	extractors []Extractor
}

func NewChainExtractor(extractors ...Extractor) *ChainExtractor {
	return &ChainExtractor{extractors: extractors}
}

func (e *ChainExtractor) Extract(html, pageURL string) (string, error) {
	var errs []error
	for _, extractor := range e.extractors {
		result, err := extractor.Extract(html, pageURL)
		if err == nil {
			return result, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", ErrUnableToParse
	}
	return "", fmt.Errorf("%w: %w", ErrUnableToParse, errors.Join(errs...))
}
