package content_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/config"
	"kindlyrss/internal/service/content"
)

func TestTagExtractor_PrefersMain(t *testing.T) {
	html := `<html><body><article>outer</article><MAIN class="x" id="m"><p>main body</p></Main></body></html>`

	result, err := content.NewTagExtractor().Extract(html, "https://example.com/post")
	require.NoError(t, err)
	require.Equal(t, "<p>main body</p>", result)
}

func TestTagExtractor_FallsBackToArticle(t *testing.T) {
	html := "<html><body>\n< article data-id=\"1\">\n<p>article body</p>\n</article></body></html>"

	result, err := content.NewTagExtractor().Extract(html, "")
	require.NoError(t, err)
	require.Equal(t, "\n<p>article body</p>\n", result)
}

func TestTagExtractor_IgnoresPrefixedTags(t *testing.T) {
	html := `<mainframe>nope</mainframe><article>yes</article>`

	result, err := content.NewTagExtractor().Extract(html, "")
	require.NoError(t, err)
	require.Equal(t, "yes", result)
}

func TestTagExtractor_UnableToParse(t *testing.T) {
	cases := []string{
		`<html><body><div>no regions</div></body></html>`,
		`<main>never closed`,
		``,
	}
	for _, html := range cases {
		_, err := content.NewTagExtractor().Extract(html, "")
		require.ErrorIs(t, err, content.ErrUnableToParse)
	}
}

type extractorFunc func(html, pageURL string) (string, error)

func (f extractorFunc) Extract(html, pageURL string) (string, error) {
	return f(html, pageURL)
}

func TestChainExtractor(t *testing.T) {
	failing := extractorFunc(func(string, string) (string, error) { return "", errors.New("boom") })
	second := extractorFunc(func(html, _ string) (string, error) { return "second:" + html, nil })

	result, err := content.NewChainExtractor(failing, second).Extract("x", "")
	require.NoError(t, err)
	require.Equal(t, "second:x", result)

	_, err = content.NewChainExtractor(failing, failing).Extract("x", "")
	require.ErrorIs(t, err, content.ErrUnableToParse)

	_, err = content.NewChainExtractor().Extract("x", "")
	require.ErrorIs(t, err, content.ErrUnableToParse)
}

func TestReadabilityExtractor(t *testing.T) {
	paragraph := "Readable paragraph about feed synchronization and caching, long enough to score well with the extractor. "
	page := `<html><head><title>Post</title><script>track()</script></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Post</h1><p>` + strings.Repeat(paragraph, 8) + `</p><p>` + strings.Repeat(paragraph, 8) + `</p></article>
<footer>footer links</footer></body></html>`

	result, err := content.NewReadabilityExtractor().Extract(page, "https://example.com/post")
	require.NoError(t, err)
	require.Contains(t, result, "Readable paragraph about feed synchronization")
	require.NotContains(t, result, "track()")
}

func TestReadabilityExtractor_InvalidURL(t *testing.T) {
	_, err := content.NewReadabilityExtractor().Extract("<p>x</p>", "not a url")
	require.ErrorIs(t, err, content.ErrUnableToParse)
}

func TestNewExtractor(t *testing.T) {
	for _, kind := range []string{config.ExtractorTags, config.ExtractorReadability, config.ExtractorTagsReadability} {
		extractor, err := content.NewExtractor(kind)
		require.NoError(t, err)
		require.NotNil(t, extractor)
	}

	_, err := content.NewExtractor("magic")
	require.Error(t, err)
}
