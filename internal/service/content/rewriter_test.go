package content_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/service/content"
	"kindlyrss/internal/service/imagestore"
)

type stubImages struct {
	fetched []string
	fail    map[string]bool
}

func (s *stubImages) Fetch(_ context.Context, url string, scope imagestore.Scope) (imagestore.StoredImage, error) {
	s.fetched = append(s.fetched, url)
	if s.fail[url] {
		return imagestore.StoredImage{}, &imagestore.DownloadError{URL: url, Err: errors.New("404")}
	}
	name := "img" + string(rune('0'+len(s.fetched))) + ".png"
	return imagestore.StoredImage{
		StoragePath: "/data/images/" + name,
		PublicPath:  "/images/1/2/" + name,
	}, nil
}

func (s *stubImages) DeleteFeed(context.Context, int64) error {
	return nil
}

func TestResolveImageURL(t *testing.T) {
	cases := []struct {
		src, link, want string
	}{
		{"/img.png", "https://ex.com", "https://ex.com/img.png"},
		{"/img.png", "https://ex.com/", "https://ex.com/img.png"},
		{"img.png", "https://ex.com", "https://ex.com/img.png"},
		{"img.png", "https://ex.com/", "https://ex.com/img.png"},
		{"https://cdn.ex.com/a.png", "https://ex.com", "https://cdn.ex.com/a.png"},
		{"http://cdn.ex.com/a.png", "https://ex.com/", "http://cdn.ex.com/a.png"},
		{"//cdn.ex.com/a.png", "http://ex.com", "http://cdn.ex.com/a.png"},
		{"//cdn.ex.com/a.png", "https://ex.com", "https://cdn.ex.com/a.png"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, content.ResolveImageURL(tc.src, tc.link), "src=%q link=%q", tc.src, tc.link)
	}
}

func TestRewriter_ReplacesSrcInPlace(t *testing.T) {
	images := &stubImages{}
	rewriter := content.NewRewriter(images, "")

	html := `<p>a</p><img class="hero" src="/a.png" alt="/a.png"><p>b</p><IMG src='https://cdn.ex.com/b.png' width="10"/>`
	result := rewriter.Rewrite(context.Background(), html, "https://ex.com", imagestore.Scope{FeedID: 1, ArticleID: 2})

	require.Equal(t,
		`<p>a</p><img class="hero" src="/images/1/2/img1.png" alt="/a.png"><p>b</p><IMG src='/images/1/2/img2.png' width="10"/>`,
		result,
	)
	require.Equal(t, []string{"https://ex.com/a.png", "https://cdn.ex.com/b.png"}, images.fetched)
}

func TestRewriter_DataURIPassThrough(t *testing.T) {
	images := &stubImages{}
	rewriter := content.NewRewriter(images, "")

	html := `<img src="data:image/png;base64,AAAA"><img src="/data:image/gif;base64,BBBB">`
	result := rewriter.Rewrite(context.Background(), html, "https://ex.com", imagestore.Scope{})

	require.Equal(t, html, result)
	require.Empty(t, images.fetched)
}

func TestRewriter_PlaceholderOnFailure(t *testing.T) {
	images := &stubImages{fail: map[string]bool{"https://ex.com/broken.png": true}}
	rewriter := content.NewRewriter(images, "")

	html := `<img src="broken.png"><img src="ok.png">`
	result := rewriter.Rewrite(context.Background(), html, "https://ex.com", imagestore.Scope{FeedID: 1, ArticleID: 2})

	require.Equal(t, `<img src="/static/error_processing_image.png"><img src="/images/1/2/img2.png">`, result)
}

func TestRewriter_CustomPlaceholder(t *testing.T) {
	images := &stubImages{fail: map[string]bool{"https://ex.com/x.png": true}}
	rewriter := content.NewRewriter(images, "/static/missing.png")

	result := rewriter.Rewrite(context.Background(), `<img src="/x.png">`, "https://ex.com/", imagestore.Scope{})
	require.Equal(t, `<img src="/static/missing.png">`, result)
}

func TestRewriter_NoImages(t *testing.T) {
	rewriter := content.NewRewriter(&stubImages{}, "")
	html := `<p>no images, just <b>text</b></p>`
	require.Equal(t, html, rewriter.Rewrite(context.Background(), html, "https://ex.com", imagestore.Scope{}))
}

func TestRewriter_IgnoresLazyLoadingAttributes(t *testing.T) {
	images := &stubImages{}
	rewriter := content.NewRewriter(images, "")

	html := `<img src="https://cdn.example/real.png" data-src="https://cdn.example/lazy.png">` +
		`<img data-src="https://cdn.example/lazy2.png" src="https://cdn.example/real2.png">`
	result := rewriter.Rewrite(context.Background(), html, "https://example.com", imagestore.Scope{FeedID: 1, ArticleID: 2})

	require.Equal(t,
		`<img src="/images/1/2/img1.png" data-src="https://cdn.example/lazy.png">`+
			`<img data-src="https://cdn.example/lazy2.png" src="/images/1/2/img2.png">`,
		result,
	)
	require.Equal(t, []string{"https://cdn.example/real.png", "https://cdn.example/real2.png"}, images.fetched)
}

func TestRewriter_UnescapesEntitiesInSrc(t *testing.T) {
	images := &stubImages{}
	rewriter := content.NewRewriter(images, "")

	result := rewriter.Rewrite(context.Background(), `<img src="/a.png?w=1&amp;h=2">`, "https://ex.com", imagestore.Scope{FeedID: 1, ArticleID: 2})

	require.Equal(t, `<img src="/images/1/2/img1.png">`, result)
	require.Equal(t, []string{"https://ex.com/a.png?w=1&h=2"}, images.fetched)
}
