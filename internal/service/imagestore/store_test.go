package imagestore_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/network"
	"kindlyrss/internal/service/imagestore"
)

type stubDownloader struct {
	bodies map[string][]byte
	err    error
	calls  []string
}

func (s *stubDownloader) Get(_ context.Context, url string) ([]byte, error) {
	s.calls = append(s.calls, url)
	if s.err != nil {
		return nil, s.err
	}
	body, ok := s.bodies[url]
	if !ok {
		return nil, &network.StatusError{URL: url, StatusCode: 404}
	}
	return body, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetcher_Fetch_StoresUnderScope(t *testing.T) {
	dir := t.TempDir()
	downloader := &stubDownloader{bodies: map[string][]byte{"https://img.example/a.png": pngBytes(t)}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: dir, PublicPrefix: "images/"})

	stored, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", imagestore.Scope{FeedID: 7, ArticleID: 42})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(stored.PublicPath, "/images/7/42/"))
	require.True(t, strings.HasSuffix(stored.PublicPath, ".png"))
	require.Equal(t, filepath.Join(dir, "7", "42", filepath.Base(stored.PublicPath)), stored.StoragePath)

	data, err := os.ReadFile(stored.StoragePath)
	require.NoError(t, err)
	require.Equal(t, pngBytes(t), data)
}

func TestFetcher_Fetch_UniqueNames(t *testing.T) {
	downloader := &stubDownloader{bodies: map[string][]byte{"https://img.example/a.png": pngBytes(t)}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: t.TempDir(), PublicPrefix: "/images"})
	scope := imagestore.Scope{FeedID: 1, ArticleID: 2}

	first, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", scope)
	require.NoError(t, err)
	second, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", scope)
	require.NoError(t, err)
	require.NotEqual(t, first.PublicPath, second.PublicPath)
}

func TestFetcher_Fetch_Extensions(t *testing.T) {
	downloader := &stubDownloader{bodies: map[string][]byte{
		"https://img.example/logo": []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		"https://img.example/blob": []byte("not an image"),
	}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: t.TempDir(), PublicPrefix: "/images"})
	scope := imagestore.Scope{FeedID: 1, ArticleID: 0}

	svg, err := fetcher.Fetch(context.Background(), "https://img.example/logo", scope)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(svg.PublicPath, ".svg"))

	blob, err := fetcher.Fetch(context.Background(), "https://img.example/blob", scope)
	require.NoError(t, err)
	require.Empty(t, filepath.Ext(blob.PublicPath))
}

func TestFetcher_Fetch_DownloadError(t *testing.T) {
	downloader := &stubDownloader{err: &network.NetworkError{URL: "x", Err: errors.New("refused")}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: t.TempDir()})

	_, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", imagestore.Scope{FeedID: 1, ArticleID: 1})
	require.ErrorIs(t, err, imagestore.ErrUnableToDownload)
	require.ErrorIs(t, err, network.ErrNetwork)
	require.NotErrorIs(t, err, imagestore.ErrUnableToProcess)
}

func TestFetcher_Fetch_ProcessError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	downloader := &stubDownloader{bodies: map[string][]byte{"https://img.example/a.png": pngBytes(t)}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: blocker})

	_, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", imagestore.Scope{FeedID: 1, ArticleID: 1})
	require.ErrorIs(t, err, imagestore.ErrUnableToProcess)
}

func TestFetcher_DeleteFeed(t *testing.T) {
	dir := t.TempDir()
	downloader := &stubDownloader{bodies: map[string][]byte{"https://img.example/a.png": pngBytes(t)}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: dir})

	stored, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", imagestore.Scope{FeedID: 9, ArticleID: 1})
	require.NoError(t, err)

	require.NoError(t, fetcher.DeleteFeed(context.Background(), 9))
	_, err = os.Stat(stored.StoragePath)
	require.True(t, os.IsNotExist(err))
	require.NoError(t, fetcher.DeleteFeed(context.Background(), 9))
}

func TestFetcher_Fetch_HostLimiterHonorsContext(t *testing.T) {
	downloader := &stubDownloader{bodies: map[string][]byte{"https://img.example/a.png": pngBytes(t)}}
	fetcher := imagestore.NewFetcher(downloader, imagestore.Options{Dir: t.TempDir(), HostInterval: 1 << 40})
	scope := imagestore.Scope{FeedID: 1, ArticleID: 1}

	_, err := fetcher.Fetch(context.Background(), "https://img.example/a.png", scope)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fetcher.Fetch(ctx, "https://img.example/a.png", scope)
	require.ErrorIs(t, err, imagestore.ErrUnableToDownload)
	require.Len(t, downloader.calls, 1)
}
