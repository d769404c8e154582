package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kindlyrss/internal/model"
	"kindlyrss/internal/network"
	"kindlyrss/internal/repository/mock"
	"kindlyrss/internal/service"
	"kindlyrss/internal/service/imagestore"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<link>https://example.com</link>
<description>Desc</description>
<item>
  <title>Item 1</title>
  <link>https://example.com/1</link>
  <description>Content 1</description>
</item>
</channel>
</rss>`

const sampleRSSNoTitle = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title></title>
<link>https://example.com</link>
</channel>
</rss>`

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}
}

type stubImages struct {
	mu       sync.Mutex
	fetched  []string
	deleted  []int64
	fetchErr error
}

func (s *stubImages) Fetch(_ context.Context, url string, scope imagestore.Scope) (imagestore.StoredImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return imagestore.StoredImage{}, s.fetchErr
	}
	s.fetched = append(s.fetched, url)
	return imagestore.StoredImage{PublicPath: "/images/icon.png"}, nil
}

func (s *stubImages) DeleteFeed(_ context.Context, feedID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, feedID)
	return nil
}

func TestFeedService_Add_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	mockContents := mock.NewMockContentRepository(ctrl)
	images := &stubImages{}

	feedURL := "https://example.com/rss"
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			switch req.URL.String() {
			case feedURL:
				return respond(req, http.StatusOK, sampleRSS), nil
			case "https://example.com":
				return respond(req, http.StatusOK, `<html><head><link rel="icon" href="/static/icon.png"></head><body></body></html>`), nil
			}
			return respond(req, http.StatusNotFound, ""), nil
		}),
	}
	fetcher := network.NewFetcher(network.NewClientFactoryForTest(client), network.FetcherOptions{})

	var createdFeed model.Feed
	mockFeeds.EXPECT().FindByURL(gomock.Any(), feedURL).Return(nil, nil)
	mockFeeds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, feed model.Feed) (model.Feed, error) {
			createdFeed = feed
			feed.ID = 123
			return feed, nil
		},
	)
	mockFeeds.EXPECT().UpdateFavicon(gomock.Any(), int64(123), "/images/icon.png").Return(nil)

	svc := service.NewFeedService(mockFeeds, mockContents, images, fetcher)
	feed, err := svc.Add(context.Background(), "  "+feedURL+" ")
	require.NoError(t, err)
	require.Equal(t, int64(123), feed.ID)
	require.Equal(t, "Test Feed", createdFeed.Title)
	require.Equal(t, feedURL, createdFeed.URL)
	require.Equal(t, "https://example.com", createdFeed.Link)
	require.True(t, createdFeed.LastSynced.IsZero())
	require.NotNil(t, feed.FaviconPath)
	require.Equal(t, "/images/icon.png", *feed.FaviconPath)
	require.Equal(t, []string{"https://example.com/static/icon.png"}, images.fetched)
}

func TestFeedService_Add_TitleFallsBackToURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	fetcher := newStubFetcher()
	fetcher.set("https://example.com/rss", sampleRSSNoTitle)

	mockFeeds.EXPECT().FindByURL(gomock.Any(), "https://example.com/rss").Return(nil, nil)
	mockFeeds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, feed model.Feed) (model.Feed, error) {
			require.Equal(t, "https://example.com/rss", feed.Title)
			feed.ID = 5
			return feed, nil
		},
	)

	// Neither the site page nor /favicon.ico resolves; the feed is kept without icon.
	images := &stubImages{fetchErr: errors.New("no icon")}
	svc := service.NewFeedService(mockFeeds, mock.NewMockContentRepository(ctrl), images, fetcher)
	feed, err := svc.Add(context.Background(), "https://example.com/rss")
	require.NoError(t, err)
	require.Nil(t, feed.FaviconPath)
}

func TestFeedService_Add_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewFeedService(mock.NewMockFeedRepository(ctrl), mock.NewMockContentRepository(ctrl), &stubImages{}, newStubFetcher())
	for _, raw := range []string{"invalid-url", "ftp://example.com/rss", "https://", ""} {
		_, err := svc.Add(context.Background(), raw)
		require.ErrorIs(t, err, service.ErrInvalid, raw)
	}
}

func TestFeedService_Add_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	existing := model.Feed{ID: 9, URL: "https://example.com/rss"}
	mockFeeds.EXPECT().FindByURL(gomock.Any(), existing.URL).Return(&existing, nil)

	fetcher := newStubFetcher()
	svc := service.NewFeedService(mockFeeds, mock.NewMockContentRepository(ctrl), &stubImages{}, fetcher)
	_, err := svc.Add(context.Background(), existing.URL)
	require.ErrorIs(t, err, service.ErrConflict)

	var conflict *service.FeedConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, int64(9), conflict.ExistingFeed.ID)
	require.Equal(t, 0, fetcher.count(existing.URL))
}

func TestFeedService_Add_FetchAndFormatErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	mockFeeds.EXPECT().FindByURL(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	fetcher := newStubFetcher()
	fetcher.set("https://example.com/page", "<html><body>not a feed</body></html>")
	svc := service.NewFeedService(mockFeeds, mock.NewMockContentRepository(ctrl), &stubImages{}, fetcher)

	_, err := svc.Add(context.Background(), "https://example.com/missing")
	require.ErrorIs(t, err, service.ErrFeedFetch)
	require.ErrorIs(t, err, network.ErrStatus)

	_, err = svc.Add(context.Background(), "https://example.com/page")
	require.ErrorIs(t, err, service.ErrFeedFormat)
}

func TestFeedService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	mockFeeds.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Feed{}, sql.ErrNoRows)

	svc := service.NewFeedService(mockFeeds, mock.NewMockContentRepository(ctrl), &stubImages{}, newStubFetcher())
	_, err := svc.Get(context.Background(), 1)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestFeedService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	mockContents := mock.NewMockContentRepository(ctrl)
	images := &stubImages{}

	gomock.InOrder(
		mockFeeds.EXPECT().GetByID(gomock.Any(), int64(3)).Return(model.Feed{ID: 3}, nil),
		mockFeeds.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
		mockContents.EXPECT().DeleteFeed(gomock.Any(), int64(3)).Return(errors.New("busy")),
	)

	svc := service.NewFeedService(mockFeeds, mockContents, images, newStubFetcher())
	require.NoError(t, svc.Delete(context.Background(), 3))
	require.Equal(t, []int64{3}, images.deleted)
}

func TestFeedService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeeds := mock.NewMockFeedRepository(ctrl)
	mockFeeds.EXPECT().GetByID(gomock.Any(), int64(3)).Return(model.Feed{}, sql.ErrNoRows)

	images := &stubImages{}
	svc := service.NewFeedService(mockFeeds, mock.NewMockContentRepository(ctrl), images, newStubFetcher())
	require.ErrorIs(t, svc.Delete(context.Background(), 3), service.ErrNotFound)
	require.Empty(t, images.deleted)
}
