// Package imagestore downloads article images and keeps them under the data
// directory so pages render without reaching the original host.
package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"kindlyrss/internal/network"
)

// Scope places an image under the feed and article it belongs to. Feed-level
// images such as favicons use ArticleID 0.
type Scope struct {
	FeedID    int64
	ArticleID int64
}

// StoredImage is where an image was written and the path clients use to load it.
type StoredImage struct {
	StoragePath string
	PublicPath  string
}

type Fetcher interface {
	Fetch(ctx context.Context, url string, scope Scope) (StoredImage, error)
	DeleteFeed(ctx context.Context, feedID int64) error
}

type Options struct {
	// Dir is the root directory images are written to.
	Dir string
	// PublicPrefix is the URL path Dir is served under.
	PublicPrefix string
	// HostInterval is the minimum spacing between requests to one host.
	HostInterval time.Duration
}

type store struct {
	downloader network.Fetcher
	opts       Options
	limiter    *hostLimiter
	newName    func() string
}

func NewFetcher(downloader network.Fetcher, opts Options) Fetcher {
	opts.PublicPrefix = "/" + strings.Trim(opts.PublicPrefix, "/")
	return &store{
		downloader: downloader,
		opts:       opts,
		limiter:    newHostLimiter(opts.HostInterval),
		newName:    func() string { return uuid.NewString() },
	}
}

func (s *store) Fetch(ctx context.Context, url string, scope Scope) (StoredImage, error) {
	if err := s.limiter.wait(ctx, url); err != nil {
		return StoredImage{}, &DownloadError{URL: url, Err: err}
	}

	data, err := s.downloader.Get(ctx, url)
	if err != nil {
		return StoredImage{}, &DownloadError{URL: url, Err: err}
	}

	feedPart := strconv.FormatInt(scope.FeedID, 10)
	articlePart := strconv.FormatInt(scope.ArticleID, 10)
	dir := filepath.Join(s.opts.Dir, feedPart, articlePart)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StoredImage{}, &ProcessError{URL: url, Err: fmt.Errorf("create image dir: %w", err)}
	}

	name := s.newName() + sniffExtension(data)
	storagePath := filepath.Join(dir, name)
	if err := os.WriteFile(storagePath, data, 0o644); err != nil {
		return StoredImage{}, &ProcessError{URL: url, Err: fmt.Errorf("write image: %w", err)}
	}

	return StoredImage{
		StoragePath: storagePath,
		PublicPath:  path.Join(s.opts.PublicPrefix, feedPart, articlePart, name),
	}, nil
}

func (s *store) DeleteFeed(_ context.Context, feedID int64) error {
	if err := os.RemoveAll(filepath.Join(s.opts.Dir, strconv.FormatInt(feedID, 10))); err != nil {
		return fmt.Errorf("delete feed images: %w", err)
	}
	return nil
}

// sniffExtension derives a file extension from the image bytes. Formats the
// image package cannot decode are stored without one, except SVG.
func sniffExtension(data []byte) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		switch format {
		case "jpeg":
			return ".jpg"
		default:
			return "." + format
		}
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.Contains(bytes.ToLower(head), []byte("<svg")) {
		return ".svg"
	}
	return ""
}
