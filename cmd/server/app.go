package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"kindlyrss/internal/config"
	"kindlyrss/internal/db"
	"kindlyrss/internal/network"
	"kindlyrss/internal/repository"
	"kindlyrss/internal/service"
	"kindlyrss/internal/service/content"
	"kindlyrss/internal/service/imagestore"
	"kindlyrss/internal/snowflake"
)

var errLocked = errors.New("data directory is in use by another kindlyrss process")

// app holds the wired services of one process. The data directory stays
// locked until Close.
type app struct {
	lock *flock.Flock
	db   *sql.DB

	feeds    service.FeedService
	articles service.ArticleService
	sync     service.SyncService
	opml     service.OPMLService
}

func newApp(cfg config.Config) (*app, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, errLocked
	}

	a, err := wire(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	a.lock = lock
	return a, nil
}

func wire(cfg config.Config) (*app, error) {
	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		return nil, fmt.Errorf("init snowflake: %w", err)
	}
	extractor, err := content.NewExtractor(cfg.Extractor)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	feedRepo := repository.NewFeedRepository(dbConn)
	articleRepo := repository.NewArticleRepository(dbConn)
	contentRepo := repository.NewContentRepository(dbConn, cfg.ArticlesDir())

	clients := network.NewClientFactory(cfg.ProxyURL)
	plainFetcher := network.NewFetcher(clients, network.FetcherOptions{
		Timeout:      cfg.FetchTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	pageFetcher := network.NewFetcher(clients, network.FetcherOptions{
		Timeout:      cfg.FetchTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		BrowserTLS:   cfg.BrowserTLS,
	})

	images := imagestore.NewFetcher(plainFetcher, imagestore.Options{
		Dir:          cfg.ImagesDir(),
		PublicPrefix: cfg.ImagePublicPrefix,
		HostInterval: cfg.ImageHostInterval,
	})
	rewriter := content.NewRewriter(images, cfg.ImagePlaceholder)

	syncService := service.NewSyncService(
		feedRepo,
		articleRepo,
		contentRepo,
		plainFetcher,
		pageFetcher,
		extractor,
		rewriter,
		service.SyncOptions{
			RefreshInterval:       cfg.RefreshInterval,
			MaxArticlesToDownload: cfg.MaxArticlesToDownload,
		},
	)
	feedService := service.NewFeedService(feedRepo, contentRepo, images, plainFetcher)

	return &app{
		db:       dbConn,
		feeds:    feedService,
		articles: service.NewArticleService(articleRepo, syncService),
		sync:     syncService,
		opml:     service.NewOPMLService(feedService, feedRepo),
	}, nil
}

func (a *app) Close() error {
	err := a.db.Close()
	if unlockErr := a.lock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	return err
}
