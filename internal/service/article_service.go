package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/model"
	"kindlyrss/internal/repository"
)

type ArticleService interface {
	List(ctx context.Context, feedID int64) (model.Feed, []model.Article, error)
	// Get returns the article with its content and marks it read.
	Get(ctx context.Context, feedID, articleID int64) (model.Article, string, error)
	MarkRead(ctx context.Context, feedID, articleID int64, read bool) error
}

type articleService struct {
	articles repository.ArticleRepository
	sync     SyncService
}

func NewArticleService(articles repository.ArticleRepository, sync SyncService) ArticleService {
	return &articleService{articles: articles, sync: sync}
}

func (s *articleService) List(ctx context.Context, feedID int64) (model.Feed, []model.Article, error) {
	return s.sync.FeedArticles(ctx, feedID)
}

func (s *articleService) Get(ctx context.Context, feedID, articleID int64) (model.Article, string, error) {
	article, html, err := s.sync.ArticleContent(ctx, feedID, articleID)
	if err != nil {
		return model.Article{}, "", err
	}

	if !article.Read {
		if err := s.articles.MarkRead(ctx, feedID, articleID, true); err != nil {
			logger.Warn("mark read failed",
				"module", "service",
				"action", "update",
				"resource", "article",
				"result", "failed",
				"feed_id", feedID,
				"article_id", articleID,
				"error", err,
			)
		} else {
			article.Read = true
		}
	}
	return article, html, nil
}

func (s *articleService) MarkRead(ctx context.Context, feedID, articleID int64, read bool) error {
	if _, err := s.articles.Get(ctx, feedID, articleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get article: %w", err)
	}
	if err := s.articles.MarkRead(ctx, feedID, articleID, read); err != nil {
		return fmt.Errorf("mark article read: %w", err)
	}
	return nil
}
