package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"kindlyrss/internal/model"
)

// ContentRepository stores processed article HTML on disk, one file per
// article under {dir}/{feed_id}/{article_id}.html. The articles row keeps the
// file path and whether the content came from a full page fetch.
type ContentRepository interface {
	// Get returns nil when the article has no stored content.
	Get(ctx context.Context, feedID, articleID int64) (*string, error)
	// Save writes every entry with non-nil content. Entries are independent;
	// the first failure is returned after all entries were attempted.
	Save(ctx context.Context, contents []model.ArticleContent) error
	DeleteFeed(ctx context.Context, feedID int64) error
}

type contentRepository struct {
	db  dbtx
	dir string
}

func NewContentRepository(db dbtx, dir string) ContentRepository {
	return &contentRepository{db: db, dir: dir}
}

func (r *contentRepository) Get(ctx context.Context, feedID, articleID int64) (*string, error) {
	var path sql.NullString
	err := r.db.QueryRowContext(
		ctx,
		`SELECT content_path FROM articles WHERE feed_id = ? AND id = ?`,
		feedID,
		articleID,
	).Scan(&path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content path: %w", err)
	}
	if !path.Valid || path.String == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path.String)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read content: %w", err)
	}
	content := string(data)
	return &content, nil
}

func (r *contentRepository) Save(ctx context.Context, contents []model.ArticleContent) error {
	var firstErr error
	for _, item := range contents {
		if item.Content == nil {
			continue
		}
		if err := r.save(ctx, item); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *contentRepository) save(ctx context.Context, item model.ArticleContent) error {
	article := item.Article
	feedDir := r.feedDir(article.FeedID)
	if err := os.MkdirAll(feedDir, 0o755); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}

	path := filepath.Join(feedDir, strconv.FormatInt(article.ID, 10)+".html")
	if err := os.WriteFile(path, []byte(*item.Content), 0o644); err != nil {
		return fmt.Errorf("write content %d: %w", article.ID, err)
	}

	_, err := r.db.ExecContext(
		ctx,
		`UPDATE articles SET content_path = ?, html_parsed = ? WHERE feed_id = ? AND id = ?`,
		path,
		boolToInt(article.HTMLParsed),
		article.FeedID,
		article.ID,
	)
	if err != nil {
		return fmt.Errorf("record content path %d: %w", article.ID, err)
	}
	return nil
}

func (r *contentRepository) DeleteFeed(_ context.Context, feedID int64) error {
	if err := os.RemoveAll(r.feedDir(feedID)); err != nil {
		return fmt.Errorf("delete feed content: %w", err)
	}
	return nil
}

func (r *contentRepository) feedDir(feedID int64) string {
	return filepath.Join(r.dir, strconv.FormatInt(feedID, 10))
}
