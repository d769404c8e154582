package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kindlyrss/internal/model"
	"kindlyrss/internal/snowflake"
)

type ArticleRepository interface {
	ListByFeed(ctx context.Context, feedID int64) ([]model.Article, error)
	Get(ctx context.Context, feedID, articleID int64) (model.Article, error)
	// Upsert inserts articles for a feed, ignoring any whose guid the feed
	// already stores. All rows are written in one transaction.
	Upsert(ctx context.Context, feedID int64, articles []model.Article) error
	MarkRead(ctx context.Context, feedID, articleID int64, read bool) error
}

type articleRepository struct {
	db dbtx
}

func NewArticleRepository(db dbtx) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, feed_id, title, author, guid, link, content_path IS NOT NULL, html_parsed, read, last_updated`

func (r *articleRepository) ListByFeed(ctx context.Context, feedID int64) ([]model.Article, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+articleColumns+` FROM articles WHERE feed_id = ? ORDER BY last_updated DESC, id DESC`,
		feedID,
	)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Get(ctx context.Context, feedID, articleID int64) (model.Article, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+articleColumns+` FROM articles WHERE feed_id = ? AND id = ?`,
		feedID,
		articleID,
	)
	return scanArticle(row)
}

func (r *articleRepository) Upsert(ctx context.Context, feedID int64, articles []model.Article) error {
	if len(articles) == 0 {
		return nil
	}

	starter, ok := r.db.(txStarter)
	if !ok {
		return insertArticles(ctx, r.db, feedID, articles)
	}

	tx, err := starter.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert articles: %w", err)
	}
	if err := insertArticles(ctx, tx, feedID, articles); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert articles: %w", err)
	}
	return nil
}

func insertArticles(ctx context.Context, db dbtx, feedID int64, articles []model.Article) error {
	now := formatTime(time.Now())
	for _, article := range articles {
		id := article.ID
		if id == 0 {
			id = snowflake.NextID()
		}
		_, err := db.ExecContext(
			ctx,
			`INSERT INTO articles (id, feed_id, title, author, guid, link, html_parsed, read, last_updated, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(feed_id, guid) DO NOTHING`,
			id,
			feedID,
			article.Title,
			nullableString(article.Author),
			article.GUID,
			nullableString(article.Link),
			boolToInt(article.HTMLParsed),
			boolToInt(article.Read),
			formatTime(article.LastUpdated),
			now,
		)
		if err != nil {
			return fmt.Errorf("insert article %q: %w", article.GUID, err)
		}
	}
	return nil
}

func (r *articleRepository) MarkRead(ctx context.Context, feedID, articleID int64, read bool) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE articles SET read = ? WHERE feed_id = ? AND id = ?`,
		boolToInt(read),
		feedID,
		articleID,
	)
	if err != nil {
		return fmt.Errorf("mark article read: %w", err)
	}
	return nil
}

func scanArticle(scanner interface {
	Scan(dest ...any) error
}) (model.Article, error) {
	var article model.Article
	var author sql.NullString
	var link sql.NullString
	var hasContent, htmlParsed, read int
	var lastUpdated string
	if err := scanner.Scan(
		&article.ID,
		&article.FeedID,
		&article.Title,
		&author,
		&article.GUID,
		&link,
		&hasContent,
		&htmlParsed,
		&read,
		&lastUpdated,
	); err != nil {
		return model.Article{}, err
	}
	if author.Valid {
		article.Author = &author.String
	}
	if link.Valid {
		article.Link = &link.String
	}
	article.HasContent = hasContent == 1
	article.HTMLParsed = htmlParsed == 1
	article.Read = read == 1

	var err error
	article.LastUpdated, err = parseTime(lastUpdated)
	if err != nil {
		return model.Article{}, fmt.Errorf("parse article last_updated: %w", err)
	}
	return article, nil
}
