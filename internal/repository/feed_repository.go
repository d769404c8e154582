package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kindlyrss/internal/model"
	"kindlyrss/internal/snowflake"
)

type FeedRepository interface {
	Create(ctx context.Context, feed model.Feed) (model.Feed, error)
	GetByID(ctx context.Context, id int64) (model.Feed, error)
	FindByURL(ctx context.Context, url string) (*model.Feed, error)
	List(ctx context.Context) ([]model.Feed, error)
	UpdateLastSynced(ctx context.Context, id int64, syncedAt time.Time) error
	UpdateFavicon(ctx context.Context, id int64, faviconPath string) error
	Delete(ctx context.Context, id int64) error
}

type feedRepository struct {
	db dbtx
}

func NewFeedRepository(db dbtx) FeedRepository {
	return &feedRepository{db: db}
}

const feedColumns = `f.id, f.title, f.url, f.link, f.favicon_path, f.last_synced, f.created_at,
	(SELECT COUNT(*) FROM articles a WHERE a.feed_id = f.id AND a.read = 0)`

func (r *feedRepository) Create(ctx context.Context, feed model.Feed) (model.Feed, error) {
	feed.ID = snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO feeds (id, title, url, link, favicon_path, last_synced, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		feed.ID,
		feed.Title,
		feed.URL,
		feed.Link,
		nullableString(feed.FaviconPath),
		formatTime(feed.LastSynced),
		formatTime(now),
	)
	if err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}
	feed.CreatedAt = now
	return feed, nil
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds f WHERE f.id = ?`, id)
	return scanFeed(row)
}

func (r *feedRepository) FindByURL(ctx context.Context, url string) (*model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds f WHERE f.url = ?`, url)
	feed, err := scanFeed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find feed: %w", err)
	}
	return &feed, nil
}

func (r *feedRepository) List(ctx context.Context) ([]model.Feed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+feedColumns+` FROM feeds f ORDER BY f.title COLLATE NOCASE, f.id`)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []model.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}

	return feeds, nil
}

func (r *feedRepository) UpdateLastSynced(ctx context.Context, id int64, syncedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE feeds SET last_synced = ? WHERE id = ?`, formatTime(syncedAt), id); err != nil {
		return fmt.Errorf("update feed last_synced: %w", err)
	}
	return nil
}

func (r *feedRepository) UpdateFavicon(ctx context.Context, id int64, faviconPath string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE feeds SET favicon_path = ? WHERE id = ?`, faviconPath, id); err != nil {
		return fmt.Errorf("update feed favicon: %w", err)
	}
	return nil
}

func (r *feedRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}

func scanFeed(scanner interface {
	Scan(dest ...any) error
}) (model.Feed, error) {
	var feed model.Feed
	var faviconPath sql.NullString
	var lastSynced string
	var createdAt string
	if err := scanner.Scan(
		&feed.ID,
		&feed.Title,
		&feed.URL,
		&feed.Link,
		&faviconPath,
		&lastSynced,
		&createdAt,
		&feed.UnreadCount,
	); err != nil {
		return model.Feed{}, err
	}
	if faviconPath.Valid && faviconPath.String != "" {
		feed.FaviconPath = &faviconPath.String
	}
	var err error
	feed.LastSynced, err = parseTime(lastSynced)
	if err != nil {
		return model.Feed{}, fmt.Errorf("parse feed last_synced: %w", err)
	}
	feed.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Feed{}, fmt.Errorf("parse feed created_at: %w", err)
	}
	return feed, nil
}
