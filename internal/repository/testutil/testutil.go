package testutil

import (
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"kindlyrss/internal/db"
	"kindlyrss/internal/model"
	"kindlyrss/internal/snowflake"
)

// NewTestDB opens a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func SeedFeed(t *testing.T, conn *sql.DB, feed model.Feed) int64 {
	t.Helper()

	id := snowflake.NextID()
	if feed.Link == "" {
		feed.Link = "https://example.com"
	}
	if feed.URL == "" {
		feed.URL = "https://example.com/feed/" + strconv.FormatInt(id, 10)
	}
	_, err := conn.Exec(
		`INSERT INTO feeds (id, title, url, link, last_synced, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		feed.Title,
		feed.URL,
		feed.Link,
		feed.LastSynced.UTC().Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("seed feed: %v", err)
	}
	return id
}

func SeedArticle(t *testing.T, conn *sql.DB, article model.Article) int64 {
	t.Helper()

	id := article.ID
	if id == 0 {
		id = snowflake.NextID()
	}
	if article.GUID == "" {
		article.GUID = "guid-" + strconv.FormatInt(id, 10)
	}
	if article.LastUpdated.IsZero() {
		article.LastUpdated = time.Now()
	}
	readInt := 0
	if article.Read {
		readInt = 1
	}
	_, err := conn.Exec(
		`INSERT INTO articles (id, feed_id, title, author, guid, link, read, last_updated, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		article.FeedID,
		article.Title,
		optional(article.Author),
		article.GUID,
		optional(article.Link),
		readInt,
		article.LastUpdated.UTC().Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return id
}

func optional(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
