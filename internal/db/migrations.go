package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS feeds (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  url TEXT NOT NULL UNIQUE,
  link TEXT NOT NULL,
  last_synced TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS articles (
  id INTEGER PRIMARY KEY,
  feed_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  author TEXT,
  guid TEXT NOT NULL,
  link TEXT,
  content_path TEXT,
  read INTEGER NOT NULL DEFAULT 0,
  last_updated TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (feed_id) REFERENCES feeds(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_articles_feed_id ON articles(feed_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: guid is the per-feed dedup key for upsert-ignore
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_feed_guid ON articles(feed_id, guid)`); err != nil {
		return fmt.Errorf("create idx_articles_feed_guid: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_articles_feed_read ON articles(feed_id, read)`); err != nil {
		return fmt.Errorf("create idx_articles_feed_read: %w", err)
	}

	// Migration 2: html_parsed records whether content came from a full page fetch
	if err := addColumnIfMissing(db, "articles", "html_parsed", `INTEGER NOT NULL DEFAULT 0`); err != nil {
		return err
	}

	// Migration 3: favicon reference for feeds
	if err := addColumnIfMissing(db, "feeds", "favicon_path", `TEXT`); err != nil {
		return err
	}

	return nil
}

func addColumnIfMissing(db *sql.DB, table, column, definition string) error {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check %s column: %w", column, err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition)); err != nil {
		return fmt.Errorf("add %s column: %w", column, err)
	}
	return nil
}
