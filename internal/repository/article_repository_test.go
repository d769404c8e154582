package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/model"
	"kindlyrss/internal/repository"
	"kindlyrss/internal/repository/testutil"
)

func stringPtr(s string) *string {
	return &s
}

func TestArticleRepository_UpsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	feedID := testutil.SeedFeed(t, db, model.Feed{Title: "F"})
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	err := repo.Upsert(ctx, feedID, []model.Article{
		{Title: "Old", GUID: "g1", Link: stringPtr("https://example.com/1"), LastUpdated: older},
		{Title: "New", GUID: "g2", Author: stringPtr("Ann"), LastUpdated: newer, HTMLParsed: true},
	})
	require.NoError(t, err)

	articles, err := repo.ListByFeed(ctx, feedID)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "New", articles[0].Title)
	require.Equal(t, "Ann", *articles[0].Author)
	require.Nil(t, articles[0].Link)
	require.True(t, articles[0].HTMLParsed)
	require.False(t, articles[0].HasContent)
	require.Equal(t, "Old", articles[1].Title)
	require.Equal(t, "https://example.com/1", *articles[1].Link)
	require.True(t, older.Equal(articles[1].LastUpdated))
}

func TestArticleRepository_Upsert_IgnoresKnownGUID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	feedID := testutil.SeedFeed(t, db, model.Feed{Title: "F"})
	otherFeedID := testutil.SeedFeed(t, db, model.Feed{Title: "G"})

	require.NoError(t, repo.Upsert(ctx, feedID, []model.Article{{Title: "First", GUID: "same", LastUpdated: time.Now()}}))
	require.NoError(t, repo.Upsert(ctx, feedID, []model.Article{{Title: "Second", GUID: "same", LastUpdated: time.Now()}}))
	require.NoError(t, repo.Upsert(ctx, otherFeedID, []model.Article{{Title: "Other", GUID: "same", LastUpdated: time.Now()}}))

	articles, err := repo.ListByFeed(ctx, feedID)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "First", articles[0].Title)

	others, err := repo.ListByFeed(ctx, otherFeedID)
	require.NoError(t, err)
	require.Len(t, others, 1)
}

func TestArticleRepository_Upsert_KeepsGivenID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	feedID := testutil.SeedFeed(t, db, model.Feed{Title: "F"})
	require.NoError(t, repo.Upsert(ctx, feedID, []model.Article{{ID: 777, Title: "A", GUID: "g", LastUpdated: time.Now()}}))

	article, err := repo.Get(ctx, feedID, 777)
	require.NoError(t, err)
	require.Equal(t, "A", article.Title)
	require.Equal(t, feedID, article.FeedID)
}

func TestArticleRepository_Get_WrongFeed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	feedID := testutil.SeedFeed(t, db, model.Feed{Title: "F"})
	otherFeedID := testutil.SeedFeed(t, db, model.Feed{Title: "G"})
	articleID := testutil.SeedArticle(t, db, model.Article{FeedID: feedID, Title: "A"})

	_, err := repo.Get(ctx, otherFeedID, articleID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestArticleRepository_MarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	feedID := testutil.SeedFeed(t, db, model.Feed{Title: "F"})
	articleID := testutil.SeedArticle(t, db, model.Article{FeedID: feedID, Title: "A"})

	require.NoError(t, repo.MarkRead(ctx, feedID, articleID, true))
	article, err := repo.Get(ctx, feedID, articleID)
	require.NoError(t, err)
	require.True(t, article.Read)

	require.NoError(t, repo.MarkRead(ctx, feedID, articleID, false))
	article, err = repo.Get(ctx, feedID, articleID)
	require.NoError(t, err)
	require.False(t, article.Read)
}
