package model

import "time"

type Article struct {
	ID         int64
	FeedID     int64
	Title      string
	Author     *string
	GUID       string
	Link       *string
	HasContent bool
	// HTMLParsed is set when the content was extracted from the full page
	// rather than delivered inline by the feed.
	HTMLParsed  bool
	Read        bool
	LastUpdated time.Time
}

// ArticleContent pairs an article with its processed content. A nil Content
// means the article was stored metadata-only and is fetched lazily.
type ArticleContent struct {
	Article Article
	Content *string
}
