package service

import (
	"github.com/samber/lo"
	"github.com/tomakado/containers/set"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/model"
	"kindlyrss/internal/service/feedparser"
)

// knownArticles is a read-only snapshot of what a feed already stores,
// built once before new items are processed.
type knownArticles struct {
	hasGUID func(string) bool
	hasLink func(string) bool

	// hasLinkKeyed matches links of stored articles whose feed item had no
	// guid, so their guid was taken from the link.
	hasLinkKeyed func(string) bool
}

func newKnownArticles(stored []model.Article) knownArticles {
	links := lo.FilterMap(stored, func(article model.Article, _ int) (string, bool) {
		return lo.FromPtr(article.Link), article.Link != nil && *article.Link != ""
	})
	linkKeyed := lo.FilterMap(stored, func(article model.Article, _ int) (string, bool) {
		return article.GUID, article.Link != nil && *article.Link == article.GUID
	})
	guidSet := set.New(lo.Map(stored, func(article model.Article, _ int) string { return article.GUID })...)
	linkSet := set.New(links...)
	linkKeyedSet := set.New(linkKeyed...)
	return knownArticles{
		hasGUID:      guidSet.Contains,
		hasLink:      linkSet.Contains,
		hasLinkKeyed: linkKeyedSet.Contains,
	}
}

func (k knownArticles) contains(item feedparser.ParsedItem) bool {
	if item.GUID != "" {
		if k.hasGUID(item.GUID) {
			return true
		}
		return item.Link != "" && k.hasLinkKeyed(item.Link)
	}
	return k.hasLink(item.Link) || k.hasGUID(item.Link)
}

// newItems returns the parsed items the feed does not store yet, in feed
// order. Items without guid take their link as guid; items with neither are
// dropped. Repeats within the document keep their first occurrence.
func (k knownArticles) newItems(feedID int64, items []feedparser.ParsedItem) []feedparser.ParsedItem {
	candidates := make([]feedparser.ParsedItem, 0, len(items))
	for _, item := range items {
		if item.GUID == "" && item.Link == "" {
			logger.Warn("feed item has no guid or link",
				"module", "service",
				"action", "sync",
				"resource", "article",
				"result", "skipped",
				"feed_id", feedID,
				"title", item.Title,
			)
			continue
		}
		if k.contains(item) {
			continue
		}
		if item.GUID == "" {
			item.GUID = item.Link
		}
		candidates = append(candidates, item)
	}
	return lo.UniqBy(candidates, func(item feedparser.ParsedItem) string {
		return item.GUID
	})
}
