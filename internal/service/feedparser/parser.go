// Package feedparser turns raw RSS or Atom documents into a format-neutral feed.
package feedparser

import (
	"bytes"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

const unknownTitle = "Unknown title"

// ParsedFeed is the format-neutral result of Parse. Empty strings mean the
// value was absent from the document.
type ParsedFeed struct {
	Title string
	Link  string
	Items []ParsedItem
}

type ParsedItem struct {
	Title   string
	Link    string
	GUID    string
	Content string
	Author  string
	PubDate time.Time
}

// Parser converts feed documents. Items without a usable date get Now().
type Parser struct {
	Now func() time.Time
}

func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Parse uses a default Parser.
func Parse(raw []byte) (ParsedFeed, error) {
	return NewParser().Parse(raw)
}

func (p *Parser) Parse(raw []byte) (ParsedFeed, error) {
	switch gofeed.DetectFeedType(bytes.NewReader(raw)) {
	case gofeed.FeedTypeRSS:
		return p.parseRSS(raw)
	case gofeed.FeedTypeAtom:
		return p.parseAtom(raw)
	case gofeed.FeedTypeUnknown:
		// Sniffing can miss documents with leading junk; try RSS then Atom.
		if feed, err := p.parseRSS(raw); err == nil {
			return feed, nil
		}
		if feed, err := p.parseAtom(raw); err == nil {
			return feed, nil
		}
		return ParsedFeed{}, ErrUnsupportedFormat
	default:
		return ParsedFeed{}, ErrUnsupportedFormat
	}
}

func (p *Parser) parseRSS(raw []byte) (ParsedFeed, error) {
	parser := &rss.Parser{}
	doc, err := parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return ParsedFeed{}, &ParseError{Format: "rss", Err: err}
	}

	link := strings.TrimSpace(doc.Link)
	if link == "" {
		return ParsedFeed{}, &MissingFieldError{Field: "link"}
	}

	feed := ParsedFeed{
		Title: strings.TrimSpace(doc.Title),
		Link:  link,
		Items: make([]ParsedItem, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		if item == nil {
			continue
		}
		feed.Items = append(feed.Items, p.rssItem(item))
	}
	return feed, nil
}

func (p *Parser) rssItem(item *rss.Item) ParsedItem {
	parsed := ParsedItem{
		Title:   titleOrDefault(item.Title),
		Link:    strings.TrimSpace(item.Link),
		Content: item.Content,
		Author:  strings.TrimSpace(item.Author),
		PubDate: p.dateOrNow(item.PubDateParsed),
	}
	if item.GUID != nil {
		parsed.GUID = strings.TrimSpace(item.GUID.Value)
	}
	if parsed.Author == "" && item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		parsed.Author = strings.TrimSpace(item.DublinCoreExt.Creator[0])
	}
	return parsed
}

func (p *Parser) parseAtom(raw []byte) (ParsedFeed, error) {
	parser := &atom.Parser{}
	doc, err := parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return ParsedFeed{}, &ParseError{Format: "atom", Err: err}
	}

	link := atomLink(doc.Links, "alternate")
	if link == "" {
		link = atomLink(doc.Links, "self")
	}
	if link == "" {
		return ParsedFeed{}, &MissingFieldError{Field: "link"}
	}

	feed := ParsedFeed{
		Title: strings.TrimSpace(doc.Title),
		Link:  link,
		Items: make([]ParsedItem, 0, len(doc.Entries)),
	}
	for _, entry := range doc.Entries {
		if entry == nil {
			continue
		}
		feed.Items = append(feed.Items, p.atomItem(entry))
	}
	return feed, nil
}

func (p *Parser) atomItem(entry *atom.Entry) ParsedItem {
	parsed := ParsedItem{
		Title: titleOrDefault(entry.Title),
		Link:  atomLink(entry.Links, "alternate"),
		GUID:  strings.TrimSpace(entry.ID),
	}
	if entry.Content != nil && strings.TrimSpace(entry.Content.Value) != "" {
		parsed.Content = entry.Content.Value
	} else {
		parsed.Content = entry.Summary
	}
	for _, author := range entry.Authors {
		if author != nil && strings.TrimSpace(author.Name) != "" {
			parsed.Author = strings.TrimSpace(author.Name)
			break
		}
	}
	date := entry.UpdatedParsed
	if date == nil {
		date = entry.PublishedParsed
	}
	parsed.PubDate = p.dateOrNow(date)
	return parsed
}

// atomLink returns the first link with the given rel. A link without rel
// counts as alternate.
func atomLink(links []*atom.Link, rel string) string {
	for _, link := range links {
		if link == nil || strings.TrimSpace(link.Href) == "" {
			continue
		}
		linkRel := link.Rel
		if linkRel == "" {
			linkRel = "alternate"
		}
		if linkRel == rel {
			return strings.TrimSpace(link.Href)
		}
	}
	return ""
}

func titleOrDefault(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return unknownTitle
	}
	return title
}

func (p *Parser) dateOrNow(date *time.Time) time.Time {
	if date != nil && !date.IsZero() {
		return *date
	}
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
