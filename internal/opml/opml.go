// Package opml reads and writes OPML 2.0 subscription lists.
package opml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    Head     `xml:"head"`
	Body    Body     `xml:"body"`
}

type Head struct {
	Title        string `xml:"title,omitempty"`
	DateCreated  string `xml:"dateCreated,omitempty"`
	DateModified string `xml:"dateModified,omitempty"`
}

type Body struct {
	Outlines []Outline `xml:"outline"`
}

type Outline struct {
	Text     string    `xml:"text,attr,omitempty"`
	Title    string    `xml:"title,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	HTMLURL  string    `xml:"htmlUrl,attr,omitempty"`
	Outlines []Outline `xml:"outline"`
}

// IsFeed reports whether the outline is a subscription rather than a folder.
func (o Outline) IsFeed() bool {
	if strings.TrimSpace(o.XMLURL) != "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(o.Type)) {
	case "rss", "atom", "feed":
		return true
	}
	return false
}

// Feeds flattens nested folders into the subscriptions they contain, in
// document order.
func (d Document) Feeds() []Outline {
	var feeds []Outline
	var walk func([]Outline)
	walk = func(outlines []Outline) {
		for _, outline := range outlines {
			if outline.IsFeed() {
				feeds = append(feeds, outline)
				continue
			}
			walk(outline.Outlines)
		}
	}
	walk(d.Body.Outlines)
	return feeds
}

func Parse(r io.Reader) (Document, error) {
	var doc Document
	decoder := xml.NewDecoder(r)
	// Exported files in the wild often declare a legacy charset.
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode opml: %w", err)
	}
	return doc, nil
}

func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode opml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
